package server

import (
	"time"

	"github.com/tournevent/fedex/pkg/shipper"
)

// API request and response shapes. Weights are grams and dimensions are
// centimetres throughout; carrier adapters convert to whatever the wire
// wants.

type apiLocation struct {
	Name         string `json:"name,omitempty"`
	Company      string `json:"company,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address1     string `json:"address1,omitempty"`
	Address2     string `json:"address2,omitempty"`
	City         string `json:"city,omitempty"`
	ProvinceCode string `json:"provinceCode,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	CountryCode  string `json:"countryCode,omitempty"`
	Commercial   bool   `json:"commercial,omitempty"`
}

func (a apiLocation) toShipper() shipper.Location {
	return shipper.Location{
		Name:         a.Name,
		Company:      a.Company,
		Phone:        a.Phone,
		Address1:     a.Address1,
		Address2:     a.Address2,
		City:         a.City,
		ProvinceCode: a.ProvinceCode,
		PostalCode:   a.PostalCode,
		CountryCode:  a.CountryCode,
		Commercial:   a.Commercial,
	}
}

func fromShipperLocation(loc *shipper.Location) *apiLocation {
	if loc == nil {
		return nil
	}
	return &apiLocation{
		Name:         loc.Name,
		Company:      loc.Company,
		Phone:        loc.Phone,
		Address1:     loc.Address1,
		Address2:     loc.Address2,
		City:         loc.City,
		ProvinceCode: loc.ProvinceCode,
		PostalCode:   loc.PostalCode,
		CountryCode:  loc.CountryCode,
	}
}

type apiPackage struct {
	WeightGrams     float64              `json:"weightGrams"`
	LengthCM        float64              `json:"lengthCm"`
	WidthCM         float64              `json:"widthCm"`
	HeightCM        float64              `json:"heightCm"`
	SignatureOption string               `json:"signatureOption,omitempty"`
	References      []apiReferenceNumber `json:"references,omitempty"`
}

type apiReferenceNumber struct {
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

func (p apiPackage) toShipper() shipper.Package {
	pkg := shipper.Package{
		WeightGrams:     p.WeightGrams,
		LengthCM:        p.LengthCM,
		WidthCM:         p.WidthCM,
		HeightCM:        p.HeightCM,
		SignatureOption: shipper.SignatureOption(p.SignatureOption),
	}
	for _, ref := range p.References {
		pkg.ReferenceNumbers = append(pkg.ReferenceNumbers, shipper.ReferenceNumber{
			Type:  ref.Type,
			Value: ref.Value,
		})
	}
	return pkg
}

func toShipperPackages(pkgs []apiPackage) []shipper.Package {
	result := make([]shipper.Package, len(pkgs))
	for i, p := range pkgs {
		result[i] = p.toShipper()
	}
	return result
}

type apiMoney struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type quotesRequest struct {
	Origin      apiLocation  `json:"origin"`
	Destination apiLocation  `json:"destination"`
	Packages    []apiPackage `json:"packages"`
	Carriers    []string     `json:"carriers,omitempty"`

	PackagingType   string     `json:"packagingType,omitempty"`
	PickupDate      *time.Time `json:"pickupDate,omitempty"`
	TurnAroundHours int        `json:"turnAroundHours,omitempty"`
}

func (q quotesRequest) toShipper() *shipper.QuoteRequest {
	return &shipper.QuoteRequest{
		Origin:      q.Origin.toShipper(),
		Destination: q.Destination.toShipper(),
		Packages:    toShipperPackages(q.Packages),
		Options: shipper.QuoteOptions{
			PackagingType:   shipper.PackageType(q.PackagingType),
			PickupDate:      q.PickupDate,
			TurnAroundHours: q.TurnAroundHours,
		},
	}
}

type quoteEstimate struct {
	Carrier     string     `json:"carrier"`
	ServiceCode string     `json:"serviceCode"`
	ServiceName string     `json:"serviceName"`
	TotalPrice  apiMoney   `json:"totalPrice"`
	DeliveryMin *time.Time `json:"deliveryMin,omitempty"`
	DeliveryMax *time.Time `json:"deliveryMax,omitempty"`
}

type quoteResult struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Estimates []quoteEstimate `json:"estimates"`
}

type quotesResponse struct {
	Results []quoteResult `json:"results"`
	Errors  []string      `json:"errors,omitempty"`
}

func toQuoteResult(resp *shipper.QuoteResponse) quoteResult {
	result := quoteResult{
		Success:   resp.Success,
		Message:   resp.Message,
		Estimates: make([]quoteEstimate, 0, len(resp.Estimates)),
	}
	for _, est := range resp.Estimates {
		result.Estimates = append(result.Estimates, quoteEstimate{
			Carrier:     est.Carrier,
			ServiceCode: est.ServiceCode,
			ServiceName: est.ServiceName,
			TotalPrice:  apiMoney{Amount: est.TotalPrice.Amount, Currency: est.TotalPrice.Currency},
			DeliveryMin: est.DeliveryMin,
			DeliveryMax: est.DeliveryMax,
		})
	}
	return result
}

type shipmentRequest struct {
	Carrier     string       `json:"carrier,omitempty"`
	Origin      apiLocation  `json:"origin"`
	Destination apiLocation  `json:"destination"`
	Packages    []apiPackage `json:"packages"`

	ServiceCode     string     `json:"serviceCode,omitempty"`
	PackagingType   string     `json:"packagingType,omitempty"`
	DropoffType     string     `json:"dropoffType,omitempty"`
	PaymentType     string     `json:"paymentType,omitempty"`
	LabelFormat     string     `json:"labelFormat,omitempty"`
	LabelSize       string     `json:"labelSize,omitempty"`
	PickupDate      *time.Time `json:"pickupDate,omitempty"`
	TurnAroundHours int        `json:"turnAroundHours,omitempty"`
}

func (s shipmentRequest) toShipper() *shipper.ShipmentRequest {
	return &shipper.ShipmentRequest{
		Origin:      s.Origin.toShipper(),
		Destination: s.Destination.toShipper(),
		Packages:    toShipperPackages(s.Packages),
		Options: shipper.ShipmentOptions{
			ServiceCode:     s.ServiceCode,
			PackagingType:   shipper.PackageType(s.PackagingType),
			DropoffType:     shipper.DropoffType(s.DropoffType),
			PaymentType:     shipper.PaymentType(s.PaymentType),
			LabelFormat:     shipper.LabelFormat(s.LabelFormat),
			LabelSize:       s.LabelSize,
			PickupDate:      s.PickupDate,
			TurnAroundHours: s.TurnAroundHours,
		},
	}
}

type shipmentResult struct {
	Success           bool   `json:"success"`
	Message           string `json:"message,omitempty"`
	TrackingNumber    string `json:"trackingNumber,omitempty"`
	Label             []byte `json:"label,omitempty"`
	CommercialInvoice []byte `json:"commercialInvoice,omitempty"`
}

func toShipmentResult(result *shipper.LabelResult) shipmentResult {
	return shipmentResult{
		Success:           result.Success,
		Message:           result.Message,
		TrackingNumber:    result.TrackingNumber,
		Label:             result.Label,
		CommercialInvoice: result.CommercialInvoice,
	}
}

type trackRequest struct {
	Carrier          string `json:"carrier,omitempty"`
	TrackingNumber   string `json:"trackingNumber"`
	IdentifierType   string `json:"identifierType,omitempty"`
	UniqueIdentifier string `json:"uniqueIdentifier,omitempty"`
}

func (t trackRequest) toShipper() *shipper.TrackRequest {
	return &shipper.TrackRequest{
		TrackingNumber:   t.TrackingNumber,
		IdentifierType:   shipper.PackageIdentifierType(t.IdentifierType),
		UniqueIdentifier: t.UniqueIdentifier,
	}
}

type trackEvent struct {
	Description string      `json:"description"`
	Time        time.Time   `json:"time"`
	Location    apiLocation `json:"location"`
	TypeCode    string      `json:"typeCode,omitempty"`
}

type trackResult struct {
	Success           bool         `json:"success"`
	TrackingNumber    string       `json:"trackingNumber"`
	Status            string       `json:"status,omitempty"`
	StatusCode        string       `json:"statusCode"`
	StatusDescription string       `json:"statusDescription,omitempty"`
	ShipTime          *time.Time   `json:"shipTime,omitempty"`
	ScheduledDelivery *time.Time   `json:"scheduledDelivery,omitempty"`
	ActualDelivery    *time.Time   `json:"actualDelivery,omitempty"`
	DeliverySignature string       `json:"deliverySignature,omitempty"`
	Origin            *apiLocation `json:"origin,omitempty"`
	Destination       *apiLocation `json:"destination,omitempty"`
	ShipperAddress    *apiLocation `json:"shipperAddress,omitempty"`
	Events            []trackEvent `json:"events"`
}

func toTrackResult(result *shipper.TrackingResult) trackResult {
	out := trackResult{
		Success:           result.Success,
		TrackingNumber:    result.TrackingNumber,
		Status:            string(result.Status),
		StatusCode:        result.StatusCode,
		StatusDescription: result.StatusDescription,
		ShipTime:          result.ShipTime,
		ScheduledDelivery: result.ScheduledDelivery,
		ActualDelivery:    result.ActualDelivery,
		DeliverySignature: result.DeliverySignature,
		Origin:            fromShipperLocation(result.Origin),
		Destination:       fromShipperLocation(result.Destination),
		ShipperAddress:    fromShipperLocation(result.ShipperAddress),
		Events:            make([]trackEvent, 0, len(result.Events)),
	}
	for _, e := range result.Events {
		loc := e.Location
		out.Events = append(out.Events, trackEvent{
			Description: e.Description,
			Time:        e.Time,
			Location:    *fromShipperLocation(&loc),
			TypeCode:    e.TypeCode,
		})
	}
	return out
}

type cancelRequest struct {
	Carrier        string `json:"carrier,omitempty"`
	TrackingNumber string `json:"trackingNumber"`
	Reason         string `json:"reason,omitempty"`
}

type cancelResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
