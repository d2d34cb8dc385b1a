package fedex

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/tournevent/fedex/pkg/shipper"
)

// Wire request structures for the FedEx JSON API. Field names follow the
// carrier's contract, including the inconsistent capitalization of
// PackagingType.

type accountNumber struct {
	Value string `json:"value"`
}

type rateControlParameters struct {
	ReturnTransitTimes bool   `json:"returnTransitTimes"`
	VariableOptions    string `json:"variableOptions"`
}

type wireAddress struct {
	StreetLines []string `json:"streetLines"`
	City        string   `json:"city"`
	PostalCode  string   `json:"postalCode"`
	CountryCode string   `json:"countryCode"`
	Residential bool     `json:"residential"`
}

type wireContact struct {
	PersonName  string `json:"personName"`
	PhoneNumber string `json:"phoneNumber"`
	CompanyName string `json:"companyName"`
}

type wireParty struct {
	Contact *wireContact `json:"contact,omitempty"`
	Address wireAddress  `json:"address"`
}

type smartPostInfoDetail struct {
	Indicia string `json:"indicia"`
	HubID   int    `json:"hubId"`
}

type rateLineItem struct {
	GroupPackageCount int              `json:"groupPackageCount"`
	Weight            weightDetail     `json:"weight"`
	Dimensions        dimensionsDetail `json:"dimensions"`
}

type rateShipment struct {
	Shipper                   wireParty           `json:"shipper"`
	Recipient                 wireParty           `json:"recipient"`
	ShipDateStamp             string              `json:"shipDateStamp"`
	RateRequestType           []string            `json:"rateRequestType"`
	PickupType                string              `json:"pickupType"`
	PackagingType             string              `json:"PackagingType"`
	SmartPostInfoDetail       smartPostInfoDetail `json:"smartPostInfoDetail"`
	RequestedPackageLineItems []rateLineItem      `json:"requestedPackageLineItems"`
	TotalPackageCount         int                 `json:"totalPackageCount"`
	CarrierCodes              []string            `json:"carrierCodes"`
}

type rateRequest struct {
	AccountNumber                accountNumber         `json:"accountNumber"`
	RateRequestControlParameters rateControlParameters `json:"rateRequestControlParameters"`
	RequestedShipment            rateShipment          `json:"requestedShipment"`
}

type signatureOptionDetail struct {
	OptionType string `json:"optionType"`
}

type packageSpecialServices struct {
	SpecialServiceTypes   []string              `json:"specialServiceTypes"`
	SignatureOptionType   string                `json:"signatureOptionType"`
	SignatureOptionDetail signatureOptionDetail `json:"signatureOptionDetail"`
}

type customerReference struct {
	CustomerReferenceType string `json:"customerReferenceType"`
	Value                 string `json:"value"`
}

type shipLineItem struct {
	GroupPackageCount      int                    `json:"groupPackageCount"`
	Weight                 weightDetail           `json:"weight"`
	Dimensions             dimensionsDetail       `json:"dimensions"`
	PackageSpecialServices packageSpecialServices `json:"packageSpecialServices"`
	CustomerReferences     []customerReference    `json:"customerReferences,omitempty"`
}

type payor struct {
	ResponsibleParty wireParty `json:"responsibleParty"`
	AccountNumber    string    `json:"accountNumber"`
}

type chargesPayment struct {
	PaymentType string `json:"paymentType"`
	Payor       payor  `json:"payor"`
}

type labelSpecification struct {
	LabelFormatType string `json:"labelFormatType"`
	ImageType       string `json:"imageType"`
	LabelStockType  string `json:"labelStockType"`
}

type shipShipment struct {
	ShipDateStamp             string             `json:"shipDateStamp"`
	PickupType                string             `json:"pickupType"`
	PackagingType             string             `json:"PackagingType"`
	ServiceType               string             `json:"serviceType"`
	RateRequestType           []string           `json:"rateRequestType"`
	TotalPackageCount         int                `json:"totalPackageCount"`
	Shipper                   wireParty          `json:"shipper"`
	Recipients                []wireParty        `json:"recipients"`
	Origin                    wireParty          `json:"origin"`
	ShippingChargesPayment    chargesPayment     `json:"shippingChargesPayment"`
	LabelSpecification        labelSpecification `json:"labelSpecification"`
	RequestedPackageLineItems []shipLineItem     `json:"requestedPackageLineItems"`
}

type shipmentRequest struct {
	AccountNumber        accountNumber `json:"accountNumber"`
	LabelResponseOptions string        `json:"labelResponseOptions"`
	RequestedShipment    shipShipment  `json:"requestedShipment"`
}

// Carrier-documented defaults used when options leave a field unset.
const (
	defaultPickupType       = "DROPOFF_AT_FEDEX_LOCATION"
	defaultPackagingType    = "YOUR_PACKAGING"
	defaultServiceType      = "FEDEX_GROUND"
	defaultSmartPostIndicia = "PARCEL_SELECT"
	defaultSmartPostHubID   = 5902
	defaultLabelFormat      = "PNG"
	defaultLabelSize        = "STOCK_4X6"
)

var rateCarrierCodes = []string{"FDXE", "FDXG"}

// buildRateRequest produces the JSON rate payload for a quote request. The
// builder is a pure function: it performs no I/O and leaves persistence of the
// raw request to the caller.
func buildRateRequest(req *shipper.QuoteRequest, account string) *rateRequest {
	imperial := locationUsesImperial(req.Origin)
	opts := req.Options

	shipperLoc := req.Origin
	if opts.Shipper != nil {
		shipperLoc = *opts.Shipper
	}

	indicia := opts.SmartPostIndicia
	if indicia == "" {
		indicia = defaultSmartPostIndicia
	}
	hubID := opts.SmartPostHubID
	if hubID == 0 {
		hubID = defaultSmartPostHubID
	}

	items := make([]rateLineItem, len(req.Packages))
	for i, pkg := range req.Packages {
		items[i] = rateLineItem{
			GroupPackageCount: 1,
			Weight:            packageWeight(pkg, imperial),
			Dimensions:        packageDimensions(pkg, imperial),
		}
	}

	return &rateRequest{
		AccountNumber: accountNumber{Value: account},
		RateRequestControlParameters: rateControlParameters{
			ReturnTransitTimes: true,
			VariableOptions:    "SATURDAY_DELIVERY",
		},
		RequestedShipment: rateShipment{
			Shipper:                   buildParty(shipperLoc, false),
			Recipient:                 buildParty(req.Destination, false),
			ShipDateStamp:             restShipDate(opts.PickupDate, opts.TurnAroundHours),
			RateRequestType:           []string{"ACCOUNT"},
			PickupType:                defaultPickupType,
			PackagingType:             resolvePackagingType(opts.PackagingType),
			SmartPostInfoDetail:       smartPostInfoDetail{Indicia: indicia, HubID: hubID},
			RequestedPackageLineItems: items,
			TotalPackageCount:         len(req.Packages),
			CarrierCodes:              rateCarrierCodes,
		},
	}
}

// buildShipmentRequest produces the JSON shipment payload. Callers must have
// already rejected multi-package requests.
func buildShipmentRequest(req *shipper.ShipmentRequest, account string) *shipmentRequest {
	imperial := locationUsesImperial(req.Origin)
	opts := req.Options

	shipperLoc := req.Origin
	if opts.Shipper != nil {
		shipperLoc = *opts.Shipper
	}

	serviceType := opts.ServiceCode
	if serviceType == "" {
		serviceType = defaultServiceType
	}

	labelFormat := defaultLabelFormat
	if opts.LabelFormat != "" {
		labelFormat = strings.ToUpper(string(opts.LabelFormat))
	}
	labelSize := opts.LabelSize
	if labelSize == "" {
		labelSize = defaultLabelSize
	}

	paymentType, ok := paymentTypes[opts.PaymentType]
	if !ok {
		paymentType = paymentTypes[shipper.PaymentSender]
	}

	items := make([]shipLineItem, len(req.Packages))
	for i, pkg := range req.Packages {
		items[i] = buildShipLineItem(pkg, imperial)
	}

	return &shipmentRequest{
		AccountNumber:        accountNumber{Value: account},
		LabelResponseOptions: "URL_ONLY",
		RequestedShipment: shipShipment{
			ShipDateStamp:     restShipDate(opts.PickupDate, opts.TurnAroundHours),
			PickupType:        resolveDropoffType(opts.DropoffType),
			PackagingType:     resolvePackagingType(opts.PackagingType),
			ServiceType:       serviceType,
			RateRequestType:   []string{"ACCOUNT"},
			TotalPackageCount: len(req.Packages),
			Shipper:           buildParty(shipperLoc, true),
			Recipients:        []wireParty{buildParty(req.Destination, true)},
			Origin:            buildParty(req.Origin, true),
			ShippingChargesPayment: chargesPayment{
				PaymentType: paymentType,
				Payor: payor{
					ResponsibleParty: buildParty(shipperLoc, true),
					AccountNumber:    account,
				},
			},
			LabelSpecification: labelSpecification{
				LabelFormatType: "COMMON2D",
				ImageType:       labelFormat,
				LabelStockType:  labelSize,
			},
			RequestedPackageLineItems: items,
		},
	}
}

func buildShipLineItem(pkg shipper.Package, imperial bool) shipLineItem {
	signature := pkg.SignatureOption
	if signature == "" {
		signature = shipper.SignatureDefaultForService
	}
	signatureCode := signatureOptionCodes[signature]

	item := shipLineItem{
		GroupPackageCount: 1,
		Weight:            packageWeight(pkg, imperial),
		Dimensions:        packageDimensions(pkg, imperial),
		PackageSpecialServices: packageSpecialServices{
			SpecialServiceTypes:   []string{"SIGNATURE_OPTION"},
			SignatureOptionType:   signatureCode,
			SignatureOptionDetail: signatureOptionDetail{OptionType: signatureCode},
		},
	}

	for _, ref := range pkg.ReferenceNumbers {
		refType := ref.Type
		if refType == "" {
			refType = "CUSTOMER_REFERENCE"
		}
		item.CustomerReferences = append(item.CustomerReferences, customerReference{
			CustomerReferenceType: refType,
			Value:                 ref.Value,
		})
	}

	return item
}

func resolvePackagingType(pt shipper.PackageType) string {
	if code, ok := packageTypes[pt]; ok {
		return code
	}
	return defaultPackagingType
}

func resolveDropoffType(dt shipper.DropoffType) string {
	if code, ok := dropoffTypes[dt]; ok {
		return code
	}
	return defaultPickupType
}

func buildParty(loc shipper.Location, withContact bool) wireParty {
	party := wireParty{
		Address: wireAddress{
			StreetLines: streetAddress(loc),
			City:        loc.City,
			PostalCode:  loc.PostalCode,
			CountryCode: loc.CountryCode,
			Residential: !loc.Commercial,
		},
	}
	if withContact {
		party.Contact = &wireContact{
			PersonName:  loc.Name,
			PhoneNumber: loc.Phone,
			CompanyName: loc.Company,
		}
	}
	return party
}

func streetAddress(loc shipper.Location) []string {
	lines := make([]string, 0, 2)
	for _, l := range []string{loc.Address1, loc.Address2} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// restShipDate renders the pickup date as the date-only stamp the JSON API
// expects.
func restShipDate(pickupDate *time.Time, turnAroundHours int) string {
	return shipDate(pickupDate, turnAroundHours).Format(dateLayout)
}

// Wire request structures for the XML gateway.

type packageIdentifier struct {
	Type  string `xml:"Type"`
	Value string `xml:"Value"`
}

type trackSelectionDetails struct {
	PackageIdentifier              packageIdentifier `xml:"PackageIdentifier"`
	TrackingNumberUniqueIdentifier string            `xml:"TrackingNumberUniqueIdentifier,omitempty"`
}

type trackRequest struct {
	XMLName          xml.Name              `xml:"TrackRequest"`
	SelectionDetails trackSelectionDetails `xml:"SelectionDetails"`
	ProcessingOptions string               `xml:"ProcessingOptions"`
}

type deleteShipmentRequest struct {
	XMLName         xml.Name `xml:"DeleteShipmentRequest"`
	TrackingNumber  string   `xml:"TrackingId>TrackingNumber"`
	DeletionControl string   `xml:"DeletionControl"`
}

// buildTrackRequest produces the XML track payload, resolving the lookup
// identifier through the package-identifier code table.
func buildTrackRequest(req *shipper.TrackRequest) *trackRequest {
	identifierType := req.IdentifierType
	if identifierType == "" {
		identifierType = shipper.IdentifierTrackingNumber
	}
	wireType, ok := packageIdentifierTypes[identifierType]
	if !ok {
		wireType = packageIdentifierTypes[shipper.IdentifierTrackingNumber]
	}

	return &trackRequest{
		SelectionDetails: trackSelectionDetails{
			PackageIdentifier: packageIdentifier{
				Type:  wireType,
				Value: req.TrackingNumber,
			},
			TrackingNumberUniqueIdentifier: req.UniqueIdentifier,
		},
		ProcessingOptions: "INCLUDE_DETAILED_SCANS",
	}
}

// buildCancelRequest produces the XML delete-shipment payload.
func buildCancelRequest(req *shipper.CancelRequest) *deleteShipmentRequest {
	return &deleteShipmentRequest{
		TrackingNumber:  req.TrackingNumber,
		DeletionControl: "DELETE_ALL_PACKAGES",
	}
}
