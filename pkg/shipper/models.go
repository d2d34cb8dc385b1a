package shipper

import (
	"time"
)

// CountryUnknown is the sentinel country code used when a carrier response
// omits an address node. ISO 3166 reserves ZZ for user-assigned use.
const CountryUnknown = "ZZ"

// TrackingStatus is the carrier-agnostic tracking state derived from a
// carrier-specific status code. An empty value means the carrier reported a
// code we do not recognize.
type TrackingStatus string

const (
	StatusAtAirport              TrackingStatus = "at_airport"
	StatusAtDelivery             TrackingStatus = "at_delivery"
	StatusAtFacility             TrackingStatus = "at_facility"
	StatusAtPickup               TrackingStatus = "at_pickup"
	StatusCanceled               TrackingStatus = "canceled"
	StatusLocationChanged        TrackingStatus = "location_changed"
	StatusDelivered              TrackingStatus = "delivered"
	StatusDeparted               TrackingStatus = "departed"
	StatusVehicleFurnished       TrackingStatus = "vehicle_furnished_not_used"
	StatusVehicleDispatched      TrackingStatus = "vehicle_dispatched"
	StatusEnrouteToDelivery      TrackingStatus = "enroute_to_delivery"
	StatusEnrouteToOriginAirport TrackingStatus = "enroute_to_origin_airport"
	StatusEnrouteToPickup        TrackingStatus = "enroute_to_pickup"
	StatusAtDestination          TrackingStatus = "at_destination"
	StatusHeldAtLocation         TrackingStatus = "held_at_location"
	StatusInTransit              TrackingStatus = "in_transit"
	StatusLeftOrigin             TrackingStatus = "left_origin"
	StatusOrderCreated           TrackingStatus = "order_created"
	StatusOutForDelivery         TrackingStatus = "out_for_delivery"
	StatusPlaneInFlight          TrackingStatus = "plane_in_flight"
	StatusPlaneLanded            TrackingStatus = "plane_landed"
	StatusPickedUp               TrackingStatus = "picked_up"
	StatusReturnToShipper        TrackingStatus = "return_to_shipper"
	StatusAtSortFacility         TrackingStatus = "at_sort_facility"
	StatusSplit                  TrackingStatus = "split_status"
	StatusTransfer               TrackingStatus = "transfer"
	StatusException              TrackingStatus = "exception"
)

// PackageType represents the type of packaging in carrier-neutral terms.
type PackageType string

const (
	PackageEnvelope PackageType = "envelope"
	PackagePak      PackageType = "pak"
	PackageBox      PackageType = "box"
	PackageTube     PackageType = "tube"
	Package10KgBox  PackageType = "10_kg_box"
	Package25KgBox  PackageType = "25_kg_box"
	PackageYourOwn  PackageType = "your_packaging"
)

// DropoffType represents how the shipment is handed to the carrier.
type DropoffType string

const (
	DropoffRegularPickup         DropoffType = "regular_pickup"
	DropoffRequestCourier        DropoffType = "request_courier"
	DropoffDropBox               DropoffType = "dropbox"
	DropoffBusinessServiceCenter DropoffType = "business_service_center"
	DropoffStation               DropoffType = "station"
)

// SignatureOption represents the delivery signature requirement.
type SignatureOption string

const (
	SignatureAdult             SignatureOption = "adult"
	SignatureDirect            SignatureOption = "direct"
	SignatureIndirect          SignatureOption = "indirect"
	SignatureNoneRequired      SignatureOption = "none_required"
	SignatureDefaultForService SignatureOption = "default_for_service"
)

// PaymentType represents who pays the shipping charges.
type PaymentType string

const (
	PaymentSender     PaymentType = "sender"
	PaymentRecipient  PaymentType = "recipient"
	PaymentThirdParty PaymentType = "third_party"
	PaymentCollect    PaymentType = "collect"
)

// PackageIdentifierType represents the identifier used to look up a shipment.
type PackageIdentifierType string

const (
	IdentifierTrackingNumber          PackageIdentifierType = "tracking_number"
	IdentifierDoorTag                 PackageIdentifierType = "door_tag"
	IdentifierRMA                     PackageIdentifierType = "rma"
	IdentifierGroundShipmentID        PackageIdentifierType = "ground_shipment_id"
	IdentifierGroundInvoiceNumber     PackageIdentifierType = "ground_invoice_number"
	IdentifierGroundCustomerReference PackageIdentifierType = "ground_customer_reference"
	IdentifierGroundPO                PackageIdentifierType = "ground_po"
	IdentifierExpressReference        PackageIdentifierType = "express_reference"
	IdentifierExpressMPSMaster        PackageIdentifierType = "express_mps_master"
	IdentifierShipperReference        PackageIdentifierType = "shipper_reference"
)

// LabelFormat represents the format of shipping labels.
type LabelFormat string

const (
	LabelPNG LabelFormat = "png"
	LabelPDF LabelFormat = "pdf"
	LabelZPL LabelFormat = "zpl"
)

// Location represents a shipping address. Locations are built once by the
// caller and read only by the carrier adapters.
type Location struct {
	Name         string
	Company      string
	Phone        string
	Address1     string
	Address2     string
	City         string
	ProvinceCode string
	PostalCode   string
	CountryCode  string // ISO 3166-1 alpha-2, or CountryUnknown
	Commercial   bool
}

// Unknown reports whether the location carries no usable country code.
func (l *Location) Unknown() bool {
	return l == nil || l.CountryCode == "" || l.CountryCode == CountryUnknown
}

// ReferenceNumber is a customer reference attached to a package.
type ReferenceNumber struct {
	Type  string // defaults to CUSTOMER_REFERENCE on the wire
	Value string
}

// Axis identifies one of the three package dimensions.
type Axis int

const (
	AxisLength Axis = iota
	AxisWidth
	AxisHeight
)

// Package represents one parcel. Weight is stored in grams and dimensions in
// centimetres; accessors convert on demand so carrier adapters can use
// whichever unit system the origin country mandates.
type Package struct {
	WeightGrams float64
	LengthCM    float64
	WidthCM     float64
	HeightCM    float64

	SignatureOption  SignatureOption
	ReferenceNumbers []ReferenceNumber
}

const (
	gramsPerPound = 453.59237
	cmPerInch     = 2.54
)

// Kilograms returns the package weight in kilograms.
func (p *Package) Kilograms() float64 { return p.WeightGrams / 1000 }

// Pounds returns the package weight in pounds.
func (p *Package) Pounds() float64 { return p.WeightGrams / gramsPerPound }

// Centimetres returns the given dimension in centimetres.
func (p *Package) Centimetres(axis Axis) float64 {
	switch axis {
	case AxisLength:
		return p.LengthCM
	case AxisWidth:
		return p.WidthCM
	default:
		return p.HeightCM
	}
}

// Inches returns the given dimension in inches.
func (p *Package) Inches(axis Axis) float64 {
	return p.Centimetres(axis) / cmPerInch
}

// Money represents a monetary amount.
type Money struct {
	Amount   float64
	Currency string
}

// RateEstimate is one quoted service option. DeliveryMin and DeliveryMax
// bound the estimated delivery window; both may be nil when the carrier
// supplied no transit data, and equal when it committed to a single date.
type RateEstimate struct {
	Origin      Location
	Destination Location
	Carrier     string
	ServiceName string
	ServiceCode string
	TotalPrice  Money
	Packages    []Package
	DeliveryMin *time.Time
	DeliveryMax *time.Time
}

// QuoteOptions carries rate-request preferences.
type QuoteOptions struct {
	Shipper          *Location // overrides origin as the paying shipper
	PackagingType    PackageType
	SmartPostIndicia string
	SmartPostHubID   int
	PickupDate       *time.Time
	TurnAroundHours  int
}

// QuoteRequest is the request for shipping rate quotes.
type QuoteRequest struct {
	Origin      Location
	Destination Location
	Packages    []Package
	Options     QuoteOptions
}

// QuoteResponse is the outcome of a rate quote. Success is false when the
// carrier returned no usable rates; Message then distinguishes an empty
// result from a malformed one.
type QuoteResponse struct {
	Success   bool
	Message   string
	Estimates []RateEstimate
}

// ShipmentOptions carries shipment-creation preferences.
type ShipmentOptions struct {
	Shipper         *Location
	ServiceCode     string
	PackagingType   PackageType
	DropoffType     DropoffType
	PaymentType     PaymentType
	LabelFormat     LabelFormat
	LabelSize       string
	PickupDate      *time.Time
	TurnAroundHours int
}

// ShipmentRequest is the request for creating a shipment and label.
type ShipmentRequest struct {
	Origin      Location
	Destination Location
	Packages    []Package
	Options     ShipmentOptions
}

// LabelResult is the outcome of shipment creation. CommercialInvoice is only
// populated for international shipments that required customs documents.
type LabelResult struct {
	Success           bool
	Message           string
	TrackingNumber    string
	Label             []byte
	CommercialInvoice []byte
}

// TrackRequest is the request for shipment tracking.
type TrackRequest struct {
	TrackingNumber   string
	IdentifierType   PackageIdentifierType // defaults to tracking_number
	UniqueIdentifier string                // disambiguates reused tracking numbers
}

// ShipmentEvent is one scan event in a shipment's history.
type ShipmentEvent struct {
	Description string
	Time        time.Time
	Location    Location
	TypeCode    string
}

// TrackingResult is the normalized tracking outcome. Events are ordered by
// timestamp ascending regardless of the order the carrier returned them.
type TrackingResult struct {
	Success           bool
	TrackingNumber    string
	Status            TrackingStatus // empty when the carrier code is unknown
	StatusCode        string
	StatusDescription string
	ShipTime          *time.Time
	ScheduledDelivery *time.Time
	ActualDelivery    *time.Time
	DeliverySignature string
	Events            []ShipmentEvent
	Origin            *Location
	Destination       *Location
	ShipperAddress    *Location
}

// CancelRequest is the request for cancelling a shipment.
type CancelRequest struct {
	TrackingNumber string
	Reason         string
}

// CancelResult is the outcome of a cancellation.
type CancelResult struct {
	Success bool
	Message string
}
