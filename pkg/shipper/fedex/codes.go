package fedex

import (
	"strings"

	"github.com/tournevent/fedex/pkg/shipper"
)

// Static lookup tables mapping domain values to FedEx wire codes. All maps in
// this file are initialized once and never mutated, so concurrent reads need
// no synchronization.

var serviceTypes = map[string]string{
	"PRIORITY_OVERNIGHT":                       "FedEx Priority Overnight",
	"PRIORITY_OVERNIGHT_SATURDAY_DELIVERY":     "FedEx Priority Overnight Saturday Delivery",
	"FEDEX_2_DAY":                              "FedEx 2 Day",
	"FEDEX_2_DAY_SATURDAY_DELIVERY":            "FedEx 2 Day Saturday Delivery",
	"STANDARD_OVERNIGHT":                       "FedEx Standard Overnight",
	"FIRST_OVERNIGHT":                          "FedEx First Overnight",
	"FIRST_OVERNIGHT_SATURDAY_DELIVERY":        "FedEx First Overnight Saturday Delivery",
	"FEDEX_EXPRESS_SAVER":                      "FedEx Express Saver",
	"FEDEX_1_DAY_FREIGHT":                      "FedEx 1 Day Freight",
	"FEDEX_1_DAY_FREIGHT_SATURDAY_DELIVERY":    "FedEx 1 Day Freight Saturday Delivery",
	"FEDEX_2_DAY_FREIGHT":                      "FedEx 2 Day Freight",
	"FEDEX_2_DAY_FREIGHT_SATURDAY_DELIVERY":    "FedEx 2 Day Freight Saturday Delivery",
	"FEDEX_3_DAY_FREIGHT":                      "FedEx 3 Day Freight",
	"FEDEX_3_DAY_FREIGHT_SATURDAY_DELIVERY":    "FedEx 3 Day Freight Saturday Delivery",
	"INTERNATIONAL_PRIORITY":                   "FedEx International Priority",
	"INTERNATIONAL_PRIORITY_SATURDAY_DELIVERY": "FedEx International Priority Saturday Delivery",
	"INTERNATIONAL_ECONOMY":                    "FedEx International Economy",
	"INTERNATIONAL_FIRST":                      "FedEx International First",
	"INTERNATIONAL_PRIORITY_FREIGHT":           "FedEx International Priority Freight",
	"INTERNATIONAL_ECONOMY_FREIGHT":            "FedEx International Economy Freight",
	"GROUND_HOME_DELIVERY":                     "FedEx Ground Home Delivery",
	"FEDEX_GROUND":                             "FedEx Ground",
	"INTERNATIONAL_GROUND":                     "FedEx International Ground",
	"SMART_POST":                               "FedEx SmartPost",
	"FEDEX_FREIGHT_PRIORITY":                   "FedEx Freight Priority",
	"FEDEX_FREIGHT_ECONOMY":                    "FedEx Freight Economy",
}

var packageTypes = map[shipper.PackageType]string{
	shipper.PackageEnvelope: "FEDEX_ENVELOPE",
	shipper.PackagePak:      "FEDEX_PAK",
	shipper.PackageBox:      "FEDEX_BOX",
	shipper.PackageTube:     "FEDEX_TUBE",
	shipper.Package10KgBox:  "FEDEX_10KG_BOX",
	shipper.Package25KgBox:  "FEDEX_25KG_BOX",
	shipper.PackageYourOwn:  "YOUR_PACKAGING",
}

// The REST endpoints use a reduced pickup-type vocabulary: a regular pickup
// is a dropoff at a FedEx location, everything else a courier request.
var dropoffTypes = map[shipper.DropoffType]string{
	shipper.DropoffRegularPickup:         "DROPOFF_AT_FEDEX_LOCATION",
	shipper.DropoffRequestCourier:        "CONTACT_FEDEX_TO_SCHEDULE",
	shipper.DropoffDropBox:               "CONTACT_FEDEX_TO_SCHEDULE",
	shipper.DropoffBusinessServiceCenter: "CONTACT_FEDEX_TO_SCHEDULE",
	shipper.DropoffStation:               "CONTACT_FEDEX_TO_SCHEDULE",
}

var signatureOptionCodes = map[shipper.SignatureOption]string{
	shipper.SignatureAdult:             "ADULT",    // 21 years plus
	shipper.SignatureDirect:            "DIRECT",   // a person at the delivery address
	shipper.SignatureIndirect:          "INDIRECT", // a person, a neighbor, or a signed note
	shipper.SignatureNoneRequired:      "NO_SIGNATURE_REQUIRED",
	shipper.SignatureDefaultForService: "SERVICE_DEFAULT",
}

var paymentTypes = map[shipper.PaymentType]string{
	shipper.PaymentSender:     "SENDER",
	shipper.PaymentRecipient:  "RECIPIENT",
	shipper.PaymentThirdParty: "THIRDPARTY",
	shipper.PaymentCollect:    "COLLECT",
}

var packageIdentifierTypes = map[shipper.PackageIdentifierType]string{
	shipper.IdentifierTrackingNumber:          "TRACKING_NUMBER_OR_DOORTAG",
	shipper.IdentifierDoorTag:                 "TRACKING_NUMBER_OR_DOORTAG",
	shipper.IdentifierRMA:                     "RMA",
	shipper.IdentifierGroundShipmentID:        "GROUND_SHIPMENT_ID",
	shipper.IdentifierGroundInvoiceNumber:     "GROUND_INVOICE_NUMBER",
	shipper.IdentifierGroundCustomerReference: "GROUND_CUSTOMER_REFERENCE",
	shipper.IdentifierGroundPO:                "GROUND_PO",
	shipper.IdentifierExpressReference:        "EXPRESS_REFERENCE",
	shipper.IdentifierExpressMPSMaster:        "EXPRESS_MPS_MASTER",
	shipper.IdentifierShipperReference:        "SHIPPER_REFERENCE",
}

// transitTimes orders the carrier's categorical transit-time codes; the slice
// index is the business-day count the code stands for.
var transitTimes = []string{
	"UNKNOWN", "ONE_DAY", "TWO_DAYS", "THREE_DAYS", "FOUR_DAYS", "FIVE_DAYS",
	"SIX_DAYS", "SEVEN_DAYS", "EIGHT_DAYS", "NINE_DAYS", "TEN_DAYS",
	"ELEVEN_DAYS", "TWELVE_DAYS", "THIRTEEN_DAYS", "FOURTEEN_DAYS",
	"FIFTEEN_DAYS", "SIXTEEN_DAYS", "SEVENTEEN_DAYS", "EIGHTEEN_DAYS",
}

// trackingStatusCodes maps the carrier's two-letter tracking codes to the
// canonical status. All delay codes are treated as exceptions.
var trackingStatusCodes = map[string]shipper.TrackingStatus{
	"AA": shipper.StatusAtAirport,
	"AD": shipper.StatusAtDelivery,
	"AF": shipper.StatusAtFacility,
	"AR": shipper.StatusAtFacility,
	"AP": shipper.StatusAtPickup,
	"CA": shipper.StatusCanceled,
	"CH": shipper.StatusLocationChanged,
	"DE": shipper.StatusException,
	"DL": shipper.StatusDelivered,
	"DP": shipper.StatusDeparted,
	"DR": shipper.StatusVehicleFurnished,
	"DS": shipper.StatusVehicleDispatched,
	"DY": shipper.StatusException,
	"EA": shipper.StatusException,
	"ED": shipper.StatusEnrouteToDelivery,
	"EO": shipper.StatusEnrouteToOriginAirport,
	"EP": shipper.StatusEnrouteToPickup,
	"FD": shipper.StatusAtDestination,
	"HL": shipper.StatusHeldAtLocation,
	"IT": shipper.StatusInTransit,
	"LO": shipper.StatusLeftOrigin,
	"OC": shipper.StatusOrderCreated,
	"OD": shipper.StatusOutForDelivery,
	"PF": shipper.StatusPlaneInFlight,
	"PL": shipper.StatusPlaneLanded,
	"PU": shipper.StatusPickedUp,
	"RS": shipper.StatusReturnToShipper,
	"SE": shipper.StatusException,
	"SF": shipper.StatusAtSortFacility,
	"SP": shipper.StatusSplit,
	"TR": shipper.StatusTransfer,
}

// trackingStatus resolves a carrier status code case-insensitively. Unknown
// codes map to the empty status, never an error.
func trackingStatus(code string) shipper.TrackingStatus {
	return trackingStatusCodes[strings.ToUpper(code)]
}

// serviceNameForCode formats a human-readable name for a wire service code.
// Codes outside the known table are title-cased so newly introduced services
// still yield a presentable name.
func serviceNameForCode(code string) string {
	if name, ok := serviceTypes[code]; ok {
		return name
	}
	return "FedEx " + strings.TrimPrefix(titleize(code), "Fedex ")
}

// titleize converts an underscore-separated wire code to spaced title case,
// e.g. "FEDEX_GROUND_SATURDAY_DELIVERY" -> "Fedex Ground Saturday Delivery".
func titleize(code string) string {
	words := strings.Split(strings.ToLower(code), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// transitDays resolves a transit-time code to its business-day count. Unknown
// or empty codes resolve to zero.
func transitDays(code string) int {
	for i, t := range transitTimes {
		if t == strings.TrimSpace(code) {
			return i
		}
	}
	return 0
}
