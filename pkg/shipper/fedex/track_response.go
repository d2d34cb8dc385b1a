package fedex

import (
	"encoding/xml"
	"sort"

	"github.com/tournevent/fedex/pkg/shipper"
)

// Wire response structures for the TrackReply XML document. Optional nodes
// are pointers so a missing node is distinguishable from an empty one.

type trackReply struct {
	XMLName               xml.Name               `xml:"TrackReply"`
	HighestSeverity       string                 `xml:"HighestSeverity"`
	Notifications         []notification         `xml:"Notifications"`
	CompletedTrackDetails []completedTrackDetail `xml:"CompletedTrackDetails"`
}

type completedTrackDetail struct {
	TrackDetails []trackDetail `xml:"TrackDetails"`
}

type trackDetail struct {
	Notification                   *notification      `xml:"Notification"`
	TrackingNumber                 string             `xml:"TrackingNumber"`
	TrackingNumberUniqueIdentifier string             `xml:"TrackingNumberUniqueIdentifier"`
	StatusDetail                   *trackStatusDetail `xml:"StatusDetail"`
	AvailableImages                []string           `xml:"AvailableImages"`
	DeliverySignatureName          string             `xml:"DeliverySignatureName"`
	OriginLocationAddress          *trackAddress      `xml:"OriginLocationAddress"`
	DestinationAddress             *trackAddress      `xml:"DestinationAddress"`
	ActualDeliveryAddress          *trackAddress      `xml:"ActualDeliveryAddress"`
	ShipperAddress                 *trackAddress      `xml:"ShipperAddress"`
	ShipTimestamp                  string             `xml:"ShipTimestamp"`
	EstimatedDeliveryTimestamp     string             `xml:"EstimatedDeliveryTimestamp"`
	ActualDeliveryTimestamp        string             `xml:"ActualDeliveryTimestamp"`
	Events                         []trackEvent       `xml:"Events"`
}

type trackStatusDetail struct {
	Code             string            `xml:"Code"`
	Description      string            `xml:"Description"`
	AncillaryDetails []ancillaryDetail `xml:"AncillaryDetails"`
}

type ancillaryDetail struct {
	Reason            string `xml:"Reason"`
	ReasonDescription string `xml:"ReasonDescription"`
}

type trackAddress struct {
	City                string `xml:"City"`
	StateOrProvinceCode string `xml:"StateOrProvinceCode"`
	PostalCode          string `xml:"PostalCode"`
	CountryCode         string `xml:"CountryCode"`
}

type trackEvent struct {
	Timestamp        string        `xml:"Timestamp"`
	EventDescription string        `xml:"EventDescription"`
	EventType        string        `xml:"EventType"`
	Address          *trackAddress `xml:"Address"`
}

// Carrier severity/code pairs with dedicated handling.
const (
	codeShipmentNotFound = "9040"
	codeTrackingFailure  = "9045"

	statusCodeDelivered = "DL"
	imageSignatureProof = "SIGNATURE_PROOF_OF_DELIVERY"
)

// parseTrackResponse normalizes a track reply. Exactly one track detail must
// match: zero details or an ambiguous match is fatal, as is a carrier-signaled
// error or a detail without status information. Unknown status codes pass
// through with an empty canonical status, missing addresses yield sentinel
// locations, and events are sorted by timestamp since the carrier does not
// guarantee their order.
func parseTrackResponse(body []byte) (*shipper.TrackingResult, error) {
	var reply trackReply
	if err := xml.Unmarshal(body, &reply); err != nil {
		return nil, shipper.NewCarrierError(carrierName, "TRACK_DECODE", "failed to decode tracking response").WithCause(err)
	}

	if !severitySuccess(reply.HighestSeverity) {
		return nil, shipper.NewCarrierError(carrierName, "TRACK_FAILED", firstMessage(reply.Notifications)).
			WithCause(shipper.ErrResponseContent)
	}

	detail, err := singleTrackDetail(reply.CompletedTrackDetails)
	if err != nil {
		return nil, err
	}

	if err := checkTrackNotification(detail.Notification); err != nil {
		return nil, err
	}

	if detail.TrackingNumber == "" {
		return nil, shipper.NewCarrierError(carrierName, "TRACK_NO_NUMBER", "tracking response does not contain a tracking number").
			WithCause(shipper.ErrResponseContent)
	}
	if detail.StatusDetail == nil {
		return nil, shipper.ErrNoStatusInformation
	}
	statusCode := detail.StatusDetail.Code
	if statusCode == "" {
		return nil, shipper.ErrNoStatusCode
	}

	result := &shipper.TrackingResult{
		Success:           true,
		TrackingNumber:    detail.TrackingNumber,
		Status:            trackingStatus(statusCode),
		StatusCode:        statusCode,
		StatusDescription: statusDescription(detail.StatusDetail),
		ShipTime:          parseTimestamp(detail.ShipTimestamp),
		ScheduledDelivery: parseTimestamp(detail.EstimatedDeliveryTimestamp),
		ActualDelivery:    parseTimestamp(detail.ActualDeliveryTimestamp),
		Origin:            extractAddress(detail.OriginLocationAddress),
		Destination:       extractAddress(firstAddress(detail.DestinationAddress, detail.ActualDeliveryAddress)),
		ShipperAddress:    extractAddress(detail.ShipperAddress),
		Events:            extractEvents(detail.Events),
	}

	if statusCode == statusCodeDelivered && hasSignatureProof(detail.AvailableImages) {
		result.DeliverySignature = detail.DeliverySignatureName
	}

	return result, nil
}

// singleTrackDetail enforces the exactly-one-match rule. An ambiguous reply
// lists all candidate unique identifiers so the caller can disambiguate.
func singleTrackDetail(completed []completedTrackDetail) (*trackDetail, error) {
	var details []trackDetail
	for _, c := range completed {
		details = append(details, c.TrackDetails...)
	}

	switch len(details) {
	case 1:
		return &details[0], nil
	case 0:
		return nil, shipper.ErrNoTrackingDetails
	default:
		identifiers := make([]string, 0, len(details))
		for _, d := range details {
			identifiers = append(identifiers, d.TrackingNumberUniqueIdentifier)
		}
		return nil, &shipper.AmbiguousTrackingError{Identifiers: identifiers}
	}
}

// checkTrackNotification maps the detail's first notification severity/code
// pair to a typed error. FAILURE codes other than the known one fall through
// to normal parsing; the carrier uses them for conditions the reply still
// describes.
func checkTrackNotification(n *notification) error {
	if n == nil {
		return nil
	}
	switch n.Severity {
	case "ERROR":
		if n.Code == codeShipmentNotFound {
			return shipper.NewCarrierError(carrierName, n.Code, n.Message).WithCause(shipper.ErrShipmentNotFound)
		}
		return shipper.NewCarrierError(carrierName, n.Code, n.Message).WithCause(shipper.ErrResponseContent)
	case "FAILURE":
		if n.Code == codeTrackingFailure {
			return shipper.NewCarrierError(carrierName, n.Code, n.Message).WithCause(shipper.ErrResponseContent)
		}
	}
	return nil
}

// statusDescription prefers an ancillary reason description over the plain
// status description.
func statusDescription(detail *trackStatusDetail) string {
	for _, a := range detail.AncillaryDetails {
		if a.ReasonDescription != "" {
			return a.ReasonDescription
		}
	}
	return detail.Description
}

func firstAddress(candidates ...*trackAddress) *trackAddress {
	for _, a := range candidates {
		if a != nil {
			return a
		}
	}
	return nil
}

// extractAddress converts an address node to a Location. A missing node or
// country code yields the unknown-country sentinel rather than omitting the
// field.
func extractAddress(node *trackAddress) *shipper.Location {
	loc := &shipper.Location{CountryCode: shipper.CountryUnknown}
	if node == nil {
		return loc
	}
	if node.CountryCode != "" {
		loc.CountryCode = node.CountryCode
	}
	loc.City = node.City
	loc.ProvinceCode = node.StateOrProvinceCode
	loc.PostalCode = node.PostalCode
	return loc
}

// extractEvents collects scan events, skipping those without an addressable
// location, and returns them sorted ascending by timestamp.
func extractEvents(events []trackEvent) []shipper.ShipmentEvent {
	result := make([]shipper.ShipmentEvent, 0, len(events))
	for _, e := range events {
		if e.Address == nil || e.Address.CountryCode == "" {
			continue
		}
		t := parseTimestamp(e.Timestamp)
		if t == nil {
			continue
		}
		result = append(result, shipper.ShipmentEvent{
			Description: e.EventDescription,
			Time:        t.UTC(),
			Location: shipper.Location{
				City:         e.Address.City,
				ProvinceCode: e.Address.StateOrProvinceCode,
				PostalCode:   e.Address.PostalCode,
				CountryCode:  e.Address.CountryCode,
			},
			TypeCode: e.EventType,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Time.Before(result[j].Time)
	})
	return result
}

func hasSignatureProof(images []string) bool {
	for _, img := range images {
		if img == imageSignatureProof {
			return true
		}
	}
	return false
}
