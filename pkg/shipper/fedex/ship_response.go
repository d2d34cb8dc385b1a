package fedex

import (
	"encoding/base64"
	"encoding/xml"

	"github.com/tournevent/fedex/pkg/shipper"
)

// Wire response structures for the ProcessShipmentReply XML document.

type processShipmentReply struct {
	XMLName                 xml.Name                `xml:"ProcessShipmentReply"`
	HighestSeverity         string                  `xml:"HighestSeverity"`
	Notifications           []notification          `xml:"Notifications"`
	CompletedShipmentDetail completedShipmentDetail `xml:"CompletedShipmentDetail"`
}

type completedShipmentDetail struct {
	CompletedPackageDetails []completedPackageDetail `xml:"CompletedPackageDetails"`
	ShipmentDocuments       []shipmentDocument       `xml:"ShipmentDocuments"`
}

type completedPackageDetail struct {
	TrackingIDs []trackingID  `xml:"TrackingIds"`
	Label       *packageLabel `xml:"Label"`
}

type trackingID struct {
	TrackingIDType string `xml:"TrackingIdType"`
	TrackingNumber string `xml:"TrackingNumber"`
}

type packageLabel struct {
	Parts []documentPart `xml:"Parts"`
}

type shipmentDocument struct {
	Type  string         `xml:"Type"`
	Parts []documentPart `xml:"Parts"`
}

type documentPart struct {
	Image string `xml:"Image"`
}

const docTypeCommercialInvoice = "COMMERCIAL_INVOICE"

// parseShipResponse normalizes a shipment reply. On success it extracts the
// last tracking number among completed packages (the canonical number for the
// shipment), decodes the label image, and picks up a commercial-invoice
// document when customs paperwork was produced; its absence is not an error.
// On carrier-signaled failure the result carries success=false and the
// carrier message; the caller inspects the flag.
func parseShipResponse(body []byte) (*shipper.LabelResult, error) {
	var reply processShipmentReply
	if err := xml.Unmarshal(body, &reply); err != nil {
		return nil, shipper.NewCarrierError(carrierName, "SHIP_DECODE", "failed to decode shipment response").WithCause(err)
	}

	result := &shipper.LabelResult{
		Success: severitySuccess(reply.HighestSeverity),
		Message: firstMessage(reply.Notifications),
	}
	if !result.Success {
		return result, nil
	}

	detail := reply.CompletedShipmentDetail
	for _, pkg := range detail.CompletedPackageDetails {
		for _, id := range pkg.TrackingIDs {
			if id.TrackingNumber != "" {
				result.TrackingNumber = id.TrackingNumber
			}
		}
	}

	if label := firstLabelImage(detail.CompletedPackageDetails); label != "" {
		decoded, err := base64.StdEncoding.DecodeString(label)
		if err != nil {
			return nil, shipper.NewCarrierError(carrierName, "LABEL_DECODE", "failed to decode label image").WithCause(err)
		}
		result.Label = decoded
	}

	for _, doc := range detail.ShipmentDocuments {
		if doc.Type != docTypeCommercialInvoice {
			continue
		}
		for _, part := range doc.Parts {
			if part.Image == "" {
				continue
			}
			decoded, err := base64.StdEncoding.DecodeString(part.Image)
			if err != nil {
				return nil, shipper.NewCarrierError(carrierName, "INVOICE_DECODE", "failed to decode commercial invoice").WithCause(err)
			}
			result.CommercialInvoice = decoded
		}
	}

	return result, nil
}

func firstLabelImage(packages []completedPackageDetail) string {
	for _, pkg := range packages {
		if pkg.Label == nil {
			continue
		}
		for _, part := range pkg.Label.Parts {
			if part.Image != "" {
				return part.Image
			}
		}
	}
	return ""
}

// Wire response structure for the ShipmentReply XML document returned by
// delete-shipment.

type shipmentReply struct {
	XMLName         xml.Name       `xml:"ShipmentReply"`
	HighestSeverity string         `xml:"HighestSeverity"`
	Notifications   []notification `xml:"Notifications"`
}

// parseCancelResponse normalizes a delete-shipment reply. A carrier-signaled
// failure surfaces as a typed error carrying the carrier message.
func parseCancelResponse(body []byte) (*shipper.CancelResult, error) {
	var reply shipmentReply
	if err := xml.Unmarshal(body, &reply); err != nil {
		return nil, shipper.NewCarrierError(carrierName, "CANCEL_DECODE", "failed to decode cancellation response").WithCause(err)
	}

	message := firstMessage(reply.Notifications)
	if !severitySuccess(reply.HighestSeverity) {
		return nil, shipper.NewCarrierError(carrierName, "CANCEL_FAILED", message).WithCause(shipper.ErrCancellationFailed)
	}

	return &shipper.CancelResult{Success: true, Message: message}, nil
}
