package fedex

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tournevent/fedex/pkg/shipper"
	"go.uber.org/zap"
)

// Wire response structures for the JSON rate reply. Optional blocks are
// pointers so a missing block is distinguishable from an empty one.

type rateReply struct {
	Output rateOutput `json:"output"`
}

type rateOutput struct {
	RateReplyDetails []rateReplyDetail `json:"rateReplyDetails"`
}

type rateReplyDetail struct {
	ServiceType          string                 `json:"serviceType"`
	Commit               *rateCommit            `json:"commit"`
	OperationalDetail    *rateOperationalDetail `json:"operationalDetail"`
	RatedShipmentDetails []ratedShipmentDetail  `json:"ratedShipmentDetails"`
}

type rateCommit struct {
	SaturdayDelivery bool `json:"saturdayDelivery"`
}

type rateOperationalDetail struct {
	TransitTime           string `json:"transitTime"`
	MaximumTransitTime    string `json:"MaximumTransitTime"`
	PublishedDeliveryTime string `json:"publishedDeliveryTime"`
}

type ratedShipmentDetail struct {
	Currency       string  `json:"currency"`
	TotalNetCharge float64 `json:"totalNetCharge"`
}

// Messages for collapsed rate results.
const (
	msgRatesMissingFields = "The response from the carrier contained errors and could not be treated"
	msgNoRatesFound       = "No shipping rates could be found for the destination address"
)

// Service codes that report ground transit times.
const (
	serviceGround       = "FEDEX_GROUND"
	serviceHomeDelivery = "GROUND_HOME_DELIVERY"
	saturdaySuffix      = "_SATURDAY_DELIVERY"
)

// parseRateResponse normalizes a rate reply into one RateEstimate per usable
// rated-shipment entry. Entries missing required fields are dropped rather
// than failing the whole quote; a diagnostic is logged and, when no entries
// survive, the response carries success=false with a message distinguishing a
// malformed reply from an empty one.
func (c *Client) parseRateResponse(req *shipper.QuoteRequest, body []byte) (*shipper.QuoteResponse, error) {
	var reply rateReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, shipper.NewCarrierError(carrierName, "RATE_DECODE", "failed to decode rate response").WithCause(err)
	}

	pickupDate := shipDate(req.Options.PickupDate, req.Options.TurnAroundHours)

	missingField := false
	estimates := make([]shipper.RateEstimate, 0, len(reply.Output.RateReplyDetails))
	for _, detail := range reply.Output.RateReplyDetails {
		estimate, err := parseRatedShipment(req, detail, pickupDate)
		if err != nil {
			missingField = true
			continue
		}
		estimates = append(estimates, *estimate)
	}

	if missingField {
		c.logger.Warn("Some fields were missing in the rate response",
			zap.String("carrier", carrierName),
			zap.Int("dropped", len(reply.Output.RateReplyDetails)-len(estimates)),
		)
	}

	resp := &shipper.QuoteResponse{Success: true, Estimates: estimates}
	if len(estimates) == 0 {
		resp.Success = false
		if missingField {
			resp.Message = msgRatesMissingFields
		} else {
			resp.Message = msgNoRatesFound
		}
	}
	return resp, nil
}

// parseRatedShipment normalizes one rated-shipment entry. A missing required
// block yields an error so the caller can drop the entry in isolation.
func parseRatedShipment(req *shipper.QuoteRequest, detail rateReplyDetail, pickupDate time.Time) (*shipper.RateEstimate, error) {
	if detail.ServiceType == "" {
		return nil, fmt.Errorf("rated shipment missing serviceType")
	}
	if detail.Commit == nil {
		return nil, fmt.Errorf("rated shipment %s missing commit", detail.ServiceType)
	}
	if detail.OperationalDetail == nil {
		return nil, fmt.Errorf("rated shipment %s missing operationalDetail", detail.ServiceType)
	}
	if len(detail.RatedShipmentDetails) == 0 {
		return nil, fmt.Errorf("rated shipment %s missing ratedShipmentDetails", detail.ServiceType)
	}

	serviceCode := detail.ServiceType
	if detail.Commit.SaturdayDelivery {
		// Saturday delivery shares the wire service code; the suffix keeps the
		// two quote identities distinct in results.
		serviceCode += saturdaySuffix
	}

	// Only ground services report transit-time codes; the maximum is reported
	// for regular ground only.
	var transitTime, maxTransitTime string
	if detail.ServiceType == serviceGround || detail.ServiceType == serviceHomeDelivery {
		transitTime = detail.OperationalDetail.TransitTime
	}
	if detail.ServiceType == serviceGround {
		maxTransitTime = detail.OperationalDetail.MaximumTransitTime
	}

	deliveryMin, deliveryMax := deliveryRange(
		transitTime,
		maxTransitTime,
		detail.OperationalDetail.PublishedDeliveryTime,
		detail.ServiceType == serviceHomeDelivery,
		pickupDate,
	)

	priced := detail.RatedShipmentDetails[0]

	return &shipper.RateEstimate{
		Origin:      req.Origin,
		Destination: req.Destination,
		Carrier:     carrierName,
		ServiceName: serviceNameForCode(serviceCode),
		ServiceCode: serviceCode,
		TotalPrice: shipper.Money{
			Amount:   priced.TotalNetCharge,
			Currency: priced.Currency,
		},
		Packages:    req.Packages,
		DeliveryMin: deliveryMin,
		DeliveryMax: deliveryMax,
	}, nil
}
