package fedex

import (
	"context"
	"fmt"
	"time"
)

// MockAPIClient is a mock implementation of APIClient for testing. It returns
// raw wire bodies so the full parse path is exercised.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnGetRates       func(ctx context.Context, body []byte) ([]byte, error)
	OnCreateShipment func(ctx context.Context, body []byte) ([]byte, error)
	OnTrack          func(ctx context.Context, body []byte) ([]byte, error)
	OnCancelShipment func(ctx context.Context, body []byte) ([]byte, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// GetRates returns a mock rate reply.
func (m *MockAPIClient) GetRates(ctx context.Context, body []byte) ([]byte, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnGetRates != nil {
		return m.OnGetRates(ctx, body)
	}

	published := time.Now().AddDate(0, 0, 1).Format(zonelessLayout)
	return []byte(fmt.Sprintf(`{
  "output": {
    "rateReplyDetails": [
      {
        "serviceType": "FEDEX_GROUND",
        "commit": {"saturdayDelivery": false},
        "operationalDetail": {"transitTime": "THREE_DAYS", "MaximumTransitTime": "FIVE_DAYS"},
        "ratedShipmentDetails": [{"currency": "USD", "totalNetCharge": 18.45}]
      },
      {
        "serviceType": "PRIORITY_OVERNIGHT",
        "commit": {"saturdayDelivery": false},
        "operationalDetail": {"publishedDeliveryTime": %q},
        "ratedShipmentDetails": [{"currency": "USD", "totalNetCharge": 74.10}]
      }
    ]
  }
}`, published)), nil
}

// CreateShipment returns a mock shipment reply with a label image.
func (m *MockAPIClient) CreateShipment(ctx context.Context, body []byte) ([]byte, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnCreateShipment != nil {
		return m.OnCreateShipment(ctx, body)
	}

	trackingNumber := fmt.Sprintf("%d", 100000000000+time.Now().UnixNano()%900000000000)
	return []byte(fmt.Sprintf(`<ProcessShipmentReply>
  <HighestSeverity>SUCCESS</HighestSeverity>
  <CompletedShipmentDetail>
    <CompletedPackageDetails>
      <TrackingIds>
        <TrackingIdType>FEDEX</TrackingIdType>
        <TrackingNumber>%s</TrackingNumber>
      </TrackingIds>
      <Label>
        <Parts>
          <Image>bW9jayBsYWJlbCBkYXRh</Image>
        </Parts>
      </Label>
    </CompletedPackageDetails>
  </CompletedShipmentDetail>
</ProcessShipmentReply>`, trackingNumber)), nil
}

// Track returns a mock track reply for an in-transit shipment.
func (m *MockAPIClient) Track(ctx context.Context, body []byte) ([]byte, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnTrack != nil {
		return m.OnTrack(ctx, body)
	}

	now := time.Now().UTC()
	return []byte(fmt.Sprintf(`<TrackReply>
  <HighestSeverity>SUCCESS</HighestSeverity>
  <CompletedTrackDetails>
    <TrackDetails>
      <TrackingNumber>123456789012</TrackingNumber>
      <TrackingNumberUniqueIdentifier>2460000000000000000001</TrackingNumberUniqueIdentifier>
      <StatusDetail>
        <Code>IT</Code>
        <Description>In transit</Description>
      </StatusDetail>
      <ShipTimestamp>%s</ShipTimestamp>
      <OriginLocationAddress>
        <City>MEMPHIS</City>
        <StateOrProvinceCode>TN</StateOrProvinceCode>
        <CountryCode>US</CountryCode>
      </OriginLocationAddress>
      <DestinationAddress>
        <City>SEATTLE</City>
        <StateOrProvinceCode>WA</StateOrProvinceCode>
        <CountryCode>US</CountryCode>
      </DestinationAddress>
      <Events>
        <Timestamp>%s</Timestamp>
        <EventDescription>Picked up</EventDescription>
        <EventType>PU</EventType>
        <Address>
          <City>MEMPHIS</City>
          <StateOrProvinceCode>TN</StateOrProvinceCode>
          <CountryCode>US</CountryCode>
        </Address>
      </Events>
      <Events>
        <Timestamp>%s</Timestamp>
        <EventDescription>In transit</EventDescription>
        <EventType>IT</EventType>
        <Address>
          <City>NASHVILLE</City>
          <StateOrProvinceCode>TN</StateOrProvinceCode>
          <CountryCode>US</CountryCode>
        </Address>
      </Events>
    </TrackDetails>
  </CompletedTrackDetails>
</TrackReply>`,
		now.Add(-48*time.Hour).Format(zonelessLayout),
		now.Add(-48*time.Hour).Format(zonelessLayout),
		now.Add(-24*time.Hour).Format(zonelessLayout),
	)), nil
}

// CancelShipment returns a mock successful cancellation reply.
func (m *MockAPIClient) CancelShipment(ctx context.Context, body []byte) ([]byte, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnCancelShipment != nil {
		return m.OnCancelShipment(ctx, body)
	}

	return []byte(`<ShipmentReply>
  <HighestSeverity>SUCCESS</HighestSeverity>
  <Notifications>
    <Severity>SUCCESS</Severity>
    <Source>ship</Source>
    <Code>0000</Code>
    <Message>Success</Message>
  </Notifications>
</ShipmentReply>`), nil
}

var _ APIClient = (*MockAPIClient)(nil)
