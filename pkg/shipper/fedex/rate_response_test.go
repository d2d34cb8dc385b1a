package fedex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/fedex/pkg/shipper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func newTestParser() *Client {
	return &Client{logger: otelzap.New(zap.NewNop())}
}

func TestParseRateResponse(t *testing.T) {
	body := []byte(`{
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
					"operationalDetail": {"publishedDeliveryTime": "2026-01-06T10:30:00"},
					"ratedShipmentDetails": [{"currency": "USD", "totalNetCharge": 74.10}]
				}
			]
		}
	}`)

	resp, err := newTestParser().parseRateResponse(testQuoteRequest(), body)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.Estimates, 2)

	ground := resp.Estimates[0]
	assert.Equal(t, "fedex", ground.Carrier)
	assert.Equal(t, "FEDEX_GROUND", ground.ServiceCode)
	assert.Equal(t, "FedEx Ground", ground.ServiceName)
	assert.Equal(t, 18.45, ground.TotalPrice.Amount)
	assert.Equal(t, "USD", ground.TotalPrice.Currency)
	// Pickup Monday Jan 5; three to five business days out.
	require.NotNil(t, ground.DeliveryMin)
	require.NotNil(t, ground.DeliveryMax)
	assert.Equal(t, date(2026, time.January, 8), *ground.DeliveryMin)
	assert.Equal(t, date(2026, time.January, 12), *ground.DeliveryMax)

	overnight := resp.Estimates[1]
	assert.Equal(t, "PRIORITY_OVERNIGHT", overnight.ServiceCode)
	require.NotNil(t, overnight.DeliveryMin)
	assert.Equal(t, *overnight.DeliveryMin, *overnight.DeliveryMax)
	assert.Equal(t, time.Date(2026, time.January, 6, 10, 30, 0, 0, time.UTC), *overnight.DeliveryMin)
}

func TestParseRateResponse_SaturdayDeliverySuffix(t *testing.T) {
	body := []byte(`{
		"output": {
			"rateReplyDetails": [
				{
					"serviceType": "PRIORITY_OVERNIGHT",
					"commit": {"saturdayDelivery": true},
					"operationalDetail": {},
					"ratedShipmentDetails": [{"currency": "USD", "totalNetCharge": 81.30}]
				}
			]
		}
	}`)

	resp, err := newTestParser().parseRateResponse(testQuoteRequest(), body)
	require.NoError(t, err)
	require.Len(t, resp.Estimates, 1)

	// The suffixed code keeps the Saturday quote distinct from the weekday
	// quote for the same wire service.
	assert.Equal(t, "PRIORITY_OVERNIGHT_SATURDAY_DELIVERY", resp.Estimates[0].ServiceCode)
	assert.Equal(t, "FedEx Priority Overnight Saturday Delivery", resp.Estimates[0].ServiceName)
}

func TestParseRateResponse_DropsIncompleteEntries(t *testing.T) {
	body := []byte(`{
		"output": {
			"rateReplyDetails": [
				{
					"serviceType": "FEDEX_2_DAY",
					"commit": {},
					"operationalDetail": {}
				},
				{
					"serviceType": "FEDEX_GROUND",
					"commit": {},
					"operationalDetail": {"transitTime": "TWO_DAYS"},
					"ratedShipmentDetails": [{"currency": "USD", "totalNetCharge": 18.45}]
				}
			]
		}
	}`)

	resp, err := newTestParser().parseRateResponse(testQuoteRequest(), body)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.Estimates, 1)
	assert.Equal(t, "FEDEX_GROUND", resp.Estimates[0].ServiceCode)
}

func TestParseRateResponse_AllEntriesIncomplete(t *testing.T) {
	body := []byte(`{
		"output": {
			"rateReplyDetails": [
				{"serviceType": "FEDEX_2_DAY"}
			]
		}
	}`)

	resp, err := newTestParser().parseRateResponse(testQuoteRequest(), body)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, msgRatesMissingFields, resp.Message)
	assert.Empty(t, resp.Estimates)
}

func TestParseRateResponse_NoRates(t *testing.T) {
	body := []byte(`{"output": {"rateReplyDetails": []}}`)

	resp, err := newTestParser().parseRateResponse(testQuoteRequest(), body)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, msgNoRatesFound, resp.Message)
}

func TestParseRateResponse_MalformedBody(t *testing.T) {
	_, err := newTestParser().parseRateResponse(testQuoteRequest(), []byte("not json"))
	require.Error(t, err)

	var carrierErr *shipper.CarrierError
	require.ErrorAs(t, err, &carrierErr)
	assert.Equal(t, "RATE_DECODE", carrierErr.Code)
}

func TestParseRateResponse_TransitOnlyForGround(t *testing.T) {
	// Express services report transit codes too, but those are not business
	// calendar based; they must not produce a computed window.
	body := []byte(`{
		"output": {
			"rateReplyDetails": [
				{
					"serviceType": "FEDEX_2_DAY",
					"commit": {},
					"operationalDetail": {"transitTime": "TWO_DAYS"},
					"ratedShipmentDetails": [{"currency": "USD", "totalNetCharge": 30.00}]
				}
			]
		}
	}`)

	resp, err := newTestParser().parseRateResponse(testQuoteRequest(), body)
	require.NoError(t, err)
	require.Len(t, resp.Estimates, 1)
	assert.Nil(t, resp.Estimates[0].DeliveryMin)
	assert.Nil(t, resp.Estimates[0].DeliveryMax)
}

func TestParseRateResponse_HomeDeliveryCalendar(t *testing.T) {
	body := []byte(`{
		"output": {
			"rateReplyDetails": [
				{
					"serviceType": "GROUND_HOME_DELIVERY",
					"commit": {},
					"operationalDetail": {"transitTime": "ONE_DAY", "MaximumTransitTime": "THREE_DAYS"},
					"ratedShipmentDetails": [{"currency": "USD", "totalNetCharge": 14.20}]
				}
			]
		}
	}`)

	quote := testQuoteRequest()
	friday := date(2026, time.January, 2)
	quote.Options.PickupDate = &friday

	resp, err := newTestParser().parseRateResponse(quote, body)
	require.NoError(t, err)
	require.Len(t, resp.Estimates, 1)

	// Home delivery runs Tuesday through Saturday, so the day after a Friday
	// pickup counts. The maximum is only reported for regular ground and is
	// ignored here, collapsing the window.
	est := resp.Estimates[0]
	require.NotNil(t, est.DeliveryMin)
	assert.Equal(t, date(2026, time.January, 3), *est.DeliveryMin)
	assert.Equal(t, *est.DeliveryMin, *est.DeliveryMax)
}
