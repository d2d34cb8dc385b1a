package fedex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tournevent/fedex/pkg/shipper"
)

func TestServiceNameForCode_KnownCodes(t *testing.T) {
	assert.Equal(t, "FedEx Ground", serviceNameForCode("FEDEX_GROUND"))
	assert.Equal(t, "FedEx Priority Overnight", serviceNameForCode("PRIORITY_OVERNIGHT"))
	assert.Equal(t, "FedEx 2 Day Saturday Delivery", serviceNameForCode("FEDEX_2_DAY_SATURDAY_DELIVERY"))
}

func TestServiceNameForCode_FallbackTitleizes(t *testing.T) {
	// Codes outside the table get a generated name; a FEDEX_ prefix must not
	// double up as "FedEx Fedex ...".
	assert.Equal(t, "FedEx Transborder Distribution", serviceNameForCode("TRANSBORDER_DISTRIBUTION"))
	assert.Equal(t, "FedEx Next Day Early Morning", serviceNameForCode("FEDEX_NEXT_DAY_EARLY_MORNING"))
}

func TestTrackingStatus(t *testing.T) {
	assert.Equal(t, shipper.StatusDelivered, trackingStatus("DL"))
	assert.Equal(t, shipper.StatusInTransit, trackingStatus("it"))
	assert.Equal(t, shipper.StatusAtFacility, trackingStatus("AR"))

	// Delay codes all collapse to the exception status.
	for _, code := range []string{"DE", "DY", "EA", "SE"} {
		assert.Equal(t, shipper.StatusException, trackingStatus(code), code)
	}

	assert.Empty(t, trackingStatus("XX"))
	assert.Empty(t, trackingStatus(""))
}

func TestTransitDays(t *testing.T) {
	assert.Equal(t, 1, transitDays("ONE_DAY"))
	assert.Equal(t, 3, transitDays("THREE_DAYS"))
	assert.Equal(t, 18, transitDays("EIGHTEEN_DAYS"))
	assert.Equal(t, 3, transitDays(" THREE_DAYS "))

	assert.Equal(t, 0, transitDays("UNKNOWN"))
	assert.Equal(t, 0, transitDays("NINETEEN_DAYS"))
	assert.Equal(t, 0, transitDays(""))
}
