package fedex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	got := parseTimestamp("2026-01-08T14:30:00")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, time.January, 8, 14, 30, 0, 0, time.UTC), *got)

	got = parseTimestamp("2026-01-08T14:30:00-05:00")
	require.NotNil(t, got)
	assert.Equal(t, 14, got.Hour())

	got = parseTimestamp("2026-01-08")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC), *got)

	assert.Nil(t, parseTimestamp(""))
	assert.Nil(t, parseTimestamp("not a timestamp"))
}

func TestParseTimestamp_MidnightIsDateOnly(t *testing.T) {
	// The carrier encodes date-only values as literal midnight timestamps;
	// those must come back as plain dates, not instants at midnight in some
	// other convention.
	got := parseTimestamp("2026-01-09T00:00:00")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC), *got)
}

func TestDeliveryRange_PublishedTimestampWins(t *testing.T) {
	pickup := date(2026, time.January, 5)

	min, max := deliveryRange("THREE_DAYS", "FIVE_DAYS", "2026-01-07T10:30:00", false, pickup)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, *min, *max)
	assert.Equal(t, time.Date(2026, time.January, 7, 10, 30, 0, 0, time.UTC), *min)
}

func TestDeliveryRange_TransitCodes(t *testing.T) {
	monday := date(2026, time.January, 5)

	min, max := deliveryRange("THREE_DAYS", "FIVE_DAYS", "", false, monday)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, date(2026, time.January, 8), *min)  // Thursday
	assert.Equal(t, date(2026, time.January, 12), *max) // skips the weekend
}

func TestDeliveryRange_MaxDefaultsToMin(t *testing.T) {
	monday := date(2026, time.January, 5)

	min, max := deliveryRange("TWO_DAYS", "", "", false, monday)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, *min, *max)
}

func TestDeliveryRange_NoData(t *testing.T) {
	min, max := deliveryRange("", "", "", false, date(2026, time.January, 5))
	assert.Nil(t, min)
	assert.Nil(t, max)
}

func TestDeliveryRange_UnparseablePublishedFallsBack(t *testing.T) {
	monday := date(2026, time.January, 5)

	min, max := deliveryRange("TWO_DAYS", "", "garbage", false, monday)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, date(2026, time.January, 7), *min)
}

func TestShipDate(t *testing.T) {
	explicit := date(2026, time.March, 1)
	assert.Equal(t, explicit, shipDate(&explicit, 48))

	// Without an explicit pickup the turn-around allowance shifts now.
	got := shipDate(nil, 24)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), got, 24*time.Hour)
}

func TestShipDate_TurnAroundTruncatesToDate(t *testing.T) {
	got := shipDate(nil, 24)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 0, got.Second())
	assert.Equal(t, 0, got.Nanosecond())
}

func TestShipDate_ExplicitPickupTruncatesToDate(t *testing.T) {
	pickup := time.Date(2026, time.March, 2, 14, 30, 45, 0, time.UTC)
	assert.Equal(t, date(2026, time.March, 2), shipDate(&pickup, 0))
}

func TestDeliveryRange_TurnAroundEndpointsAreDates(t *testing.T) {
	pickup := shipDate(nil, 24)
	min, max := deliveryRange("THREE_DAYS", "FIVE_DAYS", "", false, pickup)

	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 0, min.Hour())
	assert.Equal(t, 0, min.Minute())
	assert.Equal(t, 0, max.Hour())
	assert.Equal(t, 0, max.Minute())
}
