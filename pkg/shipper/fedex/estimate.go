package fedex

import (
	"time"
)

// deliveryRange derives the estimated delivery window for one quoted service.
//
// A published delivery timestamp from the carrier wins outright and collapses
// the range to a single point. Otherwise the transit-time code pair is
// resolved to day counts (the maximum defaulting to the minimum when absent)
// and advanced through the service's business calendar from the pickup date.
// With neither input the range is open. The result is best effort, not a
// delivery guarantee.
func deliveryRange(transitTime, maxTransitTime, deliveryTimestamp string, homeDelivery bool, pickupDate time.Time) (min, max *time.Time) {
	if deliveryTimestamp != "" {
		if t := parseTimestamp(deliveryTimestamp); t != nil {
			return t, t
		}
	}

	if transitTime == "" {
		return nil, nil
	}

	if maxTransitTime == "" {
		maxTransitTime = transitTime
	}

	minDate := businessDaysFrom(pickupDate, transitDays(transitTime), homeDelivery)
	maxDate := businessDaysFrom(pickupDate, transitDays(maxTransitTime), homeDelivery)
	return &minDate, &maxDate
}

// shipDate resolves the pickup date from an explicit option or from now plus
// the configured turn-around allowance. The result is truncated to midnight;
// the business calendars walk whole days and the delivery range endpoints
// are dates.
func shipDate(pickupDate *time.Time, turnAroundHours int) time.Time {
	d := time.Now().Add(time.Duration(turnAroundHours) * time.Hour)
	if pickupDate != nil {
		d = *pickupDate
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// The carrier encodes a date-only value as a literal midnight timestamp.
const (
	dateOnlyLayout = "2006-01-02T00:00:00"
	zonelessLayout = "2006-01-02T15:04:05"
	dateLayout     = "2006-01-02"
)

// parseTimestamp parses a carrier timestamp. A literal midnight timestamp is
// treated as a date; anything else is parsed as a full instant, with or
// without a zone offset. Returns nil when the value cannot be parsed.
func parseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	if len(s) == len(dateOnlyLayout) && s[10:] == "T00:00:00" {
		if t, err := time.Parse(dateLayout, s[:10]); err == nil {
			return &t
		}
		return nil
	}
	for _, layout := range []string{time.RFC3339, zonelessLayout, dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
