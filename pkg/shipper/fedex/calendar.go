package fedex

import (
	"time"
)

// The carrier quotes ground transit times in business days under two distinct
// calendars: regular ground excludes Saturdays and Sundays, home delivery
// excludes Sundays and Mondays. Neither is holiday-aware; the carrier does
// not publish holiday calendars with its transit data.

// businessDay reports whether date counts toward a regular ground transit
// time (Mon-Fri).
func businessDay(date time.Time) bool {
	wd := date.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// homeDeliveryBusinessDay reports whether date counts toward a home-delivery
// transit time (Tue-Sat).
func homeDeliveryBusinessDay(date time.Time) bool {
	wd := date.Weekday()
	return wd >= time.Tuesday && wd <= time.Saturday
}

// businessDaysFrom walks forward from date one calendar day at a time until
// `days` qualifying business days have passed, and returns the date reached.
// The walk always advances at least one day before checking the counter, so a
// zero day count still lands on the calendar day after date; this acts as a
// minimum one-day transit floor.
func businessDaysFrom(date time.Time, days int, homeDelivery bool) time.Time {
	future := date
	count := 0

	for {
		future = future.AddDate(0, 0, 1)
		if homeDelivery {
			if homeDeliveryBusinessDay(future) {
				count++
			}
		} else {
			if businessDay(future) {
				count++
			}
		}
		if count >= days {
			return future
		}
	}
}
