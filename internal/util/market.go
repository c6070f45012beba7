// Package util holds calendar helpers for US market hours.
package util

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// closeHour and closeMinute are when end-of-day prices are published, New York time
const (
	closeHour   = 16
	closeMinute = 30
)

// MarketLocation returns the America/New_York zone, or UTC if the zone database is missing
func MarketLocation() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		log.Errorf("Failed to load location 'America/New_York': %v. Falling back to UTC.", err)
		return time.UTC
	}
	return loc
}

// NextPriceUpdate returns when the backend next publishes an end-of-day price:
// 4:30 PM New York time on the next weekday at or after now, in UTC.
// Exchange holidays are not accounted for.
func NextPriceUpdate(now time.Time) time.Time {
	loc := MarketLocation()
	local := now.In(loc)

	next := time.Date(local.Year(), local.Month(), local.Day(), closeHour, closeMinute, 0, 0, loc)
	if local.After(next) {
		next = next.AddDate(0, 0, 1)
	}
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next.UTC()
}

// DaysUntil counts days from today in New York to date, which is a calendar
// date: only its year, month and day are read. It is negative once date has passed.
func DaysUntil(now, date time.Time) int {
	today := now.In(MarketLocation())
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
