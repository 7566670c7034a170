package ingestor

import (
	"strings"
	"time"
)

// DefaultTimeInterval is the DataDog lookback used when TIME_INTERVAL is unset
// or unknown.
const DefaultTimeInterval = "FIFTEEN_MINUTES"

type interval string
type intervalOptions []interval

func (option interval) Match(input string) bool {
	return strings.ToUpper(input) == string(option)
}

func (options intervalOptions) Includes(input string) bool {
	for _, i := range options {
		if i.Match(input) {
			return true
		}
	}
	return false
}

// Nothing past a week: standard DataDog log retention is fifteen days and a
// triage run only cares about what is failing now.
var lookbacks = []struct {
	name     interval
	duration time.Duration
}{
	{"FIVE_MINUTES", 5 * time.Minute},
	{"FIFTEEN_MINUTES", 15 * time.Minute},
	{"THIRTY_MINUTES", 30 * time.Minute},
	{"ONE_HOUR", time.Hour},
	{"SIX_HOURS", 6 * time.Hour},
	{"ONE_DAY", 24 * time.Hour},
	{"ONE_WEEK", 7 * 24 * time.Hour},
}

var ValidTimeIntervals = func() intervalOptions {
	opts := make(intervalOptions, len(lookbacks))
	for i, l := range lookbacks {
		opts[i] = l.name
	}
	return opts
}()

// Lookback resolves a TIME_INTERVAL name, case-insensitively.
func Lookback(name string) (time.Duration, bool) {
	for _, l := range lookbacks {
		if l.name.Match(name) {
			return l.duration, true
		}
	}
	return 0, false
}

// Window returns the query range [now-d, now].
func Window(d time.Duration, now time.Time) (from, to time.Time) {
	return now.Add(-d), now
}
