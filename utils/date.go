package utils

import "time"

// GetCurrentDateAsString returns today's date as YYYY-MM-DD, used as the
// rollover flag for daily counters.
func GetCurrentDateAsString() string {
	return time.Now().Format("2006-01-02")
}
