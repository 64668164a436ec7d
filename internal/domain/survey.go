package domain

import "time"

// TimeLayout is the second-precision timestamp format stored with every
// survey. Lexicographic order on these strings matches chronological order,
// which the list/search ordering contract relies on.
const TimeLayout = "2006-01-02 15:04:05"

// NowStamp formats the current wall-clock time at second precision.
func NowStamp() string {
	return time.Now().Format(TimeLayout)
}

// Survey is a single customer-satisfaction response. ID is generated once at
// creation and never reused; Timestamp is refreshed on every update.
type Survey struct {
	ID         string
	Timestamp  string
	Name       string
	Email      string
	Phone      string
	Gender     string
	Location   string
	Quality    int
	Timeliness int
	Service    int
	Overall    int
	Comments   string
	Owner      string
	CreatedAt  string
}
