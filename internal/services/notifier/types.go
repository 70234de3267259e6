package notifier

import "time"

// NotifySessionStartedInput describes a newly created session row
type NotifySessionStartedInput struct {
	// Sheet is the table the row was created in
	Sheet string

	// Row is the 1-based row number
	Row int

	// PlayerName is the name the row is keyed by
	PlayerName string

	// StartedAt is the row creation time
	StartedAt time.Time
}
