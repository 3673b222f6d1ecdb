package auth

import "time"

// LogCap is how many auth-log entries are retained; the oldest are dropped
// first once the cap is reached.
const LogCap = 500

// LogEntry records one login attempt, successful or not.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	Success   bool      `json:"success"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
}
