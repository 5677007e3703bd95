package constants

import "time"

// Context keys set by the auth middleware.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 7 * 24 * time.Hour

// DefaultSessionTitle is applied when a session is logged without a title.
const DefaultSessionTitle = "Study Session"

// ISODateFormat is the layout for session dates (no time component).
const ISODateFormat = "2006-01-02"

// SubjectColors is the fixed palette cycled through as a user creates
// subjects: index = count of the user's existing subjects modulo the
// palette size. Freed slots are never reused.
var SubjectColors = []string{
	"#93c5fd",
	"#86efac",
	"#fcd34d",
	"#fca5a5",
	"#c4b5fd",
	"#94a3b8",
}

// Fallbacks for sessions whose subject was deleted after logging.
const (
	UnknownSubjectName  = "Unknown"
	UnknownSubjectColor = "#94a3b8"
)
