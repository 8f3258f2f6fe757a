package domain

// Time format constants
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	TimeFormat     = "15:04"            // HH:MM
	DateTimeFormat = "2006-01-02 15:04" // service date and time combined
)

// Reference number format: "REF-" + 10 uppercase hex chars
const (
	ReferencePrefix     = "REF-"
	ReferenceRandomSize = 5 // bytes
)

// Placeholders shown for a service request without a resolvable mechanic
const (
	NotAssignedName  = "Not assigned"
	NotAssignedPhone = "-"
)

// Password policy
const (
	MinPasswordLength = 8
)

// Validation codes
const (
	CodeMissingFields    = "missing-fields"
	CodeBadDateTime      = "bad-datetime"
	CodePastDateTime     = "past-datetime"
	CodeMissingSelection = "missing-selection"
	CodeEmailExists      = "email-exists"
	CodePasswordMismatch = "password-mismatch"
	CodeWeakPassword     = "weak-password"
	CodeAlreadyAssigned  = "already-assigned"
	CodeNotAMechanic     = "not-a-mechanic"
)
