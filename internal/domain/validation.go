package domain

import "fmt"

// Issue severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is a single finding reported by catalog validation. Errors make the
// catalog unusable for the flow engine; warnings are cosmetic gaps such as a
// key missing from a secondary locale.
type Issue struct {
	Severity string
	Locale   string
	KeyPath  string
	Message  string
}

func (i Issue) String() string {
	if i.KeyPath == "" {
		return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Locale, i.Message)
	}
	return fmt.Sprintf("[%s] %s %s: %s", i.Severity, i.Locale, i.KeyPath, i.Message)
}
