package crous

import (
	"time"

	"github.com/kbukum/crousapi/errors"
	"github.com/kbukum/crousapi/validation"
)

// DateLayout is the calendar-date format used by menu dates.
const DateLayout = time.DateOnly

const datePattern = `^\d{4}-\d{2}-\d{2}$`

// MenuDate returns the UTC calendar day of t as YYYY-MM-DD.
func MenuDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ValidateMenuDate reports an INVALID_INPUT error unless date is a real
// calendar day written as YYYY-MM-DD.
func ValidateMenuDate(date string) error {
	v := validation.New().
		Required("date", date).
		Pattern("date", date, datePattern).
		Date("date", date, DateLayout)
	if v.HasErrors() {
		return errors.InvalidInput("date", "Invalid date format").
			WithDetail("value", date).
			WithDetail("fields", v.Errors())
	}
	return nil
}
