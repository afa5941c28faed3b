package causelist

import (
	"fmt"
	"time"
)

// wireDateLayout is the DDMMYYYY format the court website uses in
// cause-list filenames.
const wireDateLayout = "02012006"

// ListDate is the publication date of a cause list, carried in the court's
// DDMMYYYY wire format.
type ListDate struct {
	t time.Time
}

// ParseListDate parses a DDMMYYYY date string. Returns EINVALID when the
// string is not a real calendar date in that format.
func ParseListDate(s string) (ListDate, error) {
	t, err := time.Parse(wireDateLayout, s)
	if err != nil {
		return ListDate{}, Errorf(EINVALID, "invalid date %q: must be DDMMYYYY (e.g., 23052025)", s)
	}
	return ListDate{t: t}, nil
}

// NewListDate builds a ListDate from a time value, truncated to the day.
func NewListDate(t time.Time) ListDate {
	return ListDate{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// IsZero reports whether the date is unset.
func (d ListDate) IsZero() bool {
	return d.t.IsZero()
}

// String returns the DDMMYYYY wire form.
func (d ListDate) String() string {
	return d.t.Format(wireDateLayout)
}

// Time returns the underlying time value.
func (d ListDate) Time() time.Time {
	return d.t
}

// MarshalText implements encoding.TextMarshaler using the wire form.
func (d ListDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler from the wire form.
func (d *ListDate) UnmarshalText(b []byte) error {
	parsed, err := ParseListDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Header formats the date for report headers, e.g.
// "Friday, 23rd of May, 2025".
func (d ListDate) Header() string {
	day := d.t.Day()
	return fmt.Sprintf("%s, %d%s of %s, %d",
		d.t.Weekday(), day, ordinalSuffix(day), d.t.Month(), d.t.Year())
}

// ordinalSuffix returns the English ordinal suffix for a day of the month.
func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
