package causelist

// Side identifies which half of the High Court published a cause list.
type Side string

// The two sides the court publishes lists for.
const (
	OriginalSide  Side = "Original Side"
	AppellateSide Side = "Appellate Side"
)

// Sides lists all valid sides, in display order.
func Sides() []Side {
	return []Side{OriginalSide, AppellateSide}
}

// ParseSide validates a side string. Returns EINVALID for anything other
// than the two published sides.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case OriginalSide, AppellateSide:
		return Side(s), nil
	}
	return "", Errorf(EINVALID, "invalid side %q: must be %q or %q", s, OriginalSide, AppellateSide)
}

// Code returns the short side code used in cause-list download URLs.
func (s Side) Code() string {
	if s == OriginalSide {
		return "OS"
	}
	return "AS"
}

// FilePrefix returns the filename prefix used in cause-list download URLs.
func (s Side) FilePrefix() string {
	if s == OriginalSide {
		return "clo"
	}
	return "cla"
}

// Jurisdiction returns the display name used in report headers.
func (s Side) Jurisdiction() string {
	if s == OriginalSide {
		return "Original Jurisdiction"
	}
	return "Appellate Jurisdiction"
}
