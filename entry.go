package causelist

import "strings"

// Entry is one matched cause-list row: the page it was found on and its
// reconstructed lines in left-to-right reading order.
type Entry struct {
	PageNumber int      `json:"pageNumber"`
	Lines      []string `json:"lines"`
}

// Text returns the entry's lines joined with newlines, the display form
// used by the API.
func (e Entry) Text() string {
	return strings.Join(e.Lines, "\n")
}

// FormatEntries formats entries for API output: one multi-line string per
// entry.
func FormatEntries(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Text())
	}
	return out
}
