package causelist

import "strings"

// Query is an advocate name prepared for matching: the name's words,
// lowercased. Matching is two-phase: any single token marks a fragment as a
// candidate (names are frequently split across adjacent table cells), but a
// reconstructed row must contain every token before it counts as a match.
type Query struct {
	name   string
	tokens []string
}

// NewQuery builds a query from an advocate's name. Returns EINVALID when the
// name contains no tokens; a blank query must never match everything.
func NewQuery(name string) (Query, error) {
	tokens := strings.Fields(strings.ToLower(name))
	if len(tokens) == 0 {
		return Query{}, Errorf(EINVALID, "advocate name required")
	}
	return Query{name: strings.TrimSpace(name), tokens: tokens}, nil
}

// Name returns the advocate name the query was built from.
func (q Query) Name() string {
	return q.name
}

// Tokens returns a copy of the query's tokens.
func (q Query) Tokens() []string {
	return append([]string(nil), q.tokens...)
}

// MatchesAny reports whether any query token occurs in the text,
// case-insensitively. This is the seeding test.
func (q Query) MatchesAny(text string) bool {
	lower := strings.ToLower(text)
	for _, tok := range q.tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// MatchesAll reports whether every query token occurs in the text,
// case-insensitively. This is the confirmation test applied to a whole
// reconstructed row.
func (q Query) MatchesAll(text string) bool {
	lower := strings.ToLower(text)
	for _, tok := range q.tokens {
		if !strings.Contains(lower, tok) {
			return false
		}
	}
	return true
}
