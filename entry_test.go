package causelist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/causelist"
)

func TestFormatEntries(t *testing.T) {
	t.Parallel()

	t.Run("joins each entry's lines with newlines", func(t *testing.T) {
		t.Parallel()

		entries := []causelist.Entry{
			{PageNumber: 2, Lines: []string{"WPA 123 of 2025", "Syed Nurul Arefin"}},
			{PageNumber: 5, Lines: []string{"CRM 9 of 2025"}},
		}

		out := causelist.FormatEntries(entries)

		assert.Equal(t, []string{
			"WPA 123 of 2025\nSyed Nurul Arefin",
			"CRM 9 of 2025",
		}, out)
	})

	t.Run("returns empty slice for no entries", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, causelist.FormatEntries(nil))
	})
}
