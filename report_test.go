package causelist_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/causelist"
)

func TestHTMLReportWriter(t *testing.T) {
	t.Parallel()

	date, err := causelist.ParseListDate("23052025")
	require.NoError(t, err)

	t.Run("renders matches under page headings", func(t *testing.T) {
		t.Parallel()

		rep := &causelist.Report{
			Advocate: "Syed Nurul Arefin",
			Date:     date,
			Side:     causelist.AppellateSide,
			Entries: []causelist.Entry{
				{PageNumber: 3, Lines: []string{"WPA 123 of 2025", "Syed Nurul Arefin"}},
			},
		}

		var buf bytes.Buffer
		require.NoError(t, causelist.NewHTMLReportWriter().WriteReport(&buf, rep))
		html := buf.String()

		assert.Contains(t, html, "In The High Court at Calcutta")
		assert.Contains(t, html, "Appellate Jurisdiction")
		assert.Contains(t, html, "Friday, 23rd of May, 2025")
		assert.Contains(t, html, "Found 1 match(es)")
		assert.Contains(t, html, "<h3>Page 3</h3>")
		assert.Contains(t, html, "WPA 123 of 2025")
	})

	t.Run("escapes document text", func(t *testing.T) {
		t.Parallel()

		rep := &causelist.Report{
			Advocate: "A <script> B",
			Date:     date,
			Side:     causelist.OriginalSide,
			Entries: []causelist.Entry{
				{PageNumber: 1, Lines: []string{"<b>bold</b> & more"}},
			},
		}

		var buf bytes.Buffer
		require.NoError(t, causelist.NewHTMLReportWriter().WriteReport(&buf, rep))
		html := buf.String()

		assert.NotContains(t, html, "<b>bold</b>")
		assert.Contains(t, html, "&lt;b&gt;bold&lt;/b&gt; &amp; more")
	})

	t.Run("reports no matches", func(t *testing.T) {
		t.Parallel()

		rep := &causelist.Report{
			Advocate: "John Doe",
			Date:     date,
			Side:     causelist.OriginalSide,
		}

		var buf bytes.Buffer
		require.NoError(t, causelist.NewHTMLReportWriter().WriteReport(&buf, rep))

		assert.Contains(t, buf.String(), "No matches found for &quot;John Doe&quot;")
		assert.NotContains(t, buf.String(), "Found")
	})
}
