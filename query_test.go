package causelist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/causelist"
)

func TestNewQuery(t *testing.T) {
	t.Parallel()

	t.Run("splits and lowercases tokens", func(t *testing.T) {
		t.Parallel()

		q, err := causelist.NewQuery("  Syed   Nurul Arefin ")
		require.NoError(t, err)

		assert.Equal(t, "Syed   Nurul Arefin", q.Name())
		assert.Equal(t, []string{"syed", "nurul", "arefin"}, q.Tokens())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "   ", "\t\n"} {
			_, err := causelist.NewQuery(name)
			require.Error(t, err)
			assert.Equal(t, causelist.EINVALID, causelist.ErrorCode(err))
		}
	})
}

func TestQueryMatching(t *testing.T) {
	t.Parallel()

	q, err := causelist.NewQuery("Syed Nurul Arefin")
	require.NoError(t, err)

	t.Run("any token seeds", func(t *testing.T) {
		t.Parallel()

		assert.True(t, q.MatchesAny("MR. SYED SOMEONE"))
		assert.True(t, q.MatchesAny("for the petitioner: arefin"))
		assert.False(t, q.MatchesAny("John Doe"))
	})

	t.Run("all tokens confirm", func(t *testing.T) {
		t.Parallel()

		assert.True(t, q.MatchesAll("syed nurul arefin appearing"))
		assert.True(t, q.MatchesAll("AREFIN, SYED NURUL"))
		assert.False(t, q.MatchesAll("syed nurul someone"))
	})

	t.Run("tokens match as substrings", func(t *testing.T) {
		t.Parallel()

		// Substring semantics: a token inside a longer word still matches.
		assert.True(t, q.MatchesAny("syedpur"))
	})
}
