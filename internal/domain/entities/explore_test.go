package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(list []Entry) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.Word)
	}
	return out
}

func candidates(ws ...string) []Entry {
	out := make([]Entry, 0, len(ws))
	for _, w := range ws {
		out = append(out, Entry{Word: w})
	}
	return out
}

func TestExploreSession_Skip(t *testing.T) {
	s := NewExploreSession("id", candidates("a", "b"))

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "a", cur.Word)

	s.Skip()
	cur, _ = s.Current()
	assert.Equal(t, "b", cur.Word)

	s.Skip()
	assert.True(t, s.Exhausted())
	_, ok = s.Current()
	assert.False(t, ok)

	// no wrap-around
	s.Skip()
	assert.True(t, s.Exhausted())
}

func TestExploreSession_Take(t *testing.T) {
	t.Run("next candidate slides under the cursor", func(t *testing.T) {
		s := NewExploreSession("id", candidates("a", "b", "c"))

		got, err := s.Take()
		require.NoError(t, err)
		assert.Equal(t, "a", got.Word)

		cur, _ := s.Current()
		assert.Equal(t, "b", cur.Word)
		assert.Equal(t, []string{"b", "c"}, words(s.Candidates()))
	})

	t.Run("cursor clamps at the end", func(t *testing.T) {
		s := NewExploreSession("id", candidates("a", "b", "c"))
		s.Skip()
		s.Skip()

		got, err := s.Take()
		require.NoError(t, err)
		assert.Equal(t, "c", got.Word)

		cursor, n := s.Position()
		assert.Equal(t, 1, cursor)
		assert.Equal(t, 2, n)
	})

	t.Run("taking the last candidate exhausts", func(t *testing.T) {
		s := NewExploreSession("id", candidates("a"))

		_, err := s.Take()
		require.NoError(t, err)
		assert.True(t, s.Exhausted())

		_, err = s.Take()
		assert.ErrorIs(t, err, ErrExploreExhausted)
	})

	t.Run("empty session starts exhausted", func(t *testing.T) {
		s := NewExploreSession("id", nil)

		assert.True(t, s.Exhausted())
		_, err := s.Take()
		assert.ErrorIs(t, err, ErrExploreExhausted)
	})
}

func TestExploreSession_CandidatesIsACopy(t *testing.T) {
	s := NewExploreSession("id", candidates("a", "b"))

	c := s.Candidates()
	c[0].Word = "changed"

	cur, _ := s.Current()
	assert.Equal(t, "a", cur.Word)
}
