package book

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookUnmarshal(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		var b Book
		err := json.Unmarshal([]byte(`{
			"book_id": 7,
			"title": "Neuromancer",
			"author": "William Gibson",
			"genre": "Sci-Fi",
			"rating": 4.3,
			"price": 9.75,
			"in_stock_availability": true,
			"description": "Cyberspace."
		}`), &b)
		require.NoError(t, err)

		assert.Equal(t, "7", b.ID, "numeric id normalizes to its text form")
		assert.Equal(t, "Neuromancer", b.Title)
		require.NotNil(t, b.Rating)
		assert.Equal(t, 4.3, *b.Rating)
		require.NotNil(t, b.InStock)
		assert.True(t, *b.InStock)
		assert.Nil(t, b.Extra)
	})

	t.Run("string id and string rating", func(t *testing.T) {
		var b Book
		err := json.Unmarshal([]byte(`{"book_id":"abc-1","title":"X","rating":"4.5"}`), &b)
		require.NoError(t, err)
		assert.Equal(t, "abc-1", b.ID)
		require.NotNil(t, b.Rating)
		assert.Equal(t, 4.5, *b.Rating)
	})

	t.Run("malformed fields become absent, not errors", func(t *testing.T) {
		var b Book
		err := json.Unmarshal([]byte(`{"book_id":1,"title":"X","rating":"not a number","in_stock_availability":{"weird":true}}`), &b)
		require.NoError(t, err)
		assert.Nil(t, b.Rating)
		assert.Nil(t, b.InStock)
		assert.Equal(t, 0.0, b.RatingOrZero())
	})

	t.Run("string availability forms", func(t *testing.T) {
		cases := map[string]bool{
			`"yes"`: true, `"Y"`: true, `"1"`: true, `"true"`: true,
			`"no"`: false, `"0"`: false, `"false"`: false,
		}
		for raw, want := range cases {
			var b Book
			err := json.Unmarshal([]byte(`{"book_id":1,"title":"X","in_stock_availability":`+raw+`}`), &b)
			require.NoError(t, err)
			require.NotNil(t, b.InStock, "raw %s", raw)
			assert.Equal(t, want, *b.InStock, "raw %s", raw)
		}
	})

	t.Run("unknown keys pass through a round trip", func(t *testing.T) {
		var b Book
		err := json.Unmarshal([]byte(`{"book_id":1,"title":"X","isbn":"978-0","tags":["a","b"]}`), &b)
		require.NoError(t, err)
		require.Contains(t, b.Extra, "isbn")
		require.Contains(t, b.Extra, "tags")

		out, err := json.Marshal(b)
		require.NoError(t, err)

		var back map[string]any
		require.NoError(t, json.Unmarshal(out, &back))
		assert.Equal(t, "978-0", back["isbn"])
		assert.Equal(t, []any{"a", "b"}, back["tags"])
		assert.Equal(t, "X", back["title"])
	})

	t.Run("non-object record is an error", func(t *testing.T) {
		var b Book
		assert.Error(t, json.Unmarshal([]byte(`"just a string"`), &b))
	})
}

func TestRatingOrZero(t *testing.T) {
	assert.Equal(t, 0.0, Book{}.RatingOrZero())
	assert.Equal(t, 4.2, Book{Rating: ratingPtr(4.2)}.RatingOrZero())
}
