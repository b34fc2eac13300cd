package book

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	t.Run("round trip preserves length and order", func(t *testing.T) {
		doc := `{"books":[
			{"book_id":1,"title":"Dune","genre":"Sci-Fi","rating":4.8},
			{"book_id":2,"title":"Dune Messiah","genre":"Sci-Fi","rating":4.2},
			{"book_id":3,"title":"Emma","genre":"Romance","rating":4.0}
		]}`
		c, err := Load(strings.NewReader(doc), zap.NewNop())
		require.NoError(t, err)
		require.Equal(t, 3, c.Len())
		assert.Equal(t, []string{"Dune", "Dune Messiah", "Emma"}, c.Titles())
	})

	t.Run("empty books array is a valid empty collection", func(t *testing.T) {
		c, err := Load(strings.NewReader(`{"books":[]}`), zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("extra top-level keys are ignored", func(t *testing.T) {
		c, err := Load(strings.NewReader(`{"version":2,"books":[{"book_id":1,"title":"X"}]}`), zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("shape errors", func(t *testing.T) {
		tests := []struct {
			name string
			doc  string
		}{
			{"not json", `{"books": [`},
			{"top level is an array", `[{"book_id":1}]`},
			{"top level is a scalar", `42`},
			{"missing books key", `{"items":[]}`},
			{"books is null", `{"books":null}`},
			{"books is not an array", `{"books":{"book_id":1}}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Load(strings.NewReader(tt.doc), zap.NewNop())
				require.Error(t, err)
				var dfe *DataFormatError
				assert.ErrorAs(t, err, &dfe)
			})
		}
	})

	t.Run("nil logger is allowed", func(t *testing.T) {
		_, err := Load(strings.NewReader(`{"books":[]}`), nil)
		assert.NoError(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("reads a dataset from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"books":[{"book_id":1,"title":"Dune"}]}`), 0o644))

		c, err := LoadFile(path, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("missing file carries the path in the error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.json")
		_, err := LoadFile(path, zap.NewNop())
		require.Error(t, err)

		var dfe *DataFormatError
		require.ErrorAs(t, err, &dfe)
		assert.Equal(t, path, dfe.Path)
		assert.Contains(t, err.Error(), path)
	})
}
