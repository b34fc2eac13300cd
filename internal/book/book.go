package book

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Book represents a single record from the dataset. Fields that may be
// absent or malformed in the source file are pointers; queries that need
// one of them check for nil instead of failing at load time.
type Book struct {
	ID          string
	Title       string
	Author      string
	Genre       string
	Rating      *float64
	Price       *float64
	InStock     *bool
	Description string

	// Extra holds dataset keys the engine does not interpret. They are
	// carried through re-serialization untouched.
	Extra map[string]json.RawMessage
}

// Known dataset keys. Everything else lands in Extra.
const (
	keyID          = "book_id"
	keyTitle       = "title"
	keyAuthor      = "author"
	keyGenre       = "genre"
	keyRating      = "rating"
	keyPrice       = "price"
	keyInStock     = "in_stock_availability"
	keyDescription = "description"
)

// UnmarshalJSON decodes a record leniently: a field of the wrong type is
// treated as absent rather than failing the whole load. Only a value that
// is not a JSON object at all is an error.
func (b *Book) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.ID = flexString(raw[keyID])
	b.Title = flexString(raw[keyTitle])
	b.Author = flexString(raw[keyAuthor])
	b.Genre = flexString(raw[keyGenre])
	b.Description = flexString(raw[keyDescription])
	b.Rating = flexFloat(raw[keyRating])
	b.Price = flexFloat(raw[keyPrice])
	b.InStock = flexBool(raw[keyInStock])

	for _, k := range []string{keyID, keyTitle, keyAuthor, keyGenre, keyRating, keyPrice, keyInStock, keyDescription} {
		delete(raw, k)
	}
	if len(raw) > 0 {
		b.Extra = raw
	}
	return nil
}

// MarshalJSON re-emits the record in its dataset shape, including the
// pass-through keys.
func (b Book) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 8+len(b.Extra))
	for k, v := range b.Extra {
		out[k] = v
	}
	out[keyID] = b.ID
	out[keyTitle] = b.Title
	if b.Author != "" {
		out[keyAuthor] = b.Author
	}
	if b.Genre != "" {
		out[keyGenre] = b.Genre
	}
	if b.Description != "" {
		out[keyDescription] = b.Description
	}
	if b.Rating != nil {
		out[keyRating] = *b.Rating
	}
	if b.Price != nil {
		out[keyPrice] = *b.Price
	}
	if b.InStock != nil {
		out[keyInStock] = *b.InStock
	}
	return json.Marshal(out)
}

// RatingOrZero returns the rating for ranking purposes, 0.0 when the
// record has none.
func (b Book) RatingOrZero() float64 {
	if b.Rating == nil {
		return 0
	}
	return *b.Rating
}

// flexString accepts a JSON string or number and returns its text form.
// Numeric IDs and string IDs compare equal this way.
func flexString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func flexFloat(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return &f
		}
	}
	return nil
}

func flexBool(raw json.RawMessage) *bool {
	if len(raw) == 0 {
		return nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err == nil {
		return &v
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1", "yes", "y":
			t := true
			return &t
		case "false", "0", "no", "n":
			f := false
			return &f
		}
	}
	return nil
}
