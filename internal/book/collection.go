package book

import (
	"fmt"
	"sort"
	"strings"
)

// Collection is the ordered, immutable snapshot of the dataset. It is
// built once by the loader and shared by all concurrent readers; no
// operation mutates it.
type Collection []Book

// Titles returns every title in collection order.
func (c Collection) Titles() []string {
	titles := make([]string, len(c))
	for i, b := range c {
		titles[i] = b.Title
	}
	return titles
}

// Len returns the number of records.
func (c Collection) Len() int { return len(c) }

// GetByID returns the first record whose ID matches. IDs are compared as
// case-insensitive strings, so numeric and string forms of the same ID
// are equal.
func (c Collection) GetByID(id string) (Book, error) {
	want := strings.ToLower(id)
	for _, b := range c {
		if strings.ToLower(b.ID) == want {
			return b, nil
		}
	}
	return Book{}, fmt.Errorf("%w: no book with id %q", ErrNotFound, id)
}

// SearchTitle returns every record whose title contains the keyword,
// case-insensitively, in collection order. A blank keyword is rejected
// rather than matching everything.
func (c Collection) SearchTitle(keyword string) ([]Book, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("%w: search keyword is empty", ErrInvalidArgument)
	}
	want := strings.ToLower(keyword)
	var out []Book
	for _, b := range c {
		if strings.Contains(strings.ToLower(b.Title), want) {
			out = append(out, b)
		}
	}
	return out, nil
}

// ByGenre returns every record in the genre, in collection order. Genre
// comparison is a case-insensitive exact match. An empty result is not
// an error.
func (c Collection) ByGenre(genre string) []Book {
	want := strings.ToLower(genre)
	var out []Book
	for _, b := range c {
		if strings.ToLower(b.Genre) == want {
			out = append(out, b)
		}
	}
	return out
}

// RecommendGenre picks one record uniformly at random from the genre.
func (c Collection) RecommendGenre(genre string, rng Rand) (Book, error) {
	candidates := c.ByGenre(genre)
	if len(candidates) == 0 {
		return Book{}, fmt.Errorf("%w: no books in genre %q", ErrNotFound, genre)
	}
	return candidates[rng.Intn(len(candidates))], nil
}

// TopRated returns up to n records ordered by rating descending. Records
// without a rating rank as 0. The sort is stable, so ties keep their
// collection order. A collection shorter than n yields a short result.
func (c Collection) TopRated(n int) ([]Book, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", ErrInvalidArgument, n)
	}
	ranked := make([]Book, len(c))
	copy(ranked, c)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RatingOrZero() > ranked[j].RatingOrZero()
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Random picks one record uniformly at random from the whole collection.
func (c Collection) Random(rng Rand) (Book, error) {
	if len(c) == 0 {
		return Book{}, fmt.Errorf("%w: cannot pick a random book", ErrEmptyCollection)
	}
	return c[rng.Intn(len(c))], nil
}

// Genres returns the deduplicated genre values, sorted ascending.
func (c Collection) Genres() []string {
	seen := make(map[string]struct{}, len(c))
	var out []string
	for _, b := range c {
		if _, ok := seen[b.Genre]; ok {
			continue
		}
		seen[b.Genre] = struct{}{}
		out = append(out, b.Genre)
	}
	sort.Strings(out)
	return out
}

// MatchResult is the outcome of the combined ID-or-title lookup. Exactly
// one of the fields is set: Exact when the query matched an ID, Partial
// when it matched one or more titles by substring.
type MatchResult struct {
	Exact   *Book
	Partial []Book
}

// Books flattens the result into a slice regardless of the match path.
func (m MatchResult) Books() []Book {
	if m.Exact != nil {
		return []Book{*m.Exact}
	}
	return m.Partial
}

// Match resolves a query that may be a record ID or a fragment of a
// title. The ID path is tried first; only when no ID matches does the
// lookup fall back to a title substring search. A blank query is
// rejected: it would exact-match records whose ID is absent.
func (c Collection) Match(query string) (MatchResult, error) {
	if strings.TrimSpace(query) == "" {
		return MatchResult{}, fmt.Errorf("%w: match query is empty", ErrInvalidArgument)
	}
	if b, err := c.GetByID(query); err == nil {
		return MatchResult{Exact: &b}, nil
	}
	want := strings.ToLower(query)
	var partial []Book
	for _, b := range c {
		if strings.Contains(strings.ToLower(b.Title), want) {
			partial = append(partial, b)
		}
	}
	if len(partial) == 0 {
		return MatchResult{}, fmt.Errorf("%w: nothing matches %q", ErrNotFound, query)
	}
	return MatchResult{Partial: partial}, nil
}
