package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bookmcp/internal/book"
)

const (
	collectionURI    = "book://collection"
	genresURI        = "book://collection/genres"
	entryURITemplate = "book://collection/{id}"
	genreURITemplate = "book://collection/genres/{genre}"
	collectionMIME   = "application/json"
)

func (h *handlers) registerResources(server *mcp.Server) {
	server.AddResource(&mcp.Resource{
		URI:         collectionURI,
		Name:        "books_resource",
		Description: "The entire book collection",
		MIMEType:    collectionMIME,
	}, h.readCollection)

	server.AddResource(&mcp.Resource{
		URI:         genresURI,
		Name:        "genres_resource",
		Description: "The unique list of genres in the collection",
		MIMEType:    collectionMIME,
	}, h.readGenres)

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: entryURITemplate,
		Name:        "book_resource",
		Description: "Find books by ID (exact) or by title substring",
		MIMEType:    collectionMIME,
	}, h.readEntry)

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: genreURITemplate,
		Name:        "genre_books_resource",
		Description: "All books belonging to the specified genre",
		MIMEType:    collectionMIME,
	}, h.readGenreBooks)
}

func (h *handlers) readCollection(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, h.books)
}

func (h *handlers) readGenres(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, h.books.Genres())
}

func (h *handlers) readEntry(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	id := pathSegment(req.Params.URI, collectionURI)
	match, err := h.books.Match(id)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, match.Books())
}

func (h *handlers) readGenreBooks(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	genre := pathSegment(req.Params.URI, genresURI)
	matches := h.books.ByGenre(genre)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no books in genre %q", book.ErrNotFound, genre)
	}
	return jsonResource(req.Params.URI, matches)
}

// pathSegment extracts the variable part of a templated resource URI,
// percent-decoded. Clients escape spaces and such in URI path segments.
func pathSegment(uri, prefix string) string {
	seg := strings.TrimPrefix(uri, prefix+"/")
	if unescaped, err := url.PathUnescape(seg); err == nil {
		return unescaped
	}
	return seg
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding resource %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: collectionMIME,
			Text:     string(data),
		}},
	}, nil
}
