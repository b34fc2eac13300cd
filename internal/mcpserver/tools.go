package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"bookmcp/internal/book"
)

// Tool inputs and outputs. The SDK infers JSON schemas from these.

type getBookDetailInput struct {
	BookID string `json:"book_id" jsonschema:"the ID of the book to fetch"`
}

type searchBooksInput struct {
	Query string `json:"query" jsonschema:"a keyword to search within the book title"`
}

type recommendBookInput struct {
	Genre string `json:"genre" jsonschema:"genre to filter by, e.g. 'Fiction'"`
}

type topBooksInput struct {
	N int `json:"n" jsonschema:"number of books to return, sorted by rating desc"`
}

type titlesOutput struct {
	Titles []string `json:"titles"`
}

type totalOutput struct {
	Total int `json:"total"`
}

type booksOutput struct {
	Books []book.Book `json:"books"`
}

func (h *handlers) registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_books",
		Description: "List the titles of all books",
	}, h.listBooks)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "total_books",
		Description: "Get total number of books",
	}, h.totalBooks)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_book_detail",
		Description: "Get details for a book by ID",
	}, h.getBookDetail)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_books",
		Description: "Search books by title keyword",
	}, h.searchBooks)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recommend_book",
		Description: "Recommend a random book from the requested genre",
	}, h.recommendBook)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "top_books",
		Description: "Get the top N books by rating",
	}, h.topBooks)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "random_book",
		Description: "Get a random book from the collection",
	}, h.randomBook)
}

func (h *handlers) listBooks(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, titlesOutput, error) {
	return nil, titlesOutput{Titles: h.books.Titles()}, nil
}

func (h *handlers) totalBooks(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, totalOutput, error) {
	return nil, totalOutput{Total: h.books.Len()}, nil
}

func (h *handlers) getBookDetail(ctx context.Context, req *mcp.CallToolRequest, in getBookDetailInput) (*mcp.CallToolResult, book.Book, error) {
	b, err := h.books.GetByID(in.BookID)
	if err != nil {
		h.logger.Debug("get_book_detail miss", zap.String("book_id", in.BookID))
		return nil, book.Book{}, err
	}
	return nil, b, nil
}

func (h *handlers) searchBooks(ctx context.Context, req *mcp.CallToolRequest, in searchBooksInput) (*mcp.CallToolResult, booksOutput, error) {
	matches, err := h.books.SearchTitle(in.Query)
	if err != nil {
		return nil, booksOutput{}, err
	}
	return nil, booksOutput{Books: matches}, nil
}

func (h *handlers) recommendBook(ctx context.Context, req *mcp.CallToolRequest, in recommendBookInput) (*mcp.CallToolResult, book.Book, error) {
	b, err := h.books.RecommendGenre(in.Genre, h.rng)
	if err != nil {
		return nil, book.Book{}, err
	}
	return nil, b, nil
}

func (h *handlers) topBooks(ctx context.Context, req *mcp.CallToolRequest, in topBooksInput) (*mcp.CallToolResult, booksOutput, error) {
	top, err := h.books.TopRated(in.N)
	if err != nil {
		return nil, booksOutput{}, err
	}
	return nil, booksOutput{Books: top}, nil
}

func (h *handlers) randomBook(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, book.Book, error) {
	b, err := h.books.Random(h.rng)
	if err != nil {
		return nil, book.Book{}, err
	}
	return nil, b, nil
}
