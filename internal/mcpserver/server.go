// Package mcpserver exposes the book collection over the Model Context
// Protocol: seven tools, four resources, and two prompts. It is a thin
// translation layer; all query semantics live in internal/book.
package mcpserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"bookmcp/internal/book"
)

const (
	serverName    = "book-mcp-server"
	serverVersion = "1.0.0"
)

// Options configures the server beyond the collection itself.
type Options struct {
	// Rand overrides the randomness source for the recommendation and
	// random-pick tools. Nil means the process-global source.
	Rand book.Rand

	// Logger for request-level diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// handlers bundles the collection with its collaborators so every tool,
// resource, and prompt closure reads the same immutable snapshot.
type handlers struct {
	books  book.Collection
	rng    book.Rand
	logger *zap.Logger
}

// New builds the MCP server for a loaded collection.
func New(books book.Collection, opts *Options) *mcp.Server {
	if opts == nil {
		opts = &Options{}
	}
	h := &handlers{
		books:  books,
		rng:    opts.Rand,
		logger: opts.Logger,
	}
	if h.rng == nil {
		h.rng = book.DefaultRand
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	h.registerTools(server)
	h.registerResources(server)
	h.registerPrompts(server)
	return server
}
