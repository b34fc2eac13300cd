package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"bookmcp/internal/prompt"
)

func (h *handlers) registerPrompts(server *mcp.Server) {
	server.AddPrompt(&mcp.Prompt{
		Name:        "Test_prompt",
		Description: "Test prompt",
		Arguments: []*mcp.PromptArgument{
			{Name: "book_id", Description: "Book ID or title", Required: true},
		},
	}, h.testPrompt)

	server.AddPrompt(&mcp.Prompt{
		Name:        "summarize_book_prompt",
		Description: "Summarize book details for a user-friendly response",
		Arguments: []*mcp.PromptArgument{
			{Name: "book_id", Description: "Book ID or title", Required: true},
		},
	}, h.summarizeBookPrompt)
}

func (h *handlers) testPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return promptText(prompt.Test(req.Params.Arguments["book_id"])), nil
}

// summarizeBookPrompt resolves the identifier as an ID or title fragment
// and summarizes the first match. Misses and bad records come back as
// explanatory prompt text, never as a protocol error.
func (h *handlers) summarizeBookPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	id := req.Params.Arguments["book_id"]

	match, err := h.books.Match(id)
	if err != nil {
		return promptText(fmt.Sprintf("No book found with ID or title: %s", id)), nil
	}

	summary, err := prompt.Summarize(match.Books()[0])
	if err != nil {
		h.logger.Warn("summarize prompt failed", zap.String("book_id", id), zap.Error(err))
		return promptText(fmt.Sprintf("Error processing book: %v", err)), nil
	}
	return promptText(summary), nil
}

func promptText(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: text}},
		},
	}
}
