// Package ai looks up book metadata through hosted LLM APIs. Used by the
// lookup command to fill in series and sequence data the download tools
// leave blank.
package ai

import (
	"context"
	"errors"
)

// BookInfo is the structured answer a provider returns for a title.
type BookInfo struct {
	Author   string `json:"author"`
	Title    string `json:"book_title"`
	Series   string `json:"book_series_title"`
	Sequence string `json:"book_sequence_number"`
}

// Provider is an LLM backend that can identify a book by title.
type Provider interface {
	LookupBook(ctx context.Context, title string) (*BookInfo, error)
}

// ErrBadAnswer is returned when a provider responds with something that
// is not the requested JSON document.
var ErrBadAnswer = errors.New("provider returned malformed answer")

const systemPrompt = "You are a helpful assistant that returns structured JSON data only, without additional explanations."

func userPrompt(title string) string {
	return "Search for the book \"" + title + "\" and return only JSON with these fields: " +
		"author, book_title, book_sequence_number, book_series_title. " +
		"Do not format the output at all. Simply return the structured JSON data."
}
