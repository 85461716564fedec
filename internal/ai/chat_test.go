package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBook(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content":
			"{\"author\": \"Jane Q. Writer\", \"book_title\": \"Galactic Drift\", \"book_series_title\": \"Drift Saga\", \"book_sequence_number\": \"2\"}"
		}}]}`))
	}))
	defer server.Close()

	p := NewCompatible("test", server.URL, "test-model", "sk-test")
	info, err := p.LookupBook(context.Background(), "Galactic Drift")
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[1].Content, "Galactic Drift")

	assert.Equal(t, "Jane Q. Writer", info.Author)
	assert.Equal(t, "Galactic Drift", info.Title)
	assert.Equal(t, "Drift Saga", info.Series)
	assert.Equal(t, "2", info.Sequence)
}

func TestLookupBook_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	p := NewCompatible("test", server.URL, "test-model", "bad-key")
	_, err := p.LookupBook(context.Background(), "Galactic Drift")
	assert.Error(t, err)
}

func TestLookupBook_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	p := NewCompatible("test", server.URL, "test-model", "sk-test")
	_, err := p.LookupBook(context.Background(), "Galactic Drift")
	assert.ErrorIs(t, err, ErrBadAnswer)
}

func TestParseAnswer(t *testing.T) {
	info, err := parseAnswer(`{"author": "A", "book_title": "T", "book_series_title": "S", "book_sequence_number": "3"}`)
	require.NoError(t, err)
	assert.Equal(t, &BookInfo{Author: "A", Title: "T", Series: "S", Sequence: "3"}, info)
}

func TestParseAnswer_NumericSequence(t *testing.T) {
	info, err := parseAnswer(`{"author": "A", "book_title": "T", "book_sequence_number": 3}`)
	require.NoError(t, err)
	assert.Equal(t, "3", info.Sequence)
}

func TestParseAnswer_MarkdownFence(t *testing.T) {
	info, err := parseAnswer("```json\n{\"author\": \"A\", \"book_title\": \"T\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "A", info.Author)
	assert.Equal(t, "T", info.Title)
}

func TestParseAnswer_NotJSON(t *testing.T) {
	_, err := parseAnswer("I could not find that book.")
	assert.ErrorIs(t, err, ErrBadAnswer)
}
