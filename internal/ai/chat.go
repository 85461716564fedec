package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Default endpoints and models for both hosted providers. Both speak the
// OpenAI chat-completions wire format.
const (
	openAIBaseURL     = "https://api.openai.com/v1"
	openAIModel       = "gpt-4"
	perplexityBaseURL = "https://api.perplexity.ai"
	perplexityModel   = "sonar"
)

// chatClient is an OpenAI-compatible chat-completions client.
type chatClient struct {
	name       string
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewOpenAI creates a provider backed by the OpenAI API.
func NewOpenAI(apiKey string) Provider {
	return newChatClient("openai", openAIBaseURL, openAIModel, apiKey)
}

// NewPerplexity creates a provider backed by the Perplexity API.
func NewPerplexity(apiKey string) Provider {
	return newChatClient("perplexity", perplexityBaseURL, perplexityModel, apiKey)
}

// NewCompatible creates a provider for any OpenAI-compatible endpoint.
func NewCompatible(name, baseURL, model, apiKey string) Provider {
	return newChatClient(name, baseURL, model, apiKey)
}

func newChatClient(name, baseURL, model, apiKey string) *chatClient {
	return &chatClient{
		name:    name,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// LookupBook asks the model for structured book information.
func (c *chatClient) LookupBook(ctx context.Context, title string) (*BookInfo, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(title)},
		},
		MaxTokens:   300,
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", c.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", c.name, resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", c.name, err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrBadAnswer)
	}

	return parseAnswer(chat.Choices[0].Message.Content)
}

// parseAnswer extracts the BookInfo JSON from the model's reply, which
// may wrap the document in a markdown fence despite the prompt.
func parseAnswer(reply string) (*BookInfo, error) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	reply = strings.TrimSpace(reply)

	// Sequence numbers come back as either strings or bare numbers.
	var loose struct {
		Author   string          `json:"author"`
		Title    string          `json:"book_title"`
		Series   string          `json:"book_series_title"`
		Sequence json.RawMessage `json:"book_sequence_number"`
	}
	if err := json.Unmarshal([]byte(reply), &loose); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAnswer, err)
	}

	info := &BookInfo{
		Author: loose.Author,
		Title:  loose.Title,
		Series: loose.Series,
	}
	if len(loose.Sequence) > 0 {
		info.Sequence = strings.Trim(string(loose.Sequence), `"`)
	}
	return info, nil
}
