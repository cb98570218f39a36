package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"ogportal-backend/internal/chat"
)

// Error is the tagged provider failure. Code and Status are filled from the
// upstream error when available; Message is safe to surface to callers while
// Err keeps the full diagnostic chain for server-side logging.
type Error struct {
	Code    any
	Status  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("gemini: %s", e.Message)
	}
	return fmt.Sprintf("gemini: %s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Client calls the Gemini generateContent API. One upstream call per
// Generate invocation, no retries, bounded by the configured timeout.
type Client struct {
	apiKey  string
	model   string
	timeout time.Duration
}

func NewClient(apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{apiKey: apiKey, model: model, timeout: timeout}
}

// Generate sends the assembled conversation to Gemini and returns the
// trimmed generated text. An empty result is returned as-is; classifying it
// is the caller's concern.
func (c *Client) Generate(ctx context.Context, conv chat.Conversation, opts chat.GenOptions) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", wrap("failed to create provider client", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	model.SetTemperature(float32(opts.Temperature))
	model.SetMaxOutputTokens(int32(opts.MaxOutputTokens))

	cs := model.StartChat()
	cs.History = make([]*genai.Content, 0, len(conv.History))
	for _, t := range conv.History {
		cs.History = append(cs.History, &genai.Content{
			Role:  t.Role,
			Parts: []genai.Part{genai.Text(t.Text)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(conv.Current))
	if err != nil {
		log.Printf("[gemini] generate failed: model=%s err=%v", c.model, err)
		return "", wrap("provider request failed", err)
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// wrap builds the tagged error, pulling code and status out of the typed
// upstream error when one is present in the chain.
func wrap(msg string, err error) *Error {
	e := &Error{Message: msg, Err: err}
	var gae *googleapi.Error
	if errors.As(err, &gae) {
		e.Code = gae.Code
		e.Status = http.StatusText(gae.Code)
		if gae.Message != "" {
			e.Message = gae.Message
		}
	}
	return e
}
