// Package gemini is a thin, stateless adapter over the Gemini
// text-generation API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"weatherhub/manager"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-pro"

	// Generation has no natural upper bound on the provider side, so the
	// client enforces one.
	requestTimeout = 30 * time.Second
)

const promptTemplate = `You are a weather analysis expert and travel advisor.

WEATHER DATA:
%s

USER REQUEST:
%s

Provide a detailed, informative, and practical response. Be specific and use the actual data provided.
Make your response engaging and easy to read.
`

func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   defaultModel,
		http:    resty.New().SetTimeout(requestTimeout),
		baseURL: defaultBaseURL,
	}
}

// Client invokes the hosted model. It keeps no state between calls.
type Client struct {
	apiKey  string
	model   string
	http    *resty.Client
	baseURL string
}

// Configured reports whether an API key is present. Callers must stop
// before attempting generation when it is not.
func (c *Client) Configured() bool { return c.apiKey != "" }

// Generate serializes contextData as JSON, embeds it in the instruction
// template together with the prompt, and returns the generated text.
func (c *Client) Generate(ctx context.Context, prompt string, contextData any) (string, error) {
	text := prompt
	if contextData != nil {
		data, err := json.MarshalIndent(contextData, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode context: %w", err)
		}
		text = fmt.Sprintf(promptTemplate, data, prompt)
	}

	return c.call(ctx, []content{{Role: "user", Parts: []part{{Text: text}}}})
}

// Chat sends the full turn history followed by the new message.
func (c *Client) Chat(ctx context.Context, history []manager.Turn, message string) (string, error) {
	contents := make([]content, 0, len(history)+1)
	for _, turn := range history {
		role := "user"
		if turn.Role == manager.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: turn.Content}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	return c.call(ctx, contents)
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *Client) call(ctx context.Context, contents []content) (string, error) {
	if !c.Configured() {
		return "", ErrMissingKey
	}

	request := c.http.R().SetContext(ctx)
	request.SetQueryParam("key", c.apiKey)
	request.SetBody(map[string]any{"contents": contents})

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	response, err := request.Post(url)
	if err != nil {
		return "", Classify(fmt.Errorf("generation request: %w", err))
	}

	if response.StatusCode() != http.StatusOK {
		return "", c.classifyStatus(response)
	}

	var body generateResponse
	if err := json.Unmarshal(response.Body(), &body); err != nil {
		return "", fmt.Errorf("decode generation response: %w", err)
	}

	if body.PromptFeedback.BlockReason != "" {
		return "", &ClassifiedError{
			Kind:    KindContentFiltered,
			Message: fmt.Sprintf("prompt blocked: %s", body.PromptFeedback.BlockReason),
		}
	}
	if len(body.Candidates) == 0 {
		return "", &ClassifiedError{Message: "no candidates returned"}
	}

	candidate := body.Candidates[0]
	if candidate.FinishReason == "SAFETY" {
		return "", &ClassifiedError{
			Kind:    KindContentFiltered,
			Message: "response blocked by safety filter",
		}
	}

	var sb strings.Builder
	for _, p := range candidate.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// classifyStatus prefers the structured provider code and degrades to
// substring matching on the error message.
func (c *Client) classifyStatus(response *resty.Response) *ClassifiedError {
	var body apiError
	message := fmt.Sprintf("status code: %d", response.StatusCode())
	if err := json.Unmarshal(response.Body(), &body); err == nil && body.Error.Message != "" {
		message = body.Error.Message
	}

	kind := KindUnknown
	switch {
	case response.StatusCode() == http.StatusTooManyRequests,
		body.Error.Status == "RESOURCE_EXHAUSTED":
		kind = KindRateLimited
	case strings.Contains(body.Error.Status, "API_KEY"),
		strings.Contains(body.Error.Message, "API_KEY_INVALID"):
		kind = KindInvalidKey
	default:
		kind = classifyMessage(message)
	}

	return &ClassifiedError{Kind: kind, Message: message}
}
