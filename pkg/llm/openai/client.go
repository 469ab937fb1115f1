package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/hagrid/pkg/llm"
)

const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-4-0314"
	DefaultTemperature = 0.7
	DefaultTimeout     = 120 * time.Second

	// BootstrapNotice is shown instead of the taxonomy prompt itself.
	BootstrapNotice = "Sending taxonomy configuration request"
)

// Client is a minimal OpenAI chat completions client.
type Client struct {
	APIKey       string
	Organization string
	BaseURL      string
	Model        string
	Temperature  float64
	httpDo       *http.Client
	timeout      time.Duration
	notifier     llm.Notifier
	log          *zap.Logger
}

// Option configures Client behavior.
type Option func(*Client)

// WithHTTPClient replaces the transport used for requests. A nil client
// keeps the default one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpDo = hc
		}
	}
}

// WithTimeout sets the request timeout. It applies to a copy of the HTTP
// client, never to one passed in with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithNotifier sets the collaborator told about each outgoing request.
func WithNotifier(n llm.Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(apiKey, organization, baseURL, model string, temperature float64, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	c := &Client{
		APIKey:       apiKey,
		Organization: organization,
		BaseURL:      baseURL,
		Model:        model,
		Temperature:  temperature,
		httpDo: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpDo
		hc.Timeout = c.timeout
		c.httpDo = &hc
	}
	return c
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message *struct {
		Role    string  `json:"role"`
		Content *string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// Send posts prompt as a single user message and returns the content of
// the first choice. Exactly one HTTP attempt is made. A canceled or expired
// ctx is returned as is, not as a classified *llm.Error.
func (c *Client) Send(ctx context.Context, prompt string, bootstrap bool) (string, error) {
	if c.APIKey == "" {
		return "", &llm.Error{Kind: llm.KindConfiguration, Err: errors.New("OPENAI_API_KEY is not set")}
	}
	if c.Organization == "" {
		return "", &llm.Error{Kind: llm.KindConfiguration, Err: errors.New("OPENAI_API_ORG is not set")}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	reqBody := chatCompletionsRequest{
		Model:       c.Model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: c.Temperature,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", &llm.Error{Kind: llm.KindConfiguration, Err: err}
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", &llm.Error{Kind: llm.KindConfiguration, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	httpReq.Header.Set("OpenAI-Organization", c.Organization)

	if c.notifier != nil {
		if bootstrap {
			c.notifier.Notify(BootstrapNotice)
		} else {
			c.notifier.Notify(prompt)
		}
	}

	start := time.Now()
	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("chat completion: %w", ctxErr)
		}
		c.log.Debug("chat completion transport failure", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", &llm.Error{Kind: llm.KindConnectivity, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("chat completion",
		zap.String("model", c.Model),
		zap.Bool("bootstrap", bootstrap),
		zap.Int("prompt_bytes", len(prompt)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &llm.Error{Kind: llm.KindService, StatusCode: resp.StatusCode, Err: errors.New(string(body))}
	}
	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &llm.Error{Kind: llm.KindService, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(out.Choices) == 0 {
		return "", &llm.Error{Kind: llm.KindService, Err: errors.New("no choices returned by model")}
	}
	first := out.Choices[0]
	if first.Message == nil || first.Message.Content == nil {
		return "", &llm.Error{Kind: llm.KindService, Err: errors.New("choices[0].message.content missing")}
	}
	return *first.Message.Content, nil
}
