package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/pandodao/tokenizer-go"
	gogpt "github.com/sashabaranov/go-openai"

	"healthbot/config"
	"healthbot/services/ai"
	"healthbot/utils"
)

// Anti-ban guards: at most maxConcurrentRequests in flight and no more than
// one request per minRequestInterval across the whole process.
const (
	maxConcurrentRequests = 3
	minRequestInterval    = 10 * time.Second
)

// apiClient is the subset of the OpenAI SDK the wrapper relies on, kept as
// an interface so tests can substitute a double.
type apiClient interface {
	CreateChatCompletion(ctx context.Context, req gogpt.ChatCompletionRequest) (gogpt.ChatCompletionResponse, error)
}

// Client wraps the OpenAI SDK client with the proxy-aware HTTP client and
// process-wide request pacing.
type Client struct {
	api        apiClient
	httpClient *http.Client
	model      string

	sem         chan struct{}
	minInterval time.Duration

	mu          sync.Mutex
	lastRequest time.Time
}

// NewClient builds the OpenAI client from the service configuration.
// A malformed proxy URL fails initialization outright rather than falling
// back to a direct connection.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil || cfg.OpenaiApiKey == "" {
		return nil, errors.New("openai: api key is not configured")
	}

	proxy, err := config.ResolveProxy(cfg.HttpProxy)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	timeout := time.Duration(cfg.OpenAIHttpClientTimeOut) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	httpClient := NewHTTPClient(proxy, timeout)

	sdkConfig := gogpt.DefaultConfig(cfg.OpenaiApiKey)
	sdkConfig.HTTPClient = httpClient
	if cfg.OpenaiApiUrl != "" {
		sdkConfig.BaseURL = cfg.OpenaiApiUrl
	}

	return &Client{
		api:         gogpt.NewClientWithConfig(sdkConfig),
		httpClient:  httpClient,
		model:       cfg.OpenaiModel,
		sem:         make(chan struct{}, maxConcurrentRequests),
		minInterval: minRequestInterval,
	}, nil
}

// newClientWithAPI is used by tests.
func newClientWithAPI(api apiClient, minInterval time.Duration) *Client {
	return &Client{
		api:         api,
		sem:         make(chan struct{}, maxConcurrentRequests),
		minInterval: minInterval,
	}
}

// CreateChatCompletion sends a chat completion request, honoring the pacing
// guards. Requests are spaced by minInterval and capped at
// maxConcurrentRequests in flight; waiting respects ctx cancellation.
func (c *Client) CreateChatCompletion(ctx context.Context, req gogpt.ChatCompletionRequest) (gogpt.ChatCompletionResponse, error) {
	if err := c.waitForRateLimit(ctx); err != nil {
		return gogpt.ChatCompletionResponse{}, err
	}

	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return gogpt.ChatCompletionResponse{}, ctx.Err()
	}
	defer func() { <-c.sem }()

	if utils.DebugEnabled() {
		// Token counting runs a JS tokenizer, so only pay for it in debug.
		utils.Debugf("openai: sending chat completion, model=%s, prompt tokens ~%d", req.Model, estimatePromptTokens(req))
	}

	return c.api.CreateChatCompletion(ctx, req)
}

// Chat implements ai.Provider.
func (c *Client) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	reqMessages := make([]gogpt.ChatCompletionMessage, 0, len(messages))
	for i := range messages {
		if err := messages[i].Validate(); err != nil {
			return "", err
		}
		reqMessages = append(reqMessages, gogpt.ChatCompletionMessage{
			Role:    messages[i].Role,
			Content: messages[i].Content,
		})
	}

	resp, err := c.CreateChatCompletion(ctx, gogpt.ChatCompletionRequest{
		Model:    c.model,
		Messages: reqMessages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() error {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}

// waitForRateLimit reserves the next send slot and sleeps until it opens.
func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.minInterval <= 0 {
		return nil
	}

	c.mu.Lock()
	now := time.Now()
	next := c.lastRequest.Add(c.minInterval)
	if next.Before(now) {
		next = now
	}
	c.lastRequest = next
	c.mu.Unlock()

	wait := time.Until(next)
	if wait <= 0 {
		return nil
	}

	utils.Debugf("openai: rate limit, waiting %.2fs", wait.Seconds())

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// estimatePromptTokens counts the text tokens of a request for logging.
func estimatePromptTokens(req gogpt.ChatCompletionRequest) int {
	total := 0
	for i := range req.Messages {
		if req.Messages[i].Content != "" {
			total += tokenizer.MustCalToken(req.Messages[i].Content)
			continue
		}
		for _, part := range req.Messages[i].MultiContent {
			if part.Type == gogpt.ChatMessagePartTypeText {
				total += tokenizer.MustCalToken(part.Text)
			}
		}
	}
	return total
}
