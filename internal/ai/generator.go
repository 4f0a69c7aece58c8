package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// DefaultModelCandidates is the fallback ladder, highest priority first.
var DefaultModelCandidates = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-2.0-flash-exp",
	"gemini-1.5-flash",
	"gemini-pro",
}

// ChatClient is the part of *openai.Client the generator relies on.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// ClientFactory builds a client bound to one credential.
type ClientFactory func(apiKey string) (ChatClient, error)

// NewClientFactory returns a factory producing go-openai clients against
// baseURL. An empty baseURL selects DefaultBaseURL.
func NewClientFactory(baseURL string) ClientFactory {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return func(apiKey string) (ChatClient, error) {
		config := openai.DefaultConfig(apiKey)
		config.BaseURL = baseURL
		return openai.NewClientWithConfig(config), nil
	}
}

// Generator produces mockups through a remote model. It holds no per-request
// state and is safe to share between requests.
type Generator struct {
	newClient ClientFactory
	models    []string
	log       *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithClientFactory replaces how per-credential clients are built.
func WithClientFactory(f ClientFactory) Option {
	return func(g *Generator) { g.newClient = f }
}

// WithModels overrides the fallback ladder. Order is priority.
func WithModels(models []string) Option {
	return func(g *Generator) {
		g.models = append([]string(nil), models...)
	}
}

// WithLogger sets the logger used for attempt and failure reports.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// NewGenerator returns a Generator talking to baseURL with the default ladder.
func NewGenerator(baseURL string, opts ...Option) *Generator {
	g := &Generator{
		newClient: NewClientFactory(baseURL),
		models:    append([]string(nil), DefaultModelCandidates...),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Models returns the configured fallback ladder.
func (g *Generator) Models() []string {
	return append([]string(nil), g.models...)
}
