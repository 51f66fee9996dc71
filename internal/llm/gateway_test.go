package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylogistic00-crypto/skydev-sub002/internal/config"
)

type stubProvider struct {
	name    string
	content string
	err     error
	calls   int
	lastReq ChatRequest
}

func (s *stubProvider) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &ChatResponse{Provider: s.name, Model: req.Model, Content: s.content}, nil
}

func (s *stubProvider) Name() string     { return s.name }
func (s *stubProvider) Models() []string { return []string{s.name + "-model"} }

func newTestGateway(primary, fallback *stubProvider) *gateway {
	g := &gateway{
		providers:       map[string]Provider{primary.name: primary},
		defaultProvider: primary.name,
	}
	if fallback != nil {
		g.providers[fallback.name] = fallback
		g.fallbackProvider = fallback.name
		g.fallbackModel = fallback.name + "-model"
	}
	return g
}

func TestChatUsesDefaultProvider(t *testing.T) {
	primary := &stubProvider{name: "openai", content: "ok"}
	g := newTestGateway(primary, nil)

	resp, err := g.Chat(context.Background(), ChatRequest{Model: "gpt-4o-mini"})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, 1, primary.calls)
}

func TestChatFallsBackOnPrimaryFailure(t *testing.T) {
	primary := &stubProvider{name: "openai", err: errors.New("rate limited")}
	fallback := &stubProvider{name: "anthropic", content: "rescued"}
	g := newTestGateway(primary, fallback)

	resp, err := g.Chat(context.Background(), ChatRequest{Model: "gpt-4o-mini"})

	require.NoError(t, err)
	assert.Equal(t, "rescued", resp.Content)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
	// The fallback provider gets its own model, not the primary's.
	assert.Equal(t, "anthropic-model", fallback.lastReq.Model)
}

func TestChatNoFallbackConfigured(t *testing.T) {
	primary := &stubProvider{name: "openai", err: errors.New("down")}
	g := newTestGateway(primary, nil)

	_, err := g.Chat(context.Background(), ChatRequest{Model: "gpt-4o-mini"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "down")
}

func TestChatBothProvidersFail(t *testing.T) {
	primary := &stubProvider{name: "openai", err: errors.New("down")}
	fallback := &stubProvider{name: "anthropic", err: errors.New("also down")}
	g := newTestGateway(primary, fallback)

	_, err := g.Chat(context.Background(), ChatRequest{Model: "gpt-4o-mini"})

	require.Error(t, err)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestChatRetriesBeforeGivingUp(t *testing.T) {
	primary := &stubProvider{name: "openai", err: errors.New("flaky")}
	g := newTestGateway(primary, nil)
	g.maxRetries = 2

	_, err := g.Chat(context.Background(), ChatRequest{Model: "gpt-4o-mini"})

	require.Error(t, err)
	assert.Equal(t, 3, primary.calls)
}

func TestChatExplicitProviderOverride(t *testing.T) {
	primary := &stubProvider{name: "openai", content: "primary"}
	other := &stubProvider{name: "anthropic", content: "explicit"}
	g := newTestGateway(primary, other)

	resp, err := g.Chat(context.Background(), ChatRequest{Provider: "anthropic", Model: "claude-3-haiku-20240307"})

	require.NoError(t, err)
	assert.Equal(t, "explicit", resp.Content)
	assert.Equal(t, 0, primary.calls)
}

func TestProviderUnknownName(t *testing.T) {
	g := NewGateway(config.LLMConfig{})

	_, err := g.Provider("missing")

	assert.Error(t, err)
}

func TestListModelsSorted(t *testing.T) {
	primary := &stubProvider{name: "openai"}
	fallback := &stubProvider{name: "anthropic"}
	g := newTestGateway(primary, fallback)

	models := g.ListModels()

	require.Len(t, models, 2)
	assert.Equal(t, "anthropic", models[0].Provider)
	assert.Equal(t, "openai", models[1].Provider)
}
