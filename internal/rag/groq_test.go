package rag

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GroqClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL
	return &GroqClient{
		client: openai.NewClientWithConfig(cfg),
		model:  "test-model",
	}
}

func TestAnswerSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
		assert.Equal(t, "What do you build?", req.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: "Web apps.",
				}},
			},
		})
	})

	answer, err := client.Answer(context.Background(), "What do you build?")
	require.NoError(t, err)
	assert.Equal(t, "Web apps.", answer)
}

func TestAnswerAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"requests"}}`))
	})

	_, err := client.Answer(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestAnswerNoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Answer(context.Background(), "hi")
	assert.Error(t, err)
}

type stubAnswerer struct {
	text string
	err  error
}

func (s stubAnswerer) Answer(ctx context.Context, query string) (string, error) {
	return s.text, s.err
}

func TestAskOutcome(t *testing.T) {
	ctx := context.Background()

	ok := Ask(ctx, stubAnswerer{text: "hello"}, "hi")
	assert.False(t, ok.Failed())
	assert.Equal(t, "hello", ok.Message())

	failed := Ask(ctx, stubAnswerer{err: errors.New("connection refused")}, "hi")
	assert.True(t, failed.Failed())
	assert.Equal(t, "Sorry, I couldn't fetch the answer due to: connection refused", failed.Message())
}
