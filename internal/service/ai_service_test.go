package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"shakti_backend/internal/config"
	"shakti_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat(t *testing.T) {
	var gotReq ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Hello, I am Shakti Didi!"}},
			},
		})
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "test-model"})

	reply, err := svc.Chat(context.Background(), "How do I open a bank account?", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello, I am Shakti Didi!", reply)

	// system persona first, user prompt last
	require.NotEmpty(t, gotReq.Messages)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[len(gotReq.Messages)-1].Role)
	assert.Equal(t, "test-model", gotReq.Model)
}

func TestChat_HistoryBetweenPersonaAndPrompt(t *testing.T) {
	var gotReq ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL})
	history := []AIChatMessage{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}

	_, err := svc.Chat(context.Background(), "next question", history)
	require.NoError(t, err)
	require.Len(t, gotReq.Messages, 4)
	assert.Equal(t, "hi", gotReq.Messages[1].Content)
	assert.Equal(t, "hello", gotReq.Messages[2].Content)
}

func TestChat_EmptyPromptRejectedBeforeRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL})

	_, err := svc.Chat(context.Background(), "   ", nil)
	assert.ErrorIs(t, err, util.ErrEmptyPrompt)
	assert.False(t, called, "empty prompt must not reach the API")
}

func TestChat_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL})

	_, err := svc.Chat(context.Background(), "hello", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestChatStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		chunks := []string{"Hello", ", ", "didi!"}
		for _, c := range chunks {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", c)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL})

	stream, errChan := svc.ChatStream(context.Background(), "hi", nil)
	var got string
	for chunk := range stream {
		got += chunk
	}
	require.NoError(t, <-errChan)
	assert.Equal(t, "Hello, didi!", got)
}

func TestChatStream_EmptyPrompt(t *testing.T) {
	svc := NewAIService(config.AIConfig{BaseURL: "http://unused"})

	stream, errChan := svc.ChatStream(context.Background(), "", nil)
	for range stream {
		t.Fatal("no content expected for an empty prompt")
	}
	assert.ErrorIs(t, <-errChan, util.ErrEmptyPrompt)
}
