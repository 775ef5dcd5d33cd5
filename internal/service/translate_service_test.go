package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shakti_backend/internal/config"
	"shakti_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Hindi", "hi"},
		{"hindi", "hi"},
		{" Tamil ", "ta"},
		{"Bengali", "bn"},
		{"English", "en"},
		{"Klingon", "klingon"}, // unmapped names pass through lower-cased
		{"mr", "mr"},           // codes pass through too
	}
	for _, tc := range tests {
		if got := LanguageCode(tc.name); got != tc.want {
			t.Errorf("LanguageCode(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/get", r.URL.Path)
		require.Equal(t, "Hello sister", r.URL.Query().Get("q"))
		require.Equal(t, "en|hi", r.URL.Query().Get("langpair"))

		w.Write([]byte(`{"responseData":{"translatedText":"नमस्ते बहन"},"responseStatus":200}`))
	}))
	defer server.Close()

	svc := NewTranslateService(config.TranslateConfig{BaseURL: server.URL})

	reply, err := svc.Translate(context.Background(), "Hello sister", "Hindi")
	require.NoError(t, err)
	assert.Equal(t, "नमस्ते बहन", reply.TranslatedText)
	assert.Equal(t, "hi", reply.LanguageCode)
}

func TestTranslate_EmptyTextRejectedBeforeRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewTranslateService(config.TranslateConfig{BaseURL: server.URL})

	_, err := svc.Translate(context.Background(), "  ", "Hindi")
	assert.ErrorIs(t, err, util.ErrEmptyText)
	assert.False(t, called, "empty text must not reach the API")
}

func TestTranslate_EmptyResultIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":"  "},"responseStatus":200}`))
	}))
	defer server.Close()

	svc := NewTranslateService(config.TranslateConfig{BaseURL: server.URL})

	_, err := svc.Translate(context.Background(), "Hello", "Hindi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text")
}

func TestTranslate_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := NewTranslateService(config.TranslateConfig{BaseURL: server.URL})

	_, err := svc.Translate(context.Background(), "Hello", "Hindi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
