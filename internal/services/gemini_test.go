package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGeminiGenerateJSON(t *testing.T) {
	var got GeminiRequestBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.RawQuery)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"advice\":"},{"text":"\"rest\"}"}]}}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("secret", "gemini-test", srv.URL+"/", zap.NewNop())
	schema := &GeminiSchema{Type: "OBJECT", Properties: map[string]*GeminiSchema{"advice": {Type: "STRING"}}}

	raw, err := client.GenerateJSON(context.Background(), []GeminiPart{{Text: "hello"}}, schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{"advice":"rest"}`, string(raw))

	require.Len(t, got.Contents, 1)
	assert.Equal(t, "user", got.Contents[0].Role)
	assert.Equal(t, "hello", got.Contents[0].Parts[0].Text)
	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMIMEType)
	assert.Equal(t, "OBJECT", got.GenerationConfig.ResponseSchema.Type)
}

func TestGeminiErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("bad", "gemini-test", srv.URL, zap.NewNop())
	_, err := client.GenerateJSON(context.Background(), []GeminiPart{{Text: "hello"}}, nil)
	assert.Error(t, err)
}

func TestGeminiEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("k", "gemini-test", srv.URL, zap.NewNop())
	_, err := client.GenerateJSON(context.Background(), []GeminiPart{{Text: "hello"}}, nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiTransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	client := NewGeminiClient("SUPER-SECRET-KEY", "gemini-test", baseURL, zap.NewNop())
	_, err := client.GenerateJSON(context.Background(), []GeminiPart{{Text: "hello"}}, nil)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SUPER-SECRET-KEY")
}
