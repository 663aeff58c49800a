package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ErrEmptyResponse = errors.New("AI returned an empty or invalid response")

// --- Gemini request structures ---

// GeminiInlineData carries base64 media such as a prescription photo.
type GeminiInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// GeminiPart is one piece of a message: text or inline media.
type GeminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *GeminiInlineData `json:"inlineData,omitempty"`
}

type GeminiContent struct {
	Role  string       `json:"role"`
	Parts []GeminiPart `json:"parts"`
}

// GeminiSchema is the subset of the OpenAPI schema Gemini accepts for
// structured output.
type GeminiSchema struct {
	Type        string                   `json:"type"`
	Description string                   `json:"description,omitempty"`
	Properties  map[string]*GeminiSchema `json:"properties,omitempty"`
	Required    []string                 `json:"required,omitempty"`
}

type GeminiGenerationConfig struct {
	ResponseMIMEType string        `json:"responseMimeType,omitempty"`
	ResponseSchema   *GeminiSchema `json:"responseSchema,omitempty"`
}

type GeminiRequestBody struct {
	Contents         []GeminiContent         `json:"contents"`
	GenerationConfig *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

// --- Gemini response structures ---

type GeminiResponseCandidate struct {
	Content struct {
		Parts []GeminiPart `json:"parts"`
		Role  string       `json:"role"`
	} `json:"content"`
}

type GeminiResponseBody struct {
	Candidates []GeminiResponseCandidate `json:"candidates"`
}

// GeminiClient calls the generateContent endpoint of the Gemini REST API.
type GeminiClient struct {
	APIKey  string
	Model   string
	BaseURL string
	HTTP    *http.Client
	Logger  *zap.Logger
}

func NewGeminiClient(apiKey, model, baseURL string, logger *zap.Logger) *GeminiClient {
	return &GeminiClient{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 60 * time.Second},
		Logger:  logger,
	}
}

// GenerateJSON sends a single user turn and asks the model to answer with
// JSON matching schema. It returns the raw JSON text of the first candidate.
func (g *GeminiClient) GenerateJSON(ctx context.Context, parts []GeminiPart, schema *GeminiSchema) ([]byte, error) {
	requestBody := GeminiRequestBody{
		Contents: []GeminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: &GeminiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.BaseURL, g.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	// The key goes in a header; URLs end up in transport errors.
	httpReq.Header.Set("x-goog-api-key", g.APIKey)

	httpResp, err := g.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send gemini request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read gemini response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		g.Logger.Warn("gemini returned an error",
			zap.Int("status", httpResp.StatusCode),
			zap.ByteString("body", respBody))
		return nil, fmt.Errorf("gemini returned status %d", httpResp.StatusCode)
	}

	var geminiResp GeminiResponseBody
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 {
		return nil, ErrEmptyResponse
	}
	var text strings.Builder
	for _, p := range geminiResp.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	if strings.TrimSpace(text.String()) == "" {
		return nil, ErrEmptyResponse
	}
	return []byte(text.String()), nil
}
