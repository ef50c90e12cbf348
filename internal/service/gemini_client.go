package service

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

	"inquirykit/pkg/config"
	"inquirykit/pkg/metrics"
)

// ErrNoAPIKey means narrative generation is not configured at all; handlers
// turn it into a client error rather than a server failure.
var ErrNoAPIKey = errors.New("gemini api key not configured")

// UpstreamError carries the status and message the generation endpoint
// returned, so a quota or auth failure reads as itself and not as a
// generic 500.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation service error: %d %s", e.StatusCode, e.Message)
}

type GeminiClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiClient(cfg config.GeminiConfig) *GeminiClient {
	return &GeminiClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Configured reports whether an API key is present.
func (c *GeminiClient) Configured() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends one prompt and returns the first candidate's text.
func (c *GeminiClient) Generate(ctx context.Context, intent, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNoAPIKey
	}

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.4,
			MaxOutputTokens: 2048,
		},
	}

	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		metrics.RecordNarrativeCallLatency(intent, "error", latency)
		return "", fmt.Errorf("failed to call generation service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordNarrativeCallLatency(intent, "error", latency)
		return "", err
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		metrics.RecordNarrativeCallLatency(intent, "error", latency)
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		status := fmt.Sprintf("%d", resp.StatusCode)
		metrics.RecordNarrativeCallLatency(intent, status, latency)
		msg := http.StatusText(resp.StatusCode)
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	metrics.RecordNarrativeCallLatency(intent, "success", latency)

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generation response contained no text")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
