package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"NUTRIPLAN_BACK-END/internal/config"
	"NUTRIPLAN_BACK-END/internal/logger"
)

var (
	// ErrNoContent is returned when the model reply carries no text
	ErrNoContent = errors.New("no response generated from the model")

	// ErrNoImage is returned when the model reply carries no inline image part
	ErrNoImage = errors.New("no image was generated in the response")
)

// Error is the single error type this gateway surfaces. It carries the
// original provider message so callers never deal with transport-level types.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("gemini %s: %v", e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Client is the shared gateway to the Gemini generation API. One instance is
// created at startup and reused for the process lifetime.
type Client struct {
	apiKey     string
	baseURL    string
	textModel  string
	imageModel string
	client     *http.Client
}

// NewClient builds the gateway from configuration. A missing API key is a
// fatal configuration error, not a per-request one.
func NewClient(cfg *config.AIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GOOGLE_API_KEY not configured")
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// Wire types for the generateContent call.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

func (c *Client) generateContent(ctx context.Context, model string, reqBody generateRequest) (*generateResponse, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &genResp, nil
}

// text concatenates the text parts of the first candidate
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var out string
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}

// firstInlineData returns the first inline binary payload of the first candidate
func (r *generateResponse) firstInlineData() ([]byte, bool) {
	if len(r.Candidates) == 0 {
		return nil, false
	}
	for _, p := range r.Candidates[0].Content.Parts {
		if p.InlineData != nil {
			data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, false
			}
			return data, true
		}
	}
	return nil, false
}

// GenerateMealPlan wraps the prompt in the fixed meal plan instruction
// template and returns the raw text reply.
func (c *Client) GenerateMealPlan(ctx context.Context, prompt, role string) (string, error) {
	formatted := fmt.Sprintf(mealPlanTemplate, role, prompt)

	resp, err := c.generateContent(ctx, c.textModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: formatted}}}},
	})
	if err != nil {
		logger.Error("meal plan generation failed", "error", err)
		return "", &Error{Op: "generate meal plan", Err: err}
	}
	return resp.text(), nil
}

// AnalyzeFoodImage sends the image alongside the fixed nutrition analysis
// instruction and returns the per-ingredient and total breakdown as text.
func (c *Client) AnalyzeFoodImage(ctx context.Context, image []byte) (string, error) {
	resp, err := c.generateContent(ctx, c.textModel, generateRequest{
		Contents: []content{{Parts: []part{
			{Text: nutritionTemplate},
			{InlineData: &inlineData{
				MIMEType: "image/jpeg",
				Data:     base64.StdEncoding.EncodeToString(image),
			}},
		}}},
	})
	if err != nil {
		logger.Error("food image analysis failed", "error", err)
		return "", &Error{Op: "analyze food image", Err: err}
	}

	text := resp.text()
	if text == "" {
		logger.Error("food image analysis returned no content")
		return "", &Error{Op: "analyze food image", Err: ErrNoContent}
	}
	return text, nil
}

// GenerateImage requests text and image modalities for the prompt and returns
// the first inline binary payload of the reply.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := c.generateContent(ctx, c.imageModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"Text", "Image"},
		},
	})
	if err != nil {
		logger.Error("image generation failed", "error", err)
		return nil, &Error{Op: "generate image", Err: err}
	}

	data, ok := resp.firstInlineData()
	if !ok {
		logger.Error("image generation returned no inline image")
		return nil, &Error{Op: "generate image", Err: ErrNoImage}
	}
	return data, nil
}
