package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NUTRIPLAN_BACK-END/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(&config.AIConfig{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		TextModel:  "text-model",
		ImageModel: "image-model",
		Timeout:    5 * time.Second,
	})
	require.NoError(t, err)
	return c
}

func textReply(parts ...string) generateResponse {
	var ct content
	for _, p := range parts {
		ct.Parts = append(ct.Parts, part{Text: p})
	}
	return generateResponse{Candidates: []candidate{{Content: ct}}}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(&config.AIConfig{})
	require.Error(t, err)
}

func TestGenerateMealPlan(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(textReply("Day 1:\n", "Meal 1:\nRecipe Name: Pasta"))
	})

	got, err := c.GenerateMealPlan(context.Background(), "Generate a meal plan with Thai cuisines", "meal planner")
	require.NoError(t, err)

	assert.Equal(t, "Day 1:\nMeal 1:\nRecipe Name: Pasta", got)
	assert.Equal(t, "/models/text-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	require.Len(t, gotReq.Contents, 1)
	require.Len(t, gotReq.Contents[0].Parts, 1)
	sent := gotReq.Contents[0].Parts[0].Text
	assert.Contains(t, sent, "You are a [meal planner].")
	assert.Contains(t, sent, "[Generate a meal plan with Thai cuisines]")
}

func TestGenerateMealPlanProviderError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	})

	_, err := c.GenerateMealPlan(context.Background(), "prompt", "meal planner")
	require.Error(t, err)

	var aiErr *Error
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, "generate meal plan", aiErr.Op)
	assert.Contains(t, err.Error(), "429")
}

func TestAnalyzeFoodImage(t *testing.T) {
	image := []byte{0xff, 0xd8, 0xff}
	var gotReq generateRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(textReply("Total Calories: 640 kcal"))
	})

	got, err := c.AnalyzeFoodImage(context.Background(), image)
	require.NoError(t, err)
	assert.Equal(t, "Total Calories: 640 kcal", got)

	require.Len(t, gotReq.Contents, 1)
	require.Len(t, gotReq.Contents[0].Parts, 2)
	inline := gotReq.Contents[0].Parts[1].InlineData
	require.NotNil(t, inline)
	assert.Equal(t, "image/jpeg", inline.MIMEType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(image), inline.Data)
}

func TestAnalyzeFoodImageNoContent(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{})
	})

	_, err := c.AnalyzeFoodImage(context.Background(), []byte{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoContent))
}

func TestGenerateImage(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	var gotPath string
	var gotReq generateRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(generateResponse{Candidates: []candidate{{
			Content: content{Parts: []part{
				{Text: "here is your image"},
				{InlineData: &inlineData{
					MIMEType: "image/png",
					Data:     base64.StdEncoding.EncodeToString(raw),
				}},
			}},
		}}})
	})

	got, err := c.GenerateImage(context.Background(), "a plated meal")
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	assert.Equal(t, "/models/image-model:generateContent", gotPath)
	require.NotNil(t, gotReq.GenerationConfig)
	assert.Equal(t, []string{"Text", "Image"}, gotReq.GenerationConfig.ResponseModalities)
}

func TestGenerateImageNoInlineData(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(textReply("sorry, text only"))
	})

	_, err := c.GenerateImage(context.Background(), "a plated meal")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoImage))
}
