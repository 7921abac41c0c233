package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client calls the HuggingFace inference API. Model identifiers are appended
// to BaseURL as path segments, so one client serves every pipeline stage.
type Client struct {
	BaseURL string
	APIKey  string

	HTTPClient *http.Client
}

// generation holds the fields a text-to-text model may answer with.
// Summarization models use summary_text, everything else generated_text.
type generation struct {
	GeneratedText string `json:"generated_text"`
	SummaryText   string `json:"summary_text"`
}

type classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type apiError struct {
	Error string `json:"error"`
}

// Generate posts an {"inputs": ...} payload to a text-to-text model and
// returns the generated (or summary) text.
func (c *Client) Generate(ctx context.Context, model, inputs string) (string, error) {
	body, err := json.Marshal(map[string]string{"inputs": inputs})
	if err != nil {
		return "", err
	}
	raw, err := c.post(ctx, model, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	return parseGeneration(raw)
}

// Classify posts text to a classification model and returns the top label.
func (c *Client) Classify(ctx context.Context, model, inputs string) (string, error) {
	body, err := json.Marshal(map[string]string{"inputs": inputs})
	if err != nil {
		return "", err
	}
	raw, err := c.post(ctx, model, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	return parseClassification(raw)
}

// Caption uploads raw image bytes as a multipart file to an image-to-text
// model and returns the generated caption.
func (c *Client) Caption(ctx context.Context, model string, image []byte, filename string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(image); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}
	raw, err := c.post(ctx, model, writer.FormDataContentType(), &buf)
	if err != nil {
		return "", err
	}
	return parseGeneration(raw)
}

func (c *Client) post(ctx context.Context, model, contentType string, body io.Reader) ([]byte, error) {
	url := c.BaseURL + "/" + model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API responded with status: %d", resp.StatusCode)
	}
	return raw, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}

// parseGeneration accepts either an array of generation objects or a single
// object, as the inference API returns both shapes.
func parseGeneration(raw []byte) (string, error) {
	var many []generation
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		if text := many[0].text(); text != "" {
			return text, nil
		}
	}

	var one generation
	if err := json.Unmarshal(raw, &one); err == nil {
		if text := one.text(); text != "" {
			return text, nil
		}
	}

	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error != "" {
		return "", fmt.Errorf("API error: %s", apiErr.Error)
	}

	return "", fmt.Errorf("no generated text in response")
}

func (g generation) text() string {
	if g.GeneratedText != "" {
		return g.GeneratedText
	}
	return g.SummaryText
}

// parseClassification handles the nested array-of-arrays shape and the flat
// object shape; the first entry is the top-scoring label.
func parseClassification(raw []byte) (string, error) {
	var nested [][]classification
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		if nested[0][0].Label != "" {
			return nested[0][0].Label, nil
		}
	}

	var flat classification
	if err := json.Unmarshal(raw, &flat); err == nil && flat.Label != "" {
		return flat.Label, nil
	}

	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error != "" {
		return "", fmt.Errorf("API error: %s", apiErr.Error)
	}

	return "", fmt.Errorf("no label in response")
}
