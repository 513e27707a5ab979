package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const defaultAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"

// GeminiCoach talks to the Gemini generateContent endpoint. BaseURL and
// HTTPClient are overridable so tests can point at a local server.
type GeminiCoach struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewGeminiCoach builds a coach from the environment. An empty GEMINI_API_KEY
// is allowed: the coach then runs in demo mode and serves fixed content.
func NewGeminiCoach() *GeminiCoach {
	return &GeminiCoach{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: defaultAPIURL,
		// Timeout prevents a slow model call from hanging a submission
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// generateContent sends one prompt with a JSON response schema and returns
// the raw model text.
func (c *GeminiCoach) generateContent(prompt string, maxTokens int, schema map[string]interface{}) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	body := map[string]interface{}{
		"systemInstruction": map[string]interface{}{
			"parts": []map[string]string{
				{"text": SystemInstruction},
			},
		},
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":      0.3,
			"maxOutputTokens":  maxTokens,
			"topP":             0.8,
			"responseMimeType": "application/json",
			"responseSchema":   schema,
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", c.BaseURL+"?key="+c.APIKey, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var res map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	return extractTextFromResponse(res)
}

// Extract text from Gemini API response with proper error handling
func extractTextFromResponse(res map[string]interface{}) (string, error) {
	candidates, ok := res["candidates"].([]interface{})
	if !ok || len(candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate, ok := candidates[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid candidate format")
	}

	content, ok := candidate["content"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("no content in candidate")
	}

	parts, ok := content["parts"].([]interface{})
	if !ok || len(parts) == 0 {
		return "", fmt.Errorf("no parts in content")
	}

	part, ok := parts[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid part format")
	}

	text, ok := part["text"].(string)
	if !ok {
		return "", fmt.Errorf("no text in part")
	}

	return text, nil
}
