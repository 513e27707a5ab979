package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Model output is requested as JSON, but responses still occasionally arrive
// wrapped in markdown fences or with trailing prose. extractJSON tries a few
// strategies before giving up.
func extractJSON(text string) (string, error) {
	strategies := []func(string) (string, bool){
		extractCompleteJSON,
		extractJSONFromCodeBlock,
		extractJSONWithNestedBraces,
	}

	for _, strategy := range strategies {
		if jsonStr, found := strategy(text); found {
			return jsonStr, nil
		}
	}
	return "", fmt.Errorf("no valid JSON found in response")
}

// Strategy 1: Try the entire text as JSON
func extractCompleteJSON(text string) (string, bool) {
	cleaned := strings.TrimSpace(text)
	if json.Valid([]byte(cleaned)) {
		return cleaned, true
	}
	return "", false
}

// Strategy 2: Extract JSON from markdown code blocks
func extractJSONFromCodeBlock(text string) (string, bool) {
	// Match ```json ... ``` or ``` ... ```
	codeBlockRegex := regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	matches := codeBlockRegex.FindStringSubmatch(text)
	if len(matches) > 1 {
		candidate := strings.TrimSpace(matches[1])
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
	}
	return "", false
}

// Strategy 3: Scan for the first balanced object, string-aware
func extractJSONWithNestedBraces(text string) (string, bool) {
	startIdx := strings.Index(text, "{")
	if startIdx == -1 {
		return "", false
	}

	braceCount := 0
	inString := false
	escaped := false

	for i := startIdx; i < len(text); i++ {
		char := text[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if !inString {
			if char == '{' {
				braceCount++
			} else if char == '}' {
				braceCount--
				if braceCount == 0 {
					candidate := text[startIdx : i+1]
					if json.Valid([]byte(candidate)) {
						return candidate, true
					}
				}
			}
		}
	}

	return "", false
}
