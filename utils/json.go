package utils

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	codeBlockRe  = regexp.MustCompile("```(?:json)?\\s*\\n?([\\s\\S]*?)\\n?```")
	jsonObjectRe = regexp.MustCompile(`\{[\s\S]*\}`)
)

// ParseJSONFromModelReply robustly decodes JSON from a model reply into v.
// Handles raw JSON, fenced code blocks (```json ... ```), and JSON embedded
// in surrounding prose. Anything else is a parse failure, not partial data.
func ParseJSONFromModelReply(content string, v any) error {
	content = strings.TrimSpace(content)

	// Try direct parse first
	if err := json.Unmarshal([]byte(content), v); err == nil {
		return nil
	}

	// Try to find JSON in a markdown code block
	if matches := codeBlockRe.FindStringSubmatch(content); len(matches) > 1 {
		if err := json.Unmarshal([]byte(strings.TrimSpace(matches[1])), v); err == nil {
			return nil
		}
	}

	// Try the outermost { ... }
	if match := jsonObjectRe.FindString(content); match != "" {
		if err := json.Unmarshal([]byte(match), v); err == nil {
			return nil
		}
	}

	return errors.New("unable to parse JSON from model reply")
}
