package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ZaguanLabs/isoglot"
	"github.com/sashabaranov/go-openai"
)

// OpenAIOracle implements Oracle using OpenAI's API.
type OpenAIOracle struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI oracle.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key (uses OPENAI_API_KEY env var if empty)
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.2)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIOracle creates a new OpenAI oracle.
func NewOpenAIOracle(cfg OpenAIConfig) *OpenAIOracle {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	return &OpenAIOracle{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Suggest proposes glossary translations for the requested token keys.
func (o *OpenAIOracle) Suggest(ctx context.Context, req SuggestRequest) (map[string]string, error) {
	if len(req.Keys) == 0 {
		return map[string]string{}, nil
	}

	systemPrompt := o.buildSystemPrompt(req)
	userMessage := o.buildUserMessage(req)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: o.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &isoglot.OracleError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &isoglot.OracleError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return o.parseResponse(resp.Choices[0].Message.Content)
}

func (o *OpenAIOracle) buildSystemPrompt(req SuggestRequest) string {
	sourceName := isoglot.GetLanguageName(req.SourceLang)
	targetName := isoglot.GetLanguageName(req.TargetLang)

	prompt := fmt.Sprintf(`# Role
You are the lexical engine of an isomorphic translation system. You propose glossary translations from %s to %s.

# Constitution
- Maximum literality and positional isomorphism: one target rendering per source token, always.
- One token in, one rendering out. Never merge, reorder, or drop tokens.
- No synonyms for a core term: a token gets exactly one translation, reused everywhere.
- An agrammatical but isomorphic rendering is acceptable; do not create fluency the glossary did not license.
- Etymological hierarchy when choosing a rendering: source cognate > Latin > Greek > loanword > technical coinage.
- If no equivalent exists, transliterate or build a neologism from root plus suffix.`, sourceName, targetName)

	if req.Context != "" {
		prompt += fmt.Sprintf("\n\n# Context\nThe text under translation is: %s.", req.Context)
	}

	if len(req.Rules) > 0 {
		prompt += "\n\n# User Directives\nThese directives have authority over the constitution above:"
		for _, rule := range req.Rules {
			prompt += "\n- " + rule
		}
	}

	prompt += `

# Format
Return a valid JSON object with a single key "suggestions" mapping each input key to its proposed translation.
Example: { "suggestions": { "kitab": "libro", "ilm": "conocimiento" } }
- Keys you cannot translate confidently may be omitted.
- Do NOT invent keys that were not in the input.
- Do NOT wrap in Markdown code blocks.`

	return prompt
}

func (o *OpenAIOracle) buildUserMessage(req SuggestRequest) string {
	data, _ := json.Marshal(map[string][]string{"keys": req.Keys})
	return string(data)
}

func (o *OpenAIOracle) parseResponse(content string) (map[string]string, error) {
	// Try parsing as object first
	var objResult map[string]interface{}
	if err := json.Unmarshal([]byte(content), &objResult); err == nil {
		// Look for "suggestions" key
		if suggestions, ok := objResult["suggestions"]; ok {
			if m, ok := suggestions.(map[string]interface{}); ok {
				return toStringMap(m), nil
			}
		}

		// Fallback: find first object value
		for _, v := range objResult {
			if m, ok := v.(map[string]interface{}); ok {
				return toStringMap(m), nil
			}
		}

		// Flat object: treat the top level as the mapping if every value
		// is a string.
		if flat, ok := asStringMap(objResult); ok {
			return flat, nil
		}
	}

	return nil, &isoglot.OracleError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func toStringMap(m map[string]interface{}) map[string]string {
	result := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			result[k] = s
		} else {
			result[k] = fmt.Sprintf("%v", v)
		}
	}
	return result
}

func asStringMap(m map[string]interface{}) (map[string]string, bool) {
	if len(m) == 0 {
		return nil, false
	}
	result := make(map[string]string, len(m))
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		result[k] = s
	}
	return result, true
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := err.Error()
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(strings.ToLower(errStr), pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIOracle implements Oracle
var _ Oracle = (*OpenAIOracle)(nil)
