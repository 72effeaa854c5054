package oracle

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ZaguanLabs/isoglot"
)

func TestBuildSystemPrompt(t *testing.T) {
	o := NewOpenAIOracle(OpenAIConfig{APIKey: "test"})

	req := SuggestRequest{
		Keys:       []string{"kitab"},
		SourceLang: "ar_SA",
		TargetLang: "es_ES",
	}

	prompt := o.buildSystemPrompt(req)

	if !strings.Contains(prompt, "Classical Arabic") {
		t.Error("Prompt should name the source language")
	}
	if !strings.Contains(prompt, "Spanish (Spain)") {
		t.Error("Prompt should name the target language")
	}
	if !strings.Contains(prompt, "suggestions") {
		t.Error("Prompt should describe the response format")
	}
	if strings.Contains(prompt, "# Context") {
		t.Error("Prompt should omit the context section when unset")
	}
	if strings.Contains(prompt, "# User Directives") {
		t.Error("Prompt should omit the directives section when unset")
	}
}

func TestBuildSystemPrompt_ContextAndRules(t *testing.T) {
	o := NewOpenAIOracle(OpenAIConfig{APIKey: "test"})

	req := SuggestRequest{
		Keys:       []string{"kitab"},
		SourceLang: "ar_SA",
		TargetLang: "es_ES",
		Context:    "a 12th century treatise on optics",
		Rules:      []string{"prefer Latinate renderings", "never use loanwords"},
	}

	prompt := o.buildSystemPrompt(req)

	if !strings.Contains(prompt, "a 12th century treatise on optics") {
		t.Error("Prompt should carry the document context")
	}
	if !strings.Contains(prompt, "prefer Latinate renderings") {
		t.Error("Prompt should list every user directive")
	}
	if !strings.Contains(prompt, "never use loanwords") {
		t.Error("Prompt should list every user directive")
	}
}

func TestBuildUserMessage(t *testing.T) {
	o := NewOpenAIOracle(OpenAIConfig{APIKey: "test"})

	msg := o.buildUserMessage(SuggestRequest{Keys: []string{"kitab", "ilm"}})

	want := `{"keys":["kitab","ilm"]}`
	if msg != want {
		t.Errorf("Got %q, want %q", msg, want)
	}
}

func TestParseResponse(t *testing.T) {
	o := NewOpenAIOracle(OpenAIConfig{APIKey: "test"})

	tests := []struct {
		name    string
		content string
		want    map[string]string
	}{
		{
			name:    "suggestions key",
			content: `{"suggestions": {"kitab": "libro", "ilm": "conocimiento"}}`,
			want:    map[string]string{"kitab": "libro", "ilm": "conocimiento"},
		},
		{
			name:    "differently named wrapper",
			content: `{"translations": {"kitab": "libro"}}`,
			want:    map[string]string{"kitab": "libro"},
		},
		{
			name:    "flat object",
			content: `{"kitab": "libro"}`,
			want:    map[string]string{"kitab": "libro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := o.parseResponse(tt.content)
			if err != nil {
				t.Fatalf("parseResponse failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("Key %q: got %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestParseResponse_Invalid(t *testing.T) {
	o := NewOpenAIOracle(OpenAIConfig{APIKey: "test"})

	for _, content := range []string{
		"not json at all",
		`["kitab", "libro"]`,
		`{}`,
	} {
		_, err := o.parseResponse(content)
		if err == nil {
			t.Errorf("parseResponse(%q) should fail", content)
			continue
		}
		var oracleErr *isoglot.OracleError
		if !errors.As(err, &oracleErr) {
			t.Errorf("Expected *isoglot.OracleError, got %T", err)
		} else if oracleErr.Retryable {
			t.Error("Malformed response is not worth retrying")
		}
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("429 Too Many Requests"), true},
		{errors.New("Rate limit exceeded"), true},
		{errors.New("connection refused"), true},
		{errors.New("503 Service Unavailable"), true},
		{errors.New("invalid API key"), false},
		{errors.New("400 Bad Request"), false},
	}

	for _, tt := range tests {
		if got := isRetryableError(tt.err); got != tt.want {
			t.Errorf("isRetryableError(%q) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestNewOpenAIOracle_Defaults(t *testing.T) {
	o := NewOpenAIOracle(OpenAIConfig{APIKey: "test"})

	if o.model != "gpt-4o-mini" {
		t.Errorf("Expected default model gpt-4o-mini, got %q", o.model)
	}
	if o.temperature != 0.2 {
		t.Errorf("Expected default temperature 0.2, got %f", o.temperature)
	}
}

func TestMockOracle(t *testing.T) {
	m := NewMockOracle()

	results, err := m.Suggest(context.Background(), SuggestRequest{
		Keys: []string{"kitab", "unknown"},
	})
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}

	if results["kitab"] != "libro" {
		t.Errorf("Expected 'libro' for kitab, got %q", results["kitab"])
	}
	if _, ok := results["unknown"]; ok {
		t.Error("Unconfigured keys should be omitted")
	}
	if m.CallCount != 1 {
		t.Errorf("Expected call count 1, got %d", m.CallCount)
	}
	if m.LastRequest == nil || len(m.LastRequest.Keys) != 2 {
		t.Error("LastRequest should capture the request")
	}

	m.Reset()
	if m.CallCount != 0 || m.LastRequest != nil {
		t.Error("Reset should clear call tracking")
	}
}

func TestMockOracle_Error(t *testing.T) {
	m := NewMockOracle()
	m.Err = errors.New("simulated failure")

	_, err := m.Suggest(context.Background(), SuggestRequest{Keys: []string{"kitab"}})
	if err == nil {
		t.Fatal("Expected configured error")
	}
}
