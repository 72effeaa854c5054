package isoglot

import "testing"

func TestGetLanguageName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"ar_SA", "Classical Arabic"},
		{"es", "Spanish (Spain)"},
		{"la_VA", "Latin"},
		{"xx_XX", "xx_XX"}, // unknown codes pass through
	}

	for _, tt := range tests {
		if got := GetLanguageName(tt.code); got != tt.want {
			t.Errorf("GetLanguageName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestGetDirection(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"ar_SA", "rtl"},
		{"he", "rtl"},
		{"es_ES", "ltr"},
		{"la_VA", "ltr"},
	}

	for _, tt := range tests {
		if got := GetDirection(tt.code); got != tt.want {
			t.Errorf("GetDirection(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestIsRTL(t *testing.T) {
	if !IsRTL("ar_SA") {
		t.Error("Arabic should be RTL")
	}
	if IsRTL("es_ES") {
		t.Error("Spanish should not be RTL")
	}
}

func TestNormalizeLocale(t *testing.T) {
	if got := NormalizeLocale("es-ES"); got != "es_ES" {
		t.Errorf("NormalizeLocale(es-ES) = %q", got)
	}
	if got := NormalizeLocale("es_ES"); got != "es_ES" {
		t.Errorf("NormalizeLocale(es_ES) = %q", got)
	}
}
