package provider

import (
	"reflect"
	"testing"
)

func TestOpenAIAvailability(t *testing.T) {
	if NewOpenAI("", "", 4000).Available() {
		t.Error("provider without an API key must report unavailable")
	}
	if !NewOpenAI("sk-test", "", 4000).Available() {
		t.Error("provider with an API key must report available")
	}
}

func TestOpenAIName(t *testing.T) {
	if got := NewOpenAI("", "", 0).Name(); got != "openai" {
		t.Errorf("Name = %q", got)
	}
}

func TestParseTagList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Technology, Finance, Work", []string{"Technology", "Finance", "Work"}},
		{" Technology ,  Finance. ", []string{"Technology", "Finance"}},
		{"Technology", []string{"Technology"}},
		{", ,", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := parseTagList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseTagList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClip(t *testing.T) {
	if got := clip("héllo", 3); got != "hél" {
		t.Errorf("clip = %q, want %q", got, "hél")
	}
	if got := clip("short", 100); got != "short" {
		t.Errorf("clip should not touch short input, got %q", got)
	}
	if got := clip("anything", 0); got != "anything" {
		t.Errorf("clip with no limit should pass through, got %q", got)
	}
}
