package provider

import "testing"

func TestLocalAvailability(t *testing.T) {
	if NewLocal("", "llama3.1:8b", 4000).Available() {
		t.Error("provider without a base URL must report unavailable")
	}
	if !NewLocal("http://localhost:11434/v1", "llama3.1:8b", 4000).Available() {
		t.Error("provider with a base URL must report available")
	}
}

func TestLocalName(t *testing.T) {
	if got := NewLocal("", "", 0).Name(); got != "local" {
		t.Errorf("Name = %q", got)
	}
}
