package analyze

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"financial", "Please find the invoice attached for last month", "Financial Document"},
		{"report", "Quarterly report with a detailed breakdown", "Report"},
		{"meeting", "Agenda for the weekly sync with all leads", "Meeting Document"},
		{"legal", "This agreement binds both parties", "Legal Document"},
		{"technical", "The software handles retries internally", "Technical Document"},
		{"communication", "Archived email thread from the vendor", "Communication"},
		{"default", "Nothing remarkable here at all", "General Document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// Financial triggers outrank Report triggers regardless of position.
	text := "Annual report including every invoice issued"
	if got := Classify(text); got != "Financial Document" {
		t.Errorf("expected Financial Document, got %q", got)
	}
}

func TestTagsScenario(t *testing.T) {
	got := Tags("SmartCloud invoice report love. Short.")
	want := []string{"Finance", "Work", "Personal"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tags = %v, want %v", got, want)
	}
}

func TestTagsCappedAndUnique(t *testing.T) {
	text := "software company invoice project love learning medical"
	got := Tags(text)

	if len(got) != maxTags {
		t.Fatalf("expected %d tags, got %d: %v", maxTags, len(got), got)
	}
	want := []string{"Technology", "Business", "Finance", "Work", "Personal"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tags = %v, want %v", got, want)
	}
	seen := map[string]bool{}
	for _, tag := range got {
		if seen[tag] {
			t.Errorf("duplicate tag %q", tag)
		}
		seen[tag] = true
	}
}

func TestTagsEmptyForNeutralText(t *testing.T) {
	if got := Tags("nothing much here"); len(got) != 0 {
		t.Errorf("expected no tags, got %v", got)
	}
}

func TestTopicsFrequencyOrder(t *testing.T) {
	text := "kubernetes kubernetes kubernetes deployment deployment cluster the and for it"
	got := Topics(text, 5)
	want := []string{"kubernetes", "deployment", "cluster"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Topics = %v, want %v", got, want)
	}
}

func TestTopicsTieBreakByFirstSeen(t *testing.T) {
	got := Topics("alpha beta alpha beta gamma", 5)
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Topics = %v, want %v", got, want)
	}
}

func TestTopicsLimitAndFiltering(t *testing.T) {
	text := "apple banana cherry orange grape melon papaya"
	got := Topics(text, 5)
	if len(got) != 5 {
		t.Errorf("expected 5 topics, got %d: %v", len(got), got)
	}

	// Short tokens, stop words, and punctuation-only tokens are dropped.
	got = Topics("the cat ran, and ran!", 5)
	if len(got) != 0 {
		t.Errorf("expected no topics, got %v", got)
	}
}

func TestTopicsStripsPunctuation(t *testing.T) {
	got := Topics("deployment, deployment. deployment!", 3)
	want := []string{"deployment"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Topics = %v, want %v", got, want)
	}
}
