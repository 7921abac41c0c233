package enrich

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func containsTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

func TestTagsContextualGuaranteeUnderFailure(t *testing.T) {
	stage := NewTagStage(&generatorStub{err: errors.New("model down")}, "t5")

	out := stage.Generate(context.Background(), "handmade warli wall art gift")
	if !out.FellBack {
		t.Fatal("failed generation must be marked fallback")
	}
	for _, want := range []string{"warli", "handmade", "artwork", "home decor", "gift"} {
		if !containsTag(out.Value, want) {
			t.Errorf("contextual pass missing %q in %v", want, out.Value)
		}
	}
}

func TestTagsContextualGuaranteeWithModelOutput(t *testing.T) {
	stage := NewTagStage(&generatorStub{response: "tags: bowl, ceramic, kitchen, dining"}, "t5")

	out := stage.Generate(context.Background(), "handmade warli wall art gift")
	for _, want := range []string{"bowl", "ceramic", "warli", "handmade", "artwork", "home decor", "gift"} {
		if !containsTag(out.Value, want) {
			t.Errorf("missing %q in %v", want, out.Value)
		}
	}
}

func TestTagsEmptyContentUsesDefaults(t *testing.T) {
	stub := &generatorStub{}
	stage := NewTagStage(stub, "t5")

	out := stage.Generate(context.Background(), "  ")
	want := []string{"handmade", "artwork", "traditional", "unique", "decorative"}
	if len(out.Value) != len(want) {
		t.Fatalf("got %v, want %v", out.Value, want)
	}
	for i := range want {
		if out.Value[i] != want[i] {
			t.Fatalf("got %v, want %v", out.Value, want)
		}
	}
	if stub.calls != 0 {
		t.Fatal("empty content should not reach the model")
	}
}

func TestExtractTagsDelimiterCascade(t *testing.T) {
	tests := []struct {
		name      string
		generated string
		want      []string
	}{
		{
			name:      "comma separated",
			generated: "tags: folk art, painting, wall decor, heritage piece",
			want:      []string{"folk art", "painting", "wall decor", "heritage piece"},
		},
		{
			name:      "semicolons when commas yield too few",
			generated: "one thing; two thing; red thing; blue thing",
			want:      []string{"one thing", "two thing", "red thing", "blue thing"},
		},
		{
			name:      "pipes",
			generated: "alpha|beta|gamma|delta",
			want:      []string{"alpha", "beta", "gamma", "delta"},
		},
	}
	for _, tt := range tests {
		got := extractTags(tt.generated)
		if len(got) != len(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}

func TestExtractTagsWhitespaceFallback(t *testing.T) {
	// fewer than four tokens for every delimiter: whitespace tokenization
	// with punctuation stripped takes over
	got := extractTags("beautiful handmade (pottery)!")
	for _, want := range []string{"beautiful", "handmade", "pottery"} {
		if !containsTag(got, want) {
			t.Errorf("missing %q in %v", want, got)
		}
	}
}

func TestExtractTagsStripsPrefix(t *testing.T) {
	got := extractTags("Keywords: a1, b2, c3, d4")
	if containsTag(got, "keywords: a1") {
		t.Fatalf("prefix not stripped: %v", got)
	}
	if !containsTag(got, "a1") {
		t.Fatalf("expected a1 in %v", got)
	}
}

func TestFinishTagSetLengthAndCap(t *testing.T) {
	var tags []string
	for _, r := range "abcdefghijklmnopqrst" {
		tags = append(tags, strings.Repeat(string(r), 3))
	}
	tags = append(tags, "x")                          // too short
	tags = append(tags, strings.Repeat("y", 25))      // too long
	tags = append(tags, tags[0])                      // duplicate

	got := finishTagSet(tags)
	if len(got) != maxTags {
		t.Fatalf("expected cap of %d, got %d", maxTags, len(got))
	}
	if containsTag(got, "x") || containsTag(got, strings.Repeat("y", 25)) {
		t.Fatalf("length filter failed: %v", got)
	}
}

func TestFinishTagSetEmptyFallsToDefaults(t *testing.T) {
	got := finishTagSet([]string{"x"})
	if !containsTag(got, "handmade") || len(got) != 5 {
		t.Fatalf("expected default set, got %v", got)
	}
}

func TestContextualTagsCompositeRules(t *testing.T) {
	tags := ContextualTags("a special piece to decorate your room with vibrant tones")
	for _, want := range []string{"home decor", "colorful", "unique"} {
		if !containsTag(tags, want) {
			t.Errorf("missing %q in %v", want, tags)
		}
	}
}
