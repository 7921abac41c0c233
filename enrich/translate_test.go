package enrich

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type generatorStub struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (g *generatorStub) Generate(ctx context.Context, model, inputs string) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, inputs)
	return g.response, g.err
}

func TestTranslateEnglishShortCircuit(t *testing.T) {
	stub := &generatorStub{response: "should never be used"}
	stage := NewTranslationStage(stub, "t5")

	for _, lang := range []string{"en", "EN", "En"} {
		out := stage.TranslateToEnglish(context.Background(), "handmade warli art", lang)
		if out.Value != "handmade warli art" {
			t.Fatalf("lang %q: expected text unchanged, got %q", lang, out.Value)
		}
		if out.FellBack {
			t.Fatalf("lang %q: short-circuit is not a fallback", lang)
		}
	}
	if stub.calls != 0 {
		t.Fatalf("expected no external calls for english source, got %d", stub.calls)
	}
}

func TestTranslatePromptNamesLanguages(t *testing.T) {
	stub := &generatorStub{response: "handmade painting"}
	stage := NewTranslationStage(stub, "t5")

	stage.TranslateToEnglish(context.Background(), "pintura hecha a mano", "es")

	if stub.calls != 1 {
		t.Fatalf("expected one call, got %d", stub.calls)
	}
	if !strings.HasPrefix(stub.prompts[0], "translate Spanish to English: ") {
		t.Fatalf("unexpected prompt: %q", stub.prompts[0])
	}
}

func TestTranslateStripsBoilerplate(t *testing.T) {
	tests := []struct {
		response string
		want     string
	}{
		{"Translation: handmade painting", "handmade painting"},
		{"  result: a warli piece  ", "a warli piece"},
		{"OUTPUT: tribal art", "tribal art"},
		{"plain answer", "plain answer"},
	}
	for _, tt := range tests {
		stage := NewTranslationStage(&generatorStub{response: tt.response}, "t5")
		out := stage.TranslateToEnglish(context.Background(), "texto", "es")
		if out.Value != tt.want {
			t.Errorf("response %q: got %q, want %q", tt.response, out.Value, tt.want)
		}
	}
}

func TestTranslateFailureKeepsOriginal(t *testing.T) {
	stage := NewTranslationStage(&generatorStub{err: errors.New("503")}, "t5")
	out := stage.TranslateToEnglish(context.Background(), "pintura a mano", "es")
	if out.Value != "pintura a mano" {
		t.Fatalf("expected original text back, got %q", out.Value)
	}
	if !out.FellBack {
		t.Fatal("failure must be marked as fallback")
	}
}

func TestTranslateEmptyText(t *testing.T) {
	stub := &generatorStub{}
	stage := NewTranslationStage(stub, "t5")
	out := stage.TranslateToEnglish(context.Background(), "   ", "es")
	if out.Value != "" {
		t.Fatalf("expected empty result, got %q", out.Value)
	}
	if stub.calls != 0 {
		t.Fatal("empty text should not reach the model")
	}
}
