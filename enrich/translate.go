package enrich

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// TextGenerator is the slice of the inference client the text-to-text stages
// need.
type TextGenerator interface {
	Generate(ctx context.Context, model, inputs string) (string, error)
}

// TranslationStage converts seller text to English. English input is
// returned unchanged without an external call; any failure falls back to the
// original, untranslated text — showing original text beats blocking the
// listing.
type TranslationStage struct {
	Generator TextGenerator
	Model     string
}

func NewTranslationStage(generator TextGenerator, model string) *TranslationStage {
	return &TranslationStage{Generator: generator, Model: model}
}

func (s *TranslationStage) TranslateToEnglish(ctx context.Context, text, sourceLang string) Outcome[string] {
	if strings.TrimSpace(text) == "" {
		return Ok("")
	}
	if strings.EqualFold(sourceLang, "en") {
		return Ok(text)
	}

	prompt := fmt.Sprintf("translate %s to %s: %s", LanguageName(sourceLang), LanguageName("en"), text)
	translated, err := s.Generator.Generate(ctx, s.Model, prompt)
	if err != nil {
		log.Printf("translation from %q failed, keeping original text: %v", sourceLang, err)
		return Fallback(text)
	}

	cleaned := cleanTranslation(translated)
	if cleaned == "" {
		return Fallback(text)
	}
	return Ok(cleaned)
}

var translationPrefixes = []string{
	"translate ", "translation:", "translated:", "result:", "output:",
}

// cleanTranslation strips model boilerplate such as "Translation: ..." from
// the response.
func cleanTranslation(text string) string {
	cleaned := strings.TrimSpace(text)
	for _, prefix := range translationPrefixes {
		if strings.HasPrefix(strings.ToLower(cleaned), prefix) {
			cleaned = strings.TrimSpace(cleaned[len(prefix):])
		}
	}
	return cleaned
}
