package enrich

import (
	"context"
	"strings"

	"github.com/craftopia/enrichment/pkg/models"
)

// Stage interfaces. The pipeline depends only on these so tests and
// alternative inference providers can substitute implementations.
type Captioner interface {
	Caption(ctx context.Context, req models.EnrichmentRequest) Outcome[string]
}

type LanguageDetector interface {
	Detect(ctx context.Context, text string) Outcome[string]
}

type Translator interface {
	TranslateToEnglish(ctx context.Context, text, sourceLang string) Outcome[string]
}

type TagGenerator interface {
	Generate(ctx context.Context, content string) Outcome[[]string]
}

type Summarizer interface {
	Title(ctx context.Context, content string, style ArtStyle, tags []string) Outcome[string]
	Description(ctx context.Context, content string, style ArtStyle, tags []string, caption string) Outcome[string]
}

// Pipeline runs the full enrichment sequence: caption, language detection,
// translation, tags, style classification, title/description, category.
// Every stage absorbs its own failures into a fallback, so Enrich never
// fails. The pipeline holds no per-request state and is safe to invoke
// concurrently.
type Pipeline struct {
	captioner  Captioner
	detector   LanguageDetector
	translator Translator
	tagger     TagGenerator
	summarizer Summarizer
}

func NewPipeline(captioner Captioner, detector LanguageDetector, translator Translator, tagger TagGenerator, summarizer Summarizer) *Pipeline {
	return &Pipeline{
		captioner:  captioner,
		detector:   detector,
		translator: translator,
		tagger:     tagger,
		summarizer: summarizer,
	}
}

// Enrich produces complete listing metadata for the request. Price, image
// URL and seller identity pass through unchanged.
func (p *Pipeline) Enrich(ctx context.Context, req models.EnrichmentRequest) models.ProductMetadata {
	caption := p.captioner.Caption(ctx, req).Value
	sourceLang := p.detector.Detect(ctx, req.Text).Value
	translated := p.translator.TranslateToEnglish(ctx, req.Text, sourceLang).Value

	combined := strings.TrimSpace(translated + " " + caption)

	tags := p.tagger.Generate(ctx, combined).Value
	style := ClassifyStyle(combined, ModeScoring)
	title := p.summarizer.Title(ctx, combined, style, tags).Value
	description := p.summarizer.Description(ctx, combined, style, tags, caption).Value

	return models.ProductMetadata{
		Title:          title,
		Description:    description,
		Category:       InferCategory(style, tags),
		Price:          req.Price,
		ImageURL:       req.ImageURL,
		SellerEmail:    req.SellerEmail,
		Tags:           tags,
		Style:          style.DisplayName(),
		OriginalText:   req.Text,
		TranslatedText: translated,
	}
}

// InferCategory maps a style to a listing category, with a tag override for
// unmapped styles. Pure lookup.
func InferCategory(style ArtStyle, tags []string) string {
	switch strings.ToLower(style.DisplayName()) {
	case "warli", "gond", "madhubani":
		return "Folk Art"
	case "kalighat":
		return "Traditional Painting"
	case "contemporary", "modern":
		return "Contemporary Art"
	}
	for _, tag := range tags {
		if tag == "gift" {
			return "Gifts & Souvenirs"
		}
	}
	return "Artwork"
}
