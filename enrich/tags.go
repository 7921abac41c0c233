package enrich

import (
	"context"
	"log"
	"strings"
)

// craftVocabulary is the fixed craft/art-domain tag vocabulary. Any entry
// appearing as a substring of the combined listing text becomes a tag.
var craftVocabulary = []string{
	"warli", "gond", "madhubani", "pattachitra", "kalamkari", "tanjore", "pichwai",
	"mata ni pachedi", "kalighat", "bhil", "folk art", "traditional", "handmade",
	"handcrafted", "artisan", "cultural", "heritage", "ethnic", "tribal", "village art",
	"indian art", "desi", "indigenous", "authentic", "original", "unique", "decorative",
	"wall art", "home decor", "festival", "diwali", "holi", "navratri", "spiritual",
	"religious", "mythological", "nature", "peacock", "elephant", "lotus", "mandala",
	"geometric", "floral", "abstract", "colorful", "vibrant", "earthy", "natural",
	"eco-friendly", "sustainable", "khadi", "cotton", "silk", "canvas", "paper",
	"gift", "souvenir", "collectible", "artwork", "painting", "drawing", "craft",
}

var defaultTags = []string{"handmade", "artwork", "traditional", "unique", "decorative"}

const maxTags = 15

// TagStage produces a deduplicated tag set for a listing. A generative model
// proposes tags, and a rule-based contextual pass over the text always runs
// on top of (or instead of) the model output.
type TagStage struct {
	Generator TextGenerator
	Model     string
}

func NewTagStage(generator TextGenerator, model string) *TagStage {
	return &TagStage{Generator: generator, Model: model}
}

func (s *TagStage) Generate(ctx context.Context, content string) Outcome[[]string] {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return Fallback(append([]string(nil), defaultTags...))
	}

	generated, err := s.Generator.Generate(ctx, s.Model, "generate tags: "+trimmed)
	if err != nil {
		log.Printf("tag generation failed, using contextual tags only: %v", err)
		return Fallback(finishTagSet(ContextualTags(content)))
	}

	tags := append(extractTags(generated), ContextualTags(content)...)
	return Ok(finishTagSet(tags))
}

var tagPrefixes = []string{
	"tags:", "generate tags:", "generated tags:", "keywords:", "labels:",
}

// tagDelimiters is the split cascade, in priority order. The first delimiter
// producing more than 3 usable tokens wins.
var tagDelimiters = []string{",", ";", "|", "\n", "\t"}

// extractTags parses the model's free-form tag list.
func extractTags(generated string) []string {
	cleaned := strings.ToLower(strings.TrimSpace(generated))
	for _, prefix := range tagPrefixes {
		if strings.HasPrefix(cleaned, prefix) {
			cleaned = strings.TrimSpace(cleaned[len(prefix):])
		}
	}
	if cleaned == "" {
		return nil
	}

	for _, delimiter := range tagDelimiters {
		var tags []string
		for _, part := range strings.Split(cleaned, delimiter) {
			tag := strings.TrimSpace(part)
			if len(tag) > 1 && len(tag) < 30 {
				tags = append(tags, tag)
			}
		}
		if len(tags) > 3 {
			return dedupe(tags, 10)
		}
	}

	// No delimiter produced a usable list; fall back to whitespace tokens
	// with punctuation stripped.
	var tags []string
	for _, word := range strings.Fields(cleaned) {
		tag := stripPunctuation(word)
		if len(tag) > 2 && len(tag) < 20 {
			tags = append(tags, tag)
		}
	}
	return dedupe(tags, 10)
}

// ContextualTags runs the rule-based enrichment pass: vocabulary substring
// hits plus composite rules over the combined text. Pure and deterministic.
func ContextualTags(content string) []string {
	lower := strings.ToLower(content)
	var tags []string

	for _, entry := range craftVocabulary {
		if strings.Contains(lower, entry) {
			tags = append(tags, entry)
		}
	}

	composites := []struct {
		triggers []string
		tag      string
	}{
		{[]string{"hand", "craft"}, "handcrafted"},
		{[]string{"traditional", "folk"}, "traditional"},
		{[]string{"art", "paint"}, "artwork"},
		{[]string{"decor", "wall"}, "home decor"},
		{[]string{"gift", "present"}, "gift"},
		{[]string{"color", "vibrant"}, "colorful"},
		{[]string{"unique", "special"}, "unique"},
	}
	for _, rule := range composites {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}

	return tags
}

// finishTagSet applies the final contract: dedupe in insertion order, keep
// lengths in [2,25), cap at 15, default set when nothing survived.
func finishTagSet(tags []string) []string {
	var kept []string
	for _, tag := range tags {
		if len(tag) > 1 && len(tag) < 25 {
			kept = append(kept, tag)
		}
	}
	kept = dedupe(kept, maxTags)
	if len(kept) == 0 {
		return append([]string(nil), defaultTags...)
	}
	return kept
}

func dedupe(tags []string, limit int) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
		if len(out) == limit {
			break
		}
	}
	return out
}

func stripPunctuation(word string) string {
	var b strings.Builder
	for _, r := range word {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
