package enrich

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"
)

// SummaryStage produces the listing title and description from the combined
// text, classified style and tags. Empty input skips the external call and
// goes straight to the deterministic templates.
type SummaryStage struct {
	Generator TextGenerator
	Model     string
}

func NewSummaryStage(generator TextGenerator, model string) *SummaryStage {
	return &SummaryStage{Generator: generator, Model: model}
}

func (s *SummaryStage) Title(ctx context.Context, content string, style ArtStyle, tags []string) Outcome[string] {
	if strings.TrimSpace(content) == "" {
		return Fallback(fallbackTitle(style, tags))
	}

	response, err := s.Generator.Generate(ctx, s.Model, titlePrompt(content, style, tags))
	if err != nil {
		log.Printf("title generation failed, using template: %v", err)
		return Fallback(fallbackTitle(style, tags))
	}

	title := cleanTitle(response)
	if title == "" {
		return Fallback(fallbackTitle(style, tags))
	}
	return Ok(title)
}

func (s *SummaryStage) Description(ctx context.Context, content string, style ArtStyle, tags []string, caption string) Outcome[string] {
	if strings.TrimSpace(content) == "" {
		return Fallback(fallbackDescription(style, tags, caption))
	}

	response, err := s.Generator.Generate(ctx, s.Model, descriptionPrompt(content, style, tags, caption))
	if err != nil {
		log.Printf("description generation failed, using template: %v", err)
		return Fallback(fallbackDescription(style, tags, caption))
	}

	description := cleanDescription(response)
	if description == "" {
		return Fallback(fallbackDescription(style, tags, caption))
	}
	return Ok(description)
}

func titlePrompt(content string, style ArtStyle, tags []string) string {
	var prompt strings.Builder
	prompt.WriteString("Create a short, catchy title for this product: ")
	prompt.WriteString(truncate(content, 200))
	if style != StyleUnknown {
		prompt.WriteString(" Art style: ")
		prompt.WriteString(style.DisplayName())
	}
	if len(tags) > 0 {
		prompt.WriteString(" Keywords: ")
		prompt.WriteString(strings.Join(headTags(tags, 5), ", "))
	}
	return prompt.String()
}

func descriptionPrompt(content string, style ArtStyle, tags []string, caption string) string {
	var prompt strings.Builder
	prompt.WriteString("Write a detailed product description based on: ")
	prompt.WriteString(truncate(content, 300))
	if strings.TrimSpace(caption) != "" {
		prompt.WriteString(" Image shows: ")
		prompt.WriteString(caption)
	}
	if style != StyleUnknown {
		prompt.WriteString(" This is ")
		prompt.WriteString(style.DisplayName())
		prompt.WriteString(" art.")
	}
	if len(tags) > 0 {
		prompt.WriteString(" Features: ")
		prompt.WriteString(strings.Join(headTags(tags, 8), ", "))
	}
	return prompt.String()
}

var titleLabels = []string{
	"title:", "product:", "name:", "summary:", "create a title:", "generate title:",
}

var descriptionLabels = []string{
	"description:", "product description:", "summary:", "write a description:", "generate description:",
}

func cleanTitle(title string) string {
	cleaned := stripLabels(title, titleLabels)
	cleaned = capitalize(cleaned)
	if utf8.RuneCountInString(cleaned) > 80 {
		cleaned = truncate(cleaned, 77) + "..."
	}
	return cleaned
}

func cleanDescription(description string) string {
	cleaned := stripLabels(description, descriptionLabels)
	cleaned = capitalize(cleaned)
	if cleaned != "" && !strings.HasSuffix(cleaned, ".") && !strings.HasSuffix(cleaned, "!") && !strings.HasSuffix(cleaned, "?") {
		cleaned += "."
	}
	return cleaned
}

func stripLabels(text string, labels []string) string {
	cleaned := strings.TrimSpace(text)
	for _, label := range labels {
		if strings.HasPrefix(strings.ToLower(cleaned), label) {
			cleaned = strings.TrimSpace(cleaned[len(label):])
		}
	}
	return cleaned
}

func fallbackTitle(style ArtStyle, tags []string) string {
	var title strings.Builder
	if style != StyleUnknown {
		title.WriteString(style.DisplayName())
		title.WriteString(" ")
	}
	title.WriteString("Handcrafted ")
	if len(tags) > 0 {
		tag := tags[0]
		lower := strings.ToLower(tag)
		if !strings.Contains(lower, "handmade") && !strings.Contains(lower, "craft") {
			title.WriteString(capitalize(tag))
			title.WriteString(" ")
		}
	}
	title.WriteString("Artwork")
	return title.String()
}

func fallbackDescription(style ArtStyle, tags []string, caption string) string {
	var desc strings.Builder
	desc.WriteString("This beautiful ")
	if style != StyleUnknown {
		desc.WriteString(strings.ToLower(style.DisplayName()))
		desc.WriteString(" ")
	}
	desc.WriteString("artwork is handcrafted with attention to detail. ")

	if strings.TrimSpace(caption) != "" {
		desc.WriteString("The piece features ")
		desc.WriteString(strings.ToLower(caption))
		desc.WriteString(". ")
	}
	if len(tags) > 0 {
		desc.WriteString("Perfect for those who appreciate ")
		desc.WriteString(strings.Join(headTags(tags, 3), ", "))
		desc.WriteString(". ")
	}

	desc.WriteString("A unique addition to any collection or home decor.")
	return desc.String()
}

func capitalize(text string) string {
	if text == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(text)
	return strings.ToUpper(string(r)) + text[size:]
}

// truncate keeps at most max runes, never splitting a multi-byte rune.
func truncate(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	return string([]rune(text)[:max])
}

func headTags(tags []string, n int) []string {
	if len(tags) < n {
		n = len(tags)
	}
	return tags[:n]
}
