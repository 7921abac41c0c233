package enrich

import (
	"context"
	"log"
	"strings"
)

// labelToCode maps the classification model's LABEL_n outputs to ISO-639-1
// codes.
var labelToCode = map[string]string{
	"LABEL_0":  "ar",
	"LABEL_1":  "bg",
	"LABEL_2":  "de",
	"LABEL_3":  "el",
	"LABEL_4":  "en",
	"LABEL_5":  "es",
	"LABEL_6":  "fr",
	"LABEL_7":  "hi",
	"LABEL_8":  "it",
	"LABEL_9":  "ja",
	"LABEL_10": "nl",
	"LABEL_11": "pl",
	"LABEL_12": "pt",
	"LABEL_13": "ru",
	"LABEL_14": "sw",
	"LABEL_15": "th",
	"LABEL_16": "tr",
	"LABEL_17": "ur",
	"LABEL_18": "vi",
	"LABEL_19": "zh",
}

// languageNames maps ISO-639-1 codes to display names for building
// translation prompts. Unknown codes read as English.
var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
	"ar": "Arabic",
	"hi": "Hindi",
	"mr": "Marathi",
	"bn": "Bengali",
	"ta": "Tamil",
	"te": "Telugu",
	"gu": "Gujarati",
	"kn": "Kannada",
	"ml": "Malayalam",
	"pa": "Punjabi",
	"ur": "Urdu",
	"nl": "Dutch",
	"pl": "Polish",
	"tr": "Turkish",
	"th": "Thai",
	"vi": "Vietnamese",
	"sw": "Swahili",
	"bg": "Bulgarian",
	"el": "Greek",
}

// LanguageName resolves a language code to its display name, defaulting to
// English for unknown or empty codes.
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return "English"
}

// nameToCode pairs for matching free-form model labels such as
// "ENGLISH" or "hindi-Deva" against known language names. Checked in order.
var nameToCode = []struct {
	name string
	code string
}{
	{"english", "en"},
	{"spanish", "es"},
	{"french", "fr"},
	{"german", "de"},
	{"italian", "it"},
	{"portuguese", "pt"},
	{"russian", "ru"},
	{"chinese", "zh"},
	{"japanese", "ja"},
	{"korean", "ko"},
	{"arabic", "ar"},
	{"hindi", "hi"},
	{"marathi", "mr"},
	{"bengali", "bn"},
	{"tamil", "ta"},
	{"telugu", "te"},
	{"gujarati", "gu"},
	{"kannada", "kn"},
	{"malayalam", "ml"},
	{"punjabi", "pa"},
	{"urdu", "ur"},
}

// TextClassifier is the slice of the inference client the detection stage
// needs.
type TextClassifier interface {
	Classify(ctx context.Context, model, inputs string) (string, error)
}

// DetectionStage determines the source language of seller text. Failures
// never block the pipeline; English is the safest default for an
// English-reading marketplace.
type DetectionStage struct {
	Classifier TextClassifier
	Model      string
}

func NewDetectionStage(classifier TextClassifier, model string) *DetectionStage {
	return &DetectionStage{Classifier: classifier, Model: model}
}

func (s *DetectionStage) Detect(ctx context.Context, text string) Outcome[string] {
	label, err := s.Classifier.Classify(ctx, s.Model, strings.TrimSpace(text))
	if err != nil {
		log.Printf("language detection failed, assuming english: %v", err)
		return Fallback("en")
	}
	return Ok(codeForLabel(label))
}

// codeForLabel resolves a model label to a language code: the LABEL_n table
// first, then a substring match against known language names, then the
// two-character prefix of the label itself.
func codeForLabel(label string) string {
	if label == "" {
		return "en"
	}
	if code, ok := labelToCode[label]; ok {
		return code
	}

	lower := strings.ToLower(label)
	for _, entry := range nameToCode {
		if strings.Contains(lower, entry.name) {
			return entry.code
		}
	}

	if len(lower) >= 2 {
		return lower[:2]
	}
	return "en"
}
