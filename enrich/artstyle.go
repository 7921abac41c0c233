package enrich

import "strings"

// ArtStyle identifies one of the fixed set of craft styles a listing can be
// classified as. The value doubles as the display name.
type ArtStyle string

const (
	StyleWarli        ArtStyle = "Warli"
	StyleGond         ArtStyle = "Gond"
	StyleMadhubani    ArtStyle = "Madhubani"
	StylePattachitra  ArtStyle = "Pattachitra"
	StyleKalamkari    ArtStyle = "Kalamkari"
	StyleTanjore      ArtStyle = "Tanjore"
	StylePichwai      ArtStyle = "Pichwai"
	StyleMataNiPachedi ArtStyle = "Mata Ni Pachedi"
	StyleKalighat     ArtStyle = "Kalighat"
	StyleBhil         ArtStyle = "Bhil"
	StyleContemporary ArtStyle = "Contemporary"
	StyleTraditional  ArtStyle = "Traditional"
	StyleModern       ArtStyle = "Modern"
	StyleAbstract     ArtStyle = "Abstract"
	StyleFolk         ArtStyle = "Folk"
	StyleUnknown      ArtStyle = "Unknown"
)

func (s ArtStyle) DisplayName() string { return string(s) }

// styleOrder fixes the iteration order of the scoring pass. A tie on the
// maximum score keeps the earliest style in this list.
var styleOrder = []ArtStyle{
	StyleWarli, StyleGond, StyleMadhubani, StylePattachitra, StyleKalamkari,
	StyleTanjore, StylePichwai, StyleMataNiPachedi, StyleKalighat, StyleBhil,
	StyleContemporary, StyleTraditional, StyleFolk,
}

var styleKeywords = map[ArtStyle][]string{
	StyleWarli: {
		"warli", "tribal", "stick figure", "geometric", "circle", "triangle", "simple", "minimalist",
		"white on brown", "rice paste", "mud wall", "maharashtra", "adivasi", "primitive",
	},
	StyleGond: {
		"gond", "dots", "patterns", "intricate", "detailed", "colorful", "nature", "animals",
		"trees", "madhya pradesh", "tribal art", "fine lines", "decorative",
	},
	StyleMadhubani: {
		"madhubani", "mithila", "bihar", "fish", "peacock", "lotus", "geometric patterns",
		"bright colors", "natural dyes", "religious", "mythological", "border designs",
	},
	StylePattachitra: {
		"pattachitra", "odisha", "cloth painting", "jagannath", "krishna", "religious themes",
		"natural colors", "fine brushwork", "mythological", "traditional",
	},
	StyleKalamkari: {
		"kalamkari", "pen work", "hand painted", "natural dyes", "cotton", "silk",
		"floral", "paisley", "andhra pradesh", "telangana", "block print",
	},
	StyleTanjore: {
		"tanjore", "thanjavur", "gold foil", "precious stones", "religious", "gods", "goddesses",
		"rich colors", "embossed", "traditional", "south indian", "temple art",
	},
	StylePichwai: {
		"pichwai", "krishna", "radha", "rajasthan", "temple hanging", "devotional",
		"intricate", "detailed", "religious", "spiritual", "traditional",
	},
	StyleMataNiPachedi: {
		"mata ni pachedi", "goddess", "temple cloth", "gujarat", "hand block print",
		"natural dyes", "religious", "devotional", "traditional", "folk art",
	},
	StyleKalighat: {
		"kalighat", "bengal", "kolkata", "simple lines", "bold", "social commentary",
		"everyday life", "watercolor", "pat painting", "folk art",
	},
	StyleBhil: {
		"bhil", "tribal", "dots", "vibrant colors", "nature", "animals", "trees",
		"madhya pradesh", "rajasthan", "folk art", "traditional",
	},
	StyleContemporary: {
		"contemporary", "modern", "abstract", "mixed media", "experimental", "fusion",
		"new age", "innovative", "current", "present day",
	},
	StyleTraditional: {
		"traditional", "classical", "heritage", "ancient", "old", "conventional",
		"time-honored", "customary", "established", "historic",
	},
	StyleFolk: {
		"folk", "rural", "village", "community", "cultural", "ethnic", "indigenous",
		"local", "regional", "grassroots", "people's art",
	},
}

// ClassifierMode selects between the primary weighted-scoring pass and the
// coarser first-match pass used when lower confidence is acceptable.
type ClassifierMode int

const (
	ModeScoring ClassifierMode = iota
	ModeCoarse
)

// ClassifyStyle scores the combined listing text against the style keyword
// tables and returns the best-matching style, or StyleUnknown when nothing
// scores. A whole word bounded by spaces or the string boundaries earns 3
// points, a mid-word substring hit 1 point. Ties keep the earliest style in
// styleOrder. Pure and deterministic; safe for concurrent use.
func ClassifyStyle(content string, mode ClassifierMode) ArtStyle {
	content = strings.ToLower(strings.TrimSpace(content))
	if content == "" {
		return StyleUnknown
	}
	if mode == ModeCoarse {
		return coarseStyle(content)
	}

	best := StyleUnknown
	bestScore := 0
	for _, style := range styleOrder {
		score := styleScore(content, style)
		if score > bestScore {
			best = style
			bestScore = score
		}
	}
	return best
}

func styleScore(content string, style ArtStyle) int {
	score := 0
	for _, keyword := range styleKeywords[style] {
		if !strings.Contains(content, keyword) {
			continue
		}
		if wholeWord(content, keyword) {
			score += 3
		} else {
			score++
		}
	}
	return score
}

func wholeWord(content, keyword string) bool {
	return content == keyword ||
		strings.Contains(content, " "+keyword+" ") ||
		strings.HasPrefix(content, keyword+" ") ||
		strings.HasSuffix(content, " "+keyword)
}

// coarseStyle is the low-confidence pass: first substring match wins, in a
// fixed priority order.
func coarseStyle(content string) ArtStyle {
	switch {
	case strings.Contains(content, "warli"):
		return StyleWarli
	case strings.Contains(content, "gond"):
		return StyleGond
	case strings.Contains(content, "madhubani"):
		return StyleMadhubani
	case strings.Contains(content, "pattachitra"):
		return StylePattachitra
	case strings.Contains(content, "kalamkari"):
		return StyleKalamkari
	case strings.Contains(content, "tanjore"), strings.Contains(content, "thanjavur"):
		return StyleTanjore
	case strings.Contains(content, "pichwai"):
		return StylePichwai
	case strings.Contains(content, "mata ni pachedi"):
		return StyleMataNiPachedi
	case strings.Contains(content, "kalighat"):
		return StyleKalighat
	case strings.Contains(content, "bhil"):
		return StyleBhil
	case strings.Contains(content, "folk"):
		return StyleFolk
	case strings.Contains(content, "traditional"):
		return StyleTraditional
	case strings.Contains(content, "contemporary"), strings.Contains(content, "modern"):
		return StyleContemporary
	}
	return StyleUnknown
}
