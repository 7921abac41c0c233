package enrich

import "testing"

func TestClassifyStyleWholeWord(t *testing.T) {
	// "warli" as an exact whole word scores 3 and must be the unique maximum
	if got := styleScore("warli", StyleWarli); got != 3 {
		t.Fatalf("expected whole-word score 3, got %d", got)
	}
	if got := ClassifyStyle("warli", ModeScoring); got != StyleWarli {
		t.Fatalf("expected Warli, got %s", got)
	}
	for _, style := range styleOrder {
		if style == StyleWarli {
			continue
		}
		if score := styleScore("warli", style); score >= 3 {
			t.Fatalf("style %s unexpectedly scored %d", style, score)
		}
	}
}

func TestClassifyStyleSubstringScoresOne(t *testing.T) {
	// "warli" inside a larger word is a substring hit, not a whole word
	if got := styleScore("warlipainting", StyleWarli); got != 1 {
		t.Fatalf("expected substring score 1, got %d", got)
	}
}

func TestClassifyStyleEmptyText(t *testing.T) {
	for _, content := range []string{"", "   ", "\t\n"} {
		if got := ClassifyStyle(content, ModeScoring); got != StyleUnknown {
			t.Fatalf("empty text %q: expected Unknown, got %s", content, got)
		}
	}
}

func TestClassifyStyleNoMatch(t *testing.T) {
	if got := ClassifyStyle("a plain ceramic mug", ModeScoring); got != StyleUnknown {
		t.Fatalf("expected Unknown, got %s", got)
	}
}

func TestClassifyStyleTieBreakDeclarationOrder(t *testing.T) {
	// "tribal" is a whole-word keyword of both Warli and Bhil; the tie must
	// deterministically keep the earlier declared style
	if warli, bhil := styleScore("tribal", StyleWarli), styleScore("tribal", StyleBhil); warli != bhil {
		t.Fatalf("test premise broken: scores %d vs %d", warli, bhil)
	}
	for i := 0; i < 50; i++ {
		if got := ClassifyStyle("tribal", ModeScoring); got != StyleWarli {
			t.Fatalf("tie-break not deterministic: got %s", got)
		}
	}
}

func TestClassifyStyleScoring(t *testing.T) {
	tests := []struct {
		content string
		want    ArtStyle
	}{
		{"a madhubani painting of a peacock and lotus", StyleMadhubani},
		{"gond art with dots and fine lines showing animals", StyleGond},
		{"tanjore painting with gold foil and precious stones", StyleTanjore},
		{"KALIGHAT pat painting from kolkata", StyleKalighat},
		{"modern abstract mixed media piece", StyleContemporary},
	}
	for _, tt := range tests {
		if got := ClassifyStyle(tt.content, ModeScoring); got != tt.want {
			t.Errorf("ClassifyStyle(%q) = %s, want %s", tt.content, got, tt.want)
		}
	}
}

func TestClassifyStyleCoarseMode(t *testing.T) {
	tests := []struct {
		content string
		want    ArtStyle
	}{
		{"warli piece", StyleWarli},
		{"thanjavur painting", StyleTanjore},
		{"a folk scene", StyleFolk},
		{"something modern", StyleContemporary},
		{"plain mug", StyleUnknown},
		{"", StyleUnknown},
	}
	for _, tt := range tests {
		if got := ClassifyStyle(tt.content, ModeCoarse); got != tt.want {
			t.Errorf("coarse ClassifyStyle(%q) = %s, want %s", tt.content, got, tt.want)
		}
	}
}

func TestCoarseModePriorityOrder(t *testing.T) {
	// both styles present: the earlier check wins
	if got := ClassifyStyle("warli and gond together", ModeCoarse); got != StyleWarli {
		t.Fatalf("expected Warli to win priority, got %s", got)
	}
}
