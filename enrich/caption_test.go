package enrich

import (
	"context"
	"errors"
	"testing"

	"github.com/craftopia/enrichment/pkg/models"
)

type imageModelStub struct {
	caption string
	err     error
	calls   int
}

func (m *imageModelStub) Caption(ctx context.Context, model string, image []byte, filename string) (string, error) {
	m.calls++
	return m.caption, m.err
}

func TestCaptionNoImage(t *testing.T) {
	stub := &imageModelStub{caption: "unused"}
	stage := NewCaptionStage(stub, "blip")

	out := stage.Caption(context.Background(), models.EnrichmentRequest{Text: "some text"})
	if out.Value != NoImageCaption {
		t.Fatalf("expected sentinel caption, got %q", out.Value)
	}
	if stub.calls != 0 {
		t.Fatal("missing image must not trigger an external call")
	}
}

func TestCaptionSuccess(t *testing.T) {
	stage := NewCaptionStage(&imageModelStub{caption: "a painting of two figures"}, "blip")
	out := stage.Caption(context.Background(), models.EnrichmentRequest{
		ImageData:     []byte{0xff, 0xd8},
		ImageFilename: "warli.jpg",
	})
	if out.Value != "a painting of two figures" {
		t.Fatalf("unexpected caption: %q", out.Value)
	}
	if out.FellBack {
		t.Fatal("success should not be marked fallback")
	}
}

func TestCaptionFailureUsesMetadata(t *testing.T) {
	stage := NewCaptionStage(&imageModelStub{err: errors.New("500")}, "blip")
	req := models.EnrichmentRequest{
		ImageData:        []byte{1, 2, 3, 4},
		ImageFilename:    "art.png",
		ImageContentType: "image/png",
	}
	out := stage.Caption(context.Background(), req)
	want := "Image file named 'art.png' of type image/png (4 bytes)"
	if out.Value != want {
		t.Fatalf("got %q, want %q", out.Value, want)
	}
	if !out.FellBack {
		t.Fatal("failure must be marked as fallback")
	}
}

func TestCaptionFallbackWithoutFilename(t *testing.T) {
	stage := NewCaptionStage(&imageModelStub{err: errors.New("down")}, "blip")
	out := stage.Caption(context.Background(), models.EnrichmentRequest{
		ImageData:        []byte{1, 2},
		ImageContentType: "image/jpeg",
	})
	if out.Value != "Image file of type image/jpeg (2 bytes)" {
		t.Fatalf("unexpected fallback: %q", out.Value)
	}
}
