package enrich

import (
	"context"
	"fmt"
	"log"

	"github.com/craftopia/enrichment/pkg/models"
)

// NoImageCaption is the sentinel caption for listings submitted without an
// image. The pipeline proceeds with it; a missing image is not an error.
const NoImageCaption = "No image provided"

// ImageModel is the slice of the inference client the caption stage needs.
type ImageModel interface {
	Caption(ctx context.Context, model string, image []byte, filename string) (string, error)
}

// CaptionStage derives a textual description of the submitted image. When
// the external call fails it falls back to a deterministic description built
// from the file metadata.
type CaptionStage struct {
	Model     ImageModel
	ModelName string
}

func NewCaptionStage(model ImageModel, modelName string) *CaptionStage {
	return &CaptionStage{Model: model, ModelName: modelName}
}

func (s *CaptionStage) Caption(ctx context.Context, req models.EnrichmentRequest) Outcome[string] {
	if len(req.ImageData) == 0 {
		return Ok(NoImageCaption)
	}

	caption, err := s.Model.Caption(ctx, s.ModelName, req.ImageData, req.ImageFilename)
	if err != nil || caption == "" {
		log.Printf("image captioning failed, using basic description: %v", err)
		return Fallback(basicImageDescription(req))
	}
	return Ok(caption)
}

// basicImageDescription synthesizes a caption from what the upload itself
// tells us: filename, declared content type and byte length.
func basicImageDescription(req models.EnrichmentRequest) string {
	desc := "Image file"
	if req.ImageFilename != "" {
		desc += fmt.Sprintf(" named '%s'", req.ImageFilename)
	}
	return desc + fmt.Sprintf(" of type %s (%d bytes)", req.ImageContentType, len(req.ImageData))
}
