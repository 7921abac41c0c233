package models

// EnrichmentRequest is the immutable input to one pipeline run. It is built
// once per listing submission and discarded when the run returns.
type EnrichmentRequest struct {
	ImageData        []byte
	ImageFilename    string
	ImageContentType string
	Text             string
	Price            float64
	ImageURL         string
	SellerEmail      string
}

// ProductMetadata is the fully enriched listing produced by the pipeline.
// Price, ImageURL and SellerEmail pass through from the request unchanged.
type ProductMetadata struct {
	Title          string   `json:"title" db:"title"`
	Description    string   `json:"description" db:"description"`
	Category       string   `json:"category" db:"category"`
	Price          float64  `json:"price" db:"price"`
	ImageURL       string   `json:"image_url" db:"image_url"`
	SellerEmail    string   `json:"seller_email" db:"seller_email"`
	Tags           []string `json:"tags"`
	Style          string   `json:"style" db:"style"`
	OriginalText   string   `json:"original_text" db:"original_text"`
	TranslatedText string   `json:"translated_text" db:"translated_text"`
}

// Product is a persisted listing row.
type Product struct {
	ID             int        `json:"id" db:"id"`
	Status         TaskStatus `json:"status" db:"status"`
	Title          string     `json:"title" db:"title"`
	Description    string     `json:"description" db:"description"`
	Category       string     `json:"category" db:"category"`
	Price          float64    `json:"price" db:"price"`
	ImageURL       string     `json:"image_url" db:"image_url"`
	SellerEmail    string     `json:"seller_email" db:"seller_email"`
	Tags           string     `json:"tags" db:"tags"`
	Style          string     `json:"style" db:"style"`
	OriginalText   string     `json:"original_text" db:"original_text"`
	TranslatedText string     `json:"translated_text" db:"translated_text"`
}

// EnrichmentJob is the queue payload published by the registration API and
// consumed by the enricher worker. Image bytes travel through object storage,
// not the queue; the job carries the object key.
type EnrichmentJob struct {
	ProductID        int     `json:"product_id"`
	ImageObjectKey   string  `json:"image_object_key"`
	ImageFilename    string  `json:"image_filename"`
	ImageContentType string  `json:"image_content_type"`
	Text             string  `json:"text"`
	Price            float64 `json:"price"`
	ImageURL         string  `json:"image_url"`
	SellerEmail      string  `json:"seller_email"`
}

type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskReady   TaskStatus = "ready"
	TaskFailed  TaskStatus = "failed"
)
