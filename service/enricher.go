package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/mailersend/mailersend-go"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/craftopia/enrichment/config"
	"github.com/craftopia/enrichment/enrich"
	"github.com/craftopia/enrichment/pkg/db"
	"github.com/craftopia/enrichment/pkg/huggingface"
	"github.com/craftopia/enrichment/pkg/models"
)

// EnricherService consumes enrichment jobs, runs the metadata pipeline and
// persists the result. The pipeline itself never fails; only infrastructure
// errors (storage, queue, db) mark a product failed.
type EnricherService struct {
	cfg             *config.Config
	ProductDatabase db.ProductDatabase
	rabbitMQClient  *amqp.Channel
	minioClient     *minio.Client
	pipeline        *enrich.Pipeline
}

func NewEnricherService(cfg *config.Config) *EnricherService {
	return &EnricherService{
		cfg: cfg}
}

func (s *EnricherService) StartService() error {
	//db init
	dB, err := sqlx.Open("postgres", fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		s.cfg.Postgres.Host, s.cfg.Postgres.Port, s.cfg.Postgres.Username, s.cfg.Postgres.Password, s.cfg.Postgres.Database))
	if err != nil {
		return fmt.Errorf("failed to connect to Postgres: %v", err)
	}
	log.Println("connected to Postgres")
	s.ProductDatabase, err = db.NewProductDatabase(s.cfg.Postgres.AutoCreateTable, dB)
	if err != nil {
		return fmt.Errorf("failed to initialize product database: %v", err)
	}

	//rabbitMQ init
	conn, err := amqp.Dial(fmt.Sprintf("amqp://%s:%s@%s:%d/",
		s.cfg.RabbitMQ.Username, s.cfg.RabbitMQ.Password, s.cfg.RabbitMQ.Host, s.cfg.RabbitMQ.Port))
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %v", err)
	}
	log.Println("connected to RabbitMQ")
	s.rabbitMQClient, err = conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open a channel: %v", err)
	}

	//minio init
	s.minioClient, err = minio.New(s.cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s.cfg.Minio.AccessKey, s.cfg.Minio.SecretKey, ""),
		Secure: true,
	})
	if err != nil {
		return fmt.Errorf("failed to init Minio client: %v", err)
	}
	log.Println("connected to Minio")

	s.pipeline = buildPipeline(s.cfg)

	s.consumeEnrichmentJobs()

	return nil
}

// buildPipeline wires the HuggingFace-backed stages into the orchestrator.
func buildPipeline(cfg *config.Config) *enrich.Pipeline {
	timeout := 15 * time.Second
	if cfg.HuggingFace.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.HuggingFace.TimeoutSeconds) * time.Second
	}
	client := &huggingface.Client{
		BaseURL:    cfg.HuggingFace.URL,
		APIKey:     cfg.HuggingFace.APIKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	hf := cfg.HuggingFace.Models
	return enrich.NewPipeline(
		enrich.NewCaptionStage(client, hf.ImageCaptioning),
		enrich.NewDetectionStage(client, hf.LanguageDetection),
		enrich.NewTranslationStage(client, hf.Translation),
		enrich.NewTagStage(client, hf.TagGeneration),
		enrich.NewSummaryStage(client, hf.Summarization),
	)
}

func (s *EnricherService) consumeEnrichmentJobs() {
	msgs, err := s.rabbitMQClient.Consume(
		s.cfg.RabbitMQ.Queue, // queue
		"",                   // consumer
		true,                 // auto-ack
		false,                // exclusive
		false,                // no-local
		false,                // no-wait
		nil,                  // args
	)
	if err != nil {
		log.Fatalf("failed to register a consumer: %v", err)
	}

	for d := range msgs {
		log.Printf("received enrichment job: %s", d.MessageId)
		var job models.EnrichmentJob
		if err := json.Unmarshal(d.Body, &job); err != nil {
			log.Printf("failed to decode job %s: %v", d.MessageId, err)
			continue
		}
		if err := s.processJob(context.Background(), job); err != nil {
			log.Printf("failed to process job %d: %v", job.ProductID, err)
			if err := s.ProductDatabase.SetProductFailed(context.Background(), job.ProductID); err != nil {
				log.Printf("failed to mark product %d failed: %v", job.ProductID, err)
			}
		}
	}
}

func (s *EnricherService) processJob(ctx context.Context, job models.EnrichmentJob) error {
	req := models.EnrichmentRequest{
		ImageFilename:    job.ImageFilename,
		ImageContentType: job.ImageContentType,
		Text:             job.Text,
		Price:            job.Price,
		ImageURL:         job.ImageURL,
		SellerEmail:      job.SellerEmail,
	}

	if job.ImageObjectKey != "" {
		imageData, err := s.fetchImage(ctx, job.ImageObjectKey)
		if err != nil {
			// enrichment still runs; the caption stage falls back to its
			// sentinel without image bytes
			log.Printf("failed to fetch image for product %d: %v", job.ProductID, err)
		} else {
			req.ImageData = imageData
		}
	}

	meta := s.pipeline.Enrich(ctx, req)

	if err := s.ProductDatabase.SetProductReady(ctx, job.ProductID, meta); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	if err := s.sendListingReadyEmail(job.SellerEmail, meta); err != nil {
		log.Printf("failed to send email for product %d: %v", job.ProductID, err)
	}

	log.Printf("successfully enriched product %d: %q [%s / %s]", job.ProductID, meta.Title, meta.Style, meta.Category)
	return nil
}

func (s *EnricherService) fetchImage(ctx context.Context, objectKey string) ([]byte, error) {
	object, err := s.minioClient.GetObject(ctx, s.cfg.Minio.Bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()

	imageBytes := new(bytes.Buffer)
	if _, err := io.Copy(imageBytes, object); err != nil {
		return nil, err
	}
	return imageBytes.Bytes(), nil
}

func (s *EnricherService) sendListingReadyEmail(toEmail string, meta models.ProductMetadata) error {
	if toEmail == "" || s.cfg.Email.APIKey == "" {
		return nil
	}

	ms := mailersend.NewMailersend(s.cfg.Email.APIKey)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	from := mailersend.From{
		Name:  "Craftopia",
		Email: s.cfg.Email.From,
	}
	recipients := []mailersend.Recipient{
		{
			Email: toEmail,
		},
	}

	text := fmt.Sprintf("your listing %q is live in category %s (tags: %s)",
		meta.Title, meta.Category, strings.Join(meta.Tags, ", "))

	message := ms.Email.NewMessage()
	message.SetFrom(from)
	message.SetRecipients(recipients)
	message.SetSubject("listing enriched")
	message.SetHTML("<h1>" + text + "</h1>")
	message.SetText(text)

	_, err := ms.Email.Send(ctx, message)
	return err
}
