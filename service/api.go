package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/craftopia/enrichment/config"
	"github.com/craftopia/enrichment/pkg/db"
	"github.com/craftopia/enrichment/pkg/models"
)

// APIService registers new listings: it stores the submitted image, creates
// a pending product row and queues an enrichment job for the worker.
type APIService struct {
	cfg             *config.Config
	e               *echo.Echo
	ProductDatabase db.ProductDatabase
	rabbitMQClient  *amqp.Channel
	minioClient     *minio.Client
}

func NewAPIService(cfg *config.Config) *APIService {
	return &APIService{
		e:   echo.New(),
		cfg: cfg}
}

func (s *APIService) StartService() error {
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
		return fmt.Errorf("failed to initialize Minio client: %v", err)
	}
	log.Println("connected to Minio")

	s.e.Use(middleware.Logger())
	s.e.Use(middleware.Recover())

	v1 := s.e.Group("/api/v1")
	v1.POST("/products", s.RegisterProduct)
	v1.GET("/products/:id", s.GetProduct)

	if err := s.e.Start(s.cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %v", err)
	}

	return nil
}

// RegisterProduct accepts a multipart listing submission: an optional image,
// free-text caption (any language), price and seller email. Enrichment runs
// asynchronously; the response carries the product id to poll.
func (s *APIService) RegisterProduct(c echo.Context) error {
	form := &struct {
		Email string  `json:"email" form:"email"`
		Text  string  `json:"text" form:"text"`
		Price float64 `json:"price" form:"price"`
	}{}
	if err := c.Bind(form); err != nil {
		return c.JSON(http.StatusBadRequest, err)
	}

	imageData, header, err := extractImageFromRequest(c)
	if err != nil {
		// listings without an image are allowed; the pipeline uses its
		// sentinel caption
		imageData = nil
	}

	ctx := c.Request().Context()

	id, err := s.ProductDatabase.CreateProduct(ctx, form.Email, form.Price, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err)
	}

	job := models.EnrichmentJob{
		ProductID:   id,
		Text:        form.Text,
		Price:       form.Price,
		SellerEmail: form.Email,
	}

	if len(imageData) > 0 {
		objectKey := strconv.Itoa(id)
		contentType := header.Header.Get("Content-Type")
		_, err = s.minioClient.PutObject(ctx, s.cfg.Minio.Bucket, objectKey,
			bytes.NewReader(imageData), int64(len(imageData)), minio.PutObjectOptions{ContentType: contentType})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, err)
		}
		job.ImageObjectKey = objectKey
		job.ImageFilename = header.Filename
		job.ImageContentType = contentType
		job.ImageURL = fmt.Sprintf("https://%s/%s/%s", s.cfg.Minio.Endpoint, s.cfg.Minio.Bucket, objectKey)
	}

	body, err := json.Marshal(job)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err)
	}
	err = s.rabbitMQClient.PublishWithContext(ctx, "", s.cfg.RabbitMQ.Queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   strconv.Itoa(id),
		Body:        body,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusCreated, map[string]int{"id": id})
}

func extractImageFromRequest(c echo.Context) ([]byte, *multipart.FileHeader, error) {
	c.Request().ParseMultipartForm(10 << 20) //max 10MB file size
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}

	file, exists := form.File["image"]
	if !exists || len(file) == 0 {
		return nil, nil, fmt.Errorf("image file not found in the req")
	}

	src, err := file[0].Open()
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, nil, err
	}
	return data, file[0], nil
}

func (s *APIService) GetProduct(c echo.Context) error {
	intID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err)
	}
	product, err := s.ProductDatabase.GetProductByID(c.Request().Context(), intID)
	if err != nil {
		log.Printf("failed to fetch product %d: %v", intID, err)
		return c.JSON(http.StatusInternalServerError, err)
	}

	if product.Status == models.TaskPending {
		return c.JSON(http.StatusOK, "listing is being enriched (pending)")
	}

	return c.JSON(http.StatusOK, product)
}
