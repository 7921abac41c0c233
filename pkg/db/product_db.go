package db

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/craftopia/enrichment/pkg/models"
)

const (
	CREATE_PRODUCT_TABLE = `CREATE TABLE IF NOT EXISTS products(
		id SERIAL PRIMARY KEY,
		status VARCHAR(32) NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		category VARCHAR(255) NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		image_url VARCHAR(512) NOT NULL,
		seller_email VARCHAR(255) NOT NULL,
		tags TEXT NOT NULL,
		style VARCHAR(64) NOT NULL,
		original_text TEXT NOT NULL,
		translated_text TEXT NOT NULL
	);`
)

type ProductDatabase interface {
	CreateProduct(ctx context.Context, sellerEmail string, price float64, imageURL string) (int, error)
	SetProductReady(ctx context.Context, productID int, meta models.ProductMetadata) error
	SetProductFailed(ctx context.Context, productID int) error
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
}

type ProductDatabaseImpl struct {
	db *sqlx.DB
}

func NewProductDatabase(autoCreate bool, db *sqlx.DB) (*ProductDatabaseImpl, error) {
	if autoCreate {
		if _, err := db.Exec(CREATE_PRODUCT_TABLE); err != nil {
			return nil, err
		}
	}
	return &ProductDatabaseImpl{db: db}, nil
}

func (r *ProductDatabaseImpl) CreateProduct(ctx context.Context, sellerEmail string, price float64, imageURL string) (int, error) {
	var id int
	err := r.db.QueryRow(`INSERT INTO products(status, title, description, category, price, image_url, seller_email, tags, style, original_text, translated_text)
		VALUES($1, '', '', '', $2, $3, $4, '', '', '', '') RETURNING id`,
		models.TaskPending, price, imageURL, sellerEmail).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductDatabaseImpl) SetProductReady(ctx context.Context, productID int, meta models.ProductMetadata) error {
	_, err := r.db.Exec(`UPDATE products SET status=$1, title=$2, description=$3, category=$4, image_url=$5, tags=$6, style=$7, original_text=$8, translated_text=$9 WHERE id=$10`,
		models.TaskReady, meta.Title, meta.Description, meta.Category, meta.ImageURL,
		strings.Join(meta.Tags, ","), meta.Style, meta.OriginalText, meta.TranslatedText, productID)
	return err
}

func (r *ProductDatabaseImpl) SetProductFailed(ctx context.Context, productID int) error {
	_, err := r.db.Exec("UPDATE products SET status=$1 WHERE id=$2", models.TaskFailed, productID)
	return err
}

func (r *ProductDatabaseImpl) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	product := &models.Product{}
	err := r.db.Get(product, "SELECT * FROM products WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return product, nil
}
