package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/bimafrica/quote-api/internal/entity"
)

// QuoteRepository persists quotes in Postgres. DB may be nil when the
// process started without store connectivity; every method guards for
// that so the API keeps answering (with 503s on store paths) instead of
// crashing at startup.
type QuoteRepository struct {
	DB *sql.DB
}

func NewQuoteRepository(db *sql.DB) *QuoteRepository {
	return &QuoteRepository{DB: db}
}

func (r *QuoteRepository) Create(ctx context.Context, q *entity.Quote) error {
	if r.DB == nil {
		return entity.ErrStoreUnavailable
	}

	query := `
		INSERT INTO quotes (
			id, quote_number, name, company_name, country, email, number,
			message, website_type, products, insert_products, pages,
			design_style, features, timeline, hosting, domain, currency, price
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING created_at, updated_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		q.ID,
		nullString(q.QuoteNumber),
		q.Name,
		q.CompanyName,
		q.Country,
		q.Email,
		q.Number,
		q.Message,
		q.WebsiteType,
		q.Products,
		q.InsertProducts,
		q.Pages,
		q.DesignStyle,
		pq.Array(q.Features),
		q.Timeline,
		q.Hosting,
		q.Domain,
		q.Currency,
		q.Price,
	).Scan(&q.CreatedAt, &q.UpdatedAt)

	return err
}

func (r *QuoteRepository) FindByID(ctx context.Context, id string) (*entity.Quote, error) {
	if r.DB == nil {
		return nil, entity.ErrStoreUnavailable
	}

	query := `
		SELECT id, COALESCE(quote_number, ''), name, company_name, country,
		       email, number, message, website_type, products,
		       insert_products, pages, design_style, features, timeline,
		       hosting, domain, currency, price, created_at, updated_at
		FROM quotes
		WHERE id = $1
	`

	q := &entity.Quote{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&q.ID,
		&q.QuoteNumber,
		&q.Name,
		&q.CompanyName,
		&q.Country,
		&q.Email,
		&q.Number,
		&q.Message,
		&q.WebsiteType,
		&q.Products,
		&q.InsertProducts,
		&q.Pages,
		&q.DesignStyle,
		pq.Array(&q.Features),
		&q.Timeline,
		&q.Hosting,
		&q.Domain,
		&q.Currency,
		&q.Price,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrQuoteNotFound
	}
	if err != nil {
		return nil, err
	}

	if q.Features == nil {
		q.Features = []string{}
	}

	return q, nil
}

func (r *QuoteRepository) Save(ctx context.Context, q *entity.Quote) error {
	if r.DB == nil {
		return entity.ErrStoreUnavailable
	}

	query := `
		UPDATE quotes SET
			quote_number = $2,
			name = $3,
			company_name = $4,
			country = $5,
			email = $6,
			number = $7,
			message = $8,
			website_type = $9,
			products = $10,
			insert_products = $11,
			pages = $12,
			design_style = $13,
			features = $14,
			timeline = $15,
			hosting = $16,
			domain = $17,
			currency = $18,
			price = $19,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		q.ID,
		nullString(q.QuoteNumber),
		q.Name,
		q.CompanyName,
		q.Country,
		q.Email,
		q.Number,
		q.Message,
		q.WebsiteType,
		q.Products,
		q.InsertProducts,
		q.Pages,
		q.DesignStyle,
		pq.Array(q.Features),
		q.Timeline,
		q.Hosting,
		q.Domain,
		q.Currency,
		q.Price,
	).Scan(&q.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrQuoteNotFound
	}

	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
