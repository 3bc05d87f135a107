package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrQuoteNotFound is returned by repositories when a locator does not
// resolve to a stored record.
var ErrQuoteNotFound = errors.New("quote not found")

// ErrStoreUnavailable is returned when the store has no usable connection,
// e.g. the process started without a database URL.
var ErrStoreUnavailable = errors.New("store connection not ready")

// Quote is the single record of the system. It starts as a bare lead
// (intake stage) and is later enriched with project and pricing fields;
// QuoteNumber stays empty until finalization and is assigned exactly once.
type Quote struct {
	ID          string `json:"id"`
	QuoteNumber string `json:"quoteNumber,omitempty"`

	// Lead / contact info
	Name        string `json:"name"`
	CompanyName string `json:"companyName,omitempty"`
	Country     string `json:"country"`
	Email       string `json:"email,omitempty"`
	Number      string `json:"number,omitempty"`

	// Project details (filled during finalization)
	Message        string   `json:"message,omitempty"`
	WebsiteType    string   `json:"websiteType,omitempty"`
	Products       string   `json:"products,omitempty"`       // ecommerce only
	InsertProducts string   `json:"insertProducts,omitempty"` // ecommerce only
	Pages          string   `json:"pages,omitempty"`
	DesignStyle    string   `json:"designStyle,omitempty"`
	Features       []string `json:"features"`
	Timeline       string   `json:"timeline,omitempty"`
	Hosting        string   `json:"hosting,omitempty"`
	Domain         string   `json:"domain,omitempty"`

	// Pricing
	Currency string  `json:"currency"`
	Price    float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuoteRepositoryInterface interface {
	Create(ctx context.Context, q *Quote) error
	FindByID(ctx context.Context, id string) (*Quote, error)
	Save(ctx context.Context, q *Quote) error
}

// Factory
func NewQuote(name, companyName, country, email, number string) (*Quote, error) {
	q := &Quote{
		ID:          uuid.New().String(),
		Name:        name,
		CompanyName: companyName,
		Country:     country,
		Email:       email,
		Number:      number,
		Features:    []string{},
		Currency:    "MUR",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

func (q *Quote) Validate() error {
	if q.Name == "" {
		return errors.New("name is required")
	}
	if q.Country == "" {
		return errors.New("country is required")
	}
	return nil
}

// IsFinalized reports whether a quote number has been assigned.
func (q *Quote) IsFinalized() bool {
	return q.QuoteNumber != ""
}
