package mail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bimafrica/quote-api/internal/entity"
	"github.com/bimafrica/quote-api/internal/infra/mail"
)

func finalizedQuote() *entity.Quote {
	return &entity.Quote{
		ID:          "q-1",
		QuoteNumber: "BIM-20250309-ABC123-4321",
		Name:        "Amy",
		Country:     "Mauritius",
		Email:       "amy@example.com",
		Number:      "+230 5789 1234",
		WebsiteType: "business",
		Pages:       "5-10",
		DesignStyle: "modern",
		Features:    []string{"seo-friendly", "blog"},
		Timeline:    "2-weeks",
		Hosting:     "client",
		Domain:      "bim",
		Currency:    "MUR",
		Price:       50000,
	}
}

func TestFeaturesText(t *testing.T) {
	assert.Equal(t, "Seo friendly, Blog", mail.FeaturesText([]string{"seo-friendly", "blog"}))
	assert.Equal(t, "None", mail.FeaturesText(nil))
	assert.Equal(t, "None", mail.FeaturesText([]string{}))
	assert.Equal(t, "Payment gateway", mail.FeaturesText([]string{"PAYMENT-GATEWAY"}))
}

func TestPriceText(t *testing.T) {
	assert.Equal(t, "MUR 1,235", mail.PriceText("MUR", 1234.6))
	assert.Equal(t, "MUR 50,000", mail.PriceText("MUR", 50000))
	assert.Equal(t, "USD 999", mail.PriceText("USD", 999.4))
	assert.Equal(t, "EUR 1,000,000", mail.PriceText("EUR", 1000000))
}

func TestChoiceText(t *testing.T) {
	assert.Equal(t, "Client to Provide", mail.ChoiceText("client"))
	assert.Equal(t, "Bim Africa to Provide", mail.ChoiceText("bim"))
	assert.Equal(t, "custom-provider", mail.ChoiceText("custom-provider"))
}

func TestBuildClientEmail(t *testing.T) {
	q := finalizedQuote()

	msg := mail.BuildClientEmail(q)

	assert.Equal(t, "amy@example.com", msg.To)
	assert.Equal(t, "Your Website Quotation - BIM-20250309-ABC123-4321", msg.Subject)
	assert.Contains(t, msg.HTML, "Hi Amy")
	assert.Contains(t, msg.HTML, "Pages:")
	assert.Contains(t, msg.HTML, "5-10")
	assert.Contains(t, msg.HTML, "Seo friendly, Blog")
	assert.Contains(t, msg.HTML, "Client to Provide")
	assert.Contains(t, msg.HTML, "Bim Africa to Provide")
	assert.Contains(t, msg.HTML, "MUR 50,000")
	assert.NotContains(t, msg.HTML, "Products:")
}

func TestBuildAdminEmail(t *testing.T) {
	q := finalizedQuote()

	msg := mail.BuildAdminEmail(q, "sales@bim.africa")

	assert.Equal(t, "sales@bim.africa", msg.To)
	assert.Equal(t, "New Quote Request - BIM-20250309-ABC123-4321", msg.Subject)
	assert.Contains(t, msg.HTML, "amy@example.com")
	assert.Contains(t, msg.HTML, "+230 5789 1234")
	assert.Contains(t, msg.HTML, "Mauritius")
}

func TestEcommerceShowsProductsNotPages(t *testing.T) {
	q := finalizedQuote()
	q.WebsiteType = "ecommerce"
	q.Products = "50-100"
	q.InsertProducts = "client"

	msg := mail.BuildClientEmail(q)

	assert.Contains(t, msg.HTML, "Products:")
	assert.Contains(t, msg.HTML, "50-100")
	assert.NotContains(t, msg.HTML, "Pages:")
}

func TestLandingShowsNeitherPagesNorProducts(t *testing.T) {
	q := finalizedQuote()
	q.WebsiteType = "landing"
	q.Products = ""

	msg := mail.BuildClientEmail(q)

	assert.NotContains(t, msg.HTML, "Pages:")
	assert.NotContains(t, msg.HTML, "Products:")
}
