package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bimafrica/quote-api/internal/usecase"
)

func TestValidateIntakeInput(t *testing.T) {
	errs := usecase.ValidateIntakeInput(usecase.IntakeLeadInput{})
	assert.Len(t, errs, 2)

	errs = usecase.ValidateIntakeInput(usecase.IntakeLeadInput{Name: "Amy", Country: "Mauritius"})
	assert.Empty(t, errs)

	// Contact details are optional at intake.
	errs = usecase.ValidateIntakeInput(usecase.IntakeLeadInput{Name: "Amy", Country: "Mauritius", Email: "not-an-email"})
	assert.Empty(t, errs)
}

func TestValidateFinalizeInput(t *testing.T) {
	errs := usecase.ValidateFinalizeInput(usecase.FinalizeQuoteInput{})
	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, f := range []string{"name", "country", "email", "number", "websiteType", "designStyle", "timeline", "hosting", "domain", "currency", "price"} {
		assert.True(t, fields[f], "expected validation error for %s", f)
	}

	errs = usecase.ValidateFinalizeInput(usecase.FinalizeQuoteInput{
		Name:        "Amy",
		Country:     "Mauritius",
		Email:       "amy@example.com",
		Number:      "+230 5789 1234",
		WebsiteType: "business",
		DesignStyle: "modern",
		Timeline:    "2-weeks",
		Hosting:     "client",
		Domain:      "client",
		Currency:    "MUR",
		Price:       50000,
	})
	assert.Empty(t, errs)
}

func TestValidateFinalizeInputRejectsBadEmail(t *testing.T) {
	input := usecase.FinalizeQuoteInput{
		Name:        "Amy",
		Country:     "Mauritius",
		Email:       "not-an-email",
		Number:      "+230 5789 1234",
		WebsiteType: "business",
		DesignStyle: "modern",
		Timeline:    "2-weeks",
		Hosting:     "client",
		Domain:      "client",
		Currency:    "MUR",
		Price:       50000,
	}

	errs := usecase.ValidateFinalizeInput(input)
	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}
