package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateIntakeInput checks the minimal lead capture payload. Only name
// and country are mandatory at this stage; contact details can be filled
// in later.
func ValidateIntakeInput(input IntakeLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Country) == "" {
		errors = append(errors, ValidationError{"country", "is required"})
	}

	return errors
}

// ValidateFinalizeInput checks the full field set required when finalizing
// without a locator. With no prior partial record to fall back on, every
// field the quote emails depend on must be present.
func ValidateFinalizeInput(input FinalizeQuoteInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Country) == "" {
		errors = append(errors, ValidationError{"country", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Number) == "" {
		errors = append(errors, ValidationError{"number", "is required"})
	} else if !isValidPhoneNumber(input.Number) {
		errors = append(errors, ValidationError{"number", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.WebsiteType) == "" {
		errors = append(errors, ValidationError{"websiteType", "is required"})
	}
	if strings.TrimSpace(input.DesignStyle) == "" {
		errors = append(errors, ValidationError{"designStyle", "is required"})
	}
	if strings.TrimSpace(input.Timeline) == "" {
		errors = append(errors, ValidationError{"timeline", "is required"})
	}
	if strings.TrimSpace(input.Hosting) == "" {
		errors = append(errors, ValidationError{"hosting", "is required"})
	}
	if strings.TrimSpace(input.Domain) == "" {
		errors = append(errors, ValidationError{"domain", "is required"})
	}
	if strings.TrimSpace(input.Currency) == "" {
		errors = append(errors, ValidationError{"currency", "is required"})
	}
	if input.Price <= 0 {
		errors = append(errors, ValidationError{"price", "must be greater than zero"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	return len(cleaned) >= 7 && len(cleaned) <= 15
}

func validationFailure(errors []ValidationError) *DomainError {
	msg := "validation failed: "
	for i, e := range errors {
		if i > 0 {
			msg += ", "
		}
		msg += e.Field + " (" + e.Message + ")"
	}
	return &DomainError{Code: CodeValidation, Message: msg}
}
