package usecase

// Error codes used across the quote workflows. Handlers map these onto
// HTTP statuses, so codes are part of the contract.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeQuoteNotFound    = "QUOTE_NOT_FOUND"
	CodeStoreTimeout     = "STORE_TIMEOUT"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeDatabase         = "DATABASE_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
