package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/bimafrica/quote-api/internal/entity"
	"github.com/bimafrica/quote-api/internal/infra/http/middleware"
)

type IntakeLeadUseCase struct {
	Repo   entity.QuoteRepositoryInterface
	Logger *zap.Logger

	PersistTimeout time.Duration
}

func NewIntakeLeadUseCase(repo entity.QuoteRepositoryInterface, logger *zap.Logger) *IntakeLeadUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeLeadUseCase{
		Repo:           repo,
		Logger:         logger,
		PersistTimeout: 10 * time.Second,
	}
}

// Execute captures a partial lead. The record is created with no quote
// number; finalization happens later through FinalizeQuoteUseCase using
// the returned id as locator.
func (uc *IntakeLeadUseCase) Execute(ctx context.Context, input IntakeLeadInput) (*IntakeLeadOutput, error) {
	if errs := ValidateIntakeInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	quote, err := entity.NewQuote(input.Name, input.CompanyName, input.Country, input.Email, input.Number)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	res := runWithDeadline(ctx, uc.PersistTimeout, func(c context.Context) error {
		return uc.Repo.Create(c, quote)
	})
	if err := uc.storeError(res); err != nil {
		return nil, err
	}

	uc.Logger.Info("lead captured",
		zap.String("id", quote.ID),
		zap.String("country", quote.Country),
	)
	middleware.RecordLeadIntake()

	return &IntakeLeadOutput{Success: true, ID: quote.ID}, nil
}

func (uc *IntakeLeadUseCase) storeError(res opResult) error {
	switch res.Outcome {
	case opTimedOut:
		middleware.RecordStoreTimeout()
		return &TechnicalError{Code: CodeStoreTimeout, Message: "store did not acknowledge in time"}
	case opFailed:
		if errors.Is(res.Err, entity.ErrStoreUnavailable) {
			return &TechnicalError{Code: CodeStoreUnavailable, Message: "store connection not ready"}
		}
		return &TechnicalError{Code: CodeDatabase, Message: "failed to persist lead: " + res.Err.Error()}
	}
	return nil
}
