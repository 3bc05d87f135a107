package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bimafrica/quote-api/internal/entity"
	"github.com/bimafrica/quote-api/internal/infra/http/middleware"
	"github.com/bimafrica/quote-api/internal/infra/mail"
)

type FinalizeQuoteUseCase struct {
	Repo         entity.QuoteRepositoryInterface
	Sender       NotificationSender
	AdminAddress string
	Logger       *zap.Logger

	PersistTimeout time.Duration
	MailTimeout    time.Duration

	// Overridable in tests.
	Now          func() time.Time
	MintFragment FragmentMinter
}

func NewFinalizeQuoteUseCase(
	repo entity.QuoteRepositoryInterface,
	sender NotificationSender,
	adminAddress string,
	logger *zap.Logger,
) *FinalizeQuoteUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinalizeQuoteUseCase{
		Repo:           repo,
		Sender:         sender,
		AdminAddress:   adminAddress,
		Logger:         logger,
		PersistTimeout: 10 * time.Second,
		MailTimeout:    10 * time.Second,
		Now:            time.Now,
		MintFragment:   DefaultFragmentMinter,
	}
}

// Execute finalizes a quote: locate-or-create the record, merge incoming
// fields, assign the quote number exactly once, persist under a deadline,
// then dispatch the two notification emails concurrently. The result
// depends only on persistence; notification failures are logged and
// swallowed.
func (uc *FinalizeQuoteUseCase) Execute(ctx context.Context, input FinalizeQuoteInput) (*FinalizeQuoteOutput, error) {
	var quote *entity.Quote
	creating := input.ID == ""

	if creating {
		if errs := ValidateFinalizeInput(input); len(errs) > 0 {
			return nil, validationFailure(errs)
		}
		q, err := entity.NewQuote(input.Name, input.CompanyName, input.Country, input.Email, input.Number)
		if err != nil {
			return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
		}
		quote = q
	} else {
		q, err := uc.findQuote(ctx, input.ID)
		if err != nil {
			return nil, err
		}
		quote = q
	}

	mergeInput(quote, input)
	if err := quote.Validate(); err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if !quote.IsFinalized() {
		quote.QuoteNumber = NewQuoteNumber(uc.Now(), uc.MintFragment)
	}

	persist := uc.Repo.Save
	if creating {
		persist = uc.Repo.Create
	}
	res := runWithDeadline(ctx, uc.PersistTimeout, func(c context.Context) error {
		return persist(c, quote)
	})
	if err := uc.storeError(res); err != nil {
		return nil, err
	}

	// Persistence is acknowledged; only now are notifications attempted.
	uc.notify(ctx, quote)

	uc.Logger.Info("quote finalized",
		zap.String("id", quote.ID),
		zap.String("quote_number", quote.QuoteNumber),
	)
	middleware.RecordQuoteFinalized()

	return &FinalizeQuoteOutput{
		Success:     true,
		QuoteNumber: quote.QuoteNumber,
		ID:          quote.ID,
	}, nil
}

func (uc *FinalizeQuoteUseCase) findQuote(ctx context.Context, id string) (*entity.Quote, error) {
	var quote *entity.Quote
	res := runWithDeadline(ctx, uc.PersistTimeout, func(c context.Context) error {
		q, err := uc.Repo.FindByID(c, id)
		quote = q
		return err
	})
	switch res.Outcome {
	case opTimedOut:
		middleware.RecordStoreTimeout()
		return nil, &TechnicalError{Code: CodeStoreTimeout, Message: "store did not acknowledge in time"}
	case opFailed:
		if errors.Is(res.Err, entity.ErrQuoteNotFound) {
			return nil, &DomainError{Code: CodeQuoteNotFound, Message: "no quote found for id " + id}
		}
		if errors.Is(res.Err, entity.ErrStoreUnavailable) {
			return nil, &TechnicalError{Code: CodeStoreUnavailable, Message: "store connection not ready"}
		}
		return nil, &TechnicalError{Code: CodeDatabase, Message: "failed to load quote: " + res.Err.Error()}
	}
	return quote, nil
}

func (uc *FinalizeQuoteUseCase) storeError(res opResult) error {
	switch res.Outcome {
	case opTimedOut:
		middleware.RecordStoreTimeout()
		return &TechnicalError{Code: CodeStoreTimeout, Message: "store did not acknowledge in time"}
	case opFailed:
		if errors.Is(res.Err, entity.ErrStoreUnavailable) {
			return &TechnicalError{Code: CodeStoreUnavailable, Message: "store connection not ready"}
		}
		return &TechnicalError{Code: CodeDatabase, Message: "failed to persist quote: " + res.Err.Error()}
	}
	return nil
}

// notify dispatches the client and admin emails concurrently, each under
// its own deadline. A timed out send is abandoned, not cancelled; the
// sibling notification is unaffected.
func (uc *FinalizeQuoteUseCase) notify(ctx context.Context, quote *entity.Quote) {
	messages := map[string]mail.Message{
		"client": mail.BuildClientEmail(quote),
		"admin":  mail.BuildAdminEmail(quote, uc.AdminAddress),
	}

	var wg sync.WaitGroup
	for recipient, msg := range messages {
		wg.Add(1)
		go func(recipient string, msg mail.Message) {
			defer wg.Done()
			res := runWithDeadline(ctx, uc.MailTimeout, func(c context.Context) error {
				return uc.Sender.Send(c, msg)
			})
			if res.Outcome != opCompleted {
				uc.Logger.Warn("notification not delivered",
					zap.String("recipient", recipient),
					zap.String("to", msg.To),
					zap.Error(res.Err),
				)
				middleware.RecordNotificationError(recipient)
			}
		}(recipient, msg)
	}
	wg.Wait()
}

// mergeInput applies the non-destructive overwrite rule: an incoming field
// replaces the stored value only when present. Empty strings, empty
// feature sets and a zero price count as absent, so a stored value can be
// replaced but never cleared through this path.
func mergeInput(q *entity.Quote, input FinalizeQuoteInput) {
	setString(&q.Name, input.Name)
	setString(&q.CompanyName, input.CompanyName)
	setString(&q.Country, input.Country)
	setString(&q.Email, input.Email)
	setString(&q.Number, input.Number)
	setString(&q.Message, input.Message)
	setString(&q.WebsiteType, input.WebsiteType)
	setString(&q.Products, input.Products)
	setString(&q.InsertProducts, input.InsertProducts)
	setString(&q.Pages, input.Pages)
	setString(&q.DesignStyle, input.DesignStyle)
	setString(&q.Timeline, input.Timeline)
	setString(&q.Hosting, input.Hosting)
	setString(&q.Domain, input.Domain)
	setString(&q.Currency, input.Currency)

	if len(input.Features) > 0 {
		q.Features = input.Features
	}
	if q.Features == nil {
		q.Features = []string{}
	}
	if input.Price > 0 {
		q.Price = input.Price
	}
}

func setString(dst *string, incoming string) {
	if incoming != "" {
		*dst = incoming
	}
}
