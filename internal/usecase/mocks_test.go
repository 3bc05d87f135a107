package usecase_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/bimafrica/quote-api/internal/entity"
	"github.com/bimafrica/quote-api/internal/infra/mail"
)

// MockQuoteRepository
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) Create(ctx context.Context, q *entity.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuoteRepository) FindByID(ctx context.Context, id string) (*entity.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quote), args.Error(1)
}

func (m *MockQuoteRepository) Save(ctx context.Context, q *entity.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

// MockNotificationSender
type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// memQuoteRepository is an in-memory store for end-to-end workflow tests.
type memQuoteRepository struct {
	mu     sync.Mutex
	quotes map[string]*entity.Quote
}

func newMemQuoteRepository() *memQuoteRepository {
	return &memQuoteRepository{quotes: make(map[string]*entity.Quote)}
}

func (r *memQuoteRepository) Create(ctx context.Context, q *entity.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *q
	r.quotes[q.ID] = &stored
	return nil
}

func (r *memQuoteRepository) FindByID(ctx context.Context, id string) (*entity.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quotes[id]
	if !ok {
		return nil, entity.ErrQuoteNotFound
	}
	found := *q
	return &found, nil
}

func (r *memQuoteRepository) Save(ctx context.Context, q *entity.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quotes[q.ID]; !ok {
		return entity.ErrQuoteNotFound
	}
	stored := *q
	r.quotes[q.ID] = &stored
	return nil
}

// blockingRepo never acknowledges; it waits for the operation context to
// be cancelled. Used to exercise the store-timeout path.
type blockingRepo struct{}

func (blockingRepo) Create(ctx context.Context, q *entity.Quote) error {
	<-ctx.Done()
	return ctx.Err()
}

func (blockingRepo) FindByID(ctx context.Context, id string) (*entity.Quote, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingRepo) Save(ctx context.Context, q *entity.Quote) error {
	<-ctx.Done()
	return ctx.Err()
}

// slowSender never completes within its deadline.
type slowSender struct{}

func (slowSender) Send(ctx context.Context, msg mail.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

// countingSender records sends without a mail transport.
type countingSender struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (s *countingSender) Send(ctx context.Context, msg mail.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *countingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}
