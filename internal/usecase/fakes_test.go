package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
)

func discardLogger() logger.Logger {
	return logger.New(io.Discard, slog.LevelDebug)
}

type fakeProductRepo struct {
	products []domain.Product
	err      error
	diag     *StoreDiagnostics
	diagErr  error
	calls    int
}

func (f *fakeProductRepo) ListProducts(_ context.Context) ([]domain.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	// Репозиторий каждый раз отдаёт свежие записи.
	result := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		p.Images = append([]string(nil), p.Images...)
		result = append(result, p)
	}
	return result, nil
}

func (f *fakeProductRepo) Diagnose(_ context.Context) (*StoreDiagnostics, error) {
	if f.diagErr != nil {
		return nil, f.diagErr
	}
	return f.diag, nil
}

type fakeImageResolver struct {
	resolved map[string]string
	err      error
}

func (f *fakeImageResolver) ResolveImage(_ context.Context, ref string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.resolved[ref], nil
}

type fakeSubscribers struct {
	emails map[string]struct{}
	err    error
}

func (f *fakeSubscribers) Add(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.emails == nil {
		f.emails = make(map[string]struct{})
	}
	if _, ok := f.emails[email]; ok {
		return false, nil
	}
	f.emails[email] = struct{}{}
	return true, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*StorefrontEvent
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, event *StorefrontEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = append(f.events, event)
	return f.err
}
