package services

import (
	"context"
	"errors"
	"testing"

	"github.com/GarwanshiJain/ecommerce.repo/internal/repositories"
)

type stubSubscriberRepository struct {
	listFunc func(ctx context.Context) ([]string, error)
	addFunc  func(ctx context.Context, email string) (bool, error)
}

func (s *stubSubscriberRepository) List(ctx context.Context) ([]string, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx)
	}
	return []string{}, nil
}

func (s *stubSubscriberRepository) Add(ctx context.Context, email string) (bool, error) {
	if s.addFunc != nil {
		return s.addFunc(ctx, email)
	}
	return true, nil
}

func TestSubscriberServiceSubscribeValidEmail(t *testing.T) {
	var captured string
	repo := &stubSubscriberRepository{
		addFunc: func(ctx context.Context, email string) (bool, error) {
			captured = email
			return true, nil
		},
	}
	service, err := NewSubscriberService(SubscriberServiceDeps{Repository: repo})
	if err != nil {
		t.Fatalf("unexpected error constructing subscriber service: %v", err)
	}

	added, err := service.Subscribe(context.Background(), " foo@bar.com ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !added {
		t.Fatalf("expected subscription to be added")
	}
	if captured != "foo@bar.com" {
		t.Fatalf("expected trimmed email, got %q", captured)
	}
}

func TestSubscriberServiceSubscribeDuplicateAbsorbed(t *testing.T) {
	repo := &stubSubscriberRepository{
		addFunc: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
	}
	service, err := NewSubscriberService(SubscriberServiceDeps{Repository: repo})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	added, err := service.Subscribe(context.Background(), "foo@bar.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Fatalf("expected duplicate to report not added")
	}
}

func TestSubscriberServiceSubscribeRejectsInvalid(t *testing.T) {
	service, err := NewSubscriberService(SubscriberServiceDeps{Repository: &stubSubscriberRepository{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, email := range []string{"", "   ", "not-an-email", "a b@c.com", "Foo <foo@bar.com>"} {
		if _, err := service.Subscribe(context.Background(), email); !errors.Is(err, ErrSubscriberInvalidEmail) {
			t.Fatalf("expected ErrSubscriberInvalidEmail for %q, got %v", email, err)
		}
	}
}

func TestSubscriberServiceTranslatesRepoFailure(t *testing.T) {
	repo := &stubSubscriberRepository{
		addFunc: func(ctx context.Context, email string) (bool, error) {
			return false, repositories.NewUnavailable("stub", errors.New("down"))
		},
	}
	service, err := NewSubscriberService(SubscriberServiceDeps{Repository: repo})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Subscribe(context.Background(), "foo@bar.com"); !errors.Is(err, ErrSubscriberUnavailable) {
		t.Fatalf("expected ErrSubscriberUnavailable, got %v", err)
	}
}

func TestNewSubscriberServiceRequiresRepository(t *testing.T) {
	if _, err := NewSubscriberService(SubscriberServiceDeps{}); err == nil {
		t.Fatalf("expected error for missing repository")
	}
}
