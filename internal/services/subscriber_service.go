package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/GarwanshiJain/ecommerce.repo/internal/repositories"
)

var errSubscriberRepositoryRequired = errors.New("subscriber service: repository is required")

// ErrSubscriberInvalidEmail indicates the submitted value is not email-shaped.
var ErrSubscriberInvalidEmail = errors.New("subscriber service: invalid email")

// ErrSubscriberUnavailable indicates the backing store cannot fulfil the request.
var ErrSubscriberUnavailable = errors.New("subscriber service: unavailable")

// SubscriberServiceDeps wires the repository for newsletter signups.
type SubscriberServiceDeps struct {
	Repository repositories.SubscriberRepository
	Logger     func(context.Context, string, map[string]any)
}

type subscriberService struct {
	repo   repositories.SubscriberRepository
	logger func(context.Context, string, map[string]any)
}

// NewSubscriberService constructs a SubscriberService enforcing dependency
// validation.
func NewSubscriberService(deps SubscriberServiceDeps) (SubscriberService, error) {
	if deps.Repository == nil {
		return nil, errSubscriberRepositoryRequired
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &subscriberService{repo: deps.Repository, logger: logger}, nil
}

func (s *subscriberService) Subscribe(ctx context.Context, email string) (bool, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false, ErrSubscriberInvalidEmail
	}
	if addr, err := mail.ParseAddress(trimmed); err != nil || addr.Address != trimmed {
		return false, ErrSubscriberInvalidEmail
	}

	added, err := s.repo.Add(ctx, trimmed)
	if err != nil {
		s.logger(ctx, "newsletter.subscribe_failed", map[string]any{"error": err.Error()})
		return false, ErrSubscriberUnavailable
	}

	if added {
		s.logger(ctx, "newsletter.subscribed", nil)
	}
	return added, nil
}

func (s *subscriberService) Subscribers(ctx context.Context) ([]string, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		s.logger(ctx, "newsletter.list_failed", map[string]any{"error": err.Error()})
		return nil, ErrSubscriberUnavailable
	}
	return subs, nil
}
