package leads

import (
	"context"
	"fmt"

	"github.com/smartsites-digital/leadchat/pkg/logging"
)

// Notifier is told about every stored lead. Notification failures never fail
// the submission itself.
type Notifier interface {
	NotifyLead(ctx context.Context, lead *Lead) error
}

// Metrics records lead submission outcomes.
type Metrics interface {
	ObserveLeadSubmitted(status string)
}

// Service validates, stores and announces finished leads.
type Service struct {
	repo     Repository
	notifier Notifier
	metrics  Metrics
	logger   *logging.Logger
}

// NewService creates a lead service. notifier and metrics may be nil.
func NewService(repo Repository, notifier Notifier, metrics Metrics, logger *logging.Logger) *Service {
	if repo == nil {
		panic("leads: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Submit stores the lead and notifies the studio inbox.
func (s *Service) Submit(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	lead, err := s.repo.Create(ctx, req)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ObserveLeadSubmitted("error")
		}
		return nil, fmt.Errorf("leads: submit: %w", err)
	}

	s.logger.Info("lead created", "id", lead.ID, "service", lead.Service, "source", lead.Source)
	if s.metrics != nil {
		s.metrics.ObserveLeadSubmitted("ok")
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyLead(ctx, lead); err != nil {
			s.logger.Error("lead notification failed", "error", err, "id", lead.ID)
		}
	}

	return lead, nil
}

// SubmitChat adapts a finished chat record to Submit. It is the single
// submission path for completed conversations.
func (s *Service) SubmitChat(ctx context.Context, data *ChatData) (string, error) {
	lead, err := s.Submit(ctx, &CreateLeadRequest{Data: *data, Source: "chat"})
	if err != nil {
		return "", err
	}
	return lead.ID, nil
}
