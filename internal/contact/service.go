package contact

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/kirusanth290/portfolio/internal/logging"
)

var tracer = otel.Tracer("github.com/kirusanth290/portfolio/internal/contact")

// Recorder counts outcomes. A nil Recorder is allowed.
type Recorder interface {
	RecordContactOutcome(ctx context.Context, outcome string)
}

// Service validates submissions and relays them through a Sender.
// It holds no per-request state.
type Service struct {
	cfg      Config
	sender   Sender
	logger   *logging.Logger
	recorder Recorder
}

func NewService(cfg Config, sender Sender, logger *logging.Logger, recorder Recorder) *Service {
	return &Service{
		cfg:      cfg,
		sender:   sender,
		logger:   logger,
		recorder: recorder,
	}
}

// Submit runs parse, validate, configure and dispatch for one raw JSON body.
// It sends at most one email and never retries.
func (s *Service) Submit(ctx context.Context, raw []byte) Outcome {
	ctx, span := tracer.Start(ctx, "contact.Submit")
	defer span.End()

	err := s.submit(ctx, raw)
	outcome := OutcomeFor(err)

	span.SetAttributes(attribute.String("contact.outcome", outcome.String()))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	if s.recorder != nil {
		s.recorder.RecordContactOutcome(ctx, outcome.String())
	}

	return outcome
}

func (s *Service) submit(ctx context.Context, raw []byte) error {
	sub, err := ParseSubmission(raw)
	if err != nil {
		s.logger.Debug("Rejected contact submission: %v", err)
		return err
	}

	if err := sub.Validate(); err != nil {
		s.logger.Debug("Rejected contact submission: %v", err)
		return err
	}

	if s.cfg.APIKey == "" {
		s.logger.Error("Missing RESEND_API_KEY, cannot deliver contact submission")
		return ErrNotConfigured
	}

	email := BuildEmail(s.cfg, sub)

	id, err := s.sender.Send(ctx, email)
	if err != nil {
		s.logger.Error("Email delivery error: %v", err)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	s.logger.Info("Contact submission delivered to %s (id=%s)", email.To, id)
	return nil
}
