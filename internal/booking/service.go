package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/wolfman30/tas-beauty-lounge/internal/catalog"
	"github.com/wolfman30/tas-beauty-lounge/internal/observability/metrics"
	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

var bookingTracer = otel.Tracer("lounge.internal.booking")

// ServiceLookup resolves treatments offered on the selection step.
type ServiceLookup interface {
	ByID(id string) (catalog.Service, error)
}

// Service drives wizard sessions held in a Store.
type Service struct {
	store   Store
	lookup  ServiceLookup
	metrics *metrics.SiteMetrics
	logger  *logging.Logger
	now     func() time.Time
}

// NewService constructs a booking wizard service.
func NewService(store Store, lookup ServiceLookup, m *metrics.SiteMetrics, logger *logging.Logger) *Service {
	if store == nil {
		panic("booking: store required")
	}
	if lookup == nil {
		panic("booking: service lookup required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{store: store, lookup: lookup, metrics: m, logger: logger, now: time.Now}
}

// Open starts a new wizard on the selection step.
func (s *Service) Open(ctx context.Context) (*Session, error) {
	ctx, span := bookingTracer.Start(ctx, "booking.open")
	defer span.End()

	session := NewSession(uuid.NewString(), s.now().UTC())
	if err := s.store.Save(ctx, session); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("lounge.booking_session", session.ID))
	s.metrics.ObserveBookingTransition("open", string(session.Step))
	s.logger.Debug("booking session opened", "session_id", session.ID)
	return session, nil
}

// Get returns the current state of a session.
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	return s.store.Load(ctx, id)
}

// SelectService picks a treatment and advances to scheduling.
func (s *Service) SelectService(ctx context.Context, id, serviceID string) (*Session, error) {
	if _, err := s.lookup.ByID(serviceID); err != nil {
		return nil, err
	}
	return s.apply(ctx, id, "select_service", func(session *Session) error {
		return session.SelectService(serviceID)
	})
}

// SetSchedule records date and slot on the scheduling step.
func (s *Service) SetSchedule(ctx context.Context, id, date, slot string) (*Session, error) {
	return s.apply(ctx, id, "set_schedule", func(session *Session) error {
		return session.SetSchedule(date, slot)
	})
}

// Continue advances from scheduling to finalize.
func (s *Service) Continue(ctx context.Context, id string) (*Session, error) {
	return s.apply(ctx, id, "continue", (*Session).Continue)
}

// Back returns from scheduling to selection.
func (s *Service) Back(ctx context.Context, id string) (*Session, error) {
	return s.apply(ctx, id, "back", (*Session).Back)
}

// SetContact records the visitor's contact profile.
func (s *Service) SetContact(ctx context.Context, id, name, email, phone string) (*Session, error) {
	return s.apply(ctx, id, "set_contact", func(session *Session) error {
		return session.SetContact(name, email, phone)
	})
}

// Confirm closes a finalized wizard. No reservation is submitted anywhere.
func (s *Service) Confirm(ctx context.Context, id string) error {
	_, err := s.apply(ctx, id, "confirm", (*Session).Confirm)
	return err
}

// Close discards a session from any step. Closing an unknown session is not an error.
func (s *Service) Close(ctx context.Context, id string) error {
	ctx, span := bookingTracer.Start(ctx, "booking.close")
	defer span.End()
	span.SetAttributes(attribute.String("lounge.booking_session", id))

	if err := s.store.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}
	s.metrics.ObserveBookingTransition("close", string(StepClosed))
	s.logger.Debug("booking session closed", "session_id", id)
	return nil
}

func (s *Service) apply(ctx context.Context, id, event string, fn func(*Session) error) (*Session, error) {
	ctx, span := bookingTracer.Start(ctx, "booking."+event)
	defer span.End()
	span.SetAttributes(attribute.String("lounge.booking_session", id))

	session, err := s.store.Load(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := fn(session); err != nil {
		if !errors.Is(err, ErrInvalidTransition) {
			span.RecordError(err)
		}
		return nil, err
	}

	if session.Step == StepClosed {
		if err := s.store.Delete(ctx, id); err != nil {
			span.RecordError(err)
			return nil, err
		}
		s.logger.Info("booking wizard confirmed", "session_id", id)
	} else {
		session.UpdatedAt = s.now().UTC()
		if err := s.store.Save(ctx, session); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}
	span.SetAttributes(attribute.String("lounge.booking_step", string(session.Step)))
	s.metrics.ObserveBookingTransition(event, string(session.Step))
	return session, nil
}
