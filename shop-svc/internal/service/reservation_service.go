package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"tiedan-noodle/shop-svc/internal/availability"
	"tiedan-noodle/shop-svc/internal/domain"
	"tiedan-noodle/shop-svc/internal/format"
	"tiedan-noodle/shop-svc/internal/validation"

	"github.com/shopspring/decimal"
)

type ReservationService struct {
	submitter
	calc *availability.Calculator
}

func NewReservationService(calc *availability.Calculator, repo SubmissionRepository, publisher SubmissionPublisher, guard InFlightGuard, opts ...Option) *ReservationService {
	return &ReservationService{
		submitter: newSubmitter(repo, publisher, guard, opts),
		calc:      calc,
	}
}

// AvailableDates lists the bookable dates for the date picker, starting
// tomorrow.
func (s *ReservationService) AvailableDates() []string {
	dates := s.calc.AvailableDates(s.calc.Today(), availability.DefaultWindowDays)
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(availability.DateLayout))
	}
	return out
}

func (s *ReservationService) AvailableTimes(date string) ([]string, error) {
	d, err := s.calc.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return s.calc.AvailableTimes(d), nil
}

func (s *ReservationService) Validate(req domain.ReservationRequest) domain.ValidationResult {
	return s.calc.ValidateReservation(req)
}

func (s *ReservationService) Submit(ctx context.Context, key string, req domain.ReservationRequest) (*Pending, error) {
	if res := s.Validate(req); !res.IsValid {
		return rejected(res.Errors), nil
	}

	release, err := s.begin(ctx, "reservation", key)
	if err != nil {
		return nil, err
	}
	return s.run(release, func(now time.Time) domain.SubmitResult {
		return s.book(req, now)
	}), nil
}

func (s *ReservationService) book(req domain.ReservationRequest, now time.Time) domain.SubmitResult {
	date, _ := s.calc.ParseDate(req.Date)
	details := domain.ReservationDetails{
		ReservationID: newID("RES", now),
		Date:          date.Format(availability.DateLayout),
		Time:          req.Time,
		PartySize:     req.PartySize,
		Customer: domain.Contact{
			Name:  strings.TrimSpace(req.Customer.Name),
			Phone: validation.NormalizePhone(req.Customer.Phone),
		},
		Timestamp: now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if s.repo != nil {
		if err := s.repo.RecordReservation(ctx, details); err != nil {
			log.Printf("failed to record reservation %s: %v", details.ReservationID, err)
			return failed()
		}
	}

	s.publish(ctx, domain.KafkaMessage{
		Type:       domain.EventReservationSubmitted,
		ID:         details.ReservationID,
		TotalPrice: decimal.Zero,
		Date:       details.Date,
		Time:       details.Time,
		PartySize:  details.PartySize,
		Timestamp:  now,
	})

	return domain.SubmitResult{
		Success: true,
		ID:      details.ReservationID,
		Message: fmt.Sprintf("Reservation confirmed! We look forward to seeing you on %s at %s", format.Date(date), details.Time),
		Details: &details,
	}
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.ReservationDetails, error) {
	if s.repo == nil {
		return nil, ErrNotFound
	}
	return s.repo.GetReservation(ctx, id)
}
