package service

import (
	"context"
	"log"
	"strconv"
	"time"

	"tiedan-noodle/shop-svc/internal/domain"
)

const (
	DefaultSubmitDelay = time.Second
	storeTimeout       = 5 * time.Second

	msgInvalidForm  = "please correct the highlighted fields"
	msgSubmitFailed = "something went wrong while submitting, please try again"
)

type Option func(*submitter)

// WithDelay sets the fixed wait before a valid submission completes.
func WithDelay(d time.Duration) Option {
	return func(s *submitter) { s.delay = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *submitter) { s.now = now }
}

// WithStrictContact turns on the length rules for names and addresses.
func WithStrictContact(strict bool) Option {
	return func(s *submitter) { s.strict = strict }
}

func WithPickupQR(gen QRGenerator, baseURL string) Option {
	return func(s *submitter) {
		s.qr = gen
		s.baseURL = baseURL
	}
}

// submitter holds what order and reservation submission have in common:
// the log, the event stream, the in-flight guard and the fixed delay.
type submitter struct {
	repo      SubmissionRepository
	publisher SubmissionPublisher
	guard     InFlightGuard

	delay   time.Duration
	now     func() time.Time
	strict  bool
	qr      QRGenerator
	baseURL string
}

func newSubmitter(repo SubmissionRepository, publisher SubmissionPublisher, guard InFlightGuard, opts []Option) submitter {
	s := submitter{
		repo:      repo,
		publisher: publisher,
		guard:     guard,
		delay:     DefaultSubmitDelay,
		now:       time.Now,
		qr:        DefaultQRGenerator{},
		baseURL:   "http://localhost:8080",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// begin claims the in-flight slot for kind+key. An empty key skips the guard.
// A guard that cannot be reached is logged and treated as free.
func (s *submitter) begin(ctx context.Context, kind, key string) (func(), error) {
	noop := func() {}
	if key == "" || s.guard == nil {
		return noop, nil
	}

	guardKey := kind + ":" + key
	ok, err := s.guard.Acquire(ctx, guardKey)
	if err != nil {
		log.Printf("in-flight guard unavailable for %s: %v", guardKey, err)
		return noop, nil
	}
	if !ok {
		return nil, ErrSubmissionInFlight
	}
	return func() {
		if err := s.guard.Release(context.Background(), guardKey); err != nil {
			log.Printf("failed to release in-flight guard %s: %v", guardKey, err)
		}
	}, nil
}

// run completes the submission in the background after the fixed delay. The
// guard is released before the result becomes visible.
func (s *submitter) run(release func(), complete func(now time.Time) domain.SubmitResult) *Pending {
	p := newPending()
	go func() {
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
		result := complete(s.now())
		release()
		p.complete(result)
	}()
	return p
}

func (s *submitter) publish(ctx context.Context, msg domain.KafkaMessage) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSubmission(ctx, msg); err != nil {
		log.Printf("failed to publish %s %s: %v", msg.Type, msg.ID, err)
	}
}

func rejected(errs []domain.FieldError) *Pending {
	return Resolved(domain.SubmitResult{Success: false, Message: msgInvalidForm, Errors: errs})
}

func failed() domain.SubmitResult {
	return domain.SubmitResult{Success: false, Message: msgSubmitFailed}
}

func newID(prefix string, now time.Time) string {
	return prefix + strconv.FormatInt(now.UnixMilli(), 10)
}
