package service

import (
	"context"

	"tiedan-noodle/shop-svc/internal/domain"
)

// Pending is a submission that settles exactly once to a SubmitResult.
// Abandoning Wait does not stop the submission itself.
type Pending struct {
	done   chan struct{}
	result domain.SubmitResult
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Resolved returns a Pending that has already settled to result.
func Resolved(result domain.SubmitResult) *Pending {
	p := newPending()
	p.complete(result)
	return p
}

func (p *Pending) complete(result domain.SubmitResult) {
	p.result = result
	close(p.done)
}

func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Result returns the outcome and true once the submission has settled.
func (p *Pending) Result() (domain.SubmitResult, bool) {
	select {
	case <-p.done:
		return p.result, true
	default:
		return domain.SubmitResult{}, false
	}
}

func (p *Pending) Wait(ctx context.Context) (domain.SubmitResult, error) {
	select {
	case <-p.done:
		return p.result, nil
	case <-ctx.Done():
		return domain.SubmitResult{}, ctx.Err()
	}
}
