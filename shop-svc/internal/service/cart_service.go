package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"tiedan-noodle/shop-svc/internal/cart"
	"tiedan-noodle/shop-svc/internal/catalog"
	"tiedan-noodle/shop-svc/internal/domain"

	"github.com/google/uuid"
)

// CartService keeps one cart per session. Every change is load, apply, save
// under a per-session lock.
type CartService struct {
	repo  CartRepository
	menu  *catalog.Menu
	locks sync.Map
}

func NewCartService(repo CartRepository, menu *catalog.Menu) *CartService {
	return &CartService{repo: repo, menu: menu}
}

func (s *CartService) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if err := s.repo.Create(ctx, id); err != nil {
		return "", fmt.Errorf("failed to create cart session: %w", err)
	}
	return id, nil
}

func (s *CartService) Get(ctx context.Context, sessionID string) (cart.State, error) {
	return s.load(ctx, sessionID)
}

// AddItem resolves itemID against the menu before adding it.
func (s *CartService) AddItem(ctx context.Context, sessionID, itemID string, quantity int, notes string) (cart.State, error) {
	item, ok := s.menu.Get(itemID)
	if !ok {
		return cart.State{}, ErrUnknownItem
	}
	if !item.Available {
		return cart.State{}, ErrItemUnavailable
	}
	return s.Apply(ctx, sessionID, cart.AddItem{Item: item, Quantity: quantity, Notes: notes})
}

func (s *CartService) Apply(ctx context.Context, sessionID string, cmd cart.Command) (cart.State, error) {
	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return cart.State{}, err
	}

	next := cart.NewStore(state).Dispatch(cmd)
	if err := s.repo.Save(ctx, sessionID, records(next)); err != nil {
		return cart.State{}, fmt.Errorf("failed to save cart %s: %w", sessionID, err)
	}
	return next, nil
}

func (s *CartService) Delete(ctx context.Context, sessionID string) error {
	defer s.locks.Delete(sessionID)
	return s.repo.Delete(ctx, sessionID)
}

func (s *CartService) lock(sessionID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// load rebuilds the state from stored records. Items that left the menu
// since they were saved are dropped.
func (s *CartService) load(ctx context.Context, sessionID string) (cart.State, error) {
	recs, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return cart.State{}, err
	}

	lines := make([]cart.Line, 0, len(recs))
	for _, r := range recs {
		item, ok := s.menu.Get(r.ItemID)
		if !ok {
			log.Printf("dropping unknown item %s from cart %s", r.ItemID, sessionID)
			continue
		}
		lines = append(lines, cart.Line{Item: item, Quantity: r.Quantity, Notes: r.Notes})
	}
	return cart.Restore(lines), nil
}

func records(state cart.State) []domain.CartLineRecord {
	lines := state.Lines()
	out := make([]domain.CartLineRecord, 0, len(lines))
	for _, l := range lines {
		out = append(out, domain.CartLineRecord{ItemID: l.Item.ID, Quantity: l.Quantity, Notes: l.Notes})
	}
	return out
}
