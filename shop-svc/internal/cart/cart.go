// Package cart implements the shopping cart as a pure transition function over
// an immutable State, plus a small Store that holds one session's state.
package cart

import (
	"sync"

	"tiedan-noodle/shop-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type Line struct {
	Item     domain.MenuItem `json:"menu_item"`
	Quantity int             `json:"quantity"`
	Notes    string          `json:"notes"`
}

// State is an ordered list of lines, one per menu item id, each with
// quantity >= 1. Lines keep the order in which their item was first added.
type State struct {
	lines []Line
}

func Empty() State {
	return State{}
}

func (s State) Lines() []Line {
	return append([]Line(nil), s.lines...)
}

func (s State) Len() int {
	return len(s.lines)
}

func (s State) IsEmpty() bool {
	return len(s.lines) == 0
}

func (s State) Line(itemID string) (Line, bool) {
	if i := s.index(itemID); i >= 0 {
		return s.lines[i], true
	}
	return Line{}, false
}

func (s State) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

func (s State) ItemCount() int {
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

func (s State) index(itemID string) int {
	for i, l := range s.lines {
		if l.Item.ID == itemID {
			return i
		}
	}
	return -1
}

// Restore rebuilds a state from persisted lines, merging duplicates and
// dropping non-positive quantities so the usual invariants hold.
func Restore(lines []Line) State {
	s := Empty()
	for _, l := range lines {
		s = Apply(s, AddItem{Item: l.Item, Quantity: l.Quantity, Notes: l.Notes})
	}
	return s
}

type Command interface {
	apply(State) State
}

type AddItem struct {
	Item     domain.MenuItem
	Quantity int
	Notes    string
}

type RemoveItem struct {
	ItemID string
}

type UpdateQuantity struct {
	ItemID   string
	Quantity int
}

type UpdateNotes struct {
	ItemID string
	Notes  string
}

type Clear struct{}

// Deduct lowers a line's quantity by Quantity and drops the line once nothing
// is left. Lines added or topped up since a snapshot keep the difference.
type Deduct struct {
	ItemID   string
	Quantity int
}

// Checkout returns the command that takes the lines of an ordered snapshot
// out of the current cart.
func Checkout(ordered State) Batch {
	batch := make(Batch, 0, len(ordered.lines))
	for _, l := range ordered.lines {
		batch = append(batch, Deduct{ItemID: l.Item.ID, Quantity: l.Quantity})
	}
	return batch
}

// Batch runs its commands in order as one transition.
type Batch []Command

// Apply returns the state that results from running cmd against s. s itself
// is left untouched. A nil command returns s unchanged.
func Apply(s State, cmd Command) State {
	if cmd == nil {
		return s
	}
	return cmd.apply(s)
}

// A non-positive quantity on add is ignored: it can neither create a line
// nor shrink one below 1.
func (c AddItem) apply(s State) State {
	if c.Quantity <= 0 {
		return s
	}
	i := s.index(c.Item.ID)
	if i < 0 {
		lines := make([]Line, len(s.lines), len(s.lines)+1)
		copy(lines, s.lines)
		return State{lines: append(lines, Line{Item: c.Item, Quantity: c.Quantity, Notes: c.Notes})}
	}

	lines := s.Lines()
	lines[i].Quantity += c.Quantity
	if c.Notes != "" {
		lines[i].Notes = c.Notes
	}
	return State{lines: lines}
}

func (c RemoveItem) apply(s State) State {
	i := s.index(c.ItemID)
	if i < 0 {
		return s
	}
	lines := make([]Line, 0, len(s.lines)-1)
	lines = append(lines, s.lines[:i]...)
	lines = append(lines, s.lines[i+1:]...)
	return State{lines: lines}
}

func (c UpdateQuantity) apply(s State) State {
	if c.Quantity <= 0 {
		return RemoveItem{ItemID: c.ItemID}.apply(s)
	}
	i := s.index(c.ItemID)
	if i < 0 {
		return s
	}
	lines := s.Lines()
	lines[i].Quantity = c.Quantity
	return State{lines: lines}
}

func (c UpdateNotes) apply(s State) State {
	i := s.index(c.ItemID)
	if i < 0 {
		return s
	}
	lines := s.Lines()
	lines[i].Notes = c.Notes
	return State{lines: lines}
}

func (c Deduct) apply(s State) State {
	if c.Quantity <= 0 {
		return s
	}
	line, ok := s.Line(c.ItemID)
	if !ok {
		return s
	}
	return UpdateQuantity{ItemID: c.ItemID, Quantity: line.Quantity - c.Quantity}.apply(s)
}

func (Clear) apply(State) State {
	return Empty()
}

func (b Batch) apply(s State) State {
	for _, cmd := range b {
		s = Apply(s, cmd)
	}
	return s
}

// Store is the mutable holder for one session's cart.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore(initial State) *Store {
	return &Store{state: initial}
}

func (s *Store) Dispatch(cmd Command) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, cmd)
	return s.state
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) AddItem(item domain.MenuItem, quantity int, notes string) State {
	return s.Dispatch(AddItem{Item: item, Quantity: quantity, Notes: notes})
}

func (s *Store) RemoveItem(itemID string) State {
	return s.Dispatch(RemoveItem{ItemID: itemID})
}

func (s *Store) UpdateQuantity(itemID string, quantity int) State {
	return s.Dispatch(UpdateQuantity{ItemID: itemID, Quantity: quantity})
}

func (s *Store) UpdateNotes(itemID, notes string) State {
	return s.Dispatch(UpdateNotes{ItemID: itemID, Notes: notes})
}

func (s *Store) Clear() State {
	return s.Dispatch(Clear{})
}
