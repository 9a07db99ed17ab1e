package cart

import (
	"math/rand"
	"sync"
	"testing"

	"tiedan-noodle/shop-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id string, price int64) domain.MenuItem {
	return domain.MenuItem{ID: id, Name: id, Price: decimal.NewFromInt(price), Available: true}
}

var (
	noodle = menuItem("noodle-1", 28)
	cucumb = menuItem("side-1", 8)
	plum   = menuItem("drink-1", 8)
)

func ids(s State) []string {
	out := []string{}
	for _, l := range s.Lines() {
		out = append(out, l.Item.ID)
	}
	return out
}

func TestAddItem(t *testing.T) {
	tests := []struct {
		name      string
		commands  []Command
		wantIDs   []string
		wantQty   map[string]int
		wantNotes map[string]string
	}{
		{
			name:     "new items append in order",
			commands: []Command{AddItem{Item: noodle, Quantity: 1}, AddItem{Item: cucumb, Quantity: 2}},
			wantIDs:  []string{"noodle-1", "side-1"},
			wantQty:  map[string]int{"noodle-1": 1, "side-1": 2},
		},
		{
			name: "repeat add sums quantity and keeps position",
			commands: []Command{
				AddItem{Item: noodle, Quantity: 1},
				AddItem{Item: cucumb, Quantity: 1},
				AddItem{Item: noodle, Quantity: 3},
			},
			wantIDs: []string{"noodle-1", "side-1"},
			wantQty: map[string]int{"noodle-1": 4, "side-1": 1},
		},
		{
			name: "empty notes keep existing notes",
			commands: []Command{
				AddItem{Item: noodle, Quantity: 1, Notes: "less spicy"},
				AddItem{Item: noodle, Quantity: 1},
			},
			wantIDs:   []string{"noodle-1"},
			wantQty:   map[string]int{"noodle-1": 2},
			wantNotes: map[string]string{"noodle-1": "less spicy"},
		},
		{
			name: "new notes replace existing notes",
			commands: []Command{
				AddItem{Item: noodle, Quantity: 1, Notes: "less spicy"},
				AddItem{Item: noodle, Quantity: 1, Notes: "no cilantro"},
			},
			wantIDs:   []string{"noodle-1"},
			wantQty:   map[string]int{"noodle-1": 2},
			wantNotes: map[string]string{"noodle-1": "no cilantro"},
		},
		{
			name: "non-positive add is ignored",
			commands: []Command{
				AddItem{Item: noodle, Quantity: 2},
				AddItem{Item: noodle, Quantity: -5},
				AddItem{Item: cucumb, Quantity: 0},
			},
			wantIDs: []string{"noodle-1"},
			wantQty: map[string]int{"noodle-1": 2},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			s := Empty()
			for _, cmd := range testCase.commands {
				s = Apply(s, cmd)
			}

			assert.Equal(t, testCase.wantIDs, ids(s))
			for id, qty := range testCase.wantQty {
				line, ok := s.Line(id)
				require.True(t, ok)
				assert.Equal(t, qty, line.Quantity)
			}
			for id, notes := range testCase.wantNotes {
				line, _ := s.Line(id)
				assert.Equal(t, notes, line.Notes)
			}
		})
	}
}

func TestRemoveItem(t *testing.T) {
	s := Apply(Empty(), AddItem{Item: noodle, Quantity: 1})
	s = Apply(s, AddItem{Item: cucumb, Quantity: 1})
	s = Apply(s, AddItem{Item: plum, Quantity: 1})

	s = Apply(s, RemoveItem{ItemID: "side-1"})
	assert.Equal(t, []string{"noodle-1", "drink-1"}, ids(s))

	same := Apply(s, RemoveItem{ItemID: "missing"})
	assert.Equal(t, ids(s), ids(same))
}

func TestUpdateQuantity(t *testing.T) {
	base := Apply(Empty(), AddItem{Item: noodle, Quantity: 3})

	tests := []struct {
		name     string
		cmd      UpdateQuantity
		wantQty  int
		wantLine bool
	}{
		{name: "sets rather than adds", cmd: UpdateQuantity{ItemID: "noodle-1", Quantity: 5}, wantQty: 5, wantLine: true},
		{name: "zero removes", cmd: UpdateQuantity{ItemID: "noodle-1", Quantity: 0}, wantLine: false},
		{name: "negative removes", cmd: UpdateQuantity{ItemID: "noodle-1", Quantity: -2}, wantLine: false},
		{name: "unknown item is a no-op", cmd: UpdateQuantity{ItemID: "side-9", Quantity: 4}, wantQty: 3, wantLine: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			s := Apply(base, testCase.cmd)
			line, ok := s.Line("noodle-1")
			assert.Equal(t, testCase.wantLine, ok)
			if testCase.wantLine {
				assert.Equal(t, testCase.wantQty, line.Quantity)
			}
			assert.Equal(t, ok, s.Len() == 1)
		})
	}
}

func TestUpdateNotesAndClear(t *testing.T) {
	s := Apply(Empty(), AddItem{Item: noodle, Quantity: 1, Notes: "extra egg"})
	s = Apply(s, UpdateNotes{ItemID: "noodle-1", Notes: ""})
	line, _ := s.Line("noodle-1")
	assert.Equal(t, "", line.Notes)

	s = Apply(s, UpdateNotes{ItemID: "missing", Notes: "x"})
	assert.Equal(t, 1, s.Len())

	s = Apply(s, Clear{})
	assert.True(t, s.IsEmpty())
	assert.True(t, s.TotalPrice().IsZero())
	assert.Equal(t, 0, s.ItemCount())
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := Apply(Empty(), AddItem{Item: noodle, Quantity: 1, Notes: "a"})

	_ = Apply(before, AddItem{Item: noodle, Quantity: 2, Notes: "b"})
	_ = Apply(before, UpdateQuantity{ItemID: "noodle-1", Quantity: 9})
	_ = Apply(before, UpdateNotes{ItemID: "noodle-1", Notes: "c"})
	_ = Apply(before, RemoveItem{ItemID: "noodle-1"})
	_ = Apply(before, nil)

	line, ok := before.Line("noodle-1")
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "a", line.Notes)
}

func TestDerivedTotals(t *testing.T) {
	s := Apply(Empty(), AddItem{Item: noodle, Quantity: 2})
	s = Apply(s, AddItem{Item: cucumb, Quantity: 3})

	assert.True(t, s.TotalPrice().Equal(decimal.NewFromInt(2*28+3*8)))
	assert.Equal(t, 5, s.ItemCount())

	s = Apply(s, UpdateQuantity{ItemID: "noodle-1", Quantity: 1})
	assert.True(t, s.TotalPrice().Equal(decimal.NewFromInt(28+3*8)))
	assert.Equal(t, 4, s.ItemCount())
}

// Random command sequences must always leave unique ids, positive
// quantities and totals equal to the sum over lines.
func TestInvariantsUnderRandomCommands(t *testing.T) {
	items := []domain.MenuItem{noodle, cucumb, plum}
	rng := rand.New(rand.NewSource(7))
	s := Empty()

	for i := 0; i < 2000; i++ {
		it := items[rng.Intn(len(items))]
		var cmd Command
		switch rng.Intn(6) {
		case 0, 1:
			cmd = AddItem{Item: it, Quantity: rng.Intn(5) - 1}
		case 2:
			cmd = RemoveItem{ItemID: it.ID}
		case 3:
			cmd = UpdateQuantity{ItemID: it.ID, Quantity: rng.Intn(6) - 2}
		case 4:
			cmd = UpdateNotes{ItemID: it.ID, Notes: "n"}
		default:
			if rng.Intn(10) == 0 {
				cmd = Clear{}
			}
		}
		s = Apply(s, cmd)

		seen := map[string]bool{}
		total := decimal.Zero
		count := 0
		for _, l := range s.Lines() {
			require.False(t, seen[l.Item.ID])
			seen[l.Item.ID] = true
			require.GreaterOrEqual(t, l.Quantity, 1)
			total = total.Add(l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
			count += l.Quantity
		}
		require.True(t, total.Equal(s.TotalPrice()))
		require.Equal(t, count, s.ItemCount())
	}
}

func TestRestoreMergesAndDrops(t *testing.T) {
	s := Restore([]Line{
		{Item: noodle, Quantity: 1},
		{Item: cucumb, Quantity: 0},
		{Item: noodle, Quantity: 2, Notes: "soup on the side"},
	})

	assert.Equal(t, []string{"noodle-1"}, ids(s))
	line, _ := s.Line("noodle-1")
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, "soup on the side", line.Notes)
}

func TestStoreConcurrentDispatch(t *testing.T) {
	store := NewStore(Empty())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.AddItem(noodle, 1, "")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Snapshot().ItemCount())

	store.UpdateQuantity("noodle-1", 2)
	store.UpdateNotes("noodle-1", "to go")
	store.AddItem(cucumb, 1, "")
	store.RemoveItem("side-1")
	assert.Equal(t, 2, store.Snapshot().ItemCount())

	assert.True(t, store.Clear().IsEmpty())
}

func TestBatch(t *testing.T) {
	s := Apply(Empty(), AddItem{Item: noodle, Quantity: 1})

	next := Apply(s, Batch{
		UpdateQuantity{ItemID: "noodle-1", Quantity: 3},
		UpdateNotes{ItemID: "noodle-1", Notes: "no chili"},
		AddItem{Item: plum, Quantity: 1},
	})
	line, ok := next.Line("noodle-1")
	require.True(t, ok)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, "no chili", line.Notes)
	assert.Equal(t, []string{"noodle-1", "drink-1"}, ids(next))

	assert.Equal(t, s, Apply(s, Batch{}))
	assert.Equal(t, 1, s.ItemCount())
}

func TestCheckout(t *testing.T) {
	ordered := Apply(Empty(), Batch{
		AddItem{Item: noodle, Quantity: 2},
		AddItem{Item: cucumb, Quantity: 1},
	})

	tests := []struct {
		name    string
		current State
		wantIDs []string
		wantQty map[string]int
	}{
		{
			name:    "unchanged cart empties",
			current: ordered,
			wantIDs: []string{},
		},
		{
			name:    "new line survives",
			current: Apply(ordered, AddItem{Item: plum, Quantity: 1}),
			wantIDs: []string{"drink-1"},
			wantQty: map[string]int{"drink-1": 1},
		},
		{
			name:    "topped up line keeps the extra",
			current: Apply(ordered, AddItem{Item: noodle, Quantity: 3}),
			wantIDs: []string{"noodle-1"},
			wantQty: map[string]int{"noodle-1": 3},
		},
		{
			name:    "line removed meanwhile stays gone",
			current: Apply(ordered, RemoveItem{ItemID: "side-1"}),
			wantIDs: []string{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			next := Apply(testCase.current, Checkout(ordered))
			assert.Equal(t, testCase.wantIDs, ids(next))
			for id, q := range testCase.wantQty {
				line, ok := next.Line(id)
				require.True(t, ok)
				assert.Equal(t, q, line.Quantity)
			}
		})
	}
}
