package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// OptionList is one user-editable dropdown option list: an ordered set of
// unique strings, append-only through Add and removable by position.
type OptionList struct {
	mu       sync.Mutex
	slot     string
	blobs    Blobs
	defaults []string
	values   []string
}

// NewOptionList wires a list to its slot. The defaults seed the list when
// the slot has never been written.
func NewOptionList(blobs Blobs, slot string, defaults []string) *OptionList {
	return &OptionList{slot: slot, blobs: blobs, defaults: defaults}
}

// Load reads the list from its slot, falling back to the defaults on an
// absent slot and to an empty list on an unreadable payload.
func (l *OptionList) Load(ctx context.Context) error {
	payload, ok, err := l.blobs.Load(ctx, l.slot)
	if err != nil {
		return fmt.Errorf("load option list %s: %w", l.slot, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !ok {
		l.values = append([]string(nil), l.defaults...)
		return nil
	}
	var values []string
	if err := decodeSlot(payload, &values); err != nil {
		slog.WarnContext(ctx, "Discarding unreadable option list payload",
			"slot", l.slot, "error", err)
		l.values = nil
		return nil
	}
	l.values = values
	return nil
}

// Values returns a snapshot copy in list order.
func (l *OptionList) Values() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.values))
	copy(out, l.values)
	return out
}

// Add trims the value and appends it. Empty values and case-sensitive
// duplicates are rejected silently: the list stays unchanged and no error
// surfaces. Returns whether the value was added.
func (l *OptionList) Add(ctx context.Context, value string) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return false, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, v := range l.values {
		if v == value {
			return false, nil
		}
	}
	l.values = append(l.values, value)
	if err := l.persistLocked(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// RemoveAt deletes the value at the given position. Out-of-range indexes
// are a no-op.
func (l *OptionList) RemoveAt(ctx context.Context, index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.values) {
		return nil
	}
	l.values = append(l.values[:index], l.values[index+1:]...)
	return l.persistLocked(ctx)
}

func (l *OptionList) persistLocked(ctx context.Context) error {
	payload, err := encodeSlot(l.values)
	if err != nil {
		return fmt.Errorf("encode option list %s: %w", l.slot, err)
	}
	if err := l.blobs.Save(ctx, l.slot, payload); err != nil {
		return fmt.Errorf("persist option list %s: %w", l.slot, err)
	}
	return nil
}

// Settings is the registry of the five option lists feeding the record
// forms. Task categories are stored and editable like the rest but drive
// no dropdown; that asymmetry is inherited behavior and stays.
type Settings struct {
	IncomeSources     *OptionList
	ExpenseCategories *OptionList
	TaskCategories    *OptionList
	PaymentTypes      *OptionList
	Products          *OptionList
}

// NewSettings builds the registry with its historical seed values.
func NewSettings(blobs Blobs) *Settings {
	return &Settings{
		IncomeSources: NewOptionList(blobs, SlotIncomeSources,
			[]string{"Salary", "Freelance", "Investment", "Business", "Other"}),
		ExpenseCategories: NewOptionList(blobs, SlotExpenseCategories,
			[]string{"Food", "Transportation", "Utilities", "Entertainment", "Healthcare", "Shopping", "Other"}),
		TaskCategories: NewOptionList(blobs, SlotTaskCategories,
			[]string{"Work", "Personal", "Health", "Education", "Finance"}),
		PaymentTypes: NewOptionList(blobs, SlotPaymentTypes,
			[]string{"Cash", "Bank Transfer", "Credit Card", "PayPal", "Cryptocurrency"}),
		Products: NewOptionList(blobs, SlotProducts,
			[]string{"T-Shirt", "Hoodie", "Mug", "Poster", "Sticker", "Cap", "Bag", "Phone Case"}),
	}
}

// Load reads all five lists.
func (s *Settings) Load(ctx context.Context) error {
	for _, l := range s.lists() {
		if err := l.Load(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ByName resolves a list by its public name, as used in URLs.
func (s *Settings) ByName(name string) (*OptionList, bool) {
	switch name {
	case "income-sources":
		return s.IncomeSources, true
	case "expense-categories":
		return s.ExpenseCategories, true
	case "task-categories":
		return s.TaskCategories, true
	case "payment-types":
		return s.PaymentTypes, true
	case "products":
		return s.Products, true
	}
	return nil, false
}

func (s *Settings) lists() []*OptionList {
	return []*OptionList{s.IncomeSources, s.ExpenseCategories, s.TaskCategories, s.PaymentTypes, s.Products}
}
