package store

import (
	"context"
	"reflect"
	"testing"
)

func TestOptionListDefaultsOnAbsentSlot(t *testing.T) {
	ctx := context.Background()
	settings := NewSettings(newMemBlobs())
	if err := settings.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"Salary", "Freelance", "Investment", "Business", "Other"}
	if got := settings.IncomeSources.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("income sources = %v, want %v", got, want)
	}
}

func TestOptionListAdd(t *testing.T) {
	ctx := context.Background()
	list := NewOptionList(newMemBlobs(), SlotProducts, nil)
	if err := list.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	tests := []struct {
		name      string
		value     string
		wantAdded bool
		wantList  []string
	}{
		{"first value trimmed", "  Foo  ", true, []string{"Foo"}},
		{"duplicate after trim rejected", " Foo", false, []string{"Foo"}},
		{"case sensitive accepts different case", "foo", true, []string{"Foo", "foo"}},
		{"empty rejected", "   ", false, []string{"Foo", "foo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, err := list.Add(ctx, tt.value)
			if err != nil {
				t.Fatalf("add: %v", err)
			}
			if added != tt.wantAdded {
				t.Errorf("added = %v, want %v", added, tt.wantAdded)
			}
			if got := list.Values(); !reflect.DeepEqual(got, tt.wantList) {
				t.Errorf("values = %v, want %v", got, tt.wantList)
			}
		})
	}
}

func TestOptionListRemoveAt(t *testing.T) {
	ctx := context.Background()
	list := NewOptionList(newMemBlobs(), SlotPaymentTypes, []string{"Cash", "Card", "Wire"})
	if err := list.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := list.RemoveAt(ctx, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := list.Values(); !reflect.DeepEqual(got, []string{"Cash", "Wire"}) {
		t.Errorf("values = %v, want [Cash Wire]", got)
	}

	// Out-of-range indexes are a no-op.
	for _, idx := range []int{-1, 2, 99} {
		if err := list.RemoveAt(ctx, idx); err != nil {
			t.Fatalf("remove %d: %v", idx, err)
		}
	}
	if got := list.Values(); !reflect.DeepEqual(got, []string{"Cash", "Wire"}) {
		t.Errorf("values after no-op removes = %v, want [Cash Wire]", got)
	}
}

func TestOptionListPersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()

	first := NewOptionList(blobs, SlotExpenseCategories, []string{"Food"})
	if err := first.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := first.Add(ctx, "Rent"); err != nil {
		t.Fatalf("add: %v", err)
	}

	second := NewOptionList(blobs, SlotExpenseCategories, []string{"Food"})
	if err := second.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := second.Values(); !reflect.DeepEqual(got, []string{"Food", "Rent"}) {
		t.Errorf("values = %v, want [Food Rent]", got)
	}
}

func TestSettingsByName(t *testing.T) {
	settings := NewSettings(newMemBlobs())
	for _, name := range []string{"income-sources", "expense-categories", "task-categories", "payment-types", "products"} {
		if _, ok := settings.ByName(name); !ok {
			t.Errorf("ByName(%q) should resolve", name)
		}
	}
	if _, ok := settings.ByName("nope"); ok {
		t.Error("unknown list name should not resolve")
	}
}

func TestThemeRoundTrip(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobs()

	theme := NewTheme(blobs)
	if err := theme.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if theme.Dark() {
		t.Error("default theme should be light")
	}
	if err := theme.SetDark(ctx, true); err != nil {
		t.Fatalf("set: %v", err)
	}

	reloaded := NewTheme(blobs)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.Dark() {
		t.Error("dark flag should survive a reload")
	}
}
