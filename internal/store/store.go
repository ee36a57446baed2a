// Package store holds the in-memory record collections and the settings
// registry. Each store owns its slice of state: it loads once at startup
// from a blob slot, serves it as the sole source of truth for the process
// lifetime, and re-saves the whole collection after every mutation.
package store

import (
	"context"
	"encoding/json"
)

// Slot names in the blob store. The keys predate this implementation and
// stay as-is so existing data files keep loading.
const (
	SlotIncome  = "incomeData"
	SlotExpense = "expenseData"
	SlotOrders  = "taskData"
	SlotPayment = "paymentData"

	SlotIncomeSources     = "incomeSources"
	SlotExpenseCategories = "expenseCategories"
	SlotTaskCategories    = "taskCategories"
	SlotPaymentTypes      = "paymentTypes"
	SlotProducts          = "productList"

	SlotDarkMode = "darkMode"
)

// Blobs is the slot persistence contract, satisfied by *blob.Store. Tests
// substitute an in-memory implementation.
type Blobs interface {
	Load(ctx context.Context, slot string) (payload []byte, ok bool, err error)
	Save(ctx context.Context, slot string, payload []byte) error
}

// envelope wraps a slot payload with a schema tag. Unversioned payloads
// from the previous implementation are bare JSON arrays; decodeSlot
// accepts both.
type envelope struct {
	Schema  int             `json:"schema"`
	Records json.RawMessage `json:"records"`
}

func encodeSlot(records any) ([]byte, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Schema: 1, Records: raw})
}

func decodeSlot(payload []byte, records any) error {
	var env envelope
	if err := json.Unmarshal(payload, &env); err == nil && env.Records != nil {
		return json.Unmarshal(env.Records, records)
	}
	// Legacy shape: the records themselves, unwrapped.
	return json.Unmarshal(payload, records)
}
