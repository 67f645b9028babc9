package model

// ExpenseRecord is a concrete dated financial line item. Records derived
// from a block carry provenance fields; custom entries leave them unset.
// The embedded tier is a snapshot copy; editing the source block later
// never changes a recorded amount.
type ExpenseRecord struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"` // YYYY-MM-DD

	BlockID  int64        `json:"blockId,omitempty"`
	Tier     *PricingTier `json:"tier,omitempty"`
	Quantity int          `json:"quantity,omitempty"`
}

// Clone returns an independent copy of the record, including the tier
// snapshot if present.
func (e ExpenseRecord) Clone() ExpenseRecord {
	out := e
	if e.Tier != nil {
		tier := *e.Tier
		out.Tier = &tier
	}
	return out
}

// CloneExpenses deep-copies a slice of records.
func CloneExpenses(expenses []ExpenseRecord) []ExpenseRecord {
	if expenses == nil {
		return nil
	}
	out := make([]ExpenseRecord, len(expenses))
	for i, e := range expenses {
		out[i] = e.Clone()
	}
	return out
}
