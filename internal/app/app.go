// Package app owns the tracker state and every mutation on it. All five
// collections live on one Tracker so nothing mutates ambient globals, and
// every change is persisted to the store as a best-effort side effect.
package app

import (
	"time"

	"budgie/internal/ledger"
	"budgie/internal/model"
	"budgie/internal/store"
)

// Tracker is the application state controller.
type Tracker struct {
	state model.State
	store *store.Store // nil means in-memory only
	now   func() time.Time
}

// New creates a tracker around an already-loaded state. A nil store keeps
// the tracker purely in-memory.
func New(state model.State, st *store.Store) *Tracker {
	return &Tracker{state: state, store: st, now: time.Now}
}

// Open loads state from the database at dbPath and returns a tracker
// persisting to it.
func Open(dbPath string) (*Tracker, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	state, err := st.Load()
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	return New(state, st), nil
}

// Close releases the underlying store.
func (t *Tracker) Close() error {
	if t.store == nil {
		return nil
	}
	return t.store.Close()
}

// persist writes the full state. Write failures are not surfaced; the
// worst case is losing the latest change on the next run.
func (t *Tracker) persist() {
	if t.store == nil {
		return
	}
	_ = t.store.Save(t.state)
}

// nextID returns a fresh id for a collection given the current maximum.
func nextID(max int64) int64 {
	if max <= 0 {
		return 1
	}
	return max + 1
}

func maxExpenseID(expenses []model.ExpenseRecord) int64 {
	var max int64
	for _, e := range expenses {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}

func maxBlockID(blocks []model.ExpenseBlock) int64 {
	var max int64
	for _, b := range blocks {
		if b.ID > max {
			max = b.ID
		}
	}
	return max
}

func maxReportID(reports []model.ReportSnapshot) int64 {
	var max int64
	for _, r := range reports {
		if r.ID > max {
			max = r.ID
		}
	}
	return max
}

// MonthlyBudget returns the configured monthly client payment.
func (t *Tracker) MonthlyBudget() float64 { return t.state.MonthlyBudget }

// ProjectDuration returns the project duration in months.
func (t *Tracker) ProjectDuration() int { return t.state.ProjectDuration }

// Expenses returns the live expense collection.
func (t *Tracker) Expenses() []model.ExpenseRecord { return t.state.Expenses }

// Blocks returns all expense blocks.
func (t *Tracker) Blocks() []model.ExpenseBlock { return t.state.ExpenseBlocks }

// Reports returns the saved report history.
func (t *Tracker) Reports() []model.ReportSnapshot { return t.state.ReportHistory }

// ActiveBlocks returns the blocks shown on the quick-pick surface.
func (t *Tracker) ActiveBlocks() []model.ExpenseBlock {
	var out []model.ExpenseBlock
	for _, b := range t.state.ExpenseBlocks {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out
}

// Summary recomputes the derived financial totals.
func (t *Tracker) Summary() model.BudgetSummary {
	return ledger.Summarize(t.state.MonthlyBudget, t.state.ProjectDuration, t.state.Expenses)
}

// SetMonthlyBudget updates the monthly client payment.
func (t *Tracker) SetMonthlyBudget(amount float64) {
	t.state.MonthlyBudget = amount
	t.persist()
}

// SetProjectDuration updates the project duration, flooring at one month.
func (t *Tracker) SetProjectDuration(months int) {
	if months < 1 {
		months = 1
	}
	t.state.ProjectDuration = months
	t.persist()
}

// CreateBlock turns a draft into a new block with a fresh id and creation
// timestamp and appends it. Block names need not be unique.
func (t *Tracker) CreateBlock(draft BlockDraft) model.ExpenseBlock {
	block := model.ExpenseBlock{
		ID:           nextID(maxBlockID(t.state.ExpenseBlocks)),
		Name:         draft.Name,
		Description:  draft.Description,
		Category:     draft.Category,
		PricingTiers: append([]model.PricingTier(nil), draft.PricingTiers...),
		IsActive:     draft.IsActive,
		CreatedAt:    t.now(),
	}
	t.state.ExpenseBlocks = append(t.state.ExpenseBlocks, block)
	t.persist()
	return block
}

// UpdateBlock replaces the block matching id with the draft contents,
// preserving id and creation timestamp. Unknown id is a no-op.
func (t *Tracker) UpdateBlock(id int64, draft BlockDraft) {
	for i, b := range t.state.ExpenseBlocks {
		if b.ID != id {
			continue
		}
		t.state.ExpenseBlocks[i] = model.ExpenseBlock{
			ID:           b.ID,
			Name:         draft.Name,
			Description:  draft.Description,
			Category:     draft.Category,
			PricingTiers: append([]model.PricingTier(nil), draft.PricingTiers...),
			IsActive:     draft.IsActive,
			CreatedAt:    b.CreatedAt,
		}
		t.persist()
		return
	}
}

// DeleteBlock removes a block by id. Previously derived records keep their
// tier snapshots and are untouched.
func (t *Tracker) DeleteBlock(id int64) {
	for i, b := range t.state.ExpenseBlocks {
		if b.ID == id {
			t.state.ExpenseBlocks = append(t.state.ExpenseBlocks[:i], t.state.ExpenseBlocks[i+1:]...)
			t.persist()
			return
		}
	}
}

// ToggleBlock flips a block's active flag. Unknown id is a no-op.
func (t *Tracker) ToggleBlock(id int64) {
	for i := range t.state.ExpenseBlocks {
		if t.state.ExpenseBlocks[i].ID == id {
			t.state.ExpenseBlocks[i].IsActive = !t.state.ExpenseBlocks[i].IsActive
			t.persist()
			return
		}
	}
}

// QuickEditPrice sets one tier's price from a raw string. The price must
// parse as a non-negative number; anything else discards the edit. Reports
// whether the edit was applied.
func (t *Tracker) QuickEditPrice(blockID int64, tierIndex int, newPrice string) bool {
	price, ok := ledger.ParsePrice(newPrice)
	if !ok {
		return false
	}
	for i := range t.state.ExpenseBlocks {
		b := &t.state.ExpenseBlocks[i]
		if b.ID != blockID || tierIndex < 0 || tierIndex >= len(b.PricingTiers) {
			continue
		}
		b.PricingTiers[tierIndex].Price = price
		t.persist()
		return true
	}
	return false
}

// FindBlock returns the block with the given id.
func (t *Tracker) FindBlock(id int64) (model.ExpenseBlock, bool) {
	for _, b := range t.state.ExpenseBlocks {
		if b.ID == id {
			return b, true
		}
	}
	return model.ExpenseBlock{}, false
}

// AddFromBlock derives an expense from a block+tier+quantity selection and
// appends it. Unknown block, out-of-range tier, or quantity below one is a
// no-op.
func (t *Tracker) AddFromBlock(blockID int64, tierIndex, quantity int) (model.ExpenseRecord, bool) {
	if quantity < 1 {
		return model.ExpenseRecord{}, false
	}
	block, ok := t.FindBlock(blockID)
	if !ok || tierIndex < 0 || tierIndex >= len(block.PricingTiers) {
		return model.ExpenseRecord{}, false
	}

	rec := ledger.Derive(nextID(maxExpenseID(t.state.Expenses)),
		block, block.PricingTiers[tierIndex], quantity, t.now())
	t.state.Expenses = append(t.state.Expenses, rec)
	t.persist()
	return rec, true
}

// AddCustomExpense records a freestanding expense from raw form values.
// Empty name or unparseable amount is a no-op.
func (t *Tracker) AddCustomExpense(name, amount, category, date string) (model.ExpenseRecord, bool) {
	if date == "" {
		date = t.now().Format("2006-01-02")
	}
	rec, ok := ledger.ParseCustom(nextID(maxExpenseID(t.state.Expenses)), name, amount, category, date)
	if !ok {
		return model.ExpenseRecord{}, false
	}
	t.state.Expenses = append(t.state.Expenses, rec)
	t.persist()
	return rec, true
}

// DeleteExpense removes one record by id. Unknown id is a no-op.
func (t *Tracker) DeleteExpense(id int64) {
	for i, e := range t.state.Expenses {
		if e.ID == id {
			t.state.Expenses = append(t.state.Expenses[:i], t.state.Expenses[i+1:]...)
			t.persist()
			return
		}
	}
}

// SaveReport freezes the current budget state into the report history.
func (t *Tracker) SaveReport() model.ReportSnapshot {
	report := ledger.CaptureReport(nextID(maxReportID(t.state.ReportHistory)), t.now(),
		t.state.MonthlyBudget, t.state.ProjectDuration, t.state.Expenses)
	t.state.ReportHistory = append(t.state.ReportHistory, report)
	t.persist()
	return report
}

// Reset wipes persisted state and returns the tracker to the built-in
// defaults, starter blocks included.
func (t *Tracker) Reset() error {
	if t.store != nil {
		if err := t.store.Reset(); err != nil {
			return err
		}
	}
	t.state = model.DefaultState(t.now())
	t.persist()
	return nil
}

// DeleteReport removes a saved report by id. Unknown id is a no-op.
func (t *Tracker) DeleteReport(id int64) {
	for i, r := range t.state.ReportHistory {
		if r.ID == id {
			t.state.ReportHistory = append(t.state.ReportHistory[:i], t.state.ReportHistory[i+1:]...)
			t.persist()
			return
		}
	}
}
