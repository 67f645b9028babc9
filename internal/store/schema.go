package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS state (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

// State keys. Each holds one independently parsed JSON document.
const (
	keyMonthlyBudget   = "monthlyBudget"
	keyProjectDuration = "projectDuration"
	keyExpenses        = "expenses"
	keyExpenseBlocks   = "expenseBlocks"
	keyReportHistory   = "reportHistory"
)
