// Package report generates the printable HTML budget report. The document
// is a one-way export handed to the user's browser/print facility; nothing
// parses it back.
package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"budgie/internal/cli"
	"budgie/internal/ledger"
	"budgie/internal/model"
)

const reportTemplate = `<!DOCTYPE html>
<html>
  <head>
    <title>Project Budget Report</title>
    <style>
      body { font-family: Arial, sans-serif; margin: 40px; }
      .header { text-align: center; margin-bottom: 30px; }
      .section { margin-bottom: 20px; }
      .expense-table { width: 100%; border-collapse: collapse; }
      .expense-table th, .expense-table td { border: 1px solid #ddd; padding: 8px; text-align: left; }
      .expense-table th { background-color: #f2f2f2; }
      .profit { color: green; }
      .loss { color: red; }
    </style>
  </head>
  <body>
    <div class="header">
      <h1>Creative Project Budget Report</h1>
      <p>Generated on {{.GeneratedOn}}</p>
    </div>

    <div class="section">
      <h2>Project Overview</h2>
      <p><strong>Monthly Client Payment:</strong> {{.MonthlyBudget}}</p>
      <p><strong>Project Duration:</strong> {{.Duration}}</p>
      <p><strong>Total Project Budget:</strong> {{.TotalProjectBudget}}</p>
    </div>

    <div class="section">
      <h2>Financial Summary</h2>
      <p><strong>Monthly Expenses:</strong> {{.TotalMonthlyExpenses}}</p>
      <p><strong>Monthly Profit:</strong> <span class="{{.MonthlyProfitClass}}">{{.MonthlyProfit}}</span></p>
      <p><strong>Total Project Expenses:</strong> {{.TotalProjectExpenses}}</p>
      <p><strong>Total Project Profit:</strong> <span class="{{.ProjectProfitClass}}">{{.TotalProjectProfit}}</span></p>
    </div>

    <div class="section">
      <h2>Expense Details</h2>
      <table class="expense-table">
        <thead>
          <tr>
            <th>Date</th>
            <th>Expense Name</th>
            <th>Category</th>
            <th>Amount</th>
          </tr>
        </thead>
        <tbody>
{{range .Expenses}}          <tr>
            <td>{{.Date}}</td>
            <td>{{.Name}}</td>
            <td>{{.Category}}</td>
            <td>{{.Amount}}</td>
          </tr>
{{end}}        </tbody>
      </table>
    </div>
  </body>
</html>
`

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

type expenseRow struct {
	Date     string
	Name     string
	Category string
	Amount   string
}

type reportData struct {
	GeneratedOn          string
	MonthlyBudget        string
	Duration             string
	TotalProjectBudget   string
	TotalMonthlyExpenses string
	MonthlyProfit        string
	MonthlyProfitClass   string
	TotalProjectExpenses string
	TotalProjectProfit   string
	ProjectProfitClass   string
	Expenses             []expenseRow
}

func profitClass(v float64) string {
	if v >= 0 {
		return "profit"
	}
	return "loss"
}

// Write renders the printable report for the given budget state.
func Write(w io.Writer, symbol string, monthlyBudget float64, projectDuration int, expenses []model.ExpenseRecord, now time.Time) error {
	s := ledger.Summarize(monthlyBudget, projectDuration, expenses)

	data := reportData{
		GeneratedOn:          now.Format("2006-01-02"),
		MonthlyBudget:        cli.FormatMoney(symbol, monthlyBudget),
		Duration:             cli.FormatMonths(projectDuration),
		TotalProjectBudget:   cli.FormatMoney(symbol, s.TotalProjectBudget),
		TotalMonthlyExpenses: cli.FormatMoney(symbol, s.TotalMonthlyExpenses),
		MonthlyProfit:        cli.FormatMoney(symbol, s.MonthlyProfit),
		MonthlyProfitClass:   profitClass(s.MonthlyProfit),
		TotalProjectExpenses: cli.FormatMoney(symbol, s.TotalProjectExpenses),
		TotalProjectProfit:   cli.FormatMoney(symbol, s.TotalProjectProfit),
		ProjectProfitClass:   profitClass(s.TotalProjectProfit),
	}
	for _, e := range expenses {
		data.Expenses = append(data.Expenses, expenseRow{
			Date:     e.Date,
			Name:     e.Name,
			Category: e.Category,
			Amount:   cli.FormatMoney(symbol, e.Amount),
		})
	}

	return tmpl.Execute(w, data)
}

// WriteFile renders the report to the given path.
func WriteFile(path, symbol string, monthlyBudget float64, projectDuration int, expenses []model.ExpenseRecord, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := Write(f, symbol, monthlyBudget, projectDuration, expenses, now); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}
