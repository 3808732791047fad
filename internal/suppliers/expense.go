package suppliers

import (
	"context"

	"github.com/shopspring/decimal"

	"legalflow/internal/registry"
	"legalflow/pkg/domain"
	dErrors "legalflow/pkg/domain-errors"
)

// Expense is a payment to a supplier. Expenses are loaded from fixtures and
// never edited through the API.
type Expense struct {
	domain.Stamp
	SupplierID  string          `json:"supplierId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        domain.Date     `json:"date"`
}

// ExpenseReader is the read side of the expense registry.
type ExpenseReader interface {
	List(ctx context.Context) ([]Expense, error)
}

// Expenses answers expense queries.
type Expenses struct {
	repo ExpenseReader
}

func NewExpenses(repo ExpenseReader) *Expenses {
	return &Expenses{repo: repo}
}

// BySupplier lists the expenses of supplierID in insertion order. Expenses
// of a deleted supplier remain listed under its id.
func (e *Expenses) BySupplier(ctx context.Context, supplierID string) ([]Expense, error) {
	all, err := e.repo.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list expenses")
	}
	out := make([]Expense, 0)
	for _, x := range all {
		if x.SupplierID == supplierID {
			out = append(out, x)
		}
	}
	return out, nil
}

// Total sums the expenses of supplierID.
func (e *Expenses) Total(ctx context.Context, supplierID string) (decimal.Decimal, error) {
	list, err := e.BySupplier(ctx, supplierID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, x := range list {
		total = total.Add(x.Amount)
	}
	return total, nil
}

var _ ExpenseReader = (*registry.Store[Expense, *Expense])(nil)
