package finance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/abmoura/vida/internal/cli"
	"github.com/abmoura/vida/internal/models"
	"github.com/abmoura/vida/internal/utils"
)

type FinanceCmd struct {
	Add     FinanceAddCmd     `cmd:"" help:"Record a transaction."`
	List    FinanceListCmd    `cmd:"" default:"1" help:"List transactions."`
	Summary FinanceSummaryCmd `cmd:"" help:"Show income/expense totals."`
}

type FinanceAddCmd struct {
	Kind        string `arg:"" help:"Transaction kind (income|expense)."`
	Amount      string `arg:"" help:"Amount (e.g. 42.50)."`
	Category    string `help:"Spending category." default:""`
	Description string `help:"Free-form description." default:""`
	Day         string `help:"Transaction date (YYYY-MM-DD); defaults to today." default:""`
}

func (c *FinanceAddCmd) Run(ctx *cli.Context) error {
	kind := models.TransactionKind(c.Kind)
	if !kind.Valid() {
		return fmt.Errorf("invalid transaction kind: %s (must be income or expense)", c.Kind)
	}
	cents, err := cli.ParseAmountCents(c.Amount)
	if err != nil {
		return err
	}
	if cents <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if c.Day != "" && !utils.ValidateDateFormat(c.Day) {
		return fmt.Errorf("invalid day: %q (expected YYYY-MM-DD)", c.Day)
	}

	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	day := c.Day
	if day == "" {
		day, err = session.Today()
		if err != nil {
			return err
		}
	}

	tx := models.Transaction{
		ID:          uuid.New().String(),
		Kind:        kind,
		AmountCents: cents,
		Category:    c.Category,
		Description: c.Description,
		Day:         day,
		CreatedAt:   session.Engine.Now(),
	}
	session.State.Transactions = append(session.State.Transactions, tx)

	if err := session.Save(); err != nil {
		return err
	}
	fmt.Printf("Recorded %s of %s on %s\n", tx.Kind, cli.FormatAmountCents(tx.AmountCents), tx.Day)
	return nil
}

type FinanceListCmd struct {
	Month string `help:"Filter by month (YYYY-MM)." default:""`
	Limit int    `help:"Number of recent transactions to show." default:"20"`
}

func (c *FinanceListCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	var txs []models.Transaction
	for _, tx := range session.State.Transactions {
		if c.Month == "" || strings.HasPrefix(tx.Day, c.Month) {
			txs = append(txs, tx)
		}
	}
	if len(txs) == 0 {
		fmt.Println("No transactions found.")
		return nil
	}
	if c.Limit > 0 && len(txs) > c.Limit {
		txs = txs[len(txs)-c.Limit:]
	}

	for _, tx := range txs {
		sign := "+"
		if tx.Kind == models.TransactionExpense {
			sign = "-"
		}
		desc := tx.Description
		if desc == "" {
			desc = tx.Category
		}
		fmt.Printf("%s  %s%9s  %-12s %s\n",
			tx.Day, sign, cli.FormatAmountCents(tx.AmountCents), tx.Category, desc)
	}
	return nil
}

type FinanceSummaryCmd struct {
	Month string `help:"Summarize a single month (YYYY-MM)." default:""`
}

func (c *FinanceSummaryCmd) Run(ctx *cli.Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	var income, expense int64
	byCategory := map[string]int64{}
	for _, tx := range session.State.Transactions {
		if c.Month != "" && !strings.HasPrefix(tx.Day, c.Month) {
			continue
		}
		switch tx.Kind {
		case models.TransactionIncome:
			income += tx.AmountCents
		case models.TransactionExpense:
			expense += tx.AmountCents
			byCategory[tx.Category] += tx.AmountCents
		}
	}

	scope := "all time"
	if c.Month != "" {
		scope = c.Month
	}
	fmt.Printf("Summary (%s):\n", scope)
	fmt.Printf("  Income:   %s\n", cli.FormatAmountCents(income))
	fmt.Printf("  Expenses: %s\n", cli.FormatAmountCents(expense))
	fmt.Printf("  Net:      %s\n", cli.FormatAmountCents(income-expense))

	if len(byCategory) > 0 {
		fmt.Println("\nExpenses by category:")
		for _, category := range sortedCategories(byCategory) {
			name := category
			if name == "" {
				name = "(uncategorized)"
			}
			fmt.Printf("  %-16s %s\n", name, cli.FormatAmountCents(byCategory[category]))
		}
	}
	return nil
}

func sortedCategories(byCategory map[string]int64) []string {
	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if byCategory[categories[i]] != byCategory[categories[j]] {
			return byCategory[categories[i]] > byCategory[categories[j]]
		}
		return categories[i] < categories[j]
	})
	return categories
}
