// Package reportview flattens the aggregator's hierarchical income statement
// into the ordered rows the dashboard renders.
package reportview

import (
	"github.com/ledgerlink/go-consent-report/internal/models"
)

const (
	// UnknownLabel stands in for any node without a usable description.
	UnknownLabel = "Unknown"
	// ResultLabel names the trailing profit/loss row.
	ResultLabel = "Result"
)

type Normalizer struct {
	preferredLanguage string
}

func New(preferredLanguage string) *Normalizer {
	return &Normalizer{preferredLanguage: preferredLanguage}
}

// Flatten walks the category tree depth first and emits one row per node:
// a category row for every category and subcategory, an account row for every
// account, then a single result row when the document carries a profit/loss
// balance. Missing descriptions and balances degrade to UnknownLabel and zero
// instead of failing the document.
func (n *Normalizer) Flatten(doc models.IncomeStatement) []models.DisplayRow {
	rows := []models.DisplayRow{}
	for _, category := range doc.ReportCategories() {
		rows = n.appendCategory(rows, category, 0)
	}

	if doc.ProfitLossBalance != nil {
		rows = append(rows, models.DisplayRow{
			AccountName:   ResultLabel,
			Amount:        doc.ProfitLossBalance.FirstBaseAmount(),
			Level:         0,
			IsCategoryRow: true,
		})
	}

	return rows
}

func (n *Normalizer) appendCategory(rows []models.DisplayRow, category models.ReportCategory, level int) []models.DisplayRow {
	rows = append(rows, models.DisplayRow{
		AccountName:   n.resolveDescription(category.Descriptions),
		Amount:        category.Balance.FirstBaseAmount(),
		Level:         level,
		IsCategoryRow: true,
	})

	for _, sub := range category.SubCategories {
		rows = n.appendCategory(rows, sub, level+1)
	}

	for _, account := range category.Accounts {
		rows = append(rows, n.accountRow(account, level+1))
	}

	return rows
}

func (n *Normalizer) accountRow(account models.ReportAccount, level int) models.DisplayRow {
	row := models.DisplayRow{
		AccountName:   UnknownLabel,
		Amount:        account.Balance.FirstBaseAmount(),
		Level:         level,
		IsCategoryRow: false,
	}

	if acc := account.AccountingAccount; acc != nil {
		row.AccountNumber = acc.ID
		if acc.Description != nil && acc.Description.Text != "" {
			row.AccountName = acc.Description.Text
		}
	}

	return row
}

// resolveDescription prefers the configured language, falls back to the first
// variant, then to UnknownLabel. An empty text counts as absent.
func (n *Normalizer) resolveDescription(descriptions []models.LocalizedText) string {
	for _, d := range descriptions {
		if d.LanguageID == n.preferredLanguage && d.Text != "" {
			return d.Text
		}
	}
	for _, d := range descriptions {
		if d.Text != "" {
			return d.Text
		}
	}
	return UnknownLabel
}
