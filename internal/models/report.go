package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LocalizedText is one language variant of an upstream description.
type LocalizedText struct {
	LanguageID string `json:"languageId"`
	Text       string `json:"text"`
}

type BaseCurrencyAmount struct {
	BaseAmount decimal.Decimal `json:"baseAmount"`
}

// ReportBalance carries per-currency figures already converted to the
// upstream's canonical reporting currency.
type ReportBalance struct {
	BaseCurrencies []BaseCurrencyAmount `json:"baseCurrencies"`
}

// FirstBaseAmount returns the first entry's amount, or zero when the balance,
// its list, or the first entry is absent. Absence is not an error.
func (b *ReportBalance) FirstBaseAmount() decimal.Decimal {
	if b == nil || len(b.BaseCurrencies) == 0 {
		return decimal.Zero
	}
	return b.BaseCurrencies[0].BaseAmount
}

type AccountingAccount struct {
	ID          string         `json:"id"`
	Description *LocalizedText `json:"description"`
}

type ReportAccount struct {
	AccountingAccount *AccountingAccount `json:"accountingAccount"`
	Balance           *ReportBalance     `json:"balance"`
}

// ReportCategory is one node of the upstream category tree. Categories carry
// subcategories, subcategories carry accounts; the source contract fixes the
// depth at three levels but the shape itself recurses.
type ReportCategory struct {
	Descriptions  []LocalizedText `json:"descriptions"`
	Balance       *ReportBalance  `json:"balance"`
	SubCategories CategoryList    `json:"subCategories"`
	Accounts      []ReportAccount `json:"accounts"`
}

// CategoryList degrades a malformed (non-array) categories value to empty
// instead of failing the whole document.
type CategoryList []ReportCategory

func (l *CategoryList) UnmarshalJSON(data []byte) error {
	var cats []ReportCategory
	if err := json.Unmarshal(data, &cats); err != nil {
		*l = nil
		return nil
	}
	*l = cats
	return nil
}

type FinancialReport struct {
	Categories CategoryList `json:"categories"`
}

// IncomeStatement is the upstream income statement document. Some aggregator
// versions nest the category tree under financialReport, others put it at the
// top level; ReportCategories handles both.
type IncomeStatement struct {
	FinancialReport   *FinancialReport `json:"financialReport"`
	Categories        CategoryList     `json:"categories"`
	ProfitLossBalance *ReportBalance   `json:"profitLossBalance"`
}

func (s IncomeStatement) ReportCategories() []ReportCategory {
	if s.FinancialReport != nil && len(s.FinancialReport.Categories) > 0 {
		return s.FinancialReport.Categories
	}
	return s.Categories
}

type AccountingPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// DisplayRow is one render-ready line of the flattened income statement.
// Level is the depth in the source tree (0 categories, 1 subcategories,
// 2 accounts); rows are emitted in document order with an optional trailing
// result row.
type DisplayRow struct {
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Amount        decimal.Decimal `json:"amount"`
	Level         int             `json:"level"`
	IsCategoryRow bool            `json:"isCategoryRow"`
}
