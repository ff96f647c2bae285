package entity

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// Period selects quarterly or annual financial statements.
type Period int

const (
	Quarterly Period = iota + 1
	Annual
)

func (p Period) String() string {
	switch p {
	case Quarterly:
		return "quarter"
	case Annual:
		return "annual"
	default:
		return fmt.Sprintf("Period(%d)", int(p))
	}
}

// ParsePeriod accepts "quarter"/"quarterly" and "annual"/"year".
func ParsePeriod(s string) (Period, bool) {
	switch s {
	case "quarter", "quarterly", "q":
		return Quarterly, true
	case "annual", "year", "a":
		return Annual, true
	default:
		return 0, false
	}
}

func (p Period) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

const (
	// MinStatementPeriods is the smallest accepted number of statement periods.
	MinStatementPeriods = 1
	// MaxStatementPeriods is the largest accepted number of statement periods.
	MaxStatementPeriods = 12
)

// IncomeStatement is one reported income statement.
type IncomeStatement struct {
	ReportDate             civil.Date `json:"report_date"`
	FiscalDate             civil.Date `json:"fiscal_date"`
	FiscalQuarter          int        `json:"fiscal_quarter"`
	FiscalYear             int        `json:"fiscal_year"`
	Period                 Period     `json:"period"`
	TotalRevenue           *Money     `json:"total_revenue,omitempty"`
	CostOfRevenue          *Money     `json:"cost_of_revenue,omitempty"`
	GrossProfit            *Money     `json:"gross_profit,omitempty"`
	ResearchAndDevelopment *Money     `json:"research_and_development,omitempty"`
	SellingGeneralAdmin    *Money     `json:"selling_general_and_admin,omitempty"`
	OperatingExpense       *Money     `json:"operating_expense,omitempty"`
	OperatingIncome        *Money     `json:"operating_income,omitempty"`
	InterestIncome         *Money     `json:"interest_income,omitempty"`
	PretaxIncome           *Money     `json:"pretax_income,omitempty"`
	IncomeTax              *Money     `json:"income_tax,omitempty"`
	NetIncome              *Money     `json:"net_income,omitempty"`
}

// BalanceSheet is one reported balance sheet.
type BalanceSheet struct {
	ReportDate              civil.Date `json:"report_date"`
	FiscalDate              civil.Date `json:"fiscal_date"`
	FiscalQuarter           int        `json:"fiscal_quarter"`
	FiscalYear              int        `json:"fiscal_year"`
	Period                  Period     `json:"period"`
	CurrentCash             *Money     `json:"current_cash,omitempty"`
	ShortTermInvestments    *Money     `json:"short_term_investments,omitempty"`
	Receivables             *Money     `json:"receivables,omitempty"`
	Inventory               *Money     `json:"inventory,omitempty"`
	CurrentAssets           *Money     `json:"current_assets,omitempty"`
	LongTermInvestments     *Money     `json:"long_term_investments,omitempty"`
	PropertyPlantEquipment  *Money     `json:"property_plant_equipment,omitempty"`
	Goodwill                *Money     `json:"goodwill,omitempty"`
	IntangibleAssets        *Money     `json:"intangible_assets,omitempty"`
	TotalAssets             *Money     `json:"total_assets,omitempty"`
	AccountsPayable         *Money     `json:"accounts_payable,omitempty"`
	TotalCurrentLiabilities *Money     `json:"total_current_liabilities,omitempty"`
	LongTermDebt            *Money     `json:"long_term_debt,omitempty"`
	TotalLiabilities        *Money     `json:"total_liabilities,omitempty"`
	ShareholderEquity       *Money     `json:"shareholder_equity,omitempty"`
}
