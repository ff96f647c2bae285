package dto

// IncomeResponse は /stock/{symbol}/income のレスポンスです。
type IncomeResponse struct {
	Symbol string   `json:"symbol"`
	Income []Income `json:"income"`
}

type Income struct {
	ReportDate             string   `json:"reportDate"`
	FiscalDate             string   `json:"fiscalDate"`
	FiscalQuarter          float64  `json:"fiscalQuarter"`
	FiscalYear             float64  `json:"fiscalYear"`
	Currency               string   `json:"currency"`
	TotalRevenue           *float64 `json:"totalRevenue"`
	CostOfRevenue          *float64 `json:"costOfRevenue"`
	GrossProfit            *float64 `json:"grossProfit"`
	ResearchAndDevelopment *float64 `json:"researchAndDevelopment"`
	SellingGeneralAndAdmin *float64 `json:"sellingGeneralAndAdmin"`
	OperatingExpense       *float64 `json:"operatingExpense"`
	OperatingIncome        *float64 `json:"operatingIncome"`
	InterestIncome         *float64 `json:"interestIncome"`
	PretaxIncome           *float64 `json:"pretaxIncome"`
	IncomeTax              *float64 `json:"incomeTax"`
	NetIncome              *float64 `json:"netIncome"`
}

// BalanceSheetResponse は /stock/{symbol}/balance-sheet のレスポンスです。
type BalanceSheetResponse struct {
	Symbol       string         `json:"symbol"`
	BalanceSheet []BalanceSheet `json:"balancesheet"`
}

type BalanceSheet struct {
	ReportDate              string   `json:"reportDate"`
	FiscalDate              string   `json:"fiscalDate"`
	FiscalQuarter           float64  `json:"fiscalQuarter"`
	FiscalYear              float64  `json:"fiscalYear"`
	Currency                string   `json:"currency"`
	CurrentCash             *float64 `json:"currentCash"`
	ShortTermInvestments    *float64 `json:"shortTermInvestments"`
	Receivables             *float64 `json:"receivables"`
	Inventory               *float64 `json:"inventory"`
	CurrentAssets           *float64 `json:"currentAssets"`
	LongTermInvestments     *float64 `json:"longTermInvestments"`
	PropertyPlantEquipment  *float64 `json:"propertyPlantEquipment"`
	Goodwill                *float64 `json:"goodwill"`
	IntangibleAssets        *float64 `json:"intangibleAssets"`
	TotalAssets             *float64 `json:"totalAssets"`
	AccountsPayable         *float64 `json:"accountsPayable"`
	TotalCurrentLiabilities *float64 `json:"totalCurrentLiabilities"`
	LongTermDebt            *float64 `json:"longTermDebt"`
	TotalLiabilities        *float64 `json:"totalLiabilities"`
	ShareholderEquity       *float64 `json:"shareholderEquity"`
}
