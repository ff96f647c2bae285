package iexcloud

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"market_backend/internal/feature/marketdata/adapters/iexcloud/dto"
	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/platform/usage"
)

// statementQuery は期数と期間を検証してクエリを作ります。
func statementQuery(last int, period entity.Period) (url.Values, error) {
	if last < entity.MinStatementPeriods || last > entity.MaxStatementPeriods {
		return nil, domain.NewBadRequestError(fmt.Sprintf("statement periods must be between %d and %d, got %d", entity.MinStatementPeriods, entity.MaxStatementPeriods, last))
	}
	if period != entity.Quarterly && period != entity.Annual {
		return nil, domain.NewBadRequestError(fmt.Sprintf("unknown statement period %v", period))
	}
	q := url.Values{}
	q.Set("last", strconv.Itoa(last))
	q.Set("period", period.String())
	return q, nil
}

// IncomeStatements は損益計算書を返します。使用量は返却期数で記録されます。
func (p *Provider) IncomeStatements(ctx context.Context, symbol entity.Symbol, last int, period entity.Period) ([]entity.IncomeStatement, error) {
	if !symbol.IsValid() {
		return nil, domain.NewBadSymbolError(string(symbol))
	}
	q, err := statementQuery(last, period)
	if err != nil {
		return nil, err
	}
	res, err := fetch[dto.IncomeResponse](ctx, p, symbol, "income", q)
	if err != nil {
		return nil, err
	}

	out := make([]entity.IncomeStatement, 0, len(res.Income))
	for _, r := range res.Income {
		f := newFields(r.Currency)
		s := entity.IncomeStatement{
			ReportDate:             f.date(r.ReportDate),
			FiscalDate:             f.date(r.FiscalDate),
			FiscalQuarter:          f.count(r.FiscalQuarter),
			FiscalYear:             f.count(r.FiscalYear),
			Period:                 period,
			TotalRevenue:           f.money(r.TotalRevenue),
			CostOfRevenue:          f.money(r.CostOfRevenue),
			GrossProfit:            f.money(r.GrossProfit),
			ResearchAndDevelopment: f.money(r.ResearchAndDevelopment),
			SellingGeneralAdmin:    f.money(r.SellingGeneralAndAdmin),
			OperatingExpense:       f.money(r.OperatingExpense),
			OperatingIncome:        f.money(r.OperatingIncome),
			InterestIncome:         f.money(r.InterestIncome),
			PretaxIncome:           f.money(r.PretaxIncome),
			IncomeTax:              f.money(r.IncomeTax),
			NetIncome:              f.money(r.NetIncome),
		}
		if f.err != nil {
			return nil, f.err
		}
		out = append(out, s)
	}
	if len(out) > 0 {
		p.meter.RecordAPIUsage(ctx, usage.IncomeStatement, int64(len(out)))
	}
	return out, nil
}

// BalanceSheets は貸借対照表を返します。使用量は返却期数で記録されます。
func (p *Provider) BalanceSheets(ctx context.Context, symbol entity.Symbol, last int, period entity.Period) ([]entity.BalanceSheet, error) {
	if !symbol.IsValid() {
		return nil, domain.NewBadSymbolError(string(symbol))
	}
	q, err := statementQuery(last, period)
	if err != nil {
		return nil, err
	}
	res, err := fetch[dto.BalanceSheetResponse](ctx, p, symbol, "balance-sheet", q)
	if err != nil {
		return nil, err
	}

	out := make([]entity.BalanceSheet, 0, len(res.BalanceSheet))
	for _, r := range res.BalanceSheet {
		f := newFields(r.Currency)
		s := entity.BalanceSheet{
			ReportDate:              f.date(r.ReportDate),
			FiscalDate:              f.date(r.FiscalDate),
			FiscalQuarter:           f.count(r.FiscalQuarter),
			FiscalYear:              f.count(r.FiscalYear),
			Period:                  period,
			CurrentCash:             f.money(r.CurrentCash),
			ShortTermInvestments:    f.money(r.ShortTermInvestments),
			Receivables:             f.money(r.Receivables),
			Inventory:               f.money(r.Inventory),
			CurrentAssets:           f.money(r.CurrentAssets),
			LongTermInvestments:     f.money(r.LongTermInvestments),
			PropertyPlantEquipment:  f.money(r.PropertyPlantEquipment),
			Goodwill:                f.money(r.Goodwill),
			IntangibleAssets:        f.money(r.IntangibleAssets),
			TotalAssets:             f.money(r.TotalAssets),
			AccountsPayable:         f.money(r.AccountsPayable),
			TotalCurrentLiabilities: f.money(r.TotalCurrentLiabilities),
			LongTermDebt:            f.money(r.LongTermDebt),
			TotalLiabilities:        f.money(r.TotalLiabilities),
			ShareholderEquity:       f.money(r.ShareholderEquity),
		}
		if f.err != nil {
			return nil, f.err
		}
		out = append(out, s)
	}
	if len(out) > 0 {
		p.meter.RecordAPIUsage(ctx, usage.BalanceSheet, int64(len(out)))
	}
	return out, nil
}
