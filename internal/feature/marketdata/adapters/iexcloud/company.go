package iexcloud

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"market_backend/internal/feature/marketdata/adapters/iexcloud/dto"
	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/platform/usage"
)

func (p *Provider) Profile(ctx context.Context, symbol entity.Symbol) (entity.CompanyProfile, error) {
	res, err := fetch[dto.CompanyResponse](ctx, p, symbol, "company", nil)
	if err != nil {
		return entity.CompanyProfile{}, err
	}
	f := newFields("")
	profile := entity.CompanyProfile{
		Symbol:       entity.Symbol(res.Symbol),
		Name:         res.CompanyName,
		Exchange:     res.Exchange,
		Industry:     res.Industry,
		Sector:       res.Sector,
		Website:      res.Website,
		Description:  res.Description,
		CEO:          res.CEO,
		SecurityName: res.SecurityName,
		IssueType:    res.IssueType,
		Employees:    f.integer(res.Employees),
		Tags:         res.Tags,
		Address:      res.Address,
		City:         res.City,
		State:        res.State,
		Zip:          res.Zip,
		Country:      res.Country,
		Phone:        res.Phone,
	}
	sic := f.integer(res.PrimarySicCode)
	if f.err != nil {
		return entity.CompanyProfile{}, f.err
	}
	if sic != nil {
		if *sic < 0 || *sic > math.MaxUint16 {
			return entity.CompanyProfile{}, domain.NewBadResponseError(fmt.Sprintf("SIC code %d out of range", *sic), nil)
		}
		code := uint16(*sic)
		profile.SICCode = &code
	}
	if profile.Tags == nil {
		profile.Tags = []string{}
	}
	p.meter.RecordAPIUse(ctx, usage.Company)
	return profile, nil
}

// Filings は開示書類を返します。filter.FormType が空なら全様式、From があればその日以降です。
func (p *Provider) Filings(ctx context.Context, symbol entity.Symbol, filter entity.FilingFilter) ([]entity.Filing, error) {
	if !symbol.IsValid() {
		return nil, domain.NewBadSymbolError(string(symbol))
	}
	path := "time-series/reported_financials/" + url.PathEscape(string(symbol))
	if filter.FormType != "" {
		path += "/" + url.PathEscape(filter.FormType)
	}
	q := url.Values{}
	if filter.From != nil {
		q.Set("from", filter.From.String())
	}

	var res []dto.Filing
	if err := p.client.GetJSON(ctx, p.endpoint(path, q), &res); err != nil {
		return nil, err
	}

	out := make([]entity.Filing, 0, len(res))
	for _, r := range res {
		f := newFields("")
		filing := entity.Filing{
			FormType:        r.FormType,
			FiledDate:       f.date(r.FilingDate),
			PeriodEnd:       f.optionalDate(r.PeriodEnd),
			AccessionNumber: r.AccessionNumber,
			URL:             r.URL,
		}
		if f.err != nil {
			return nil, f.err
		}
		out = append(out, filing)
	}
	if len(out) > 0 {
		p.meter.RecordAPIUsage(ctx, usage.Filings, int64(len(out)))
	}
	return out, nil
}

