package twelvedata

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"market_backend/internal/feature/marketdata/adapters/twelvedata/dto"
	"market_backend/internal/feature/marketdata/convert"
	"market_backend/internal/feature/marketdata/domain"
	"market_backend/internal/feature/marketdata/domain/entity"
	"market_backend/internal/feature/marketdata/usecase"
	platformhttp "market_backend/internal/platform/http"
	"market_backend/internal/platform/usage"
)

const (
	attribution = "Data provided by Twelve Data"
	homepage    = "https://twelvedata.com"
	userAgent   = "market-backend/twelvedata"

	// intradayInterval と intradayOutputSize は1営業日分の分足です。
	intradayInterval   = "1min"
	intradayOutputSize = 390
	defaultCurrency    = "USD"
	defaultTimeZone    = "America/New_York"
)

// JSONGetter は platformhttp.JSONClient が満たす転送層インターフェースです。
type JSONGetter interface {
	GetJSON(ctx context.Context, rawURL string, out any) error
}

// TwelveDataMarket はTwelve Data外部APIから価格データを取得する実装です。
type TwelveDataMarket struct {
	apiKey  string
	baseURL string
	client  JSONGetter
	meter   usage.Recorder
}

// TwelveDataMarketが能力インターフェースを実装していることをコンパイル時に検証します。
var (
	_ usecase.QuoteProvider        = (*TwelveDataMarket)(nil)
	_ usecase.QuotesSeriesProvider = (*TwelveDataMarket)(nil)
	_ usecase.Attributed           = (*TwelveDataMarket)(nil)
)

// New は設定を検証して TwelveDataMarket を生成します。
// client が nil の場合は既定の HTTP クライアントを使います。
func New(cfg Config, client platformhttp.Doer, meter usage.Recorder) (*TwelveDataMarket, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &TwelveDataMarket{
		apiKey:  cfg.APIKey,
		baseURL: cfg.baseURL(),
		client:  platformhttp.NewJSONClient(client, userAgent),
		meter:   meter,
	}, nil
}

func (t *TwelveDataMarket) Attribution() string { return attribution }

func (t *TwelveDataMarket) URL() string { return homepage }

// get はシンボルを検証し、endpoint を呼び出して out にデコードします。
// 本文の status が "error" の場合は code を HTTP ステータスとして扱います。
func (t *TwelveDataMarket) get(ctx context.Context, endpoint string, symbol entity.Symbol, q url.Values, out interface{ status() dto.Status }) error {
	if !symbol.IsValid() {
		return domain.NewBadSymbolError(string(symbol))
	}
	if q == nil {
		q = url.Values{}
	}
	// クエリパラメータを追加
	q.Set("symbol", string(symbol))
	q.Set("apikey", t.apiKey)

	u := fmt.Sprintf("%s/%s?%s", t.baseURL, endpoint, q.Encode())
	if err := t.client.GetJSON(ctx, u, out); err != nil {
		return err
	}
	if s := out.status(); s.Status == "error" {
		return platformhttp.StatusError(s.Code, fmt.Sprintf("twelvedata %s: %s", endpoint, s.Message), "")
	}
	return nil
}

type priceBody struct{ dto.PriceResponse }

func (b *priceBody) status() dto.Status { return b.Status }

type quoteBody struct{ dto.QuoteResponse }

func (b *quoteBody) status() dto.Status { return b.Status }

type seriesBody struct{ dto.TimeSeriesResponse }

func (b *seriesBody) status() dto.Status { return b.Status }

func (t *TwelveDataMarket) record(ctx context.Context, name usage.APIName) {
	if t.meter != nil {
		t.meter.RecordAPIUse(ctx, name)
	}
}

// LatestPrice は /price の値を返します。
func (t *TwelveDataMarket) LatestPrice(ctx context.Context, symbol entity.Symbol) (entity.Money, error) {
	var body priceBody
	if err := t.get(ctx, "price", symbol, nil, &body); err != nil {
		return entity.Money{}, err
	}
	m, err := convert.DecimalToMoney(body.Price, defaultCurrency)
	if err != nil {
		return entity.Money{}, err
	}
	t.record(ctx, usage.Price)
	return m, nil
}

func (t *TwelveDataMarket) quote(ctx context.Context, symbol entity.Symbol) (dto.QuoteResponse, error) {
	var body quoteBody
	if err := t.get(ctx, "quote", symbol, nil, &body); err != nil {
		return dto.QuoteResponse{}, err
	}
	return body.QuoteResponse, nil
}

func (t *TwelveDataMarket) Quote(ctx context.Context, symbol entity.Symbol) (entity.Quote, error) {
	res, err := t.quote(ctx, symbol)
	if err != nil {
		return entity.Quote{}, err
	}
	cur := res.Currency
	if cur == "" {
		cur = defaultCurrency
	}
	latest, err := convert.DecimalToMoney(res.Close, cur)
	if err != nil {
		return entity.Quote{}, err
	}
	f := fields{currency: cur}
	q := entity.Quote{
		Symbol:         entity.Symbol(res.Symbol),
		CompanyName:    res.Name,
		LatestPrice:    latest,
		LatestSource:   res.Exchange,
		Open:           f.money(res.Open),
		Close:          f.money(res.Close),
		High:           f.money(res.High),
		Low:            f.money(res.Low),
		PreviousClose:  f.money(res.PreviousClose),
		Change:         f.money(res.Change),
		ChangePercent:  f.ratio(res.PercentChange),
		Volume:         f.integer(res.Volume),
		Week52High:     f.money(res.FiftyTwoWeek.High),
		Week52Low:      f.money(res.FiftyTwoWeek.Low),
		IsUSMarketOpen: res.IsMarketOpen,
	}
	if f.err != nil {
		return entity.Quote{}, f.err
	}
	if q.ChangePercent != nil {
		// Twelve Data はパーセント値、entity は比率
		r := *q.ChangePercent / 100
		q.ChangePercent = &r
	}
	if res.Timestamp != nil {
		q.LatestUpdate = time.Unix(*res.Timestamp, 0).UTC()
	}
	t.record(ctx, usage.Quote)
	return q, nil
}

// DelayedQuote は /quote の終値を、その datetime の日付付きで返します。
func (t *TwelveDataMarket) DelayedQuote(ctx context.Context, symbol entity.Symbol) (entity.Snapshot[entity.Money], error) {
	res, err := t.quote(ctx, symbol)
	if err != nil {
		return entity.Snapshot[entity.Money]{}, err
	}
	cur := res.Currency
	if cur == "" {
		cur = defaultCurrency
	}
	price, err := convert.DecimalToMoney(res.Close, cur)
	if err != nil {
		return entity.Snapshot[entity.Money]{}, err
	}
	day, _, _ := strings.Cut(res.Datetime, " ")
	date, err := convert.StringToDate(day)
	if err != nil {
		return entity.Snapshot[entity.Money]{}, err
	}
	t.record(ctx, usage.DelayedQuote)
	return entity.NewSnapshot(price, date), nil
}

// IntradayQuotes は /time_series の1分足を古い順に返します。
func (t *TwelveDataMarket) IntradayQuotes(ctx context.Context, symbol entity.Symbol) ([]entity.IntradayQuote, error) {
	q := url.Values{}
	q.Set("interval", intradayInterval)
	q.Set("outputsize", strconv.Itoa(intradayOutputSize))

	var body seriesBody
	if err := t.get(ctx, "time_series", symbol, q, &body); err != nil {
		return nil, err
	}

	tz := body.Meta.ExchangeTimezone
	if tz == "" {
		tz = defaultTimeZone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, domain.NewBadResponseError("unknown exchange timezone "+tz, err)
	}
	cur := body.Meta.Currency
	if cur == "" {
		cur = defaultCurrency
	}

	bars := make([]entity.IntradayQuote, 0, len(body.Values))
	// APIは新しい順に返すので逆順に詰める
	for i := len(body.Values) - 1; i >= 0; i-- {
		v := body.Values[i]
		day, clock, _ := strings.Cut(v.Datetime, " ")
		at, err := convert.DateAndTimeToDateTime(day, clock, loc)
		if err != nil {
			return nil, err
		}
		f := fields{currency: cur}
		bar := entity.IntradayQuote{
			Time:  at,
			Open:  f.money(v.Open),
			High:  f.money(v.High),
			Low:   f.money(v.Low),
			Close: f.money(v.Close),
		}
		if vol := f.integer(v.Volume); vol != nil {
			bar.Volume = *vol
		}
		if f.err != nil {
			return nil, f.err
		}
		bars = append(bars, bar)
	}
	t.record(ctx, usage.IntradayPrices)
	return bars, nil
}

// fields は文字列の数値を変換し、最初のエラーを保持します。
type fields struct {
	currency string
	err      error
}

func (f *fields) money(s string) *entity.Money {
	if f.err != nil {
		return nil
	}
	m, err := convert.OptionalDecimalToMoney(s, f.currency)
	f.err = err
	return m
}

func (f *fields) ratio(s string) *float64 {
	if f.err != nil {
		return nil
	}
	r, err := convert.OptionalFloatFromString(s)
	f.err = err
	return r
}

func (f *fields) integer(s string) *int64 {
	if f.err != nil || s == "" {
		return nil
	}
	n, err := convert.IntFromString(s)
	if err != nil {
		f.err = err
		return nil
	}
	return &n
}
