package dto

// CompanyResponse は /stock/{symbol}/company のレスポンスです。
type CompanyResponse struct {
	Symbol         string   `json:"symbol"`
	CompanyName    string   `json:"companyName"`
	Exchange       string   `json:"exchange"`
	Industry       string   `json:"industry"`
	Website        string   `json:"website"`
	Description    string   `json:"description"`
	CEO            string   `json:"CEO"`
	SecurityName   string   `json:"securityName"`
	IssueType      string   `json:"issueType"`
	Sector         string   `json:"sector"`
	PrimarySicCode *float64 `json:"primarySicCode"`
	Employees      *float64 `json:"employees"`
	Tags           []string `json:"tags"`
	Address        string   `json:"address"`
	State          string   `json:"state"`
	City           string   `json:"city"`
	Zip            string   `json:"zip"`
	Country        string   `json:"country"`
	Phone          string   `json:"phone"`
}

// Filing は /time-series/reported_financials/{symbol}/{form} の1要素です。
type Filing struct {
	FormType        string  `json:"formType"`
	FilingDate      string  `json:"filingDate"`
	PeriodEnd       *string `json:"periodEnd"`
	AccessionNumber string  `json:"accessionNumber"`
	URL             string  `json:"url"`
}
