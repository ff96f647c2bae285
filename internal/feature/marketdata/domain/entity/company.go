package entity

import "cloud.google.com/go/civil"

// CompanyProfile is the "about" information of an issuer.
type CompanyProfile struct {
	Symbol       Symbol   `json:"symbol"`
	Name         string   `json:"name"`
	Exchange     string   `json:"exchange"`
	Industry     string   `json:"industry"`
	Sector       string   `json:"sector"`
	Website      string   `json:"website"`
	Description  string   `json:"description"`
	CEO          string   `json:"ceo"`
	SecurityName string   `json:"security_name"`
	IssueType    string   `json:"issue_type"`
	SICCode      *uint16  `json:"sic_code,omitempty"`
	Employees    *int64   `json:"employees,omitempty"`
	Tags         []string `json:"tags"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Zip          string   `json:"zip"`
	Country      string   `json:"country"`
	Phone        string   `json:"phone"`
}

// Filing is one regulatory filing (10-K, 10-Q, 8-K, ...).
type Filing struct {
	FormType        string      `json:"form_type"`
	FiledDate       civil.Date  `json:"filed_date"`
	PeriodEnd       *civil.Date `json:"period_end,omitempty"`
	AccessionNumber string      `json:"accession_number"`
	URL             string      `json:"url"`
}

// FilingFilter narrows a filings request. Zero value means "everything".
type FilingFilter struct {
	From     *civil.Date
	FormType string
}
