package usecase

type IntakeLeadInput struct {
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Country     string `json:"country"`
	Email       string `json:"email"`
	Number      string `json:"number"`
}

type IntakeLeadOutput struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type FinalizeQuoteInput struct {
	// Locator returned by intake. Empty means "create a new record".
	ID string `json:"id,omitempty"`

	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Country     string `json:"country"`
	Email       string `json:"email"`
	Number      string `json:"number"`

	Message        string   `json:"message"`
	WebsiteType    string   `json:"websiteType"`
	Products       string   `json:"products"`
	InsertProducts string   `json:"insertProducts"`
	Pages          string   `json:"pages"`
	DesignStyle    string   `json:"designStyle"`
	Features       []string `json:"features"`
	Timeline       string   `json:"timeline"`
	Hosting        string   `json:"hosting"`
	Domain         string   `json:"domain"`

	Currency string  `json:"currency"`
	Price    float64 `json:"price"`
}

type FinalizeQuoteOutput struct {
	Success     bool   `json:"success"`
	QuoteNumber string `json:"quoteNumber"`
	ID          string `json:"id"`
}
