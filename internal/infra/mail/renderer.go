package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bimafrica/quote-api/internal/entity"
)

// Hosting/domain option codes as submitted by the quotation form.
var choiceText = map[string]string{
	"client": "Client to Provide",
	"bim":    "Bim Africa to Provide",
}

// ChoiceText maps a hosting/domain option code to its display phrase.
// Unrecognized codes pass through unchanged.
func ChoiceText(code string) string {
	if text, ok := choiceText[code]; ok {
		return text
	}
	return code
}

// FeaturesText renders the feature tag set for display: hyphens become
// spaces, each tag is capitalized, tags are joined with ", ". An empty
// set renders as "None".
func FeaturesText(features []string) string {
	if len(features) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(features))
	for _, f := range features {
		parts = append(parts, capitalize(f))
	}
	return strings.Join(parts, ", ")
}

func capitalize(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// PriceText rounds the price to the nearest whole unit, groups thousands
// and prefixes the currency code, e.g. "MUR 1,235".
func PriceText(currency string, price float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%s %d", currency, int64(math.Round(price)))
}

type quoteEmailData struct {
	QuoteNumber string
	Name        string
	CompanyName string
	Email       string
	Number      string
	Country     string

	WebsiteType    string
	ShowPages      bool
	Pages          string
	ShowProducts   bool
	Products       string
	InsertProducts string
	DesignStyle    string
	FeaturesText   string
	Timeline       string
	HostingText    string
	DomainText     string
	Message        string

	PriceText string
}

func newQuoteEmailData(q *entity.Quote) quoteEmailData {
	websiteType := strings.ToLower(q.WebsiteType)
	return quoteEmailData{
		QuoteNumber: q.QuoteNumber,
		Name:        q.Name,
		CompanyName: q.CompanyName,
		Email:       q.Email,
		Number:      q.Number,
		Country:     q.Country,

		WebsiteType:    q.WebsiteType,
		ShowPages:      websiteType != "ecommerce" && websiteType != "landing" && q.Pages != "",
		Pages:          q.Pages,
		ShowProducts:   websiteType == "ecommerce" && q.Products != "",
		Products:       q.Products,
		InsertProducts: q.InsertProducts,
		DesignStyle:    q.DesignStyle,
		FeaturesText:   FeaturesText(q.Features),
		Timeline:       q.Timeline,
		HostingText:    ChoiceText(q.Hosting),
		DomainText:     ChoiceText(q.Domain),
		Message:        q.Message,

		PriceText: PriceText(q.Currency, q.Price),
	}
}

const detailRows = `
{{define "details"}}
<table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
  <tr><td style="padding: 8px 0; font-weight: bold;">Website Type:</td><td style="text-align: right; text-transform: capitalize;">{{.WebsiteType}}</td></tr>
  {{if .ShowPages}}<tr><td style="padding: 8px 0; font-weight: bold;">Pages:</td><td style="text-align: right;">{{.Pages}}</td></tr>{{end}}
  {{if .ShowProducts}}<tr><td style="padding: 8px 0; font-weight: bold;">Products:</td><td style="text-align: right;">{{.Products}}</td></tr>
  {{if .InsertProducts}}<tr><td style="padding: 8px 0; font-weight: bold;">Insert Products:</td><td style="text-align: right;">{{.InsertProducts}}</td></tr>{{end}}{{end}}
  <tr><td style="padding: 8px 0; font-weight: bold;">Design Style:</td><td style="text-align: right; text-transform: capitalize;">{{.DesignStyle}}</td></tr>
  <tr><td style="padding: 8px 0; font-weight: bold;">Features:</td><td style="text-align: right;">{{.FeaturesText}}</td></tr>
  <tr><td style="padding: 8px 0; font-weight: bold;">Timeline:</td><td style="text-align: right;">{{.Timeline}}</td></tr>
  <tr><td style="padding: 8px 0; font-weight: bold;">Hosting:</td><td style="text-align: right;">{{.HostingText}}</td></tr>
  <tr><td style="padding: 8px 0; font-weight: bold;">Domain:</td><td style="text-align: right;">{{.DomainText}}</td></tr>
  <tr style="background-color: #f8f9fa;">
    <td style="padding: 12px 0; font-weight: bold; color: #ff6f61; font-size: 18px;">Final Price:</td>
    <td style="padding: 12px 0; font-weight: bold; color: #ff6f61; font-size: 18px; text-align: right;">{{.PriceText}}</td>
  </tr>
</table>
{{end}}`

var clientTemplate = template.Must(template.New("client").Parse(detailRows + `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="text-align: center; margin-bottom: 30px;">
    <img src="https://bim.africa/images/logos/logo.png" alt="BIM Africa Logo" style="max-width: 200px; height: auto;" />
  </div>
  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h2 style="color: #333; margin-top: 0;">Quote Number: {{.QuoteNumber}}</h2>
    <p style="color: #666; font-size: 16px;">Hi {{.Name}},</p>
    <p style="color: #666; font-size: 16px;">Thank you for using our instant quotation tool. Here is your quote summary:</p>
  </div>
  <div style="background-color: #fff; border: 1px solid #ddd; border-radius: 8px; padding: 20px; margin-bottom: 20px;">
    <h3 style="color: #ff6f61; margin-top: 0; border-bottom: 2px solid #ff6f61; padding-bottom: 10px;">Quote Details</h3>
    <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
      <tr><td style="padding: 8px 0; font-weight: bold;">Country:</td><td style="text-align: right;">{{.Country}}</td></tr>
    </table>
    {{template "details" .}}
  </div>
  <div style="background-color: #ff6f61; color: white; padding: 20px; border-radius: 8px; text-align: center;">
    <p style="margin: 0; font-size: 16px;">We will contact you shortly to discuss further details.</p>
    <p style="margin: 10px 0 0 0; font-weight: bold;">Best Regards,<br/>Sales Team - BIM Africa</p>
    <a href="https://bim.africa/" style="color: white; text-decoration: underline;" target="_blank">www.bim.africa</a>
  </div>
</div>`))

var adminTemplate = template.Must(template.New("admin").Parse(detailRows + `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="text-align: center; margin-bottom: 30px;">
    <img src="https://bim.africa/images/logos/logo.png" style="max-width: 200px; height: auto;" />
  </div>
  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h2 style="color: #333; margin-top: 0;">New Website Quotation Request</h2>
    <h3 style="color: #ff6f61;">Quote Number: {{.QuoteNumber}}</h3>
  </div>
  <div style="background-color: #fff; border: 1px solid #ddd; border-radius: 8px; padding: 20px;">
    <h3 style="color: #ff6f61; margin-top: 0; border-bottom: 2px solid #ff6f61; padding-bottom: 10px;">Client Information</h3>
    <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
      <tr><td style="padding: 8px 0; font-weight: bold;">Name:</td><td style="text-align: right;">{{.Name}}</td></tr>
      {{if .CompanyName}}<tr><td style="padding: 8px 0; font-weight: bold;">Company:</td><td style="text-align: right;">{{.CompanyName}}</td></tr>{{end}}
      <tr><td style="padding: 8px 0; font-weight: bold;">Email:</td><td style="text-align: right;">{{.Email}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">Phone:</td><td style="text-align: right;">{{.Number}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">Country:</td><td style="text-align: right;">{{.Country}}</td></tr>
      {{if .Message}}<tr><td style="padding: 8px 0; font-weight: bold;">Message:</td><td style="text-align: right;">{{.Message}}</td></tr>{{end}}
    </table>
    <h3 style="color: #ff6f61; border-bottom: 2px solid #ff6f61; padding-bottom: 10px;">Project Details</h3>
    {{template "details" .}}
  </div>
</div>`))

// BuildClientEmail renders the client-facing quotation summary.
func BuildClientEmail(q *entity.Quote) Message {
	return Message{
		FromName: "BIM AFRICA",
		To:       q.Email,
		Subject:  fmt.Sprintf("Your Website Quotation - %s", q.QuoteNumber),
		HTML:     render(clientTemplate, newQuoteEmailData(q)),
	}
}

// BuildAdminEmail renders the internal sales notification.
func BuildAdminEmail(q *entity.Quote, to string) Message {
	return Message{
		FromName: "BIM Africa Website",
		To:       to,
		Subject:  fmt.Sprintf("New Quote Request - %s", q.QuoteNumber),
		HTML:     render(adminTemplate, newQuoteEmailData(q)),
	}
}

func render(t *template.Template, data quoteEmailData) string {
	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		// Templates are static and data is a plain struct; Execute cannot
		// fail at runtime with well-formed templates.
		return ""
	}
	return body.String()
}
