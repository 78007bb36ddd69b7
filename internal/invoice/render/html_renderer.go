package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice #{{.Number}}</title>
  <style>
    body {
      font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif;
      color: #555;
    }
    .invoice-box {
      max-width: 800px;
      margin: auto;
      padding: 30px;
      border: 1px solid #eee;
      box-shadow: 0 0 10px rgba(0, 0, 0, 0.15);
      font-size: 16px;
      line-height: 24px;
    }
    .invoice-box table {
      width: 100%;
      line-height: inherit;
      text-align: left;
      border-collapse: collapse;
    }
    .invoice-box table td { padding: 5px; vertical-align: top; }
    .invoice-box table tr.top table td { padding-bottom: 20px; }
    .invoice-box table tr.top table td.title {
      font-size: 45px;
      line-height: 45px;
      color: #333;
    }
    .invoice-box table tr.information table td { padding-bottom: 40px; }
    .invoice-box table tr.heading td {
      background: #eee;
      border-bottom: 1px solid #ddd;
      font-weight: bold;
      text-align: left;
    }
    .invoice-box table tr.item td {
      border-bottom: 1px solid #eee;
      text-align: left;
    }
    .invoice-box table tr.total td:nth-child(3) {
      border-top: 2px solid #eee;
      font-weight: bold;
      text-align: right;
    }
    .invoice-box table tr.total td:nth-child(4) {
      border-top: 2px solid #eee;
      font-weight: bold;
      text-align: left;
    }
    .qr-code { text-align: right; }
  </style>
</head>
<body>
  <div class="invoice-box">
    <table>
      <tr class="top">
        <td colspan="4">
          <table>
            <tr>
              <td class="title">
                {{if .Issuer.LogoURL}}
                  <img src="{{.Issuer.LogoURL}}" style="max-height: 60px;" alt="{{.Issuer.Name}}">
                {{else}}
                  <strong style="font-size: 40px; font-weight: bold;">{{.Issuer.Name}}</strong>
                {{end}}
              </td>
            </tr>
            <tr>
              <td class="title">
                <strong style="font-size: 30px; font-weight: bold;">INVOICE</strong>
              </td>
              <td>
                Invoice #: {{.Number}}<br />
                Date: {{formatDate .Date}}<br />
              </td>
            </tr>
          </table>
        </td>
      </tr>
      <tr class="information">
        <td colspan="4">
          <table>
            <tr>
              <td>
                <strong>Billed to:</strong><br />
                {{.Client.Name}}<br />
                {{nl2br .Client.Address}}<br />
                {{.Client.Email}}
              </td>
              <td style="text-align: right;">
                <strong>From:</strong><br />
                {{.Issuer.Name}}<br />
                {{nl2br .Issuer.Address}}<br />
                {{.Issuer.Email}}
              </td>
            </tr>
          </table>
        </td>
      </tr>
      <tr class="heading">
        <td>Item</td>
        <td>Quantity</td>
        <td>Price</td>
        <td>Amount</td>
      </tr>
      {{range .Items}}
      <tr class="item">
        <td>{{.Name}}</td>
        <td>{{formatQuantity .Quantity}}</td>
        <td>{{formatMoney .Price}}</td>
        <td>{{formatMoney .Amount}}</td>
      </tr>
      {{end}}
      <tr class="total">
        <td colspan="2"></td>
        <td><strong>Total:</strong></td>
        <td><strong>{{formatMoney .Total}}</strong></td>
      </tr>
      {{if .Note}}
      <tr><td colspan="4" style="padding-top: 30px;"><strong>Note:</strong> {{.Note}}</td></tr>
      {{end}}
      <tr>
        <td colspan="4" class="qr-code">
          <p>Scan to pay:</p>
          {{if .QRDataURL}}<img src="{{.QRDataURL}}" style="width: 120px;" />{{else}}<span>UPI ID not configured.</span>{{end}}
        </td>
      </tr>
    </table>
  </div>
</body>
</html>
`

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"formatMoney":    formatMoney,
		"formatDate":     formatDate,
		"formatQuantity": formatQuantity,
		"nl2br":          nl2br,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
	}
}

// templateData wraps RenderInput with the resolved payment image so the QR
// encoding error surfaces before template execution.
type templateData struct {
	RenderInput
	QRDataURL template.URL
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	data := templateData{RenderInput: input}

	if strings.TrimSpace(input.Issuer.UPIID) != "" {
		uri := BuildUPIURI(input.Issuer.UPIID, input.Issuer.Name, input.Total)
		dataURL, err := QRDataURL(uri)
		if err != nil {
			return "", fmt.Errorf("encode payment qr: %w", err)
		}
		data.QRDataURL = template.URL(dataURL)
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// formatMoney renders every currency value with the rupee prefix and exactly
// two decimals.
func formatMoney(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// formatDate uses the fixed en-IN day-first format.
func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("02/01/2006")
}

func formatQuantity(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

// nl2br escapes the value first, then restores line breaks as <br/> tags.
// Multi-line postal addresses keep their shape without opening an injection
// path for the rest of the string.
func nl2br(value string) template.HTML {
	escaped := template.HTMLEscapeString(value)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br/>"))
}
