package render

import (
	"encoding/base64"
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// BuildUPIURI builds the upi://pay deep link scanned by mobile payment apps.
// The amount is rendered with two decimals like every other currency value.
func BuildUPIURI(upiID, payeeName string, amount float64) string {
	params := url.Values{}
	params.Set("pa", upiID)
	params.Set("pn", payeeName)
	params.Set("am", fmt.Sprintf("%.2f", amount))
	params.Set("cu", "INR")
	return "upi://pay?" + params.Encode()
}

// QRDataURL encodes the payment URI as a PNG data: URI for inline embedding.
func QRDataURL(uri string) (string, error) {
	png, err := qrcode.Encode(uri, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
