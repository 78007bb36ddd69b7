package email

import (
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_MultipartWithAttachment(t *testing.T) {
	p := NewSMTP(Config{
		From:     "billing@acme.test",
		FromName: "Acme Billing",
	})

	pdf := []byte("%PDF-1.4 fake invoice bytes long enough to wrap across multiple base64 lines when encoded for transport")
	raw, err := p.buildMessage(Message{
		To:       []string{"client@example.com"},
		Subject:  "Invoice #INV-001 from Acme",
		HTMLBody: "<p>Hi Widget Co,</p>",
		Attachments: []Attachment{{
			Name:        "Invoice-INV-001.pdf",
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	})
	require.NoError(t, err)

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)

	assert.Equal(t, `"Acme Billing" <billing@acme.test>`, msg.Header.Get("From"))
	assert.Equal(t, "client@example.com", msg.Header.Get("To"))
	assert.Equal(t, "Invoice #INV-001 from Acme", msg.Header.Get("Subject"))
	assert.Equal(t, "1.0", msg.Header.Get("MIME-Version"))

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/mixed", mediaType)
	require.NotEmpty(t, params["boundary"])

	reader := multipart.NewReader(msg.Body, params["boundary"])

	body, err := reader.NextPart()
	require.NoError(t, err)
	assert.Contains(t, body.Header.Get("Content-Type"), "text/html")
	bodyBytes, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "<p>Hi Widget Co,</p>", string(bodyBytes))

	att, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", att.Header.Get("Content-Type"))
	assert.Equal(t, "base64", att.Header.Get("Content-Transfer-Encoding"))
	assert.Contains(t, att.Header.Get("Content-Disposition"), "Invoice-INV-001.pdf")

	encoded, err := io.ReadAll(att)
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimRight(string(encoded), "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), 76)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(string(encoded), "\r\n", ""))
	require.NoError(t, err)
	assert.Equal(t, pdf, decoded)

	_, err = reader.NextPart()
	assert.Equal(t, io.EOF, err)
}

func TestBuildMessage_PlainFromWithoutSenderName(t *testing.T) {
	p := NewSMTP(Config{From: "billing@acme.test"})

	raw, err := p.buildMessage(Message{
		To:       []string{"client@example.com"},
		Subject:  "Invoice",
		HTMLBody: "<p>hi</p>",
	})
	require.NoError(t, err)

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, "billing@acme.test", msg.Header.Get("From"))
}
