package email

import "context"

// Attachment rides on a message as a base64-encoded MIME part.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Provider delivers a message through an external mail relay. One attempt,
// no queueing, no delivery confirmation.
type Provider interface {
	Send(ctx context.Context, msg Message) error
}

type NoOpProvider struct{}

func (p *NoOpProvider) Send(ctx context.Context, msg Message) error {
	return nil
}
