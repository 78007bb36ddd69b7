package pdf

import "context"

// Provider converts a standalone HTML document into PDF bytes. Stateless per
// call; each export runs in its own rendering context.
type Provider interface {
	Export(ctx context.Context, html string) ([]byte, error)
}

type NoOpProvider struct{}

func (p *NoOpProvider) Export(ctx context.Context, html string) ([]byte, error) {
	return nil, nil
}
