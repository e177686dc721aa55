package about

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/nfrund/safebite/internal/storage"
)

// Export writes the full page for every locale to store as
// about/<locale>.html and returns the written paths.
func (p *Pages) Export(ctx context.Context, store storage.Store) ([]string, error) {
	var written []string
	for _, l := range p.catalog.Locales() {
		body, err := p.Render(ctx, l, FullPage)
		if err != nil {
			return written, err
		}
		target := path.Join("about", l.String()+".html")
		if _, err := store.Save(ctx, target, bytes.NewReader(body)); err != nil {
			return written, fmt.Errorf("export %s: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}
