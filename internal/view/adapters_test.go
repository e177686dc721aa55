package view_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/nfrund/safebite/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

type ctxKey struct{}

func TestAdaptGomponentToTempl(t *testing.T) {
	component := view.AdaptGomponentToTempl(html.Section(html.H2(g.Text("Our Story"))))

	var buf bytes.Buffer
	require.NoError(t, component.Render(context.Background(), &buf))
	assert.Equal(t, "<section><h2>Our Story</h2></section>", buf.String())
}

func TestAdaptTemplToGomponent(t *testing.T) {
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v, _ := ctx.Value(ctxKey{}).(string)
		_, err := io.WriteString(w, "<em>"+v+"</em>")
		return err
	})

	ctx := context.WithValue(context.Background(), ctxKey{}, "ko")
	node := html.Div(view.AdaptTemplToGomponent(ctx, component))

	var buf bytes.Buffer
	require.NoError(t, node.Render(&buf))
	assert.Equal(t, "<div><em>ko</em></div>", buf.String())
}

func TestAdaptTemplToGomponent_NilContext(t *testing.T) {
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	})

	//nolint:staticcheck // exercising the nil-context fallback
	node := view.AdaptTemplToGomponent(nil, component)

	var buf bytes.Buffer
	require.NoError(t, node.Render(&buf))
	assert.Equal(t, "ok", buf.String())
}
