package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_lines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("saved %d", 2)
	p.Infof("note")
	p.Errorf("bad %s", "thing")
	p.Printf("  detail")

	assert.Equal(t, "✔ saved 2\n• note\n✘ bad thing\n  detail\n", ansi.Strip(buf.String()))
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))
	assert.NotNil(t, Ctx(context.Background()))
}
