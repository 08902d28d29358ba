// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/banners/internal/core/styles"
)

type ctxKey struct{}

// Printer writes one status line per call, prefixed with a styled icon.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a context carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or a printer writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle.Render(styles.IconSuccess), format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.InfoStyle.Render(styles.IconInfo), format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle.Render(styles.IconError), format, args...)
}

// Printf writes an unprefixed line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// Header writes a styled section header.
func (p *Printer) Header(title string) {
	_, _ = fmt.Fprintln(p.w, styles.CommandHeaderStyle.Render(title))
}

func (p *Printer) line(icon, format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", icon, fmt.Sprintf(format, args...))
}
