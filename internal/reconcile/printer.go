package reconcile

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"pathman/internal/model"
)

// Printer writes reconciliation results to the console. Colors are only
// emitted when the writer is a color-capable terminal.
type Printer struct {
	out io.Writer

	scopeStyle  lipgloss.Style
	validStyle  lipgloss.Style
	brokenStyle lipgloss.Style
	changeStyle lipgloss.Style
	dimStyle    lipgloss.Style
	failStyle   lipgloss.Style
	headerStyle lipgloss.Style
}

// NewPrinter returns a Printer on out. noColor forces plain text.
func NewPrinter(out io.Writer, noColor bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		out:         out,
		scopeStyle:  r.NewStyle().Foreground(lipgloss.Color("12")), // blue
		validStyle:  r.NewStyle().Foreground(lipgloss.Color("10")), // green
		brokenStyle: r.NewStyle().Foreground(lipgloss.Color("9")),  // red
		changeStyle: r.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		dimStyle:    r.NewStyle().Foreground(lipgloss.Color("240")),
		failStyle:   r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		headerStyle: r.NewStyle().Bold(true),
	}
}

// Writer is the underlying output.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Header starts a list section, e.g. "system paths:".
func (p *Printer) Header(scope model.Scope) {
	fmt.Fprintln(p.out, p.headerStyle.Render(scope.String()+" paths:"))
}

// Entry prints one indented list entry.
func (p *Printer) Entry(entry string) {
	fmt.Fprintln(p.out, "   "+entry)
}

// Missing announces an entry that clean is about to drop.
func (p *Printer) Missing(scope model.Scope, entry string) {
	fmt.Fprintf(p.out, "%s%s %s\n", p.tag(scope), p.brokenStyle.Render("[DOES NOT EXIST]"), entry)
}

// Outcome prints the result for one entry.
func (p *Printer) Outcome(o model.Outcome) {
	var style lipgloss.Style
	switch o.Status {
	case model.StatusValid:
		style = p.validStyle
	case model.StatusBroken:
		style = p.brokenStyle
	case model.StatusAdded, model.StatusRemoved:
		style = p.changeStyle
	case model.StatusFailed:
		style = p.failStyle
	default:
		style = p.dimStyle
	}

	line := fmt.Sprintf("%s%s %s", p.tag(o.Scope), style.Render("["+o.Status.String()+"]"), o.Entry)
	if o.Err != nil {
		line += p.dimStyle.Render(": " + o.Err.Error())
	}
	fmt.Fprintln(p.out, line)
}

func (p *Printer) tag(scope model.Scope) string {
	return p.scopeStyle.Render("[" + scope.Label() + "]")
}
