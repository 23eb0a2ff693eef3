package render

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/EstruturaDados/tetris-paulooricardfs/internal/piece"
)

// MenuItem is one selectable option.
type MenuItem struct {
	Key   int
	Label string
}

// Renderer writes styled text to an output sink.
type Renderer struct {
	out    io.Writer
	styles Styles
}

// New creates a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{
		out:    w,
		styles: NewStyles(lipgloss.NewRenderer(w)),
	}
}

// State draws the queue front to back and, when reserved is non-nil, the
// reserve stack top to base.
func (r *Renderer) State(upcoming, reserved iter.Seq[piece.Piece]) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.Title.Render("===== CURRENT STATE ====="))
	fmt.Fprintln(r.out, r.styles.Label.Render("Upcoming pieces:")+"  "+r.pieces(upcoming))
	if reserved != nil {
		fmt.Fprintln(r.out, r.styles.Label.Render("Reserve (top -> base):")+"  "+r.pieces(reserved))
	}
}

// Menu draws the options and the input prompt.
func (r *Renderer) Menu(items []MenuItem) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.Title.Render("===== ACTIONS ====="))
	for _, it := range items {
		fmt.Fprintln(r.out, r.styles.Option.Render(strconv.Itoa(it.Key))+" - "+it.Label)
	}
	fmt.Fprint(r.out, r.styles.Prompt.Render("Choose an option: "))
}

// Info reports a completed action.
func (r *Renderer) Info(format string, args ...any) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.Info.Render(fmt.Sprintf(format, args...)))
}

// Warn reports a rejected action or bad input.
func (r *Renderer) Warn(format string, args ...any) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.Warn.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

// Piece renders a single piece in its kind's color.
func (r *Renderer) Piece(p piece.Piece) string {
	if st, ok := r.styles.Kinds[p.Kind]; ok {
		return st.Render(p.String())
	}
	return p.String()
}

func (r *Renderer) pieces(seq iter.Seq[piece.Piece]) string {
	var parts []string
	for p := range seq {
		parts = append(parts, r.Piece(p))
	}
	if len(parts) == 0 {
		return r.styles.Empty.Render("[Empty]")
	}
	return strings.Join(parts, " ")
}
