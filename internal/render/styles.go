// Package render draws the game state, the menu and action messages as
// styled text.
//
// Styling goes through a lipgloss renderer bound to the output writer, so a
// terminal gets colors and a pipe or buffer gets plain text.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/EstruturaDados/tetris-paulooricardfs/internal/piece"
)

// Piece colors follow the usual tetromino palette.
var (
	ColorI = lipgloss.Color("#00bcd4") // cyan
	ColorO = lipgloss.Color("#fdd835") // yellow
	ColorT = lipgloss.Color("#8e24aa") // purple
	ColorL = lipgloss.Color("#fb8c00") // orange

	Muted   = lipgloss.Color("#9e9e9e")
	Accent  = lipgloss.Color("#8BC34A")
	Warning = lipgloss.Color("#e53935")
)

// Styles contains every style the renderer uses.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Empty  lipgloss.Style
	Option lipgloss.Style
	Prompt lipgloss.Style
	Info   lipgloss.Style
	Warn   lipgloss.Style

	Kinds map[piece.Kind]lipgloss.Style
}

// NewStyles builds the styles on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	kind := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Foreground(c).Bold(true)
	}
	return Styles{
		Title: r.NewStyle().
			Foreground(Accent).
			Bold(true),

		Label: r.NewStyle().
			Bold(true),

		Empty: r.NewStyle().
			Foreground(Muted).
			Italic(true),

		Option: r.NewStyle().
			Foreground(Accent),

		Prompt: r.NewStyle().
			Foreground(Accent).
			Bold(true),

		Info: r.NewStyle(),

		Warn: r.NewStyle().
			Foreground(Warning).
			Bold(true),

		Kinds: map[piece.Kind]lipgloss.Style{
			piece.I: kind(ColorI),
			piece.O: kind(ColorO),
			piece.T: kind(ColorT),
			piece.L: kind(ColorL),
		},
	}
}
