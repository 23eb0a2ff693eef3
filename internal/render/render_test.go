package render_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EstruturaDados/tetris-paulooricardfs/internal/piece"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/render"
)

func TestState(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf)

	upcoming := []piece.Piece{{Kind: piece.I, ID: 0}, {Kind: piece.T, ID: 1}}
	reserved := []piece.Piece{{Kind: piece.L, ID: 4}, {Kind: piece.O, ID: 2}}
	r.State(slices.Values(upcoming), slices.Values(reserved))

	out := buf.String()
	assert.Contains(t, out, "CURRENT STATE")
	assert.Contains(t, out, "[I 0] [T 1]")
	assert.Contains(t, out, "Reserve (top -> base):")
	assert.Contains(t, out, "[L 4] [O 2]")
}

func TestState_EmptyAndNoReserve(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf)

	r.State(slices.Values([]piece.Piece(nil)), nil)

	out := buf.String()
	assert.Contains(t, out, "[Empty]")
	assert.NotContains(t, out, "Reserve")
}

func TestMenu(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf)

	r.Menu([]render.MenuItem{{Key: 1, Label: "Play front piece"}, {Key: 0, Label: "Quit"}})

	out := buf.String()
	assert.Contains(t, out, "1 - Play front piece")
	assert.Contains(t, out, "0 - Quit")
	assert.Contains(t, out, "Choose an option: ")
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf)

	r.Info("played %s", r.Piece(piece.Piece{Kind: piece.O, ID: 3}))
	r.Warn("queue is empty")

	out := buf.String()
	assert.Contains(t, out, "played [O 3]")
	assert.Contains(t, out, "queue is empty")
}
