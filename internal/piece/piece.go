// Package piece defines the tetromino values moved between the upcoming
// queue and the reserve stack, and the generator that mints them.
package piece

import "strconv"

// Kind is the tetromino shape of a piece.
type Kind byte

// The closed set of shapes a generator draws from.
const (
	I Kind = 'I'
	O Kind = 'O'
	T Kind = 'T'
	L Kind = 'L'
)

// Kinds lists every shape in draw order.
var Kinds = [...]Kind{I, O, T, L}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if k == v {
			return true
		}
	}
	return false
}

func (k Kind) String() string {
	return string(rune(k))
}

// Piece is an immutable inventory unit. Only a Generator creates real pieces.
type Piece struct {
	Kind Kind
	ID   int
}

// None marks the absence of a piece. It is returned alongside an error when
// a removal fails, so a caller that ignores the error still never sees an id
// a Generator could have issued.
var None = Piece{Kind: '-', ID: -1}

// IsNone reports whether p is the absence marker.
func (p Piece) IsNone() bool {
	return p == None
}

// String renders the piece as "[K id]".
func (p Piece) String() string {
	return "[" + p.Kind.String() + " " + strconv.Itoa(p.ID) + "]"
}
