// Package session runs the interactive menu loop over an inventory.
//
// The loop reads one selection per line, runs the matching action, and
// redraws the state. Domain errors are reported and the loop continues;
// only quit, end of input, an interrupt or a read error end it.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EstruturaDados/tetris-paulooricardfs/internal/cancel"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/config"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/exchange"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/inventory"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/queue"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/render"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/stack"
)

// ErrInvalidSelection is returned for input that is not a number or not an
// option of the current level.
var ErrInvalidSelection = errors.New("invalid selection")

// Session is one player's game loop.
type Session struct {
	id     string
	level  config.Level
	inv    *inventory.Inventory
	menu   []action
	in     *bufio.Scanner
	render *render.Renderer
	log    *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLevel restricts the menu to the options of level.
func WithLevel(level config.Level) Option {
	return func(s *Session) { s.level = level }
}

// WithLogger sets the logger. The session adds its id as a field.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.log = logger }
}

// New creates a session over inv reading selections from in and drawing to
// out. The default level is master.
func New(inv *inventory.Inventory, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		level:  config.LevelMaster,
		inv:    inv,
		in:     bufio.NewScanner(in),
		render: render.New(out),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.menu = menuFor(s.level)
	s.log = s.log.With(zap.String("session", s.id), zap.String("level", string(s.level)))
	return s
}

// ID returns the session id used in log fields.
func (s *Session) ID() string { return s.id }

type line struct {
	text string
	err  error
}

// Run plays until quit or end of input (returns nil), until ctx is
// cancelled (returns the context's cause), or until reading fails.
func (s *Session) Run(ctx context.Context) error {
	stop := cancel.NewContext(ctx)
	defer stop.Cancel()

	s.log.Info("session started", zap.Int("queued", s.inv.Fill()))
	lines := s.readLines(stop.Context().Done())

	for !stop.Done() {
		s.draw()

		select {
		case <-stop.Context().Done():
		case l, ok := <-lines:
			switch {
			case !ok:
				s.log.Debug("end of input")
				stop.Cancel()
			case l.err != nil:
				s.log.Error("read failed", zap.Error(l.err))
				return fmt.Errorf("read selection: %w", l.err)
			default:
				quit, err := s.Select(l.text)
				if err != nil {
					s.warn(err)
				}
				if quit {
					stop.Cancel()
				}
			}
		}
	}

	cause := stop.Cause()
	s.log.Info("session ended", zap.Int("issued", s.inv.Issued()), zap.NamedError("cause", cause))
	if errors.Is(cause, cancel.ErrStopped) {
		return nil
	}
	return cause
}

// Select parses one input line and executes it.
func (s *Session) Select(text string) (quit bool, err error) {
	choice, err := ParseSelection(text)
	if err != nil {
		s.log.Debug("rejected input", zap.String("input", text), zap.Error(err))
		return false, err
	}
	return s.Execute(choice)
}

// Execute runs the menu option with the given key.
func (s *Session) Execute(choice int) (quit bool, err error) {
	if choice == quitKey {
		s.render.Info("👋 Exiting...")
		s.log.Debug("action", zap.String("op", "quit"))
		return true, nil
	}
	for _, a := range s.menu {
		if a.key != choice {
			continue
		}
		err := a.run(s)
		s.log.Debug("action", zap.String("op", a.op), zap.Int("choice", choice), zap.Error(err))
		return false, err
	}
	return false, fmt.Errorf("%w: option %d", ErrInvalidSelection, choice)
}

// ParseSelection reads a menu key from one input line.
func ParseSelection(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSelection, strings.TrimSpace(text))
	}
	return n, nil
}

func (s *Session) draw() {
	if s.level == config.LevelNovice {
		s.render.State(s.inv.Upcoming(), nil)
	} else {
		s.render.State(s.inv.Upcoming(), s.inv.Reserved())
	}
	s.render.Menu(s.menuItems())
}

// readLines scans input on its own goroutine so an interrupt does not wait
// for the next line. The goroutine exits at end of input or once done closes.
func (s *Session) readLines(done <-chan struct{}) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		for s.in.Scan() {
			select {
			case ch <- line{text: s.in.Text()}:
			case <-done:
				return
			}
		}
		if err := s.in.Err(); err != nil {
			select {
			case ch <- line{err: err}:
			case <-done:
			}
		}
	}()
	return ch
}

func (s *Session) warn(err error) {
	s.render.Warn("%s", describe(err))
}

// describe turns a domain error into a player-facing message.
func describe(err error) string {
	switch {
	case errors.Is(err, ErrInvalidSelection):
		return "Invalid option. Try again."
	case errors.Is(err, queue.ErrEmpty):
		return "The queue is empty! No piece available."
	case errors.Is(err, queue.ErrFull):
		return "The queue is full! Cannot add more pieces."
	case errors.Is(err, stack.ErrFull):
		return "The reserve is full! Cannot reserve more pieces."
	case errors.Is(err, stack.ErrEmpty):
		return "No reserved pieces to use."
	case errors.Is(err, exchange.ErrInsufficientPieces):
		return "Swap impossible: not enough pieces in one of the structures."
	default:
		return err.Error()
	}
}
