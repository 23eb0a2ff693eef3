package session

import (
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/config"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/render"
)

const quitKey = 0

type action struct {
	key   int
	op    string
	label string
	run   func(*Session) error
}

func menuFor(level config.Level) []action {
	switch level {
	case config.LevelNovice:
		return []action{
			{1, "play", "Play front piece", (*Session).play},
			{2, "insert", "Insert a new piece", (*Session).insert},
		}
	case config.LevelAdventurer:
		return []action{
			{1, "play", "Play front piece", (*Session).playAndRefill},
			{2, "reserve", "Move front piece to the reserve", (*Session).reserve},
			{3, "use", "Use a reserved piece", (*Session).useReserved},
		}
	default:
		return []action{
			{1, "play", "Play front piece", (*Session).playAndRefill},
			{2, "reserve", "Move front piece to the reserve", (*Session).reserve},
			{3, "use", "Use a reserved piece", (*Session).useReserved},
			{4, "swap_front", "Swap queue front with reserve top", (*Session).swapFront},
			{5, "swap_batch", "Swap first queue pieces with top reserved pieces", (*Session).swapBatch},
		}
	}
}

func (s *Session) menuItems() []render.MenuItem {
	items := make([]render.MenuItem, 0, len(s.menu)+1)
	for _, a := range s.menu {
		items = append(items, render.MenuItem{Key: a.key, Label: a.label})
	}
	return append(items, render.MenuItem{Key: quitKey, Label: "Quit"})
}

func (s *Session) play() error {
	p, err := s.inv.Play()
	if err != nil {
		return err
	}
	s.render.Info("🎮 Played piece %s", s.render.Piece(p))
	return nil
}

func (s *Session) playAndRefill() error {
	p, err := s.inv.PlayAndRefill()
	if err != nil {
		return err
	}
	s.render.Info("🎮 Played piece %s", s.render.Piece(p))
	return nil
}

func (s *Session) insert() error {
	p, err := s.inv.Insert()
	if err != nil {
		return err
	}
	s.render.Info("🆕 New piece generated: %s", s.render.Piece(p))
	return nil
}

func (s *Session) reserve() error {
	p, err := s.inv.Reserve()
	if err != nil {
		return err
	}
	s.render.Info("📦 Piece %s moved to the reserve", s.render.Piece(p))
	return nil
}

func (s *Session) useReserved() error {
	p, err := s.inv.UseReserved()
	if err != nil {
		return err
	}
	s.render.Info("🧩 Used reserved piece %s", s.render.Piece(p))
	return nil
}

func (s *Session) swapFront() error {
	if err := s.inv.SwapFront(); err != nil {
		return err
	}
	snap := s.inv.Snapshot()
	s.render.Info("🔁 Swapped %s (queue) with %s (reserve)",
		s.render.Piece(snap.Upcoming[0]), s.render.Piece(snap.Reserved[0]))
	return nil
}

func (s *Session) swapBatch() error {
	if err := s.inv.SwapBatch(); err != nil {
		return err
	}
	n := s.inv.BatchSize()
	s.render.Info("🔄 Swapped the first %d queue pieces with the top %d reserved pieces", n, n)
	return nil
}
