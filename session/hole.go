package session

import (
	"github.com/meghashyamc/dreamgolf/events"
	"github.com/meghashyamc/dreamgolf/turn"
)

func (s *Session) loadHole(index int) {
	s.hole = index
	s.strokes = 0
	s.completed = false
	tee := s.course.Holes[index].Tee
	s.world.Reset(tee.X, tee.Z)
	s.previewDirty = true
	s.logger.Info("hole loaded", "hole", index+1, "name", s.course.Holes[index].Name, "par", s.course.Holes[index].Par)
}

func (s *Session) completeHole() {
	h := s.Hole()
	index := s.hole
	s.scores[index] = s.strokes
	s.completed = true

	s.logger.Info("hole completed", "hole", index+1, "strokes", s.strokes, "par", h.Par)
	s.bus.Publish(events.HoleCompleted{Hole: index + 1, Name: h.Name, Strokes: s.strokes, Par: h.Par})

	s.holeDone.Cancel()
	s.holeDone = s.scheduler.After(s.tunings.UI.HoleCompleteDelay, func() {
		if !s.machine.Is(turn.Idle) || s.hole != index || !s.completed {
			return
		}
		s.advanceHole()
	})
}

func (s *Session) advanceHole() {
	next := s.hole + 1
	if next >= len(s.course.Holes) {
		s.finished = true
		s.logger.Info("course finished", "course", s.course.Name, "strokes", s.TotalStrokes(), "par", s.course.TotalPar())
		return
	}
	s.loadHole(next)
}

// TotalStrokes sums the strokes of completed holes.
func (s *Session) TotalStrokes() int {
	total := 0
	for _, n := range s.scores {
		total += n
	}
	return total
}

// Restart replays the course from the first hole. Only valid in IDLE.
func (s *Session) Restart() bool {
	if !s.machine.Is(turn.Idle) {
		return false
	}
	s.holeDone.Cancel()
	s.holeDone = nil
	for i := range s.scores {
		s.scores[i] = 0
	}
	s.finished = false
	s.loadHole(0)
	return true
}

// HoleComplete reports whether the current hole is done and waiting to
// advance.
func (s *Session) HoleComplete() bool {
	return s.completed
}
