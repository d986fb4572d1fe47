package game

import (
	"time"

	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/shared/logger"
)

// advanceRoundLocked drives the turn rotation. When every player has drawn
// it ends the game; otherwise it picks the next drawer and a fresh word,
// clears the finished set and arms the round timer. Callers must hold the
// session lock.
func (c *Coordinator) advanceRoundLocked(s *Session) []Broadcast {
	c.disarmTimerLocked(s)

	if s.drawerIndex == len(s.players)-1 {
		return c.endGameLocked(s)
	}

	s.word = c.words.RandomWord()
	s.finished = make(map[string]bool)
	s.drawerIndex++
	s.phase = PhaseInRound
	drawer := s.players[s.drawerIndex]
	c.armTimerLocked(s)

	logger.Infof("[Session %s] round %d, drawer %s", s.id, s.drawerIndex+1, drawer)
	return []Broadcast{
		ToRoom(s.id, EventNewRound, drawer),
		ToConn(drawer, EventDraw, s.word),
	}
}

// endGameLocked transitions the session to Ended, names the winner and
// removes the session from the registry. The last-joined player is asked to
// submit its locally held canvas for archival. No further scheduling occurs;
// any stale timer fire against the removed id is a silent no-op.
func (c *Coordinator) endGameLocked(s *Session) []Broadcast {
	s.phase = PhaseEnded
	winner := s.winnerLocked()
	last := s.players[len(s.players)-1]
	c.registry.Remove(s.id)

	logger.Infof("[Session %s] ended, winner %s", s.id, winner)
	return []Broadcast{
		ToRoom(s.id, EventGameEnded, winner),
		ToConn(last, EventRequestSnapshot, s.id),
	}
}

// armTimerLocked schedules a one-shot round advance. The generation token
// lets a fired callback detect that it was superseded by an early advance
// racing its own expiry.
func (c *Coordinator) armTimerLocked(s *Session) {
	s.timerGen++
	id, gen := s.id, s.timerGen
	s.roundTimer = time.AfterFunc(c.roundDuration, func() {
		c.roundTimerFired(id, gen)
	})
}

func (c *Coordinator) disarmTimerLocked(s *Session) {
	if s.roundTimer != nil {
		s.roundTimer.Stop()
		s.roundTimer = nil
	}
}

func (c *Coordinator) roundTimerFired(sessionID string, gen uint64) {
	session, ok := c.registry.Get(sessionID)
	if !ok {
		return
	}
	session.locker.Lock()
	if session.phase != PhaseInRound || session.timerGen != gen {
		session.locker.Unlock()
		return
	}
	instructions := c.advanceRoundLocked(session)
	session.locker.Unlock()

	if c.sink != nil {
		c.sink.Deliver(instructions...)
	}
}
