// Package session tracks a single play-through: score, gem collection,
// the ordered challenge sequence, and command statistics. The session owns
// the hero and all mutable progress state; the obstacle layout belongs to
// the world and survives resets.
package session

import (
	"log"

	"chosenoffset.com/codeventure/grid"
	"chosenoffset.com/codeventure/hero"
	"chosenoffset.com/codeventure/level"
)

// Collectible is a gem on the board. Collected flips to true exactly once,
// when the hero's logical cell matches; a full reset is the only way back.
type Collectible struct {
	Pos       grid.Position
	Kind      level.GemKind
	Value     int
	Collected bool
}

// Challenge is one entry in the ordered objective sequence.
type Challenge struct {
	Title       string
	Description string
	Target      grid.Position
	Reward      int
	Completed   bool
}

// Session aggregates all progress for one play-through.
type Session struct {
	lvl    *level.Level
	world  *grid.World
	hero   *hero.Hero
	layout grid.Layout

	collectibles []*Collectible
	challenges   []*Challenge
	currentIdx   int

	score               int
	gemsCollected       int
	challengesCompleted int
	commandsExecuted    int
	successfulMoves     int

	// Event callbacks for the UI layer. All optional.
	OnCollected         func(c *Collectible)
	OnChallengeComplete func(ch *Challenge)
	OnAllComplete       func()
	OnChallengeStart    func(ch *Challenge)
}

// New builds a session from authored level content. The world and hero are
// constructed here; callers reach them through accessors.
func New(lvl *level.Level, layout grid.Layout) *Session {
	world := grid.NewWorld(lvl.Cols, lvl.Rows, lvl.Obstacles)

	h := hero.New(lvl.Spawn.Col, lvl.Spawn.Row, layout)
	h.InBounds = world.InBounds
	h.IsBlocked = world.IsOccupied

	s := &Session{
		lvl:    lvl,
		world:  world,
		hero:   h,
		layout: layout,
	}
	s.collectibles = s.buildCollectibles()
	s.challenges = s.buildChallenges()
	return s
}

// buildCollectibles instantiates gems from the level, skipping cells taken
// by obstacles or the hero's spawn.
func (s *Session) buildCollectibles() []*Collectible {
	var out []*Collectible
	for _, g := range s.lvl.Gems {
		if s.world.IsOccupied(g.Pos.Col, g.Pos.Row) {
			continue
		}
		if g.Pos == s.lvl.Spawn {
			continue
		}
		out = append(out, &Collectible{
			Pos:   g.Pos,
			Kind:  g.Kind,
			Value: g.Kind.Value(),
		})
	}
	return out
}

func (s *Session) buildChallenges() []*Challenge {
	var out []*Challenge
	for _, c := range s.lvl.Challenges {
		out = append(out, &Challenge{
			Title:       c.Title,
			Description: c.Description,
			Target:      c.Target,
			Reward:      c.Reward,
		})
	}
	return out
}

// Hero returns the session's actor.
func (s *Session) Hero() *hero.Hero {
	return s.hero
}

// World returns the board.
func (s *Session) World() *grid.World {
	return s.world
}

// Level returns the authored content this session was built from.
func (s *Session) Level() *level.Level {
	return s.lvl
}

// Layout returns the pixel layout of the board.
func (s *Session) Layout() grid.Layout {
	return s.layout
}

// Score returns the current score. Never negative.
func (s *Session) Score() int {
	return s.score
}

// GemsCollected returns how many gems have been picked up.
func (s *Session) GemsCollected() int {
	return s.gemsCollected
}

// TotalGems returns how many gems the level placed.
func (s *Session) TotalGems() int {
	return len(s.collectibles)
}

// Collectibles returns all gems, collected or not.
func (s *Session) Collectibles() []*Collectible {
	return s.collectibles
}

// Challenges returns the full ordered challenge sequence.
func (s *Session) Challenges() []*Challenge {
	return s.challenges
}

// CurrentChallenge returns the lowest-indexed incomplete challenge, or
// ok=false when every challenge is done.
func (s *Session) CurrentChallenge() (ch *Challenge, idx int, ok bool) {
	if s.currentIdx >= len(s.challenges) {
		return nil, s.currentIdx, false
	}
	return s.challenges[s.currentIdx], s.currentIdx, true
}

// ChallengesCompleted returns how many challenges are done.
func (s *Session) ChallengesCompleted() int {
	return s.challengesCompleted
}

// AllComplete reports whether every challenge is finished.
func (s *Session) AllComplete() bool {
	return s.currentIdx >= len(s.challenges)
}

// RecordCommand counts one executed console command.
func (s *Session) RecordCommand() {
	s.commandsExecuted++
}

// RecordMove counts one successful move.
func (s *Session) RecordMove() {
	s.successfulMoves++
}

// CommandsExecuted returns the executed-command count.
func (s *Session) CommandsExecuted() int {
	return s.commandsExecuted
}

// SuccessfulMoves returns the successful-move count.
func (s *Session) SuccessfulMoves() int {
	return s.successfulMoves
}

// OnTick inspects the hero's logical cell, collecting gems first and then
// checking the current challenge. Called once per simulation tick.
func (s *Session) OnTick() {
	col, row := s.hero.Position()
	pos := grid.Position{Col: col, Row: row}

	for _, c := range s.collectibles {
		if c.Collected || c.Pos != pos {
			continue
		}
		c.Collected = true
		s.gemsCollected++
		s.score += c.Value
		if s.OnCollected != nil {
			s.OnCollected(c)
		}
	}

	ch, _, ok := s.CurrentChallenge()
	if !ok || ch.Target != pos {
		return
	}
	ch.Completed = true
	s.challengesCompleted++
	s.score += ch.Reward
	if s.OnChallengeComplete != nil {
		s.OnChallengeComplete(ch)
	}

	s.advanceChallenge()
	if next, _, ok := s.CurrentChallenge(); ok {
		if s.OnChallengeStart != nil {
			s.OnChallengeStart(next)
		}
	} else if s.OnAllComplete != nil {
		s.OnAllComplete()
	}
}

// advanceChallenge moves the pointer to the next incomplete entry.
// Completed challenges are never revisited.
func (s *Session) advanceChallenge() {
	for s.currentIdx < len(s.challenges) && s.challenges[s.currentIdx].Completed {
		s.currentIdx++
	}
}

// Reset rebuilds all progress state from the level content: fresh gems,
// challenges back to incomplete, counters zeroed, hero at spawn. The
// obstacle layout is left untouched.
func (s *Session) Reset() {
	s.collectibles = s.buildCollectibles()
	s.challenges = s.buildChallenges()
	s.currentIdx = 0
	s.score = 0
	s.gemsCollected = 0
	s.challengesCompleted = 0
	s.commandsExecuted = 0
	s.successfulMoves = 0
	s.hero.Reset()

	log.Printf("Session reset: %s", s.lvl.Name)
}
