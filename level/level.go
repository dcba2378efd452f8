// Package level holds authored game content: the board, obstacle layout,
// gem placement, and the ordered challenge sequence. Content can come from
// a JSON file or from the built-in default level; either way it is
// validated before the game starts.
package level

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/codeventure/grid"
)

// GemKind identifies a collectible gem type.
type GemKind string

const (
	GemRuby     GemKind = "ruby"
	GemEmerald  GemKind = "emerald"
	GemSapphire GemKind = "sapphire"
	GemGold     GemKind = "gold"
	GemDiamond  GemKind = "diamond"
)

var gemValues = map[GemKind]int{
	GemRuby:     10,
	GemEmerald:  15,
	GemSapphire: 20,
	GemGold:     25,
	GemDiamond:  50,
}

// Value returns the score awarded for collecting a gem of this kind.
// Unknown kinds fall back to the ruby value.
func (k GemKind) Value() int {
	if v, ok := gemValues[k]; ok {
		return v
	}
	return gemValues[GemRuby]
}

// GemSpec places one gem on the board.
type GemSpec struct {
	Pos  grid.Position
	Kind GemKind
}

// ChallengeSpec is one entry in the ordered challenge sequence.
type ChallengeSpec struct {
	Title       string
	Description string
	Target      grid.Position
	Reward      int
}

// Level is a complete authored level.
type Level struct {
	Name       string
	Cols       int
	Rows       int
	Spawn      grid.Position
	Obstacles  []grid.Obstacle
	Gems       []GemSpec
	Challenges []ChallengeSpec
}

// File structures for the JSON level format.
type positionData struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

type obstacleData struct {
	Col  int    `json:"col"`
	Row  int    `json:"row"`
	Kind string `json:"kind"`
}

type gemData struct {
	Col  int    `json:"col"`
	Row  int    `json:"row"`
	Kind string `json:"kind"`
}

type challengeData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Col         int    `json:"col"`
	Row         int    `json:"row"`
	Reward      int    `json:"reward"`
}

type levelData struct {
	Name       string          `json:"name"`
	Cols       int             `json:"cols"`
	Rows       int             `json:"rows"`
	Spawn      positionData    `json:"spawn"`
	Obstacles  []obstacleData  `json:"obstacles"`
	Gems       []gemData       `json:"gems"`
	Challenges []challengeData `json:"challenges"`
}

// Load reads and validates a level from a JSON file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	var ld levelData
	if err := json.Unmarshal(data, &ld); err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}

	lvl := &Level{
		Name:  ld.Name,
		Cols:  ld.Cols,
		Rows:  ld.Rows,
		Spawn: grid.Position{Col: ld.Spawn.Col, Row: ld.Spawn.Row},
	}
	for _, o := range ld.Obstacles {
		lvl.Obstacles = append(lvl.Obstacles, grid.Obstacle{
			Pos:  grid.Position{Col: o.Col, Row: o.Row},
			Kind: grid.ObstacleKind(o.Kind),
		})
	}
	for _, g := range ld.Gems {
		lvl.Gems = append(lvl.Gems, GemSpec{
			Pos:  grid.Position{Col: g.Col, Row: g.Row},
			Kind: GemKind(g.Kind),
		})
	}
	for _, c := range ld.Challenges {
		lvl.Challenges = append(lvl.Challenges, ChallengeSpec{
			Title:       c.Title,
			Description: c.Description,
			Target:      grid.Position{Col: c.Col, Row: c.Row},
			Reward:      c.Reward,
		})
	}

	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level data in %s: %w", path, err)
	}

	return lvl, nil
}

// Validate checks the level for authoring mistakes. Challenge targets must
// be reachable, so a target on an obstacle cell is an error rather than a
// silently impossible objective.
func (l *Level) Validate() error {
	if l.Cols <= 0 || l.Rows <= 0 {
		return fmt.Errorf("invalid board dimensions: %dx%d", l.Cols, l.Rows)
	}

	inBounds := func(p grid.Position) bool {
		return p.Col >= 0 && p.Col < l.Cols && p.Row >= 0 && p.Row < l.Rows
	}

	if !inBounds(l.Spawn) {
		return fmt.Errorf("spawn (%d, %d) is outside the board", l.Spawn.Col, l.Spawn.Row)
	}

	occupied := make(map[grid.Position]bool)
	for _, o := range l.Obstacles {
		if !inBounds(o.Pos) {
			return fmt.Errorf("obstacle at (%d, %d) is outside the board", o.Pos.Col, o.Pos.Row)
		}
		occupied[o.Pos] = true
	}

	if occupied[l.Spawn] {
		return fmt.Errorf("spawn (%d, %d) coincides with an obstacle", l.Spawn.Col, l.Spawn.Row)
	}

	for i, c := range l.Challenges {
		if !inBounds(c.Target) {
			return fmt.Errorf("challenge %d target (%d, %d) is outside the board", i, c.Target.Col, c.Target.Row)
		}
		if occupied[c.Target] {
			return fmt.Errorf("challenge %d target (%d, %d) is unreachable: obstacle in the cell", i, c.Target.Col, c.Target.Row)
		}
	}

	for _, g := range l.Gems {
		if !inBounds(g.Pos) {
			return fmt.Errorf("gem at (%d, %d) is outside the board", g.Pos.Col, g.Pos.Row)
		}
	}

	return nil
}

// Default returns the built-in level: a 12x9 board with a maze-like
// obstacle pattern, seven gems, and three ordered challenges.
func Default() *Level {
	return &Level{
		Name:  "The Code Warrior",
		Cols:  12,
		Rows:  9,
		Spawn: grid.Position{Col: 5, Row: 4},
		Obstacles: []grid.Obstacle{
			{Pos: grid.Position{Col: 2, Row: 2}, Kind: grid.ObstacleRock},
			{Pos: grid.Position{Col: 2, Row: 3}, Kind: grid.ObstacleRock},
			{Pos: grid.Position{Col: 3, Row: 6}, Kind: grid.ObstacleCrate},
			{Pos: grid.Position{Col: 4, Row: 6}, Kind: grid.ObstacleCrate},
			{Pos: grid.Position{Col: 7, Row: 2}, Kind: grid.ObstacleBush},
			{Pos: grid.Position{Col: 8, Row: 2}, Kind: grid.ObstacleBush},
			{Pos: grid.Position{Col: 9, Row: 5}, Kind: grid.ObstacleRock},
			{Pos: grid.Position{Col: 10, Row: 5}, Kind: grid.ObstacleRock},
			{Pos: grid.Position{Col: 6, Row: 4}, Kind: grid.ObstacleCrate},
		},
		Gems: []GemSpec{
			{Pos: grid.Position{Col: 1, Row: 1}, Kind: GemRuby},
			{Pos: grid.Position{Col: 10, Row: 1}, Kind: GemSapphire},
			{Pos: grid.Position{Col: 0, Row: 7}, Kind: GemEmerald},
			{Pos: grid.Position{Col: 11, Row: 8}, Kind: GemGold},
			{Pos: grid.Position{Col: 6, Row: 7}, Kind: GemDiamond},
			{Pos: grid.Position{Col: 3, Row: 3}, Kind: GemRuby},
			{Pos: grid.Position{Col: 8, Row: 5}, Kind: GemEmerald},
		},
		Challenges: []ChallengeSpec{
			{
				Title:       "First Steps",
				Description: "Move to the ruby gem at (1, 1)!",
				Target:      grid.Position{Col: 1, Row: 1},
				Reward:      25,
			},
			{
				Title:       "Adventure Awaits",
				Description: "Find the diamond at (6, 7)!",
				Target:      grid.Position{Col: 6, Row: 7},
				Reward:      50,
			},
			{
				Title:       "Explorer",
				Description: "Reach the corner at (11, 8)!",
				Target:      grid.Position{Col: 11, Row: 8},
				Reward:      75,
			},
		},
	}
}
