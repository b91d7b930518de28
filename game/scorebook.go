package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/meghashyamc/dreamgolf/logger"
)

const scorebookObject = "scorebook"

// HoleRecord is the best result on one hole.
type HoleRecord struct {
	Hole int    `yaml:"hole"`
	Name string `yaml:"name"`
	Par  int    `yaml:"par"`
	Best int    `yaml:"best"`
}

// RoundRecord is one finished round of the whole course.
type RoundRecord struct {
	ID       string    `yaml:"id"`
	Strokes  int       `yaml:"strokes"`
	Par      int       `yaml:"par"`
	Finished time.Time `yaml:"finished"`
}

type Scorecard struct {
	Course    string        `yaml:"course"`
	Holes     []HoleRecord  `yaml:"holes"`
	BestRound *RoundRecord  `yaml:"bestRound,omitempty"`
	Rounds    []RoundRecord `yaml:"rounds"`
}

// ScoreBook keeps best strokes per hole and finished rounds for one course.
// With a nil gdata manager it works in memory only.
type ScoreBook struct {
	manager  *gdata.Manager
	property string
	card     Scorecard
	logger   logger.Logger
}

const maxRounds = 20

func NewScoreBook(manager *gdata.Manager, course string, log logger.Logger) *ScoreBook {
	sb := &ScoreBook{
		manager:  manager,
		property: propertyName(course),
		card:     Scorecard{Course: course},
		logger:   log,
	}
	if err := sb.Load(); err != nil {
		log.Warn("failed to load scorebook, starting fresh", "err", err.Error())
	}
	return sb
}

// propertyName turns a course name into a storage key.
func propertyName(course string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, course)
	if name == "" {
		return "course"
	}
	return name
}

func (sb *ScoreBook) Load() error {
	if sb.manager == nil || !sb.manager.ObjectPropExists(scorebookObject, sb.property) {
		return nil
	}

	data, err := sb.manager.LoadObjectProp(scorebookObject, sb.property)
	if err != nil {
		return fmt.Errorf("failed to load scorebook: %w", err)
	}

	var card Scorecard
	if err := yaml.Unmarshal(data, &card); err != nil {
		return fmt.Errorf("failed to unmarshal scorebook: %w", err)
	}
	sb.card = card
	return nil
}

func (sb *ScoreBook) Save() error {
	if sb.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(sb.card)
	if err != nil {
		return fmt.Errorf("failed to marshal scorebook: %w", err)
	}
	if err := sb.manager.SaveObjectProp(scorebookObject, sb.property, data); err != nil {
		return fmt.Errorf("failed to save scorebook: %w", err)
	}
	return nil
}

// Best returns the best strokes on a 1-based hole number.
func (sb *ScoreBook) Best(hole int) (int, bool) {
	for _, r := range sb.card.Holes {
		if r.Hole == hole {
			return r.Best, true
		}
	}
	return 0, false
}

func (sb *ScoreBook) IsNewBest(hole, strokes int) bool {
	best, ok := sb.Best(hole)
	return !ok || strokes < best
}

// RecordHole stores strokes when they beat the best and reports whether
// they did.
func (sb *ScoreBook) RecordHole(hole int, name string, par, strokes int) (bool, error) {
	if strokes <= 0 || !sb.IsNewBest(hole, strokes) {
		return false, nil
	}

	record := HoleRecord{Hole: hole, Name: name, Par: par, Best: strokes}
	replaced := false
	for i := range sb.card.Holes {
		if sb.card.Holes[i].Hole == hole {
			sb.card.Holes[i] = record
			replaced = true
		}
	}
	if !replaced {
		sb.card.Holes = append(sb.card.Holes, record)
	}
	return true, sb.Save()
}

// RecordRound appends a finished round, keeping the most recent maxRounds.
func (sb *ScoreBook) RecordRound(strokes, par int, finished time.Time) (RoundRecord, error) {
	round := RoundRecord{ID: uuid.NewString(), Strokes: strokes, Par: par, Finished: finished.UTC()}
	sb.card.Rounds = append(sb.card.Rounds, round)
	if len(sb.card.Rounds) > maxRounds {
		sb.card.Rounds = sb.card.Rounds[len(sb.card.Rounds)-maxRounds:]
	}
	if sb.card.BestRound == nil || strokes < sb.card.BestRound.Strokes {
		best := round
		sb.card.BestRound = &best
	}
	return round, sb.Save()
}

func (sb *ScoreBook) Card() Scorecard {
	return sb.card
}

func (sb *ScoreBook) GetBestText(hole int) string {
	best, ok := sb.Best(hole)
	if !ok {
		return "Best: -"
	}
	return fmt.Sprintf("Best: %d", best)
}
