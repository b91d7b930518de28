// Package course loads the hole layout the session plays through.
package course

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/meghashyamc/dreamgolf/geometry"
)

const defaultCupRadius = 0.5

// Point is a position on the ground plane.
type Point struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

type Hole struct {
	Name      string  `yaml:"name"`
	Par       int     `yaml:"par"`
	Tee       Point   `yaml:"tee"`
	Cup       Point   `yaml:"cup"`
	CupRadius float64 `yaml:"cupRadius"` // optional, defaults to 0.5
}

type Course struct {
	Name  string `yaml:"name"`
	Holes []Hole `yaml:"holes"`
}

func Load(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read course file %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("course %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*Course, error) {
	var c Course
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse course YAML: %w", err)
	}
	applyDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid course: %w", err)
	}
	return &c, nil
}

func applyDefaults(c *Course) {
	for i := range c.Holes {
		if c.Holes[i].CupRadius == 0 {
			c.Holes[i].CupRadius = defaultCupRadius
		}
		if c.Holes[i].Name == "" {
			c.Holes[i].Name = fmt.Sprintf("Hole %d", i+1)
		}
	}
}

func (c *Course) Validate() error {
	if len(c.Holes) == 0 {
		return errors.New("course has no holes")
	}
	for i, h := range c.Holes {
		if h.Par <= 0 {
			return fmt.Errorf("hole %d (%s): par must be positive, got %d", i+1, h.Name, h.Par)
		}
		if h.CupRadius <= 0 {
			return fmt.Errorf("hole %d (%s): cup radius must be positive, got %.2f", i+1, h.Name, h.CupRadius)
		}
		if h.Tee == h.Cup {
			return fmt.Errorf("hole %d (%s): tee and cup coincide", i+1, h.Name)
		}
	}
	return nil
}

// TotalPar sums the par of every hole.
func (c *Course) TotalPar() int {
	total := 0
	for _, h := range c.Holes {
		total += h.Par
	}
	return total
}

// Default is the single practice hole used when no course file is found.
func Default() *Course {
	return &Course{
		Name: "Practice Green",
		Holes: []Hole{
			{Name: "Practice", Par: 3, Tee: Point{X: 0, Z: 0}, Cup: Point{X: 30, Z: 4}, CupRadius: defaultCupRadius},
		},
	}
}

// TeePosition is the ball's resting position on the tee for a ball of the
// given radius.
func (h Hole) TeePosition(radius float64) mgl64.Vec3 {
	return mgl64.Vec3{h.Tee.X, radius, h.Tee.Z}
}

func (h Hole) CupPosition() mgl64.Vec3 {
	return mgl64.Vec3{h.Cup.X, 0, h.Cup.Z}
}

// InCup reports whether a resting ball at pos counts as holed.
func (h Hole) InCup(pos mgl64.Vec3) bool {
	return geometry.DistanceXZ(pos, h.CupPosition()) <= h.CupRadius
}
