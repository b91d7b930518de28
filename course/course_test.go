package course

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLoadShippedCourse(t *testing.T) {
	c, err := Load("../data/course.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c.Holes) == 0 || c.Name == "" {
		t.Errorf("got course %+v", c)
	}
	if c.TotalPar() <= 0 {
		t.Errorf("got total par %d", c.TotalPar())
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	c, err := Parse([]byte(`
name: Test
holes:
  - par: 4
    tee: {x: 0, z: 0}
    cup: {x: 10, z: 0}
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	h := c.Holes[0]
	if h.CupRadius != defaultCupRadius || h.Name != "Hole 1" {
		t.Errorf("got hole %+v, want defaults applied", h)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no holes", "name: Empty\n", "no holes"},
		{"zero par", "holes:\n  - par: 0\n    cup: {x: 1, z: 0}\n", "par must be positive"},
		{"negative radius", "holes:\n  - par: 3\n    cup: {x: 1, z: 0}\n    cupRadius: -1\n", "cup radius"},
		{"tee on cup", "holes:\n  - par: 3\n", "coincide"},
		{"bad yaml", "holes: [", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got err %v, want one mentioning %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("missing file accepted")
	}
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.yaml")
	data := "name: Disk\nholes:\n  - name: One\n    par: 2\n    cup: {x: 5, z: 5}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Holes[0].Name != "One" || c.Holes[0].Par != 2 {
		t.Errorf("got %+v", c.Holes[0])
	}
}

func TestInCup(t *testing.T) {
	h := Hole{Par: 3, Cup: Point{X: 10, Z: 0}, CupRadius: 0.5}
	tests := []struct {
		pos  mgl64.Vec3
		want bool
	}{
		{mgl64.Vec3{10, 0.2, 0}, true},
		{mgl64.Vec3{10.4, 0.2, 0.2}, true},
		{mgl64.Vec3{10.6, 0.2, 0}, false},
		{mgl64.Vec3{0, 0.2, 0}, false},
	}
	for _, tt := range tests {
		if got := h.InCup(tt.pos); got != tt.want {
			t.Errorf("InCup(%v): got %v, want %v", tt.pos, got, tt.want)
		}
	}
	if got := h.TeePosition(0.2); got != (mgl64.Vec3{0, 0.2, 0}) {
		t.Errorf("got tee %v", got)
	}
}
