package level

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLCourse represents the YAML structure for a course file.
// All coordinates are in tiles; hole positions get HoleOffset applied.
type YAMLCourse struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is one level of a course file.
type YAMLLevel struct {
	Name      string    `yaml:"name,omitempty"`
	Primary   YAMLBoard `yaml:"primary"`
	Secondary YAMLBoard `yaml:"secondary"`
}

// YAMLBoard is one board of a level.
type YAMLBoard struct {
	Ball      YAMLPoint      `yaml:"ball"`
	Hole      YAMLPoint      `yaml:"hole"`
	Obstacles []YAMLObstacle `yaml:"obstacles,omitempty"`
}

// YAMLPoint is a tile coordinate.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLObstacle is an obstacle in tile coordinates.
type YAMLObstacle struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size string  `yaml:"size"` // "small" or "big"
}

// ParseYAML parses and validates a course file.
func ParseYAML(data []byte) (Catalog, error) {
	var yc YAMLCourse
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Catalog{}, fmt.Errorf("level: yaml unmarshal: %w", err)
	}

	if yc.ID == "" {
		return Catalog{}, fmt.Errorf("level: course has no id")
	}

	cat := Catalog{
		ID:     yc.ID,
		Name:   yc.Name,
		Levels: make([]Def, 0, len(yc.Levels)),
	}
	if cat.Name == "" {
		cat.Name = yc.ID
	}

	for i, yl := range yc.Levels {
		primary, err := yl.Primary.toBoard()
		if err != nil {
			return Catalog{}, fmt.Errorf("level: level %d primary: %w", i+1, err)
		}
		secondary, err := yl.Secondary.toBoard()
		if err != nil {
			return Catalog{}, fmt.Errorf("level: level %d secondary: %w", i+1, err)
		}
		cat.Levels = append(cat.Levels, Def{
			Name:      yl.Name,
			Primary:   primary,
			Secondary: secondary,
		})
	}

	if err := Validate(cat); err != nil {
		return Catalog{}, fmt.Errorf("level: course %q: %w", cat.ID, err)
	}
	return cat, nil
}

func (b YAMLBoard) toBoard() (BoardDef, error) {
	def := BoardDef{
		BallStart: BallPos(b.Ball.X, b.Ball.Y),
		Hole:      HolePos(b.Hole.X, b.Hole.Y),
		Obstacles: make([]Obstacle, 0, len(b.Obstacles)),
	}
	for _, o := range b.Obstacles {
		size, ok := ParseSize(o.Size)
		if !ok {
			return BoardDef{}, ValidationError{
				Code:    "BAD_SIZE",
				Message: fmt.Sprintf("unknown obstacle size %q", o.Size),
			}
		}
		def.Obstacles = append(def.Obstacles, Obstacle{Pos: TilePos(o.X, o.Y), Size: size})
	}
	return def, nil
}

// ParseSize parses an obstacle size class name.
func ParseSize(s string) (SizeClass, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small", "s", "16":
		return Small, true
	case "big", "b", "32":
		return Big, true
	default:
		return Small, false
	}
}

// FormatExtensions returns supported course file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
