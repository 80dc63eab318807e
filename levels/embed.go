package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is a Tiled map exported as JSON. Only object layers carry gameplay
// data; tile layers are kept for their names but otherwise ignored.
type Level struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	TileWidth  int     `json:"tilewidth"`
	TileHeight int     `json:"tileheight"`
	Layers     []Layer `json:"layers"`
}

type Layer struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Visible bool     `json:"visible"`
	Objects []Object `json:"objects,omitempty"`
}

// Object is a rectangle on an object layer, in pixels.
type Object struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

const ObjectLayer = "objectgroup"

// Parse decodes and validates a level.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	if l.TileWidth <= 0 || l.TileHeight <= 0 {
		return fmt.Errorf("%w: tile size %dx%d", ErrInvalidLevel, l.TileWidth, l.TileHeight)
	}
	for _, layer := range l.Layers {
		for _, o := range layer.Objects {
			if o.Width < 0 || o.Height < 0 {
				return fmt.Errorf("%w: layer %q object %d has negative size", ErrInvalidLevel, layer.Name, o.ID)
			}
		}
	}
	return nil
}

// PixelSize returns the level dimensions in pixels.
func (l *Level) PixelSize() (float64, float64) {
	return float64(l.Width * l.TileWidth), float64(l.Height * l.TileHeight)
}

// Layer returns the named layer, or nil.
func (l *Level) Layer(name string) *Layer {
	for i := range l.Layers {
		if l.Layers[i].Name == name {
			return &l.Layers[i]
		}
	}
	return nil
}

// Objects returns every object on the named object layers, in file order.
// With no names, every object layer is included.
func (l *Level) Objects(layers ...string) []Object {
	var out []Object
	for _, layer := range l.Layers {
		if layer.Type != ObjectLayer {
			continue
		}
		if len(layers) > 0 && !slices.Contains(layers, layer.Name) {
			continue
		}
		out = append(out, layer.Objects...)
	}
	return out
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return lvl, nil
}

// Load prefers a file on disk and falls back to the embedded levels, so
// edited maps can be tried without rebuilding.
func Load(name string) (*Level, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read level %s: %w", name, err)
		}
		return LoadLevelFromFS(filepath.Base(name))
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return lvl, nil
}
