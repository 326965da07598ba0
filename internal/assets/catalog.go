// Package assets resolves opaque sprite ids to drawable images.
// Sprites come from a YAML sheet; the default sheet is embedded.
package assets

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/trophy-runner/internal/core"
)

//go:embed sprites.yaml
var defaultSheet []byte

// spriteDef is one entry of the sprite sheet.
type spriteDef struct {
	ID     string   `yaml:"id"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Color  string   `yaml:"color"`
	Art    []string `yaml:"art"`
}

type sheet struct {
	Sprites []spriteDef `yaml:"sprites"`
}

// Image is a resolved sprite. An image whose id is missing from the sheet
// never becomes ready: it reports a zero size and surfaces skip it.
type Image struct {
	id    string
	w, h  int
	art   []string
	color core.Color
	ready bool
}

// ID returns the sprite id the image was requested with.
func (i *Image) ID() string { return i.id }

// Size returns the bounding size in pixels, or 0x0 while not ready.
func (i *Image) Size() (int, int) {
	if !i.ready {
		return 0, 0
	}
	return i.w, i.h
}

// Ready reports whether the image can be drawn.
func (i *Image) Ready() bool { return i.ready }

// Art returns the rune rows drawn for this image.
func (i *Image) Art() []string { return i.art }

// Color returns the foreground color of the art.
func (i *Image) Color() core.Color { return i.color }

var _ core.Sprite = (*Image)(nil)

// Catalog hands out images by sprite id. Images are cached so every object
// of a variant shares one Image.
type Catalog struct {
	defs   map[string]*Image
	images map[string]*Image
	logger *log.Logger
}

// Default returns a catalog over the embedded sprite sheet.
func Default(logger *log.Logger) (*Catalog, error) {
	return Parse(defaultSheet, logger)
}

// LoadFile reads a sprite sheet from disk.
func LoadFile(path string, logger *log.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to read sprite sheet %s: %w", path, err)
	}
	return Parse(data, logger)
}

// Parse builds a catalog from sprite sheet YAML.
func Parse(data []byte, logger *log.Logger) (*Catalog, error) {
	var sh sheet
	if err := yaml.Unmarshal(data, &sh); err != nil {
		return nil, fmt.Errorf("assets: failed to parse sprite sheet: %w", err)
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Catalog{
		defs:   make(map[string]*Image, len(sh.Sprites)),
		images: make(map[string]*Image),
		logger: logger,
	}

	for i, def := range sh.Sprites {
		if def.ID == "" {
			return nil, fmt.Errorf("assets: sprite #%d has no id", i)
		}
		if _, dup := c.defs[def.ID]; dup {
			return nil, fmt.Errorf("assets: duplicate sprite %q", def.ID)
		}
		if def.Width <= 0 || def.Height <= 0 {
			return nil, fmt.Errorf("assets: sprite %q has invalid size %dx%d", def.ID, def.Width, def.Height)
		}
		color, err := core.ParseColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("assets: sprite %q: %w", def.ID, err)
		}
		c.defs[def.ID] = &Image{
			id:    def.ID,
			w:     def.Width,
			h:     def.Height,
			art:   def.Art,
			color: color,
			ready: true,
		}
	}

	return c, nil
}

// Image resolves a sprite id. Unknown ids yield an image that never becomes
// ready; the first request for each logs a warning.
func (c *Catalog) Image(id string) *Image {
	if img, ok := c.images[id]; ok {
		return img
	}

	img, ok := c.defs[id]
	if !ok {
		c.logger.Warn("sprite not found, drawing disabled", "id", id)
		img = &Image{id: id}
	}
	c.images[id] = img
	return img
}

// IDs returns the ids defined by the sheet, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.defs))
	for id := range c.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
