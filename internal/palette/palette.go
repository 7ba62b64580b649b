// Package palette keeps named colors for the lifetime of the server process.
package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ironsheep/color-tools-mcp/colorconv"
	"github.com/samber/lo"
)

// ErrNotFound is returned when a name has no saved color.
var ErrNotFound = errors.New("color not found in palette")

// Entry is one saved color.
type Entry struct {
	Name  string          `json:"name"`
	Color colorconv.Color `json:"color"`
}

// Palette provides thread-safe storage of colors keyed by name.
//
// Names are case-insensitive and surrounding whitespace is ignored, so
// "Brand" and " brand " refer to the same entry.
//
// Palette is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	p := palette.New()
//	_ = p.Save("brand", colorconv.MustParse("#ffbcca"))
//	c, err := p.Resolve("brand")        // saved name
//	c, err = p.Resolve("rgb(1,2,3)")    // any parseable color
type Palette struct {
	mu     sync.RWMutex
	colors map[string]colorconv.Color
}

// New creates an empty palette.
func New() *Palette {
	return &Palette{
		colors: make(map[string]colorconv.Color),
	}
}

// Save stores c under name, replacing any previous color.
func (p *Palette) Save(name string, c colorconv.Color) error {
	key := normalize(name)
	if key == "" {
		return errors.New("palette name must not be empty")
	}
	p.mu.Lock()
	p.colors[key] = c
	p.mu.Unlock()
	return nil
}

// Load returns the color saved under name.
func (p *Palette) Load(name string) (colorconv.Color, error) {
	p.mu.RLock()
	c, ok := p.colors[normalize(name)]
	p.mu.RUnlock()
	if !ok {
		return colorconv.Color{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c, nil
}

// Resolve returns the color saved under input if there is one, and otherwise
// parses input as a color string.
func (p *Palette) Resolve(input string) (colorconv.Color, error) {
	if c, err := p.Load(input); err == nil {
		return c, nil
	}
	return colorconv.Parse(strings.TrimSpace(input))
}

// Evict removes name and reports whether it was present.
func (p *Palette) Evict(name string) bool {
	key := normalize(name)
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.colors[key]; !ok {
		return false
	}
	delete(p.colors, key)
	return true
}

// Clear removes every saved color.
func (p *Palette) Clear() {
	p.mu.Lock()
	p.colors = make(map[string]colorconv.Color)
	p.mu.Unlock()
}

// Entries returns all saved colors sorted by name.
func (p *Palette) Entries() []Entry {
	p.mu.RLock()
	names := lo.Keys(p.colors)
	sort.Strings(names)
	entries := lo.Map(names, func(name string, _ int) Entry {
		return Entry{Name: name, Color: p.colors[name]}
	})
	p.mu.RUnlock()
	return entries
}

// Len returns the number of saved colors.
func (p *Palette) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.colors)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
