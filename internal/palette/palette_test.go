package palette

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ironsheep/color-tools-mcp/colorconv"
)

func TestPalette_SaveLoad(t *testing.T) {
	p := New()
	brand := colorconv.New(255, 188, 202, 255)

	if err := p.Save("Brand", brand); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := p.Load(" brand ")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != brand {
		t.Errorf("Load: got %v, want %v", got, brand)
	}
}

func TestPalette_SaveEmptyName(t *testing.T) {
	if err := New().Save("  ", colorconv.Black); err == nil {
		t.Error("Save with empty name should fail")
	}
}

func TestPalette_LoadMissing(t *testing.T) {
	_, err := New().Load("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing): got %v, want ErrNotFound", err)
	}
}

func TestPalette_Resolve(t *testing.T) {
	p := New()
	_ = p.Save("accent", colorconv.NewRGB(1, 2, 3))

	tests := []struct {
		name    string
		input   string
		want    colorconv.Color
		wantErr bool
	}{
		{"saved name", "accent", colorconv.NewRGB(1, 2, 3), false},
		{"hex", "#ffbcca", colorconv.NewRGB(255, 188, 202), false},
		{"padded rgb", " rgb(4,5,6) ", colorconv.NewRGB(4, 5, 6), false},
		{"unknown", "nothing", colorconv.Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Resolve(tt.input)
			if tt.wantErr {
				if !errors.Is(err, colorconv.ErrInvalidFormat) {
					t.Errorf("Resolve(%q): got %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPalette_EvictAndClear(t *testing.T) {
	p := New()
	_ = p.Save("a", colorconv.Black)
	_ = p.Save("b", colorconv.Black)

	if !p.Evict("A") {
		t.Error("Evict(A) should report true")
	}
	if p.Evict("a") {
		t.Error("second Evict(a) should report false")
	}
	if p.Len() != 1 {
		t.Errorf("Len after evict: got %d, want 1", p.Len())
	}

	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len after clear: got %d, want 0", p.Len())
	}
}

func TestPalette_EntriesSorted(t *testing.T) {
	p := New()
	_ = p.Save("zeta", colorconv.NewRGB(3, 3, 3))
	_ = p.Save("alpha", colorconv.NewRGB(1, 1, 1))
	_ = p.Save("mid", colorconv.NewRGB(2, 2, 2))

	entries := p.Entries()
	want := []string{"alpha", "mid", "zeta"}
	if len(entries) != len(want) {
		t.Fatalf("Entries: got %d, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d]: got %s, want %s", i, entries[i].Name, name)
		}
	}
}

func TestPalette_Concurrent(t *testing.T) {
	p := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("c%d", i)
			_ = p.Save(name, colorconv.NewRGB(uint8(i), 0, 0))
			_, _ = p.Load(name)
			_ = p.Entries()
		}(i)
	}
	wg.Wait()

	if p.Len() != 50 {
		t.Errorf("Len: got %d, want 50", p.Len())
	}
}
