package catalog

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/dyeharmony/internal/colour"
	"github.com/jmylchreest/dyeharmony/internal/security"
	"github.com/ulikunitz/xz"
)

func TestNew(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		cat, err := New([]Dye{
			{ID: "b", Name: "B"},
			{ID: "a", Name: "A"},
		})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		dyes := cat.Dyes()
		if len(dyes) != 2 || dyes[0].ID != "b" || dyes[1].ID != "a" {
			t.Errorf("Dyes() = %v, want [b a]", dyes)
		}
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		_, err := New([]Dye{{ID: "a"}, {ID: "a"}})
		if !errors.Is(err, ErrDuplicateID) {
			t.Errorf("New() error = %v, want ErrDuplicateID", err)
		}
	})

	t.Run("rejects empty id", func(t *testing.T) {
		if _, err := New([]Dye{{Name: "nameless"}}); err == nil {
			t.Error("New() expected error for empty id")
		}
	})
}

func TestParse(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "small.json"))
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	cat, err := Parse("small.json", data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cat.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", cat.Len())
	}

	red, ok := cat.ByID("dalamud-red")
	if !ok {
		t.Fatal("ByID(dalamud-red) not found")
	}
	if red.RGB != (colour.RGB{R: 120, G: 26, B: 26}) {
		t.Errorf("RGB = %v, want rgb(120, 26, 26)", red.RGB)
	}
	if red.Category != CategoryRed {
		t.Errorf("Category = %q, want %q", red.Category, CategoryRed)
	}
	if red.EntrySource() != SourceGame {
		t.Errorf("EntrySource() = %q, want %q", red.EntrySource(), SourceGame)
	}

	gold, _ := cat.ByID("metallic-gold")
	if !gold.HasTag("metallic") {
		t.Error("metallic-gold should carry the metallic tag")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"dyes": [`},
		{"channel out of range", `{"dyes": [{"id": "x", "rgb": {"r": 256, "g": 0, "b": 0}}]}`},
		{"duplicate id", `{"dyes": [{"id": "x"}, {"id": "x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse("bad.json", []byte(tt.data)); err == nil {
				t.Error("Parse() expected error")
			}
		})
	}
}

func TestParseXz(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "small.json"))
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz.NewWriter() error = %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("write error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	cat, err := Parse("dyes.json.xz", buf.Bytes())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cat.Len() != 4 {
		t.Errorf("Len() = %d, want 4", cat.Len())
	}
}

func TestLoadFile(t *testing.T) {
	cat, err := Load(context.Background(), filepath.Join("testdata", "small.json"), LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cat.Len() != 4 {
		t.Errorf("Len() = %d, want 4", cat.Len())
	}

	if _, err := Load(context.Background(), filepath.Join("testdata", "missing.json"), LoadOptions{}); err == nil {
		t.Error("Load() expected error for missing file")
	}
	if _, err := Load(context.Background(), "", LoadOptions{}); err == nil {
		t.Error("Load() expected error for empty source")
	}
}

func TestLoadURL(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "small.json"))
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dyes.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
	defer server.Close()

	permissive := LoadOptions{URLPolicy: security.URLPolicy{AllowInsecure: true, AllowPrivateHosts: true}}

	t.Run("fetches catalog", func(t *testing.T) {
		cat, err := Load(context.Background(), server.URL+"/dyes.json", permissive)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cat.Len() != 4 {
			t.Errorf("Len() = %d, want 4", cat.Len())
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := Load(context.Background(), server.URL+"/missing.json", permissive); err == nil {
			t.Error("Load() expected error for 404")
		}
	})

	t.Run("rejected by default policy", func(t *testing.T) {
		if _, err := Load(context.Background(), server.URL+"/dyes.json", LoadOptions{}); err == nil {
			t.Error("Load() expected error for insecure local URL")
		}
	})
}

func TestFind(t *testing.T) {
	cat, err := New([]Dye{
		{ID: "snow-white", Name: "Snow White"},
		{ID: "soot-black", Name: "Soot Black"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		query  string
		wantID string
		found  bool
	}{
		{"snow-white", "snow-white", true},
		{"Soot Black", "soot-black", true},
		{"soot black", "soot-black", true},
		{"jet-black", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			d, ok := cat.Find(tt.query)
			if ok != tt.found {
				t.Fatalf("Find(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
			if ok && d.ID != tt.wantID {
				t.Errorf("Find(%q) = %q, want %q", tt.query, d.ID, tt.wantID)
			}
		})
	}
}

func TestDyeJSON(t *testing.T) {
	d := Dye{ID: "x", Name: "X", Category: CategoryBlue, RGB: colour.RGB{R: 0, G: 0, B: 255}}
	j := d.JSON()
	if j.Hex != "#0000FF" {
		t.Errorf("Hex = %q, want #0000FF", j.Hex)
	}
	if j.HSV.H != 240 || j.HSV.S != 100 || j.HSV.V != 100 {
		t.Errorf("HSV = %+v, want {240 100 100}", j.HSV)
	}
	if j.Source != SourceGame {
		t.Errorf("Source = %q, want %q", j.Source, SourceGame)
	}
}
