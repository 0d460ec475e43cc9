package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
)

func TestCustomPrimary(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		customName string
		wantCustom bool
		wantErr    bool
	}{
		{"hex", "#336699", "Sea", true, false},
		{"rgb triple", "120, 85, 45", "Saddle", true, false},
		{"catalog name", "Snow White", "ignored", false, false},
		{"blank name", "#336699", "  ", true, true},
		{"long name", "#336699", strings.Repeat("n", catalog.MaxCustomNameLength+1), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, custom, err := customPrimary(tt.input, tt.customName)
			if custom != tt.wantCustom {
				t.Errorf("custom = %v, want %v", custom, tt.wantCustom)
			}
			if tt.wantErr {
				if !errors.Is(err, catalog.ErrInvalidName) {
					t.Errorf("error = %v, want ErrInvalidName", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if custom && (d.Name != strings.TrimSpace(tt.customName) || !d.IsCustom()) {
				t.Errorf("dye = %+v, want custom dye named %q", d, tt.customName)
			}
		})
	}
}
