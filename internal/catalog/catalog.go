package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmylchreest/dyeharmony/internal/compression"
	"github.com/jmylchreest/dyeharmony/internal/security"
	httputil "github.com/jmylchreest/dyeharmony/internal/util/http"
)

// ErrDuplicateID is returned when a catalog contains the same ID twice.
var ErrDuplicateID = errors.New("duplicate dye id")

// Catalog is an ordered, read-only collection of dyes.
type Catalog struct {
	dyes []Dye
	byID map[string]int
}

// Data is the on-disk catalog document.
type Data struct {
	Dyes []Dye `json:"dyes"`
}

// LoadOptions configures catalog loading.
type LoadOptions struct {
	// Timeout for remote catalogs. Zero uses the fetch default.
	Timeout time.Duration
	// URLPolicy controls which remote URLs are accepted.
	URLPolicy security.URLPolicy
}

// New builds a catalog from dyes, keeping their order. IDs must be unique
// and non-empty.
func New(dyes []Dye) (*Catalog, error) {
	c := &Catalog{
		dyes: make([]Dye, 0, len(dyes)),
		byID: make(map[string]int, len(dyes)),
	}
	for i, d := range dyes {
		if d.ID == "" {
			return nil, fmt.Errorf("dye at index %d has no id", i)
		}
		if _, exists := c.byID[d.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, d.ID)
		}
		c.byID[d.ID] = len(c.dyes)
		c.dyes = append(c.dyes, d)
	}
	return c, nil
}

// Parse decodes a catalog document. Compressed input (xz, gzip, bzip2) is
// detected from name or content and decompressed first.
func Parse(name string, data []byte) (*Catalog, error) {
	raw, err := compression.Decompress(name, data)
	if err != nil {
		return nil, err
	}

	var doc Data
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", name, err)
	}

	return New(doc.Dyes)
}

// Load reads a catalog from a file path or an HTTP(S) URL.
func Load(ctx context.Context, source string, opts LoadOptions) (*Catalog, error) {
	if source == "" {
		return nil, errors.New("catalog source is required")
	}

	var (
		data []byte
		err  error
	)
	if security.IsURL(source) {
		if err := security.ValidateHTTPURL(source, opts.URLPolicy); err != nil {
			return nil, fmt.Errorf("invalid catalog URL: %w", err)
		}
		data, err = httputil.Fetch(ctx, source, httputil.FetchOptions{
			Timeout: opts.Timeout,
			Headers: map[string]string{"Accept": "application/json"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch catalog: %w", err)
		}
	} else {
		data, err = os.ReadFile(filepath.Clean(source))
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
	}

	return Parse(source, data)
}

// Dyes returns a copy of the catalog entries in catalog order.
func (c *Catalog) Dyes() []Dye {
	out := make([]Dye, len(c.dyes))
	copy(out, c.dyes)
	return out
}

// Len returns the number of dyes in the catalog.
func (c *Catalog) Len() int {
	return len(c.dyes)
}

// ByID returns the dye with the given id.
func (c *Catalog) ByID(id string) (Dye, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Dye{}, false
	}
	return c.dyes[i], true
}

// Find looks a dye up by id, then by case-insensitive name.
func (c *Catalog) Find(idOrName string) (Dye, bool) {
	if d, ok := c.ByID(idOrName); ok {
		return d, true
	}
	for _, d := range c.dyes {
		if strings.EqualFold(d.Name, idOrName) {
			return d, true
		}
	}
	return Dye{}, false
}
