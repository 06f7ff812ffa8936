// Package catalog holds the serial code dataset the portal verifies against.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/harrylevesque/qrverify/internal/models"
)

var (
	// ErrNotFound is returned when a serial code is not in the catalog.
	ErrNotFound = errors.New("code not found")
	// ErrInvalidDataset is returned when a dataset fails validation.
	ErrInvalidDataset = errors.New("invalid dataset")
)

// Catalog is a read-mostly view of the code dataset. Replace swaps the
// whole dataset at once so readers never see a half-loaded catalog.
type Catalog struct {
	mu         sync.RWMutex
	codes      map[string]models.CodeInfo
	owners     map[string]models.ActivationMeta
	categories []string
}

// New builds a catalog from ds after validating it.
func New(ds models.Dataset) (*Catalog, error) {
	c := &Catalog{}
	if err := c.Replace(ds); err != nil {
		return nil, err
	}
	return c, nil
}

// Normalize turns user input into the lookup key: trimmed and upper-cased.
func Normalize(serial string) string {
	return strings.ToUpper(strings.TrimSpace(serial))
}

// Lookup returns the record for an already normalized code.
func (c *Catalog) Lookup(code string) (models.CodeInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.codes[code]
	if !ok {
		return models.CodeInfo{}, ErrNotFound
	}
	return info, nil
}

// Categories returns the selectable categories in display order.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Owners returns a copy of the preset owner contacts.
func (c *Catalog) Owners() map[string]models.ActivationMeta {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]models.ActivationMeta, len(c.owners))
	for k, v := range c.owners {
		out[k] = v
	}
	return out
}

// Len returns the number of codes.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.codes)
}

// Replace validates ds and swaps it in. On error the old dataset is kept.
func (c *Catalog) Replace(ds models.Dataset) error {
	codes, owners, categories, err := prepare(ds)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.codes = codes
	c.owners = owners
	c.categories = categories
	c.mu.Unlock()
	return nil
}

func prepare(ds models.Dataset) (map[string]models.CodeInfo, map[string]models.ActivationMeta, []string, error) {
	if len(ds.Codes) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: no codes", ErrInvalidDataset)
	}
	known := make(map[string]bool, len(ds.Categories))
	for _, cat := range ds.Categories {
		known[cat] = true
	}
	codes := make(map[string]models.CodeInfo, len(ds.Codes))
	var derived []string
	for raw, info := range ds.Codes {
		code := Normalize(raw)
		if code == "" {
			return nil, nil, nil, fmt.Errorf("%w: empty code", ErrInvalidDataset)
		}
		if !info.Status.Valid() {
			return nil, nil, nil, fmt.Errorf("%w: %s has status %q", ErrInvalidDataset, code, info.Status)
		}
		if info.Category == "" {
			return nil, nil, nil, fmt.Errorf("%w: %s has no category", ErrInvalidDataset, code)
		}
		if len(ds.Categories) > 0 && !known[info.Category] {
			return nil, nil, nil, fmt.Errorf("%w: %s uses unknown category %q", ErrInvalidDataset, code, info.Category)
		}
		if len(ds.Categories) == 0 && !known[info.Category] {
			known[info.Category] = true
			derived = append(derived, info.Category)
		}
		codes[code] = info
	}
	categories := ds.Categories
	if len(categories) == 0 {
		sort.Strings(derived)
		categories = derived
	} else {
		categories = append([]string(nil), categories...)
	}
	owners := make(map[string]models.ActivationMeta, len(ds.Owners))
	for raw, meta := range ds.Owners {
		owners[Normalize(raw)] = meta
	}
	return codes, owners, categories, nil
}
