// SPDX-License-Identifier: MIT
// Package: designpatterns/catalog
//
// catalog.go - registry types, registration, lookup and execution.

package catalog

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Category buckets a demo under its classic chapter.
type Category string

// The three chapters.
const (
	Creational Category = "creational"
	Structural Category = "structural"
	Behavioral Category = "behavioral"
)

// Valid reports whether c is one of the three chapters.
func (c Category) Valid() bool {
	switch c {
	case Creational, Structural, Behavioral:
		return true
	default:
		return false
	}
}

// RunFunc executes one demo, writing its transcript to w. Demos take the
// writer instead of printing so callers and tests own the output.
type RunFunc func(w io.Writer) error

// Demo describes one runnable pattern demonstration.
type Demo struct {
	// Name is the registry key, kebab-case, e.g. "factory-method".
	Name string
	// Category is the chapter the pattern belongs to.
	Category Category
	// Brief is the one-line summary shown in listings.
	Brief string
	// Doc names the package carrying the pattern's full write-up.
	Doc string
	// Run writes the demo transcript to w.
	Run RunFunc
}

// Registration and lookup errors.
var (
	// ErrEmptyName is returned by Register for a demo without a name.
	ErrEmptyName = errors.New("catalog: empty demo name")
	// ErrNilRun is returned by Register for a demo without a run function.
	ErrNilRun = errors.New("catalog: nil run function")
	// ErrBadCategory is returned for a category outside the three chapters.
	ErrBadCategory = errors.New("catalog: unknown category")
	// ErrDuplicateDemo is returned by Register for an already-taken name.
	ErrDuplicateDemo = errors.New("catalog: demo already registered")
	// ErrUnknownDemo is returned by Lookup and Run for an unregistered name.
	ErrUnknownDemo = errors.New("catalog: unknown demo")
)

var (
	regMu sync.RWMutex
	reg   = make(map[string]Demo)
)

// Register adds a demo to the catalog. The name must be non-empty and
// unused, the category one of the three chapters, and Run non-nil.
func Register(d Demo) error {
	if d.Name == "" {
		return ErrEmptyName
	}
	if d.Run == nil {
		return fmt.Errorf("%w: %s", ErrNilRun, d.Name)
	}
	if !d.Category.Valid() {
		return fmt.Errorf("%w: %s (demo %s)", ErrBadCategory, d.Category, d.Name)
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := reg[d.Name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateDemo, d.Name)
	}
	reg[d.Name] = d
	return nil
}

// MustRegister is Register for start-up wiring: it panics on error, so a
// broken demo list fails loudly at init instead of surfacing as a missing
// catalog entry later.
func MustRegister(d Demo) {
	if err := Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the demo registered under name, or ErrUnknownDemo.
func Lookup(name string) (Demo, error) {
	regMu.RLock()
	d, ok := reg[name]
	regMu.RUnlock()
	if !ok {
		return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
	}
	return d, nil
}

// Names lists every registered demo name in ascending order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Demos returns every registered demo, sorted by name.
func Demos() []Demo {
	regMu.RLock()
	defer regMu.RUnlock()
	all := make([]Demo, 0, len(reg))
	for _, d := range reg {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// ByCategory returns the chapter's demos sorted by name, or ErrBadCategory
// for a category outside the three chapters.
func ByCategory(c Category) ([]Demo, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrBadCategory, c)
	}
	var filtered []Demo
	for _, d := range Demos() {
		if d.Category == c {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// Run executes the named demo against w.
func Run(name string, w io.Writer) error {
	d, err := Lookup(name)
	if err != nil {
		return err
	}
	return d.Run(w)
}
