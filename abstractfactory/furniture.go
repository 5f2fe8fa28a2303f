package abstractfactory

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Style names of the built-in furniture families.
const (
	StyleVictorian = "Victorian"
	StyleArtDeco   = "Art Deco"
	StyleModern    = "Modern"
)

var (
	// ErrUnknownStyle is returned by Factory for a style nobody registered.
	ErrUnknownStyle = errors.New("abstractfactory: unknown furniture style")
	// ErrEmptyStyle is returned by RegisterStyle for an empty style name.
	ErrEmptyStyle = errors.New("abstractfactory: empty style name")
	// ErrNilConstructor is returned by RegisterStyle for a nil constructor.
	ErrNilConstructor = errors.New("abstractfactory: nil factory constructor")
	// ErrDuplicateStyle is returned by RegisterStyle for an already-taken name.
	ErrDuplicateStyle = errors.New("abstractfactory: style already registered")
)

// Chair is the sitting product of a furniture family.
type Chair interface {
	// SitOn reports what sitting on this chair is like.
	SitOn() string
}

// Sofa is the lying product of a furniture family.
type Sofa interface {
	// LieOn reports what lying on this sofa is like.
	LieOn() string
}

// CoffeeTable is the surface product of a furniture family.
type CoffeeTable interface {
	// KeepThings reports what the table is being used for.
	KeepThings() string
}

// FurnitureFactory produces one complete, style-consistent furniture family.
// Every call returns a fresh product; factories themselves are stateless.
type FurnitureFactory interface {
	Chair() Chair
	Sofa() Sofa
	CoffeeTable() CoffeeTable
}

// styledFurniture covers all nine concrete variants: the behaviour differs
// only in the style woven into each report, so one struct per product kind
// is enough and the family stays trivially consistent.
type styledChair struct{ style string }

func (c styledChair) SitOn() string { return "Sitting on " + c.style + " Chair" }

type styledSofa struct{ style string }

func (s styledSofa) LieOn() string { return "Lying on " + s.style + " Sofa" }

type styledCoffeeTable struct{ style string }

func (t styledCoffeeTable) KeepThings() string {
	return "Keeping cups on " + t.style + " Coffee table"
}

type styledFactory struct{ style string }

func (f styledFactory) Chair() Chair             { return styledChair{f.style} }
func (f styledFactory) Sofa() Sofa               { return styledSofa{f.style} }
func (f styledFactory) CoffeeTable() CoffeeTable { return styledCoffeeTable{f.style} }

// NewVictorianFactory returns the factory for the Victorian family.
func NewVictorianFactory() FurnitureFactory { return styledFactory{StyleVictorian} }

// NewArtDecoFactory returns the factory for the Art Deco family.
func NewArtDecoFactory() FurnitureFactory { return styledFactory{StyleArtDeco} }

// NewModernFactory returns the factory for the Modern family.
func NewModernFactory() FurnitureFactory { return styledFactory{StyleModern} }

var (
	styleMu sync.RWMutex
	styleFn = map[string]func() FurnitureFactory{
		StyleVictorian: NewVictorianFactory,
		StyleArtDeco:   NewArtDecoFactory,
		StyleModern:    NewModernFactory,
	}
)

// RegisterStyle makes a furniture family available under the given style
// name. Registration is explicit: there is no init-time magic, a new family
// is one constructor plus one RegisterStyle call.
func RegisterStyle(style string, fn func() FurnitureFactory) error {
	if style == "" {
		return ErrEmptyStyle
	}
	if fn == nil {
		return fmt.Errorf("%w: style %q", ErrNilConstructor, style)
	}
	styleMu.Lock()
	defer styleMu.Unlock()
	if _, dup := styleFn[style]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateStyle, style)
	}
	styleFn[style] = fn
	return nil
}

// Factory returns a fresh factory for the requested style, or
// ErrUnknownStyle when the style was never registered.
func Factory(style string) (FurnitureFactory, error) {
	styleMu.RLock()
	fn, ok := styleFn[style]
	styleMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	return fn(), nil
}

// Styles lists every registered style name in ascending order.
func Styles() []string {
	styleMu.RLock()
	defer styleMu.RUnlock()
	names := make([]string, 0, len(styleFn))
	for name := range styleFn {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
