package abstractfactory

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Combo names of the built-in meal families.
const (
	ComboVeg    = "Veg"
	ComboNonVeg = "NonVeg"
)

var (
	// ErrUnknownCombo is returned by Combo for a combo nobody registered.
	ErrUnknownCombo = errors.New("abstractfactory: unknown meal combo")
	// ErrDuplicateCombo is returned by RegisterCombo for an already-taken name.
	ErrDuplicateCombo = errors.New("abstractfactory: combo already registered")
)

// Burger is the main course of a combo meal.
type Burger interface {
	// Prepare reports the burger being made.
	Prepare() string
}

// Fries is the side of a combo meal.
type Fries interface {
	// Prepare reports the fries being made.
	Prepare() string
}

// ComboMealFactory produces one dietary-consistent combo: a Veg factory
// never hands out a non-veg burger.
type ComboMealFactory interface {
	OrderBurger() Burger
	OrderFries() Fries
}

type vegBurger struct{}

func (vegBurger) Prepare() string { return "Preparing veg burger" }

type nonVegBurger struct{}

func (nonVegBurger) Prepare() string { return "Preparing non veg burger" }

// plainFries suit both combos; the family constraint lives in the burger.
type plainFries struct{}

func (plainFries) Prepare() string { return "Preparing fries" }

type vegComboFactory struct{}

func (vegComboFactory) OrderBurger() Burger { return vegBurger{} }
func (vegComboFactory) OrderFries() Fries   { return plainFries{} }

type nonVegComboFactory struct{}

func (nonVegComboFactory) OrderBurger() Burger { return nonVegBurger{} }
func (nonVegComboFactory) OrderFries() Fries   { return plainFries{} }

// NewVegComboFactory returns the factory for the vegetarian combo.
func NewVegComboFactory() ComboMealFactory { return vegComboFactory{} }

// NewNonVegComboFactory returns the factory for the non-vegetarian combo.
func NewNonVegComboFactory() ComboMealFactory { return nonVegComboFactory{} }

var (
	comboMu sync.RWMutex
	comboFn = map[string]func() ComboMealFactory{
		ComboVeg:    NewVegComboFactory,
		ComboNonVeg: NewNonVegComboFactory,
	}
)

// RegisterCombo makes a combo family available under the given name.
func RegisterCombo(combo string, fn func() ComboMealFactory) error {
	if combo == "" {
		return ErrEmptyStyle
	}
	if fn == nil {
		return fmt.Errorf("%w: combo %q", ErrNilConstructor, combo)
	}
	comboMu.Lock()
	defer comboMu.Unlock()
	if _, dup := comboFn[combo]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateCombo, combo)
	}
	comboFn[combo] = fn
	return nil
}

// Combo returns a fresh factory for the requested combo, or
// ErrUnknownCombo when the combo was never registered.
func Combo(combo string) (ComboMealFactory, error) {
	comboMu.RLock()
	fn, ok := comboFn[combo]
	comboMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCombo, combo)
	}
	return fn(), nil
}

// Combos lists every registered combo name in ascending order.
func Combos() []string {
	comboMu.RLock()
	defer comboMu.RUnlock()
	names := make([]string, 0, len(comboFn))
	for name := range comboFn {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
