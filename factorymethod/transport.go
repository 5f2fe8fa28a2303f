package factorymethod

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Kind names of the built-in transports.
const (
	KindRoad = "Road"
	KindAir  = "Air"
)

var (
	// ErrUnknownTransport is returned by New for a kind nobody registered.
	ErrUnknownTransport = errors.New("factorymethod: unknown transport kind")
	// ErrEmptyKind is returned by Register for an empty kind name.
	ErrEmptyKind = errors.New("factorymethod: empty transport kind")
	// ErrNilConstructor is returned by Register for a nil constructor.
	ErrNilConstructor = errors.New("factorymethod: nil transport constructor")
	// ErrDuplicateKind is returned by Register for an already-taken kind.
	ErrDuplicateKind = errors.New("factorymethod: transport kind already registered")
)

// Transport is the product: a way of moving goods with a known price tag.
type Transport interface {
	// Cost returns the flat delivery cost for this transport.
	Cost() int
}

type roadTransport struct{}

func (roadTransport) Cost() int { return 1000 }

type airTransport struct{}

func (airTransport) Cost() int { return 10000 }

// NewRoadTransport returns the road product directly, bypassing the registry.
func NewRoadTransport() Transport { return roadTransport{} }

// NewAirTransport returns the air product directly, bypassing the registry.
func NewAirTransport() Transport { return airTransport{} }

var (
	kindMu sync.RWMutex
	kindFn = map[string]func() Transport{
		KindRoad: NewRoadTransport,
		KindAir:  NewAirTransport,
	}
)

// Register binds a transport constructor to a kind name. Kinds are
// registered explicitly, never via reflection, so every constructor in the
// registry is a plain func the compiler has checked.
func Register(kind string, fn func() Transport) error {
	if kind == "" {
		return ErrEmptyKind
	}
	if fn == nil {
		return fmt.Errorf("%w: kind %q", ErrNilConstructor, kind)
	}
	kindMu.Lock()
	defer kindMu.Unlock()
	if _, dup := kindFn[kind]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, kind)
	}
	kindFn[kind] = fn
	return nil
}

// New builds a fresh transport of the requested kind, or returns
// ErrUnknownTransport when the kind was never registered.
func New(kind string) (Transport, error) {
	kindMu.RLock()
	fn, ok := kindFn[kind]
	kindMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, kind)
	}
	return fn(), nil
}

// Kinds lists every registered transport kind in ascending order.
func Kinds() []string {
	kindMu.RLock()
	defer kindMu.RUnlock()
	names := make([]string, 0, len(kindFn))
	for name := range kindFn {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
