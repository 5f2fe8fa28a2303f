package singleton

import "sync"

// Product is the process-wide shared instance.
type Product struct {
	name string
}

// Name returns the name the instance was constructed with.
func (p *Product) Name() string { return p.name }

var (
	once     sync.Once
	instance *Product
)

// GetInstance returns the one shared Product, constructing it with the given
// name on the first call. Every later call returns that same instance and
// ignores its argument. Safe for concurrent use: even when many goroutines
// race on the first access, exactly one Product is constructed.
func GetInstance(name string) *Product {
	once.Do(func() {
		instance = &Product{name: name}
	})
	return instance
}
