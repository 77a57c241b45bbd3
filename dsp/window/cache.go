package window

import "sync"

// Cache memoizes coefficients of one window type per length.
// It is safe for concurrent use. Returned slices are shared and must not be
// modified by callers.
type Cache struct {
	typ  Type
	opts []Option

	mu    sync.RWMutex
	byLen map[int][]float64
}

// NewCache returns an empty Cache for the given window type.
func NewCache(t Type, opts ...Option) *Cache {
	return &Cache{
		typ:   t,
		opts:  append([]Option(nil), opts...),
		byLen: make(map[int][]float64),
	}
}

// Type returns the window type the cache generates.
func (c *Cache) Type() Type {
	return c.typ
}

// Get returns coefficients for length n, generating them on first use.
func (c *Cache) Get(n int) []float64 {
	if n <= 0 {
		return nil
	}

	c.mu.RLock()
	coeffs, ok := c.byLen[n]
	c.mu.RUnlock()
	if ok {
		return coeffs
	}

	coeffs = Generate(c.typ, n, c.opts...)

	c.mu.Lock()
	if existing, ok := c.byLen[n]; ok {
		coeffs = existing
	} else {
		c.byLen[n] = coeffs
	}
	c.mu.Unlock()

	return coeffs
}
