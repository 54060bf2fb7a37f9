// Package indicators provides the streaming rolling-state primitives the
// strategies are built from. Every primitive consumes one price per update,
// holds fixed per-period memory, and is deterministic.
package indicators

// Streaming is the contract shared by the primitives in this package.
type Streaming interface {
	// Update consumes the next price and updates internal state.
	Update(price float64)

	// Ready reports whether Value is meaningful (warm-up completed).
	Ready() bool

	// Value returns the current value. Callers should check Ready first;
	// before warm-up the result is 0.
	Value() float64

	// Reset clears all internal state.
	Reset()
}
