package showcase

// NullableCounter holds an optional number.
type NullableCounter struct {
	Num *int
}

// Increment adds delta to Num when both the counter and Num are set and
// reports whether it did. It is safe to call on a nil counter.
func (c *NullableCounter) Increment(delta int) bool {
	if c == nil || c.Num == nil {
		return false
	}
	*c.Num += delta
	return true
}
