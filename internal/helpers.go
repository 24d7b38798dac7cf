package internal

// ContextValue returns the value stored under key when it has type T,
// and the zero value otherwise.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}
