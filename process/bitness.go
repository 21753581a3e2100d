package process

// BitnessCache memoizes a pointer-width query. A live process cannot
// change its pointer width, so the first successful answer holds for the
// owning handle's whole lifetime. A failed query is never cached; the next
// Resolve retries.
//
// The cell is intentionally unsynchronized, matching the handle types that
// embed it: confine the handle to one goroutine or lock around it.
type BitnessCache struct {
	resolved bool
	is64     bool
}

// Resolve returns the cached answer, or runs query and caches its result
// on success.
func (c *BitnessCache) Resolve(query func() (bool, error)) (bool, error) {
	if c.resolved {
		return c.is64, nil
	}
	is64, err := query()
	if err != nil {
		return false, err
	}
	c.is64 = is64
	c.resolved = true
	return is64, nil
}

// Resolved reports whether a width has been cached.
func (c *BitnessCache) Resolved() bool {
	return c.resolved
}
