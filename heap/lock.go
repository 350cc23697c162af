package heap

// NopLocker satisfies sync.Locker without doing anything. Use it when pool
// access is already serialized externally, for example a single-threaded
// runtime or a scheduler that disables preemption around allocator calls.
type NopLocker struct{}

// Lock is a no-op.
func (NopLocker) Lock() {}

// Unlock is a no-op.
func (NopLocker) Unlock() {}
