package store

// KV is the persistence contract the journaling flow is written against: a
// key-value store holding one JSON document per user plus session records.
// Writes are full-value overwrites, so the latest write always wins.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
