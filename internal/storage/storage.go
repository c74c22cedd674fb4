// Package storage provides the persistent key-value namespace backing the
// resume collection and the per-category suggestion lists.
package storage

// DefaultMaxBytes is the default capacity budget for the whole namespace (5 MiB).
const DefaultMaxBytes = 5 * 1024 * 1024

// WarnThreshold is the fraction of the capacity budget above which writes
// trigger a non-fatal advisory.
const WarnThreshold = 0.9

// probeKey is a throwaway key used to verify the backend accepts writes.
const probeKey = "__storage_test__"

// KV is a flat string-to-string namespace. All persisted state lives behind it.
//
// Set must be atomic: on failure the previously stored value for the key, and
// every other key, must remain intact.
type KV interface {
	// Get returns the stored value. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Removing an absent key is not an error.
	Delete(key string) error
	// Keys lists every stored key, in no particular order.
	Keys() ([]string, error)
}

// Probe verifies the backend is usable by writing and removing a test key.
// A failed probe means all persistence should degrade to no-ops.
func Probe(kv KV) error {
	if err := kv.Set(probeKey, "test"); err != nil {
		return &UnavailableError{Message: "storage probe write failed", Cause: err}
	}
	if err := kv.Delete(probeKey); err != nil {
		return &UnavailableError{Message: "storage probe cleanup failed", Cause: err}
	}
	return nil
}

// Usage estimates the bytes occupied by the namespace as the sum of key and
// value lengths across every stored key. This deliberately counts the whole
// namespace, suggestion lists included, matching the persisted-data budget.
func Usage(kv KV) (int, error) {
	keys, err := kv.Keys()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, key := range keys {
		value, ok, err := kv.Get(key)
		if err != nil {
			return 0, err
		}
		if ok {
			total += len(key) + len(value)
		}
	}
	return total, nil
}
