package ports

// KeyValueStore is the durable blob store that stands in for browser local
// storage. Values are opaque strings; callers own their encoding.
//
// Set and Delete must be durable when they return: a value written before a
// restart is visible to Get after it.
type KeyValueStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

