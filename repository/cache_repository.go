package repository

// CacheRepository caches serialized estimate results by input key.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
