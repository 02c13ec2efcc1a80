package port

// ResponseCache is a TTL-bounded memoization store.
type ResponseCache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
}
