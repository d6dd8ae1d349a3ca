package entity

// StoredObject is the result of a storage backend put.
// PublicURL is empty for backends whose objects are only reachable through
// the serve endpoint.
type StoredObject struct {
	Key       string
	PublicURL string
}
