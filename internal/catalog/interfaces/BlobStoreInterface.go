package interfaces

// BlobStoreInterface is the key-value persistence port the catalog service
// writes through. Load reports (false, nil) for a missing blob.
type BlobStoreInterface interface {
	SaveBlob(key string, v any) error
	LoadBlob(key string, out any) (bool, error)
}
