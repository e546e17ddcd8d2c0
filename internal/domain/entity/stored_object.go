package entity

// StoredObject describes an image written to object storage.
type StoredObject struct {
	Bucket      string
	Object      string
	ContentType string
	Size        int64
}
