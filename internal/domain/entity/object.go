package entity

import "time"

// Object is a stored object fetched in full from the object store.
type Object struct {
	Key         string
	Data        []byte
	ContentType string
	// Size is the store-reported content length, zero when the store did not report one.
	Size int64
}

// ObjectInfo is a single listing entry as reported by the store. Fields the store
// left out stay nil.
type ObjectInfo struct {
	Key          string
	Size         *int64
	LastModified *time.Time
}

type ListedObject struct {
	Key          string
	Size         int64
	LastModified *time.Time
}
