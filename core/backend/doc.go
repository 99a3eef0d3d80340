// Package backend defines the storage contract the rest of the application
// is written against, and the registry that dispatches to concrete backends.
//
// # Storage Interface
//
// The Storage interface covers the full object lifecycle: Open, Save,
// Delete, Exists, URL, SignedURL, Size and List. Handlers and services only
// depend on this interface, never on a concrete client, which keeps them
// testable and keeps backend choice a configuration concern.
//
// # Registry
//
// Concrete backends register a Constructor under a fixed name from init():
//
//	func init() {
//	    backend.Register("minio", New)
//	}
//
// The application then opens a backend by name:
//
//	store, err := backend.Open("minio", backend.Options{
//	    "bucket_name": "assets",
//	    "endpoint":    "s3.example.com",
//	    ...
//	})
//
// # Errors
//
// ErrNotFound and ErrInvalidConfig are sentinel errors backends translate
// into, so callers can branch with errors.Is regardless of the backend.
package backend
