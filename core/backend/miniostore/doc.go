// Package miniostore implements the backend.Storage contract on top of a
// MinIO (or any S3-compatible) object store.
//
// The package registers itself under the fixed name "minio", so importing it
// for side effects is enough to make the backend available through the
// registry:
//
//	import _ "minio-storage/core/backend/miniostore"
//
//	store, err := backend.Open("minio", opts)
//
// Construction is a pure mapping from the five connection settings (bucket
// name, endpoint, access key, secret key, secure flag) to a configured
// client; building two stores from the same settings yields identical
// behavior. All operational semantics beyond that mapping (retries,
// connection pooling, multipart uploads) belong to the wrapped client.
package miniostore
