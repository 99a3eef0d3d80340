// Package files exposes the storage contract over HTTP.
//
// Every endpoint is a thin translation onto a backend.Storage: upload maps
// to Save, download to Open, and so on. The feature never talks to the
// object-store client directly, so it works against any registered backend.
//
// # HTTP Endpoints
//
//   - POST   /files            : multipart upload (fields: file, optional name)
//   - GET    /files            : list objects (?prefix= filter)
//   - GET    /files/blob/{name}: download object content
//   - HEAD   /files/blob/{name}: existence check
//   - DELETE /files/blob/{name}: delete object
//   - GET    /files/stat/{name}: size and metadata
//   - GET    /files/url/{name} : public or presigned URL (?signed=true&expiry=1h)
//
// Object names may contain slashes; the blob/stat/url routes use a wildcard
// segment so nested names pass through unescaped.
//
// # Object Index
//
// When a database is connected, uploads and deletes maintain an index table
// (one row per object) that serves listings and enriches stat responses.
// The bucket stays the source of truth: index failures are logged and the
// operation still succeeds.
package files
