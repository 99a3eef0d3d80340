package storage

import (
	"errors"
	"net/url"
	"strings"
)

// Config holds the connection settings for the object store.
type Config struct {
	// BucketName is the bucket all objects are stored in.
	BucketName string `mapstructure:"bucket_name" default:""`
	// Endpoint is the host:port of the storage service.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// Secure indicates whether to use TLS for connections.
	Secure bool `mapstructure:"secure" default:"false"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// ErrIncompleteConfig is returned when one of the required connection
// settings is missing.
var ErrIncompleteConfig = errors.New("storage: endpoint, access_key, secret_key and bucket_name are required")

// NormalizeEndpoint strips the URL scheme and trailing slashes from an
// endpoint so it can be handed to the Minio client, which expects a bare
// host:port.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		if parsed, err := url.Parse(endpoint); err == nil {
			return strings.TrimRight(parsed.Host, "/")
		}
	}
	return strings.TrimRight(endpoint, "/")
}

// Validate normalizes the endpoint and checks that all required fields are
// set. It must pass before a client is constructed.
func (c *Config) Validate() error {
	c.Endpoint = NormalizeEndpoint(c.Endpoint)
	if c.Endpoint == "" || c.AccessKey == "" || c.SecretKey == "" || c.BucketName == "" {
		return ErrIncompleteConfig
	}
	return nil
}

// BaseURL returns the public root URL of the storage service, derived from
// the endpoint and the secure flag.
func (c Config) BaseURL() string {
	scheme := "http"
	if c.Secure {
		scheme = "https"
	}
	return scheme + "://" + NormalizeEndpoint(c.Endpoint)
}
