package storage_test

import (
	"testing"

	"minio-storage/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{"Bare", "localhost:9000", "localhost:9000"},
		{"HTTPScheme", "http://localhost:9000", "localhost:9000"},
		{"HTTPSScheme", "https://s3.example.com", "s3.example.com"},
		{"TrailingSlash", "s3.example.com/", "s3.example.com"},
		{"SchemeAndSlash", "https://s3.example.com/", "s3.example.com"},
		{"Whitespace", "  localhost:9000  ", "localhost:9000"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.NormalizeEndpoint(tt.endpoint))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := storage.Config{
		BucketName: "assets",
		Endpoint:   "https://s3.example.com",
		AccessKey:  "key",
		SecretKey:  "secret",
	}

	t.Run("Valid", func(t *testing.T) {
		cfg := valid
		err := cfg.Validate()
		assert.NoError(t, err)
		// Validation normalizes in place
		assert.Equal(t, "s3.example.com", cfg.Endpoint)
	})

	t.Run("MissingFields", func(t *testing.T) {
		for _, strip := range []func(*storage.Config){
			func(c *storage.Config) { c.BucketName = "" },
			func(c *storage.Config) { c.Endpoint = "" },
			func(c *storage.Config) { c.AccessKey = "" },
			func(c *storage.Config) { c.SecretKey = "" },
		} {
			cfg := valid
			strip(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, storage.ErrIncompleteConfig)
		}
	})

	t.Run("EndpointOnlyScheme", func(t *testing.T) {
		cfg := valid
		cfg.Endpoint = "https://"
		err := cfg.Validate()
		assert.ErrorIs(t, err, storage.ErrIncompleteConfig)
	})
}

func TestConfig_BaseURL(t *testing.T) {
	t.Run("Insecure", func(t *testing.T) {
		cfg := storage.Config{Endpoint: "localhost:9000", Secure: false}
		assert.Equal(t, "http://localhost:9000", cfg.BaseURL())
	})

	t.Run("Secure", func(t *testing.T) {
		cfg := storage.Config{Endpoint: "https://s3.example.com", Secure: true}
		assert.Equal(t, "https://s3.example.com", cfg.BaseURL())
	})
}
