// Package utils provides common utility functions shared across the gateway.
// Its loose type conversions are mainly used when reading values out of
// untyped backend option maps.
package utils
