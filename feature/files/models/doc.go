// Package models defines the database schema of the optional object index
// maintained by the files feature.
package models
