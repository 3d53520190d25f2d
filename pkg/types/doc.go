// Package types defines the interfaces shared across pathmaster packages.
package types
