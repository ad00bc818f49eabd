// Package types defines the Registry interface, entity types, and standard
// errors for the lost-and-found registry.
package types
