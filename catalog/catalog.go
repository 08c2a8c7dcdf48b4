// Package catalog defines the domain models and interfaces for lesson discovery.
package catalog

// Catalog defines the required capabilities for a lesson catalog backend.
type Catalog interface {
	// Name returns the unique identifier for the catalog backend.
	Name() string

	// ID returns the unique identifier of the catalog.
	ID() string

	// Lessons retrieves the complete list of lessons provided by the catalog.
	Lessons() ([]*Lesson, error)
}
