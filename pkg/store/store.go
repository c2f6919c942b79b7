// Package store persists saved arrow documents: a named options set
// together with its rendered SVG. Two backends are provided:
//   - file: JSON files in a directory, for CLI and single-instance use
//   - mongo: MongoDB collection, for multi-instance server deployments
package store

import (
	"context"
	"strings"
	"time"

	"github.com/helgeesch/captain-arro/pkg/errors"
	"github.com/helgeesch/captain-arro/pkg/pipeline"
)

// Record is one saved arrow document.
type Record struct {
	ID        string           `json:"id" bson:"_id"`
	Name      string           `json:"name" bson:"name"`
	Options   pipeline.Options `json:"options" bson:"options"`
	SVG       []byte           `json:"svg" bson:"svg"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" bson:"updated_at"`
}

// Validate checks the fields a caller must supply before saving. Names
// become filenames in the file backend, so the shared name rules apply.
func (r *Record) Validate() error {
	return errors.ValidateName(strings.TrimSpace(r.Name))
}

// Store is the interface for saved-arrow backends.
type Store interface {
	// Put inserts or updates a record by ID.
	Put(ctx context.Context, rec *Record) error

	// Get retrieves a record by ID. A missing record returns an
	// ARROW_NOT_FOUND error.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record. Deleting a missing record returns an
	// ARROW_NOT_FOUND error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
