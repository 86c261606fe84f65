// Package store persists graph documents for the HTTP server.
//
// Two backends implement the [Store] interface:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for production deployments
//
// Documents bundle the input collection with its derived relation graph and
// timeline so a stored run can be re-rendered without recomputing.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/ainkit/ainviz/pkg/errors"
	"github.com/ainkit/ainviz/pkg/graphio"
)

// Document is a stored pipeline run.
type Document struct {
	ID         string               `json:"id" bson:"_id"`
	Collection graphio.Collection   `json:"collection" bson:"collection"`
	Graph      *graphio.GraphDoc    `json:"graph,omitempty" bson:"graph,omitempty"`
	Timeline   *graphio.TimelineDoc `json:"timeline,omitempty" bson:"timeline,omitempty"`
	CreatedAt  time.Time            `json:"created_at" bson:"created_at"`
}

// NewDocument assigns a fresh ID and creation timestamp.
func NewDocument(col graphio.Collection, graph *graphio.GraphDoc, timeline *graphio.TimelineDoc) *Document {
	return &Document{
		ID:         uuid.NewString(),
		Collection: col,
		Graph:      graph,
		Timeline:   timeline,
		CreatedAt:  time.Now().UTC(),
	}
}

// Store is the interface for document storage backends.
type Store interface {
	// Insert stores a document under its ID.
	Insert(ctx context.Context, doc *Document) error

	// Get retrieves a document by ID.
	// Returns a NOT_FOUND error if no document exists.
	Get(ctx context.Context, id string) (*Document, error)

	// Delete removes a document. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

func notFound(id string) error {
	return apperrors.New(apperrors.ErrCodeNotFound, "document not found: %s", id)
}
