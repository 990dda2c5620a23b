//go:generate mockgen -source=document_store_interface.go -destination=mocks/document_store_interface_mock.go -package=mock_interfaces

package interfaces

import "context"

// Document is one stored record keyed by its field names.
type Document = map[string]any

// IDocumentStore is the persistence collaborator behind every repository.
//
// Get returns a nil Document and a nil error when the id does not exist.
// Update merges partial into an existing document and fails with a
// domain.NotFoundError when there is nothing to merge into. There is no
// version check, so the last write wins.
type IDocumentStore interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection string) ([]Document, error)
	Put(ctx context.Context, collection, id string, doc Document) error
	Update(ctx context.Context, collection, id string, partial Document) error
}
