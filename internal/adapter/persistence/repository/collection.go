package repository

import (
	"context"
	"errors"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/usecase/interfaces"
)

// collection binds a document store to one collection name and wraps every
// store failure as a domain.PersistenceError.
type collection struct {
	store interfaces.IDocumentStore
	name  string
}

// get decodes the document into out; found is false when it does not exist.
func (c collection) get(ctx context.Context, id string, out any) (bool, error) {
	doc, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return false, domain.NewPersistenceError("get", c.name, err)
	}
	if doc == nil {
		return false, nil
	}
	if err := decodeDocument(doc, out); err != nil {
		return false, domain.NewPersistenceError("decode", c.name, err)
	}
	return true, nil
}

func (c collection) list(ctx context.Context) ([]interfaces.Document, error) {
	docs, err := c.store.List(ctx, c.name)
	if err != nil {
		return nil, domain.NewPersistenceError("list", c.name, err)
	}
	return docs, nil
}

func (c collection) put(ctx context.Context, id string, v any) error {
	doc, err := encodeDocument(v)
	if err != nil {
		return domain.NewPersistenceError("encode", c.name, err)
	}
	if err := c.store.Put(ctx, c.name, id, doc); err != nil {
		return domain.NewPersistenceError("put", c.name, err)
	}
	return nil
}

// update merges fields into the stored document. A missing document comes
// back as the store's NotFoundError, unwrapped.
func (c collection) update(ctx context.Context, id string, fields any) error {
	doc, err := encodeDocument(fields)
	if err != nil {
		return domain.NewPersistenceError("encode", c.name, err)
	}
	if err := c.store.Update(ctx, c.name, id, doc); err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return err
		}
		return domain.NewPersistenceError("update", c.name, err)
	}
	return nil
}

// listDecoded decodes every document of the collection and maps it with toEntity.
func listDecoded[T any, D any](ctx context.Context, c collection, toEntity func(D) T) ([]T, error) {
	docs, err := c.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var d D
		if err := decodeDocument(doc, &d); err != nil {
			return nil, domain.NewPersistenceError("decode", c.name, err)
		}
		out = append(out, toEntity(d))
	}
	return out, nil
}
