package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/usecase/interfaces"
)

// documentRecord is one row of the documents table. Body holds the JSON
// document exactly as the repositories wrote it.
type documentRecord struct {
	Collection string `gorm:"primaryKey;size:64"`
	ID         string `gorm:"primaryKey;size:128"`
	Body       string `gorm:"type:text;not null"`
	UpdatedAt  time.Time
}

func (documentRecord) TableName() string { return "documents" }

// SQLStore keeps all collections in one table through gorm.
// It runs on sqlite locally and in tests, and on postgres when hosted.
type SQLStore struct {
	db      *gorm.DB
	timeout time.Duration
}

var _ interfaces.IDocumentStore = (*SQLStore)(nil)

func NewSQLStore(db *gorm.DB, timeout time.Duration) *SQLStore {
	return &SQLStore{db: db, timeout: timeout}
}

// Migrate creates the documents table when it does not exist.
func (s *SQLStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&documentRecord{})
}

func decodeBody(body, id string) (interfaces.Document, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	dec.UseNumber()
	var doc interfaces.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = interfaces.Document{}
	}
	return withID(doc, id), nil
}

func (s *SQLStore) Get(ctx context.Context, collection, id string) (interfaces.Document, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var rec documentRecord
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeBody(rec.Body, rec.ID)
}

func (s *SQLStore) List(ctx context.Context, collection string) ([]interfaces.Document, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var recs []documentRecord
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("id").
		Find(&recs).Error; err != nil {
		return nil, err
	}

	docs := make([]interfaces.Document, 0, len(recs))
	for _, rec := range recs {
		doc, err := decodeBody(rec.Body, rec.ID)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *SQLStore) Put(ctx context.Context, collection, id string, doc interfaces.Document) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	body, err := json.Marshal(merge(doc, interfaces.Document{idField: id}))
	if err != nil {
		return err
	}
	rec := documentRecord{Collection: collection, ID: id, Body: string(body)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
}

func (s *SQLStore) Update(ctx context.Context, collection, id string, partial interfaces.Document) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where("collection = ? AND id = ?", collection, id)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var rec documentRecord
		err := q.First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError(collection, id)
		}
		if err != nil {
			return err
		}

		current, err := decodeBody(rec.Body, rec.ID)
		if err != nil {
			return err
		}
		body, err := json.Marshal(merge(current, partial))
		if err != nil {
			return err
		}
		return tx.Model(&documentRecord{}).
			Where("collection = ? AND id = ?", collection, id).
			Updates(map[string]any{"body": string(body), "updated_at": time.Now().UTC()}).Error
	})
}
