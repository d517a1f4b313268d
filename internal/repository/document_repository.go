package repository

import (
	"context"
	"errors"

	"github.com/dreamydrift/journal-api/internal/domain"
	"gorm.io/gorm"
)

// StoredDocument is one opaque blob under a fixed storage key. The journal
// document and the API credential each occupy one row.
type StoredDocument struct {
	Key   string `gorm:"primaryKey;type:varchar(128)"`
	Value []byte `gorm:"not null"`
}

func (StoredDocument) TableName() string {
	return "documents"
}

// DocumentRepository reads and writes whole blobs by key. There is no
// partial update; callers persist complete documents.
type DocumentRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var doc StoredDocument
	err := r.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc.Value, nil
}

func (r *documentRepository) Put(ctx context.Context, key string, value []byte) error {
	doc := StoredDocument{Key: key, Value: value}
	return r.db.WithContext(ctx).Save(&doc).Error
}
