package store

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"gorm.io/gorm"
)

// materialRecord is the persisted shape of a material. The appearance asset
// tree is stored as a JSON document to stay schema-stable while the variant
// model evolves.
type materialRecord struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:255;uniqueIndex"`
	DocumentID string `gorm:"size:64;index"`
	Appearance string `gorm:"type:longtext"`
}

// TableName sets the materials table name.
func (materialRecord) TableName() string {
	return "materials"
}

// DBStore is the database-backed Store implementation used when no live CAD
// session hosts the material library. It also implements Transactor over the
// underlying database transaction.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a store over the given database handle.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// AutoMigrate creates or updates the materials table.
func (s *DBStore) AutoMigrate() error {
	return s.db.AutoMigrate(&materialRecord{})
}

// Find returns all materials whose name matches the anchored pattern.
// Filtering happens in Go to stay dialect agnostic; the materials table is
// small (one row per template or derived record).
func (s *DBStore) Find(ctx context.Context, namePattern string) ([]*Material, error) {
	re, err := regexp.Compile("^" + namePattern + "$")
	if err != nil {
		return nil, fmt.Errorf("invalid name pattern %q: %w", namePattern, err)
	}

	var records []materialRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	var out []*Material
	for _, rec := range records {
		if !re.MatchString(rec.Name) {
			continue
		}
		m, err := recordToMaterial(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Create duplicates the template under the desired name with the edits
// applied to its bump texture asset.
func (s *DBStore) Create(ctx context.Context, template *Material, name string, edits []Property) (*Material, error) {
	m := template.Clone()
	m.Name = name
	ApplyEdits(m, edits)

	appearance, err := json.Marshal(m.Appearance)
	if err != nil {
		return nil, fmt.Errorf("failed to encode appearance for %q: %w", name, err)
	}

	rec := materialRecord{
		Name:       name,
		DocumentID: m.DocumentID,
		Appearance: string(appearance),
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create material %q: %w", name, err)
	}

	m.ID = strconv.FormatUint(uint64(rec.ID), 10)
	return m, nil
}

// Delete removes the referenced material. Deleting a material that does not
// exist returns ErrNotFound.
func (s *DBStore) Delete(ctx context.Context, ref MaterialRef) error {
	id, err := strconv.ParseUint(ref.ID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid material id %q: %w", ref.ID, err)
	}

	res := s.db.WithContext(ctx).Delete(&materialRecord{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete material %q: %w", ref.Name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, ref.Name)
	}
	return nil
}

// Run executes fn inside one database transaction, handing it a store bound
// to the transactional handle. The transaction commits when fn returns nil.
func (s *DBStore) Run(ctx context.Context, name string, fn func(tx Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DBStore{db: tx})
	})
	if err != nil {
		return fmt.Errorf("transaction %q failed: %w", name, err)
	}
	return nil
}

func recordToMaterial(rec materialRecord) (*Material, error) {
	m := &Material{
		ID:         strconv.FormatUint(uint64(rec.ID), 10),
		Name:       rec.Name,
		DocumentID: rec.DocumentID,
	}
	if rec.Appearance != "" && rec.Appearance != "null" {
		var appearance Asset
		if err := json.Unmarshal([]byte(rec.Appearance), &appearance); err != nil {
			return nil, fmt.Errorf("corrupt appearance for material %q: %w", rec.Name, err)
		}
		m.Appearance = &appearance
	}
	return m, nil
}
