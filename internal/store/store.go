// Package store is the tenant-scoped access layer over the shared relational
// store. Every read and every mutation filters on the usuario_id column, and
// all caller-supplied values travel as bound parameters.
package store

import "gorm.io/gorm"

const tenantColumn = "usuario_id"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for callers that need model-specific
// queries (login lookup, audit listing).
func (s *Store) DB() *gorm.DB {
	return s.db
}

// List loads all rows of dest's table belonging to tenantID. An absent
// tenant simply yields an empty slice.
func (s *Store) List(tenantID uint, dest interface{}) error {
	return s.db.Where(tenantColumn+" = ?", tenantID).Find(dest).Error
}

// Append inserts the row as-is. The row must already carry its tenant id.
func (s *Store) Append(row interface{}) error {
	return s.db.Create(row).Error
}

// CountDistinct counts distinct values of column among the tenant's rows in
// model's table.
func (s *Store) CountDistinct(model interface{}, column string, tenantID uint) (int64, error) {
	var count int64
	err := s.db.Model(model).
		Where(tenantColumn+" = ?", tenantID).
		Distinct(column).
		Count(&count).Error
	return count, err
}

// Update applies fields to the rows of model's table matching both the key
// and the tenant, inside a transaction so the filtered mutation is atomic
// with respect to concurrent writers. Zero affected rows is not an error.
// keyColumn is always a code-supplied column name, never caller input.
func (s *Store) Update(model interface{}, keyColumn string, keyValue interface{}, tenantID uint, fields map[string]interface{}) (int64, error) {
	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(model).
			Where(keyColumn+" = ? AND "+tenantColumn+" = ?", keyValue, tenantID).
			Updates(fields)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

// Delete removes the rows matching both the key and the tenant. Same
// transaction and no-op semantics as Update.
func (s *Store) Delete(model interface{}, keyColumn string, keyValue interface{}, tenantID uint) (int64, error) {
	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where(keyColumn+" = ? AND "+tenantColumn+" = ?", keyValue, tenantID).
			Delete(model)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
