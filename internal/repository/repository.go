package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type opKind int

const (
	opInsert opKind = iota
	opUpdate
	opDelete
)

// pendingChange is a staged mutation waiting for SaveChanges.
type pendingChange struct {
	kind   opKind
	entity any
}

// changeSet collects staged mutations from every repository bound to the
// same unit of work.
type changeSet struct {
	pending []pendingChange
}

func (c *changeSet) stage(kind opKind, entity any) {
	c.pending = append(c.pending, pendingChange{kind: kind, entity: entity})
}

// Repository provides generic CRUD over a single entity type. Reads hit
// the database directly; Add, Update and Delete only stage work — nothing
// is written until the owning unit of work commits.
type Repository[E any] struct {
	db      *gorm.DB
	changes *changeSet
}

func newRepository[E any](db *gorm.DB, changes *changeSet) Repository[E] {
	return Repository[E]{db: db, changes: changes}
}

// GetAll returns every entity of type E.
func (r *Repository[E]) GetAll(ctx context.Context) ([]E, error) {
	var entities []E
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// GetAllWhere returns every entity matching a gorm condition, e.g.
// GetAllWhere(ctx, "points >= ?", 100).
func (r *Repository[E]) GetAllWhere(ctx context.Context, cond string, args ...any) ([]E, error) {
	var entities []E
	if err := r.db.WithContext(ctx).Where(cond, args...).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// GetByID returns the entity with the given primary key, or nil if it
// does not exist.
func (r *Repository[E]) GetByID(ctx context.Context, id uint) (*E, error) {
	var entity E
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Find returns the first entity matching a gorm condition, or nil if none
// matches.
func (r *Repository[E]) Find(ctx context.Context, cond string, args ...any) (*E, error) {
	var entity E
	err := r.db.WithContext(ctx).Where(cond, args...).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Count returns the total number of rows for the entity type.
func (r *Repository[E]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(E)).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Add stages an insertion.
func (r *Repository[E]) Add(entity *E) {
	r.changes.stage(opInsert, entity)
}

// Update stages a full-row replace of an existing entity.
func (r *Repository[E]) Update(entity *E) {
	r.changes.stage(opUpdate, entity)
}

// Delete stages a removal.
func (r *Repository[E]) Delete(entity *E) {
	r.changes.stage(opDelete, entity)
}
