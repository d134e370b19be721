package repository

import (
	"context"
	"time"

	"beltdash/backend/internal/models"

	"gorm.io/gorm"
)

// UnitOfWork binds one UserRepository, one RoleRepository and one
// ScoreRepository to a single persistence session. Mutations staged
// through any of them become durable only when SaveChanges commits them
// in one transaction.
//
// A UnitOfWork belongs to exactly one request: create it at the start,
// defer Close, and never share it.
type UnitOfWork struct {
	db      *gorm.DB
	changes *changeSet

	Users  *UserRepository
	Roles  *RoleRepository
	Scores *ScoreRepository
}

// NewUnitOfWork creates a unit of work bound to db.
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	changes := &changeSet{}
	return &UnitOfWork{
		db:      db,
		changes: changes,
		Users:   newUserRepository(db, changes),
		Roles:   newRoleRepository(db, changes),
		Scores:  newScoreRepository(db, changes),
	}
}

// SaveChanges commits every staged add, update and delete in a single
// transaction and returns the number of affected rows. Entities being
// inserted get both audit timestamps; entities being updated get a fresh
// UpdatedAt. If the transaction fails nothing staged here is durable.
func (u *UnitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	if len(u.changes.pending) == 0 {
		return 0, nil
	}

	var affected int64
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, change := range u.changes.pending {
			if auditable, ok := change.entity.(models.Auditable); ok {
				switch change.kind {
				case opInsert:
					auditable.StampCreated(now)
				case opUpdate:
					auditable.StampUpdated(now)
				}
			}

			var res *gorm.DB
			switch change.kind {
			case opInsert:
				res = tx.Create(change.entity)
			case opUpdate:
				res = tx.Save(change.entity)
			case opDelete:
				res = tx.Delete(change.entity)
			}
			if res.Error != nil {
				return res.Error
			}
			affected += res.RowsAffected
		}
		return nil
	})

	u.changes.pending = nil
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// Close discards any staged work that was never committed. It is safe to
// call on every exit path, including after a successful SaveChanges.
func (u *UnitOfWork) Close() {
	u.changes.pending = nil
}
