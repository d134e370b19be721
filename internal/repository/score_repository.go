package repository

import (
	"context"
	"strings"

	"beltdash/backend/internal/models"

	"gorm.io/gorm"
)

// scoreSortColumns enumerates the sort keys accepted by
// GetPaginatedScores and the columns they map to. The sort key arrives
// from an external query parameter, so anything outside this table falls
// back to the default ordering instead of reaching the database.
var scoreSortColumns = map[string]string{
	"id":        "id",
	"points":    "points",
	"userid":    "user_id",
	"createdat": "created_at",
	"updatedat": "updated_at",
}

const defaultScoreOrder = "points DESC"

// resolveScoreOrder maps a caller-supplied sort key and direction to an
// ORDER BY clause, defaulting to points descending for empty or unknown
// keys.
func resolveScoreOrder(sortBy string, ascending bool) string {
	column, ok := scoreSortColumns[strings.ToLower(sortBy)]
	if !ok {
		return defaultScoreOrder
	}
	if ascending {
		return column + " ASC"
	}
	return column + " DESC"
}

// ScoreRepository adds score-specific queries on top of the generic CRUD set.
type ScoreRepository struct {
	Repository[models.Score]
}

func newScoreRepository(db *gorm.DB, changes *changeSet) *ScoreRepository {
	return &ScoreRepository{Repository: newRepository[models.Score](db, changes)}
}

// GetScoresByUserID returns every score of one user, highest first.
func (r *ScoreRepository) GetScoresByUserID(ctx context.Context, userID uint) ([]models.Score, error) {
	var scores []models.Score
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("points DESC").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// GetTopScores returns the count highest scores globally, with the owning
// user eager-loaded.
func (r *ScoreRepository) GetTopScores(ctx context.Context, count int) ([]models.Score, error) {
	var scores []models.Score
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("points DESC").
		Limit(count).
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// GetPaginatedScores returns one page of scores with the owning user
// eager-loaded. Page numbers are 1-based; sortBy is resolved against the
// accepted sort-key table.
func (r *ScoreRepository) GetPaginatedScores(ctx context.Context, pageNumber, pageSize int, sortBy string, ascending bool) ([]models.Score, error) {
	var scores []models.Score
	err := r.db.WithContext(ctx).
		Preload("User").
		Order(resolveScoreOrder(sortBy, ascending)).
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}
