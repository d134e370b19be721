package service

import (
	"context"
	"net/http"
	"time"

	"beltdash/backend/internal/models"
	"beltdash/backend/internal/repository"

	"gorm.io/gorm"
)

// MaxPageSize caps how many scores one page may carry.
const MaxPageSize = 50

// ScoreQuery holds the pagination and sorting parameters for score listings.
type ScoreQuery struct {
	PageNumber int
	PageSize   int
	SortBy     string
	Ascending  bool
}

// normalize clamps the query to sane defaults: 1-based pages, page size
// between 1 and MaxPageSize.
func (q ScoreQuery) normalize() ScoreQuery {
	if q.PageNumber < 1 {
		q.PageNumber = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// ScoreResponse is the outward projection of a score.
type ScoreResponse struct {
	ID        uint      `json:"id" example:"1"`
	UserID    uint      `json:"userId" example:"1"`
	Username  string    `json:"username" example:"player_one"`
	Points    int       `json:"points" example:"150"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaginatedScores is a page of scores plus paging metadata.
type PaginatedScores struct {
	Scores      []ScoreResponse `json:"scores"`
	TotalCount  int64           `json:"totalCount" example:"25"`
	PageSize    int             `json:"pageSize" example:"10"`
	CurrentPage int             `json:"currentPage" example:"1"`
	TotalPages  int             `json:"totalPages" example:"3"`
	HasPrevious bool            `json:"hasPrevious"`
	HasNext     bool            `json:"hasNext"`
}

func newScoreResponse(score *models.Score, username string) ScoreResponse {
	return ScoreResponse{
		ID:        score.ID,
		UserID:    score.UserID,
		Username:  username,
		Points:    score.Points,
		CreatedAt: score.CreatedAt,
	}
}

// ScoreService implements score submission and listing.
type ScoreService struct {
	db *gorm.DB
}

// NewScoreService creates a ScoreService.
func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{db: db}
}

// CreateScore records a new score for an existing user.
func (s *ScoreService) CreateScore(ctx context.Context, userID uint, points int) Response[*ScoreResponse] {
	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	user, err := uow.Users.GetByID(ctx, userID)
	if err != nil {
		return ServerError[*ScoreResponse]("scores: create lookup user", err)
	}
	if user == nil {
		return Error[*ScoreResponse]("User not found.", http.StatusNotFound)
	}

	score := models.Score{UserID: userID, Points: points}
	uow.Scores.Add(&score)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return ServerError[*ScoreResponse]("scores: create save", err)
	}

	// Re-fetch so the projection carries server-assigned fields.
	created, err := uow.Scores.GetByID(ctx, score.ID)
	if err != nil {
		return ServerError[*ScoreResponse]("scores: create refetch", err)
	}
	if created == nil {
		return Error[*ScoreResponse]("Error creating score.", http.StatusInternalServerError)
	}

	response := newScoreResponse(created, user.Username)
	return Created(&response)
}

// GetPaginatedScores returns one page of the global score listing together
// with paging metadata derived from an unpaged count.
func (s *ScoreService) GetPaginatedScores(ctx context.Context, query ScoreQuery) Response[*PaginatedScores] {
	query = query.normalize()

	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	scores, err := uow.Scores.GetPaginatedScores(ctx, query.PageNumber, query.PageSize, query.SortBy, query.Ascending)
	if err != nil {
		return ServerError[*PaginatedScores]("scores: paginate", err)
	}

	totalCount, err := uow.Scores.Count(ctx)
	if err != nil {
		return ServerError[*PaginatedScores]("scores: count", err)
	}

	items := make([]ScoreResponse, len(scores))
	for i := range scores {
		username := ""
		if scores[i].User != nil {
			username = scores[i].User.Username
		}
		items[i] = newScoreResponse(&scores[i], username)
	}

	totalPages := int((totalCount + int64(query.PageSize) - 1) / int64(query.PageSize))

	return Ok(&PaginatedScores{
		Scores:      items,
		TotalCount:  totalCount,
		PageSize:    query.PageSize,
		CurrentPage: query.PageNumber,
		TotalPages:  totalPages,
		HasPrevious: query.PageNumber > 1,
		HasNext:     query.PageNumber < totalPages,
	})
}

// GetScoresByUserID returns all scores of one user, highest first.
func (s *ScoreService) GetScoresByUserID(ctx context.Context, userID uint) Response[[]ScoreResponse] {
	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	user, err := uow.Users.GetByID(ctx, userID)
	if err != nil {
		return ServerError[[]ScoreResponse]("scores: by user lookup", err)
	}
	if user == nil {
		return Error[[]ScoreResponse]("User not found.", http.StatusNotFound)
	}

	scores, err := uow.Scores.GetScoresByUserID(ctx, userID)
	if err != nil {
		return ServerError[[]ScoreResponse]("scores: by user list", err)
	}

	items := make([]ScoreResponse, len(scores))
	for i := range scores {
		items[i] = newScoreResponse(&scores[i], user.Username)
	}
	return Ok(items)
}

// GetTopScores returns the global leaderboard: the count highest scores
// with their owners' usernames.
func (s *ScoreService) GetTopScores(ctx context.Context, count int) Response[[]ScoreResponse] {
	if count < 1 {
		count = 10
	}
	if count > MaxPageSize {
		count = MaxPageSize
	}

	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	scores, err := uow.Scores.GetTopScores(ctx, count)
	if err != nil {
		return ServerError[[]ScoreResponse]("scores: top", err)
	}

	items := make([]ScoreResponse, len(scores))
	for i := range scores {
		username := ""
		if scores[i].User != nil {
			username = scores[i].User.Username
		}
		items[i] = newScoreResponse(&scores[i], username)
	}
	return Ok(items)
}
