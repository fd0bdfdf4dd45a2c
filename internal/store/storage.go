package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Reviews interface {
		GetByID(ctx context.Context, reviewID string) (*Review, error)
		GetByPlaceAndUser(ctx context.Context, placeID, userID string) (*Review, error)
		FirstForPlace(ctx context.Context, placeID string) (*Review, error)
	}
	Ledger interface {
		// Each write commits the review mutation and the ledger row in one
		// transaction. A partial write is never visible.
		CreateReview(ctx context.Context, review *Review, entry *PointLog) error
		UpdateReviewFlags(ctx context.Context, review *Review, entry *PointLog) error
		DeleteReview(ctx context.Context, reviewID string, entry *PointLog) error

		UserEntries(ctx context.Context, userID string, limit int, cursor int64) ([]PointLog, error)
		UserTotal(ctx context.Context, userID string) (int64, error)
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Reviews: &ReviewsStore{db},
		Ledger:  &LedgerStore{db},
	}
}
