package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Review struct {
	ID         string    `json:"review_id"`
	UserID     string    `json:"user_id"`
	PlaceID    string    `json:"place_id"`
	HasContent bool      `json:"has_content"`
	HasPhotos  bool      `json:"has_photos"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewsStore struct {
	db *pgxpool.Pool
}

func (s *ReviewsStore) GetByID(ctx context.Context, reviewID string) (*Review, error) {
	query := `
        SELECT review_id, user_id, place_id, has_content, has_photos, created_at
        FROM reviews
        WHERE review_id = $1
    `
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var review Review
	err := s.db.QueryRow(ctx, query, reviewID).Scan(
		&review.ID,
		&review.UserID,
		&review.PlaceID,
		&review.HasContent,
		&review.HasPhotos,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (s *ReviewsStore) GetByPlaceAndUser(ctx context.Context, placeID, userID string) (*Review, error) {
	query := `
        SELECT review_id, user_id, place_id, has_content, has_photos, created_at
        FROM reviews
        WHERE place_id = $1 AND user_id = $2
        ORDER BY created_at ASC, seq ASC
        LIMIT 1
    `
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var review Review
	err := s.db.QueryRow(ctx, query, placeID, userID).Scan(
		&review.ID,
		&review.UserID,
		&review.PlaceID,
		&review.HasContent,
		&review.HasPhotos,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FirstForPlace returns the earliest live review for a place. The seq column
// makes the ordering total when two reviews share a created_at timestamp.
func (s *ReviewsStore) FirstForPlace(ctx context.Context, placeID string) (*Review, error) {
	query := `
        SELECT review_id, user_id, place_id, has_content, has_photos, created_at
        FROM reviews
        WHERE place_id = $1
        ORDER BY created_at ASC, seq ASC
        LIMIT 1
    `
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var review Review
	err := s.db.QueryRow(ctx, query, placeID).Scan(
		&review.ID,
		&review.UserID,
		&review.PlaceID,
		&review.HasContent,
		&review.HasPhotos,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func insertReview(ctx context.Context, tx pgx.Tx, review *Review) error {
	query := `
        INSERT INTO reviews (review_id, user_id, place_id, has_content, has_photos)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at
    `
	return tx.QueryRow(ctx, query,
		review.ID,
		review.UserID,
		review.PlaceID,
		review.HasContent,
		review.HasPhotos,
	).Scan(&review.CreatedAt)
}

func updateReviewFlags(ctx context.Context, tx pgx.Tx, review *Review) error {
	query := `
        UPDATE reviews
        SET has_content = $2, has_photos = $3
        WHERE review_id = $1
    `
	tag, err := tx.Exec(ctx, query, review.ID, review.HasContent, review.HasPhotos)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteReview(ctx context.Context, tx pgx.Tx, reviewID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM reviews WHERE review_id = $1`, reviewID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
