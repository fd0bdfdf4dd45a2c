package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PointLog is one append-only ledger row. The id is assigned by the store in
// insertion order and is what ledger cursors point at.
type PointLog struct {
	ID       int64  `json:"id"`
	UserID   string `json:"userId"`
	PlaceID  string `json:"placeId"`
	ReviewID string `json:"reviewId"`
	PContent int    `json:"pContent"`
	PPhoto   int    `json:"pPhoto"`
	PFirst   int    `json:"pFirst"`
}

type LedgerStore struct {
	db *pgxpool.Pool
}

func (s *LedgerStore) CreateReview(ctx context.Context, review *Review, entry *PointLog) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := withTx(s.db, ctx, func(tx pgx.Tx) error {
		if err := insertReview(ctx, tx, review); err != nil {
			return err
		}
		return insertPointLog(ctx, tx, entry)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *LedgerStore) UpdateReviewFlags(ctx context.Context, review *Review, entry *PointLog) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return withTx(s.db, ctx, func(tx pgx.Tx) error {
		if err := updateReviewFlags(ctx, tx, review); err != nil {
			return err
		}
		return insertPointLog(ctx, tx, entry)
	})
}

func (s *LedgerStore) DeleteReview(ctx context.Context, reviewID string, entry *PointLog) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return withTx(s.db, ctx, func(tx pgx.Tx) error {
		if err := deleteReview(ctx, tx, reviewID); err != nil {
			return err
		}
		return insertPointLog(ctx, tx, entry)
	})
}

// UserEntries returns up to limit ledger rows for a user, newest first. A
// cursor of 0 starts at the newest row; otherwise the page starts strictly
// after the row the cursor identifies.
func (s *LedgerStore) UserEntries(ctx context.Context, userID string, limit int, cursor int64) ([]PointLog, error) {
	query := `
        SELECT id, user_id, place_id, review_id, p_content, p_photo, p_first
        FROM point_logs
        WHERE user_id = $1 AND ($2::bigint = 0 OR id < $2::bigint)
        ORDER BY id DESC
        LIMIT $3
    `
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, userID, cursor, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []PointLog
	for rows.Next() {
		var entry PointLog
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.PlaceID,
			&entry.ReviewID,
			&entry.PContent,
			&entry.PPhoto,
			&entry.PFirst,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *LedgerStore) UserTotal(ctx context.Context, userID string) (int64, error) {
	query := `
        SELECT COALESCE(SUM(p_content + p_photo + p_first), 0)
        FROM point_logs
        WHERE user_id = $1
    `
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var total int64
	err := s.db.QueryRow(ctx, query, userID).Scan(&total)
	return total, err
}

func insertPointLog(ctx context.Context, tx pgx.Tx, entry *PointLog) error {
	query := `
        INSERT INTO point_logs (user_id, place_id, review_id, p_content, p_photo, p_first)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	return tx.QueryRow(ctx, query,
		entry.UserID,
		entry.PlaceID,
		entry.ReviewID,
		entry.PContent,
		entry.PPhoto,
		entry.PFirst,
	).Scan(&entry.ID)
}
