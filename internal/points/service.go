package points

import (
	"context"
	"errors"

	"placepoints/internal/store"
)

var ErrUnknownAction = errors.New("unknown event action")

// Service converts review lifecycle events into signed point deltas and
// serves the resulting ledger. Each mutation commits the review change and
// its ledger row as one storage transaction.
type Service struct {
	store store.Storage
}

func NewService(store store.Storage) *Service {
	return &Service{store: store}
}

// ProcessEvent applies one event and reports the action that was taken.
// Store errors surface unchanged: store.ErrNotFound for a MOD/DELETE on a
// missing review, store.ErrConflict for a duplicate ADD.
func (s *Service) ProcessEvent(ctx context.Context, event *Event) (Action, error) {
	switch event.Action {
	case ActionAdd:
		return event.Action, s.add(ctx, event)
	case ActionMod:
		return event.Action, s.mod(ctx, event)
	case ActionDelete:
		return event.Action, s.delete(ctx, event)
	default:
		return "", ErrUnknownAction
	}
}

func (s *Service) add(ctx context.Context, event *Event) error {
	entry := &store.PointLog{
		UserID:   event.UserID,
		PlaceID:  event.PlaceID,
		ReviewID: event.ReviewID,
	}

	// First review for the place earns the bonus point. Evaluated against the
	// live reviews at this moment; never re-assigned later.
	_, err := s.store.Reviews.FirstForPlace(ctx, event.PlaceID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		entry.PFirst = 1
	case err != nil:
		return err
	}

	if event.ContentValid() {
		entry.PContent = 1
	}
	if event.PhotosValid() {
		entry.PPhoto = 1
	}

	review := &store.Review{
		ID:         event.ReviewID,
		UserID:     event.UserID,
		PlaceID:    event.PlaceID,
		HasContent: event.ContentValid(),
		HasPhotos:  event.PhotosValid(),
	}
	return s.store.Ledger.CreateReview(ctx, review, entry)
}

func (s *Service) delete(ctx context.Context, event *Event) error {
	entry := &store.PointLog{
		UserID:   event.UserID,
		PlaceID:  event.PlaceID,
		ReviewID: event.ReviewID,
	}

	first, err := s.store.Reviews.FirstForPlace(ctx, event.PlaceID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	// The reversal reads the flags of the user's review at this place, looked
	// up by (place, user) rather than by review id.
	former, err := s.store.Reviews.GetByPlaceAndUser(ctx, event.PlaceID, event.UserID)
	if err != nil {
		return err
	}

	if former.HasContent {
		entry.PContent = -1
	}
	if former.HasPhotos {
		entry.PPhoto = -1
	}
	if first != nil && first.ID == event.ReviewID {
		entry.PFirst = -1
	}

	return s.store.Ledger.DeleteReview(ctx, event.ReviewID, entry)
}

func (s *Service) mod(ctx context.Context, event *Event) error {
	former, err := s.store.Reviews.GetByID(ctx, event.ReviewID)
	if err != nil {
		return err
	}

	entry := &store.PointLog{
		UserID:   event.UserID,
		PlaceID:  event.PlaceID,
		ReviewID: event.ReviewID,
	}

	newContent := event.ContentValid()
	newPhotos := event.PhotosValid()

	if former.HasContent && !newContent {
		entry.PContent = -1
	}
	if !former.HasContent && newContent {
		entry.PContent = 1
	}
	if former.HasPhotos && !newPhotos {
		entry.PPhoto = -1
	}
	if !former.HasPhotos && newPhotos {
		entry.PPhoto = 1
	}

	// An edit that changes neither presence flag mutates nothing and appends
	// nothing.
	if entry.PContent == 0 && entry.PPhoto == 0 && entry.PFirst == 0 {
		return nil
	}

	review := &store.Review{
		ID:         event.ReviewID,
		HasContent: newContent,
		HasPhotos:  newPhotos,
	}
	return s.store.Ledger.UpdateReviewFlags(ctx, review, entry)
}

// LedgerPage reads one page of a user's ledger, newest first, and optionally
// the sum over all of the user's entries. The page and the sum are separate
// queries; under concurrent writes they may reflect different snapshots.
func (s *Service) LedgerPage(ctx context.Context, q LedgerQuery) (*LedgerPage, error) {
	limit := q.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}

	logs, err := s.store.Ledger.UserEntries(ctx, q.UserID, limit, q.Cursor)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []store.PointLog{}
	}

	page := &LedgerPage{Logs: logs}
	if q.IncludeSum {
		total, err := s.store.Ledger.UserTotal(ctx, q.UserID)
		if err != nil {
			return nil, err
		}
		page.Total = &total
	}
	return page, nil
}
