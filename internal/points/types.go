package points

import "placepoints/internal/store"

// DefaultPageSize is how many ledger rows a page holds when the caller does
// not ask for a specific limit.
const DefaultPageSize = 30

type Action string

const (
	ActionAdd    Action = "ADD"
	ActionMod    Action = "MOD"
	ActionDelete Action = "DELETE"
)

// Event describes one review lifecycle change. Content and photos travel only
// as presence signals; the review body itself is stored elsewhere.
type Event struct {
	Type             string
	Action           Action
	ReviewID         string
	Content          string
	AttachedPhotoIDs []string
	UserID           string
	PlaceID          string
}

func (e *Event) ContentValid() bool {
	return len(e.Content) > 0
}

func (e *Event) PhotosValid() bool {
	return len(e.AttachedPhotoIDs) > 0
}

type LedgerQuery struct {
	UserID     string
	Limit      int
	Cursor     int64 // 0 means start from the newest entry
	IncludeSum bool
}

type LedgerPage struct {
	Logs  []store.PointLog `json:"logs"`
	Total *int64           `json:"total,omitempty"`
}
