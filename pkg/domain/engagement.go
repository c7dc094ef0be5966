package domain

import "time"

// DefaultList is the list a save lands in when none is given.
const DefaultList = "saved"

// Save records that a user bookmarked a listing into one of their lists.
type Save struct {
	UserID    UserID    `json:"userId"`
	Ref       ItemRef   `json:"ref"`
	List      string    `json:"list"`
	CreatedAt time.Time `json:"createdAt"`
}

// Follow records that FollowerID follows the curator CuratorID.
type Follow struct {
	FollowerID UserID    `json:"followerId"`
	CuratorID  UserID    `json:"curatorId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Action is a lightweight engagement captured from the client.
type Action string

const (
	// ActionView is recorded when a listing detail is opened.
	ActionView Action = "view"
	// ActionClick is recorded on outbound clicks (tickets, directions, website).
	ActionClick Action = "click"
	// ActionShare is recorded when a listing is shared.
	ActionShare Action = "share"
	// ActionDismiss is recorded when a user hides a listing from their suggestions.
	ActionDismiss Action = "dismiss"
	// ActionSave is not stored as an interaction; saves have their own table.
	// It only appears in Signal values.
	ActionSave Action = "save"
)

// Valid reports whether a is an action clients may record.
func (a Action) Valid() bool {
	switch a {
	case ActionView, ActionClick, ActionShare, ActionDismiss:
		return true
	default:
		return false
	}
}

// Interaction is a recorded Action on a listing.
type Interaction struct {
	UserID     UserID    `json:"userId"`
	Ref        ItemRef   `json:"ref"`
	Action     Action    `json:"action"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Signal is a save or interaction joined with the features of the listing it
// refers to. Signals are the input of the taste vector.
type Signal struct {
	Action     Action
	OccurredAt time.Time
	Item       Item
}
