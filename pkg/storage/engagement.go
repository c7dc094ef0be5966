package storage

import (
	"context"
	"discovery/pkg/domain"
	"time"
)

// EngagementStorage stores saves, follows and interactions.
type EngagementStorage interface {
	// StoreSave inserts a save. Saving the same listing into the same list
	// twice is a no-op that returns the existing record.
	StoreSave(ctx context.Context, save domain.Save) (*domain.Save, error)
	// DeleteSave removes a save and reports whether it existed.
	DeleteSave(ctx context.Context, userID domain.UserID, ref domain.ItemRef, list string) (bool, error)
	// UserSaves returns the saves of a user created at or after since, newest first.
	UserSaves(ctx context.Context, userID domain.UserID, since time.Time) ([]domain.Save, error)
	// StoreFollow records a follow; following twice is a no-op.
	StoreFollow(ctx context.Context, follow domain.Follow) error
	// DeleteFollow removes a follow and reports whether it existed.
	DeleteFollow(ctx context.Context, followerID, curatorID domain.UserID) (bool, error)
	// FollowedCurators returns the curators a user follows.
	FollowedCurators(ctx context.Context, userID domain.UserID) ([]domain.UserID, error)
	// SavesByFollowed counts, per listing, the saves made by curators the user follows.
	SavesByFollowed(ctx context.Context, userID domain.UserID) (map[domain.ItemRef]int, error)
	// StoreInteractions inserts interactions.
	StoreInteractions(ctx context.Context, interactions ...domain.Interaction) error
	// UserInteractions returns the interactions of a user at or after since, newest first.
	UserInteractions(ctx context.Context, userID domain.UserID, since time.Time) ([]domain.Interaction, error)
	// ActiveUsers returns users that saved or interacted at or after since.
	ActiveUsers(ctx context.Context, since time.Time, limit uint) ([]domain.UserID, error)
}
