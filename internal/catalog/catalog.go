package catalog

import (
	"context"
	"discovery/internal/suggestions"
	"discovery/pkg/domain"
	"discovery/pkg/logger"
	"discovery/pkg/serrors"
	"discovery/pkg/storage"
	"discovery/pkg/validation"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// service is the concrete implementation of the Service interface. It
// validates input, persists it and nudges the suggestion pipeline.
type service struct {
	storage   storage.Storage
	suggester suggestions.Suggester
}

func (s *service) CreateEvent(ctx context.Context, curatorID domain.UserID, in EventInput) (*domain.Event, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	event := domain.Event{
		CuratorID:   curatorID,
		PlaceID:     in.PlaceID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Category:    normalizeCategory(in.Category),
		Tags:        normalizeTags(in.Tags),
		VenueName:   strings.TrimSpace(in.VenueName),
		Location:    in.Location,
		PriceLevel:  in.PriceLevel,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
	}

	var stored *domain.Event
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if in.PlaceID != nil {
			place, err := tx.PlaceByID(ctx, *in.PlaceID)
			if err != nil {
				return fmt.Errorf("could not get place: %w", err)
			}
			if place == nil {
				return serrors.With(serrors.ErrBadRequest, "place %s does not exist", in.PlaceID)
			}
			if event.VenueName == "" {
				event.VenueName = place.Name
			}
			if event.Location.IsZero() {
				event.Location = place.Location
			}
		}
		if event.Location.IsZero() {
			return serrors.With(serrors.ErrBadRequest, "location is required")
		}

		res, err := tx.StoreEvents(ctx, event)
		if err != nil {
			return fmt.Errorf("could not store event: %w", err)
		}
		stored = &res[0]

		return nil
	}); err != nil {
		return nil, err
	}
	logger.Info(ctx, "event created", zap.Stringer("eventID", stored.ID), zap.Stringer("curatorID", curatorID))

	return stored, nil
}

func (s *service) CreatePlace(ctx context.Context, curatorID domain.UserID, in PlaceInput) (*domain.Place, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if in.Location.IsZero() {
		return nil, serrors.With(serrors.ErrBadRequest, "location is required")
	}

	res, err := s.storage.StorePlaces(ctx, domain.Place{
		CuratorID:    curatorID,
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Category:     normalizeCategory(in.Category),
		Tags:         normalizeTags(in.Tags),
		Neighborhood: strings.TrimSpace(in.Neighborhood),
		Location:     in.Location,
		PriceLevel:   in.PriceLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store place: %w", err)
	}
	logger.Info(ctx, "place created", zap.Stringer("placeID", res[0].ID), zap.Stringer("curatorID", curatorID))

	return &res[0], nil
}

func (s *service) Event(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	event, err := s.storage.EventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get event: %w", err)
	}
	if event == nil {
		return nil, serrors.With(serrors.ErrNotFound, "event not found")
	}

	return event, nil
}

func (s *service) Place(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	place, err := s.storage.PlaceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get place: %w", err)
	}
	if place == nil {
		return nil, serrors.With(serrors.ErrNotFound, "place not found")
	}

	return place, nil
}

func (s *service) Save(ctx context.Context, userID domain.UserID, ref domain.ItemRef, list string) (*domain.Save, error) {
	if err := s.ensureExists(ctx, ref); err != nil {
		return nil, err
	}

	save, err := s.storage.StoreSave(ctx, domain.Save{
		UserID: userID,
		Ref:    ref,
		List:   strings.TrimSpace(list),
	})
	if err != nil {
		return nil, fmt.Errorf("could not store save: %w", err)
	}
	s.refresh(ctx, userID)

	return save, nil
}

func (s *service) Unsave(ctx context.Context, userID domain.UserID, ref domain.ItemRef, list string) error {
	if !ref.Kind.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown kind %q", ref.Kind)
	}
	list = strings.TrimSpace(list)
	if list == "" {
		list = domain.DefaultList
	}

	deleted, err := s.storage.DeleteSave(ctx, userID, ref, list)
	if err != nil {
		return fmt.Errorf("could not delete save: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "save not found")
	}

	return nil
}

func (s *service) UserSaves(ctx context.Context, userID domain.UserID) ([]domain.Save, error) {
	saves, err := s.storage.UserSaves(ctx, userID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("could not get saves: %w", err)
	}

	return saves, nil
}

func (s *service) Follow(ctx context.Context, followerID, curatorID domain.UserID) error {
	if followerID == curatorID {
		return serrors.With(serrors.ErrBadRequest, "users cannot follow themselves")
	}

	if err := s.storage.StoreFollow(ctx, domain.Follow{FollowerID: followerID, CuratorID: curatorID}); err != nil {
		return fmt.Errorf("could not store follow: %w", err)
	}
	s.refresh(ctx, followerID)

	return nil
}

func (s *service) Unfollow(ctx context.Context, followerID, curatorID domain.UserID) error {
	deleted, err := s.storage.DeleteFollow(ctx, followerID, curatorID)
	if err != nil {
		return fmt.Errorf("could not delete follow: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "follow not found")
	}

	return nil
}

func (s *service) RecordInteraction(
	ctx context.Context,
	userID domain.UserID,
	ref domain.ItemRef,
	action domain.Action,
) error {
	if !action.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown action %q", action)
	}
	if err := s.ensureExists(ctx, ref); err != nil {
		return err
	}

	if err := s.storage.StoreInteractions(ctx, domain.Interaction{
		UserID: userID,
		Ref:    ref,
		Action: action,
	}); err != nil {
		return fmt.Errorf("could not store interaction: %w", err)
	}
	if action == domain.ActionDismiss {
		s.refresh(ctx, userID)
	}

	return nil
}

func (s *service) ensureExists(ctx context.Context, ref domain.ItemRef) error {
	if !ref.Kind.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown kind %q", ref.Kind)
	}

	items, err := s.storage.ItemsByRefs(ctx, []domain.ItemRef{ref})
	if err != nil {
		return fmt.Errorf("could not get listing: %w", err)
	}
	if len(items) == 0 {
		return serrors.With(serrors.ErrNotFound, "%s not found", ref.Kind)
	}

	return nil
}

// refresh enqueues a suggestion refresh. A failure only delays fresher
// suggestions, so it is logged and not returned.
func (s *service) refresh(ctx context.Context, userID domain.UserID) {
	if _, err := s.suggester.Refresh(ctx, userID); err != nil {
		logger.Error(ctx, "could not enqueue suggestions refresh",
			zap.Stringer("userID", userID),
			zap.Error(err),
		)
	}
}

func normalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}

// normalizeTags lowercases tags and drops duplicates, keeping the first
// occurrence order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if _, ok := seen[t]; ok || t == "" {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}

// New creates a catalog Service.
func New(st storage.Storage, suggester suggestions.Suggester) Service {
	return &service{
		storage:   st,
		suggester: suggester,
	}
}
