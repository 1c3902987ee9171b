package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// Error variables
var (
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// FollowToggler flips a follow relationship atomically.
type FollowToggler interface {
	Toggle(ctx context.Context, actorID, targetID primitive.ObjectID) (bool, error)
}

// FollowSearcher defines follower-state and search reads for users.
type FollowSearcher interface {
	IsFollowing(ctx context.Context, actorID, targetID primitive.ObjectID) (bool, error)
	Search(ctx context.Context, query string, excludeID primitive.ObjectID) ([]models.UserPublic, error)
}

// PresenceWriter defines the presence write on the user document.
type PresenceWriter interface {
	SetPresence(ctx context.Context, userID primitive.ObjectID, online bool) error
}

// PresenceSetter writes cached presence.
type PresenceSetter interface {
	SetPresence(ctx context.Context, userID string, online bool) error
}

// FollowPublisher publishes follow-toggle events.
type FollowPublisher interface {
	PublishFollowToggle(ctx context.Context, actorID, targetID primitive.ObjectID, following bool)
}

// UserService handles follow toggling, presence, and profile reads.
type UserService struct {
	reader        UserReader
	followReader  FollowSearcher
	toggler       FollowToggler
	presenceRepo  PresenceWriter
	presenceCache PresenceSetter
	publisher     FollowPublisher
}

// NewUserService creates a new UserService.
func NewUserService(
	reader UserReader,
	followReader FollowSearcher,
	toggler FollowToggler,
	presenceRepo PresenceWriter,
	presenceCache PresenceSetter,
	publisher FollowPublisher,
) *UserService {
	return &UserService{
		reader:        reader,
		followReader:  followReader,
		toggler:       toggler,
		presenceRepo:  presenceRepo,
		presenceCache: presenceCache,
		publisher:     publisher,
	}
}

// ToggleFollow follows the target if not followed, unfollows otherwise, and
// returns the resulting state. The check and all writes run in one storage
// transaction, so concurrent toggles for the same pair net out correctly.
func (svc *UserService) ToggleFollow(ctx context.Context, actorID, targetID primitive.ObjectID) (bool, error) {
	if actorID == targetID {
		return false, ErrSelfFollow
	}

	target, err := svc.reader.GetByID(ctx, targetID)
	if err != nil {
		logger.Log.Errorw("failed to look up follow target", "targetID", targetID, "error", err)
		return false, err
	}
	if target == nil {
		return false, ErrUserNotFound
	}

	following, err := svc.toggler.Toggle(ctx, actorID, targetID)
	if err != nil {
		logger.Log.Errorw("follow toggle failed", "actorID", actorID, "targetID", targetID, "error", err)
		return false, err
	}

	svc.publisher.PublishFollowToggle(ctx, actorID, targetID, following)

	return following, nil
}

// SetOnline records the user's self-reported presence on the user document
// and refreshes the cache copy. A cache failure does not fail the call.
func (svc *UserService) SetOnline(ctx context.Context, userID primitive.ObjectID, online bool) error {
	if err := svc.presenceRepo.SetPresence(ctx, userID, online); err != nil {
		logger.Log.Errorw("failed to set presence", "userID", userID, "error", err)
		return err
	}

	if err := svc.presenceCache.SetPresence(ctx, userID.Hex(), online); err != nil {
		logger.Log.Warnw("failed to cache presence", "userID", userID, "error", err)
	}

	return nil
}

// GetProfile returns the target's public profile with counters, including
// whether the viewer follows them.
func (svc *UserService) GetProfile(ctx context.Context, targetID, viewerID primitive.ObjectID) (*models.ProfileView, error) {
	user, err := svc.reader.GetByID(ctx, targetID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", targetID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	isFollowing := false
	if viewerID != targetID {
		isFollowing, err = svc.followReader.IsFollowing(ctx, viewerID, targetID)
		if err != nil {
			return nil, err
		}
	}

	return &models.ProfileView{
		ID:             user.ID,
		Name:           user.Name,
		Username:       user.Username,
		Image:          user.Image,
		Bio:            user.Bio,
		PostsCount:     user.PostsCount,
		FollowersCount: user.FollowersCount,
		FollowingCount: user.FollowingCount,
		Online:         user.Online,
		LastActive:     user.LastActive,
		IsFollowing:    isFollowing,
	}, nil
}

// Search returns public profiles matching the query, excluding the caller.
func (svc *UserService) Search(ctx context.Context, query string, selfID primitive.ObjectID) ([]models.UserPublic, error) {
	users, err := svc.followReader.Search(ctx, query, selfID)
	if err != nil {
		logger.Log.Errorw("user search failed", "query", query, "error", err)
		return nil, err
	}
	return users, nil
}
