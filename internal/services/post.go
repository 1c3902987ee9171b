package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// Error variables
var (
	ErrEmptyPost = errors.New("content or image is required")
)

// PostReader defines read operations for posts.
type PostReader interface {
	Feed(ctx context.Context, viewerID primitive.ObjectID) ([]models.PostFeedItem, error)
	GetFeedItem(ctx context.Context, postID, viewerID primitive.ObjectID) (*models.PostFeedItem, error)
}

// PostWriter defines write operations for posts.
type PostWriter interface {
	Insert(ctx context.Context, post models.PostDB) (primitive.ObjectID, error)
}

// PostCounter adjusts the author's denormalized post counter.
type PostCounter interface {
	IncrementPostsCount(ctx context.Context, userID primitive.ObjectID, delta int64) error
}

// PostRecorder records the post activity as a side effect.
type PostRecorder interface {
	RecordPost(ctx context.Context, userID, postID primitive.ObjectID)
}

// PostService handles post creation and the feed.
type PostService struct {
	readRepo  PostReader
	writeRepo PostWriter
	counter   PostCounter
	recorder  PostRecorder
}

// NewPostService creates a new PostService.
func NewPostService(readRepo PostReader, writeRepo PostWriter, counter PostCounter, recorder PostRecorder) *PostService {
	return &PostService{
		readRepo:  readRepo,
		writeRepo: writeRepo,
		counter:   counter,
		recorder:  recorder,
	}
}

// Create inserts a post, bumps the author's counter, and records the
// activity. The post stands even if the counter or audit record fails.
func (svc *PostService) Create(ctx context.Context, userID primitive.ObjectID, content, image string) (*models.PostFeedItem, error) {
	if content == "" && image == "" {
		return nil, ErrEmptyPost
	}

	now := time.Now()
	postID, err := svc.writeRepo.Insert(ctx, models.PostDB{
		UserID:    userID,
		Content:   content,
		Image:     image,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logger.Log.Errorw("failed to insert post", "userID", userID, "error", err)
		return nil, err
	}

	if err := svc.counter.IncrementPostsCount(ctx, userID, 1); err != nil {
		logger.Log.Warnw("failed to increment post count", "userID", userID, "error", err)
	}

	svc.recorder.RecordPost(ctx, userID, postID)

	post, err := svc.readRepo.GetFeedItem(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %s not found after insert", postID.Hex())
	}

	return post, nil
}

// Feed returns all posts newest first, decorated for the viewer.
func (svc *PostService) Feed(ctx context.Context, viewerID primitive.ObjectID) ([]models.PostFeedItem, error) {
	posts, err := svc.readRepo.Feed(ctx, viewerID)
	if err != nil {
		logger.Log.Errorw("failed to fetch feed", "viewerID", viewerID, "error", err)
		return nil, err
	}
	return posts, nil
}
