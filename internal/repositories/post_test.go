package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-social-network/internal/models"
)

func TestPostRepository_InsertAndFeed(t *testing.T) {
	_, db, teardown := setupMongoContainer(t)
	defer teardown()

	userWriteRepo := NewUserWriteRepository(db)
	writeRepo := NewPostWriteRepository(db)
	readRepo := NewPostReadRepository(db)
	ctx := context.Background()

	authorID, err := userWriteRepo.Save(ctx, "Alice", "alice", "alice@example.com", "hash")
	assert.NoError(t, err)
	viewerID, err := userWriteRepo.Save(ctx, "Bob", "bob", "bob@example.com", "hash")
	assert.NoError(t, err)

	now := time.Now()

	oldID, err := writeRepo.Insert(ctx, models.PostDB{
		UserID:    authorID,
		Content:   "older post",
		CreatedAt: now.Add(-time.Hour),
		UpdatedAt: now.Add(-time.Hour),
	})
	assert.NoError(t, err)

	newID, err := writeRepo.Insert(ctx, models.PostDB{
		UserID:    authorID,
		Content:   "newer post",
		Image:     "https://cdn.example.com/pic.png",
		CreatedAt: now,
		UpdatedAt: now,
	})
	assert.NoError(t, err)

	// The viewer liked the older post
	_, err = db.Collection(CollLikes).InsertOne(ctx, bson.M{"postId": oldID, "userId": viewerID})
	assert.NoError(t, err)
	_, err = db.Collection(CollComments).InsertOne(ctx, bson.M{"postId": oldID, "userId": viewerID, "content": "nice"})
	assert.NoError(t, err)

	feed, err := readRepo.Feed(ctx, viewerID)
	assert.NoError(t, err)
	assert.Len(t, feed, 2)

	// Newest first with author joined in
	assert.Equal(t, newID, feed[0].ID)
	assert.Equal(t, "newer post", feed[0].Content)
	assert.Equal(t, "alice", feed[0].User.Username)
	assert.Equal(t, int64(0), feed[0].LikesCount)
	assert.False(t, feed[0].IsLiked)

	assert.Equal(t, oldID, feed[1].ID)
	assert.Equal(t, int64(1), feed[1].LikesCount)
	assert.Equal(t, int64(1), feed[1].CommentsCount)
	assert.True(t, feed[1].IsLiked)

	// Another viewer sees the same counts but not the like flag
	otherFeed, err := readRepo.Feed(ctx, authorID)
	assert.NoError(t, err)
	assert.False(t, otherFeed[1].IsLiked)
}

func TestPostReadRepository_GetFeedItem(t *testing.T) {
	_, db, teardown := setupMongoContainer(t)
	defer teardown()

	userWriteRepo := NewUserWriteRepository(db)
	writeRepo := NewPostWriteRepository(db)
	readRepo := NewPostReadRepository(db)
	ctx := context.Background()

	authorID, err := userWriteRepo.Save(ctx, "Alice", "alice", "alice@example.com", "hash")
	assert.NoError(t, err)

	postID, err := writeRepo.Insert(ctx, models.PostDB{
		UserID:    authorID,
		Content:   "hello",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		item, err := readRepo.GetFeedItem(ctx, postID, authorID)
		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, postID, item.ID)
		assert.Equal(t, "alice", item.User.Username)
	})

	t.Run("Absent", func(t *testing.T) {
		item, err := readRepo.GetFeedItem(ctx, primitive.NewObjectID(), authorID)
		assert.NoError(t, err)
		assert.Nil(t, item)
	})
}
