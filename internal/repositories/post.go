package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

type PostReadRepository struct {
	db *mongo.Database
}

func NewPostReadRepository(db *mongo.Database) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// feedPipeline joins each post with its author and like/comment counters.
// Likes and comments are read-only here; their mutation routes are out of
// scope.
func feedPipeline(match bson.M, viewerID primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CollUsers,
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CollLikes,
			"localField":   "_id",
			"foreignField": "postId",
			"as":           "likes",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CollComments,
			"localField":   "_id",
			"foreignField": "postId",
			"as":           "comments",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"likesCount":    bson.M{"$size": "$likes"},
			"commentsCount": bson.M{"$size": "$comments"},
			"isLiked":       bson.M{"$in": bson.A{viewerID, "$likes.userId"}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":           1,
			"content":       1,
			"image":         1,
			"createdAt":     1,
			"likesCount":    1,
			"commentsCount": 1,
			"isLiked":       1,
			"user": bson.M{
				"_id":      1,
				"name":     1,
				"username": 1,
				"image":    1,
			},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	)
	return pipeline
}

// Feed returns all posts newest first, decorated for the viewing user.
func (r *PostReadRepository) Feed(ctx context.Context, viewerID primitive.ObjectID) ([]models.PostFeedItem, error) {
	cursor, err := r.db.Collection(CollPosts).Aggregate(ctx, feedPipeline(nil, viewerID))

	logger.Log.Infow("aggregate",
		"collection", CollPosts,
		"viewer", viewerID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.PostFeedItem
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetFeedItem returns one post in feed shape. Returns (nil, nil) when absent.
func (r *PostReadRepository) GetFeedItem(ctx context.Context, postID, viewerID primitive.ObjectID) (*models.PostFeedItem, error) {
	cursor, err := r.db.Collection(CollPosts).Aggregate(ctx, feedPipeline(bson.M{"_id": postID}, viewerID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.PostFeedItem
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return &posts[0], nil
}

type PostWriteRepository struct {
	db *mongo.Database
}

func NewPostWriteRepository(db *mongo.Database) *PostWriteRepository {
	return &PostWriteRepository{db: db}
}

// Insert appends a post and returns its generated ID.
func (r *PostWriteRepository) Insert(ctx context.Context, post models.PostDB) (primitive.ObjectID, error) {
	res, err := r.db.Collection(CollPosts).InsertOne(ctx, post)

	logger.Log.Infow("insertOne",
		"collection", CollPosts,
		"userId", post.UserID,
		"error", err,
	)

	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}
