package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

type UserReadRepository struct {
	db *mongo.Database
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns a user by primary key. Returns (nil, nil) when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.UserDB, error) {
	filter := bson.M{"_id": id}

	var user models.UserDB
	err := r.db.Collection(CollUsers).FindOne(ctx, filter).Decode(&user)

	// A miss is routine, not a failure
	if err == mongo.ErrNoDocuments {
		logger.Log.Infow("findOne",
			"collection", CollUsers,
			"filter", filter,
			"found", false,
		)
		return nil, nil
	}

	logger.Log.Infow("findOne",
		"collection", CollUsers,
		"filter", filter,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByUsernameOrEmail returns the first user matching either field.
// A nil argument skips that field. Returns (nil, nil) when absent.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	var conds []bson.M
	if username != nil {
		conds = append(conds, bson.M{"username": *username})
	}
	if email != nil {
		conds = append(conds, bson.M{"email": *email})
	}
	filter := bson.M{"$or": conds}

	var user models.UserDB
	err := r.db.Collection(CollUsers).FindOne(ctx, filter).Decode(&user)

	if err == mongo.ErrNoDocuments {
		logger.Log.Infow("findOne",
			"collection", CollUsers,
			"filter", filter,
			"found", false,
		)
		return nil, nil
	}

	logger.Log.Infow("findOne",
		"collection", CollUsers,
		"filter", filter,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// IsFollowing reports whether actor currently follows target, read from the
// actor's authoritative following array.
func (r *UserReadRepository) IsFollowing(ctx context.Context, actorID, targetID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": actorID, "following": targetID}

	err := r.db.Collection(CollUsers).FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Search returns public profiles whose username or name matches the query
// prefix, excluding the given user. Capped at 20 results.
func (r *UserReadRepository) Search(ctx context.Context, query string, excludeID primitive.ObjectID) ([]models.UserPublic, error) {
	pattern := primitive.Regex{Pattern: "^" + regexQuoteMeta(query), Options: "i"}
	filter := bson.M{
		"_id": bson.M{"$ne": excludeID},
		"$or": []bson.M{
			{"username": pattern},
			{"name": pattern},
		},
	}

	opts := options.Find().SetLimit(20).SetSort(bson.D{{Key: "username", Value: 1}})
	cursor, err := r.db.Collection(CollUsers).Find(ctx, filter, opts)

	logger.Log.Infow("find",
		"collection", CollUsers,
		"filter", filter,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.UserPublic
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// regexQuoteMeta escapes regex metacharacters in a user-supplied query.
func regexQuoteMeta(s string) string {
	const meta = `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(meta); j++ {
			if s[i] == meta[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}

type UserWriteRepository struct {
	db *mongo.Database
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user document and returns its generated ID.
func (r *UserWriteRepository) Save(ctx context.Context, name, username, email, passwordHash string) (primitive.ObjectID, error) {
	now := time.Now()
	doc := models.UserDB{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := r.db.Collection(CollUsers).InsertOne(ctx, doc)

	logger.Log.Infow("insertOne",
		"collection", CollUsers,
		"username", username,
		"error", err,
	)

	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// SetPresence upserts the user's presence fields.
func (r *UserWriteRepository) SetPresence(ctx context.Context, userID primitive.ObjectID, online bool) error {
	filter := bson.M{"_id": userID}
	update := bson.M{"$set": bson.M{
		"online":     online,
		"lastActive": time.Now(),
	}}

	res, err := r.db.Collection(CollUsers).UpdateOne(ctx, filter, update)
	var matched int64
	if res != nil {
		matched = res.MatchedCount
	}

	logger.Log.Infow("updateOne",
		"collection", CollUsers,
		"filter", filter,
		"matched", matched,
		"error", err,
	)

	return err
}

// IncrementPostsCount adjusts the user's denormalized post counter.
func (r *UserWriteRepository) IncrementPostsCount(ctx context.Context, userID primitive.ObjectID, delta int64) error {
	filter := bson.M{"_id": userID}
	update := bson.M{"$inc": bson.M{"postsCount": delta}}

	_, err := r.db.Collection(CollUsers).UpdateOne(ctx, filter, update)

	logger.Log.Infow("updateOne",
		"collection", CollUsers,
		"filter", filter,
		"delta", delta,
		"error", err,
	)

	return err
}
