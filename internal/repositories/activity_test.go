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

func TestActivityWriteRepository_Insert(t *testing.T) {
	_, db, teardown := setupMongoContainer(t)
	defer teardown()

	repo := NewActivityWriteRepository(db)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	targetID := primitive.NewObjectID()

	id, err := repo.Insert(ctx, models.ActivityDB{
		UserID:       userID,
		Type:         models.ActivityFollow,
		TargetUserID: &targetID,
		Message:      "started following",
		CreatedAt:    time.Now(),
	})
	assert.NoError(t, err)
	assert.False(t, id.IsZero())

	var stored models.ActivityDB
	err = db.Collection(CollActivities).FindOne(ctx, bson.M{"_id": id}).Decode(&stored)
	assert.NoError(t, err)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, models.ActivityFollow, stored.Type)
	assert.Equal(t, targetID, *stored.TargetUserID)
}
