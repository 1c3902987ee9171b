package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDB represents a user document in the users collection.
type UserDB struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty"`                 // Primary key
	Name           string               `json:"name" bson:"name"`                        // Display name
	Username       string               `json:"username" bson:"username"`                // Unique username
	Email          string               `json:"email" bson:"email"`                      // Unique email
	PasswordHash   string               `json:"-" bson:"passwordHash"`                   // Hashed password, never serialized
	Image          string               `json:"image,omitempty" bson:"image,omitempty"`  // Profile picture URL
	Bio            string               `json:"bio,omitempty" bson:"bio,omitempty"`      // Profile bio
	PostsCount     int64                `json:"postsCount" bson:"postsCount"`            // Number of posts
	FollowersCount int64                `json:"followersCount" bson:"followersCount"`    // Number of followers
	FollowingCount int64                `json:"followingCount" bson:"followingCount"`    // Number of followed users
	Followers      []primitive.ObjectID `json:"-" bson:"followers,omitempty"`            // IDs of followers
	Following      []primitive.ObjectID `json:"-" bson:"following,omitempty"`            // IDs of followed users
	Online         bool                 `json:"online" bson:"online"`                    // Self-reported presence flag
	LastActive     time.Time            `json:"lastActive,omitempty" bson:"lastActive,omitempty"` // Last presence tick
	CreatedAt      time.Time            `json:"created_at" bson:"createdAt"`             // Creation timestamp
	UpdatedAt      time.Time            `json:"updated_at" bson:"updatedAt"`             // Last update timestamp
}

// UserPublic is the profile shape exposed to other users.
type UserPublic struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Name       string             `json:"name" bson:"name"`
	Username   string             `json:"username" bson:"username"`
	Image      string             `json:"image,omitempty" bson:"image,omitempty"`
	Online     bool               `json:"online" bson:"online"`
	LastActive time.Time          `json:"lastActive,omitempty" bson:"lastActive,omitempty"`
}

// Public strips private fields from a user document.
func (u *UserDB) Public() UserPublic {
	return UserPublic{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Image:      u.Image,
		Online:     u.Online,
		LastActive: u.LastActive,
	}
}
