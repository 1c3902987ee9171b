package repositories

// Collection names owned by the persistence gateway.
const (
	CollUsers         = "users"
	CollPosts         = "posts"
	CollConversations = "conversations"
	CollMessages      = "messages"
	CollNotifications = "notifications"
	CollActivities    = "activities"
	CollLikes         = "likes"
	CollComments      = "comments"
)
