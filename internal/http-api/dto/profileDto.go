package dto

import "time"

// FollowStatusResponse for follow/unfollow/status endpoints
type FollowStatusResponse struct {
	Following bool `json:"following"`
}

// FollowListResponse for the follower/following listing endpoints
type FollowListResponse struct {
	Count int              `json:"count"`
	Users []AuthorResponse `json:"users"`
}

// ProfileStats are the per-user engagement counters, recomputed from the
// relation tables on every read.
type ProfileStats struct {
	FollowerCount  int64 `json:"followerCount"`
	FollowingCount int64 `json:"followingCount"`
	BlogCount      int64 `json:"blogCount"`
	LikeCount      int64 `json:"likeCount"`
	CommentCount   int64 `json:"commentCount"`
	SavedCount     int64 `json:"savedCount"`
}

// Profile is the header section of a profile page
type Profile struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	FollowerCount  int64  `json:"followerCount"`
	FollowingCount int64  `json:"followingCount"`
	BlogCount      int64  `json:"blogCount"`
	IsFollowing    bool   `json:"isFollowing"`
}

// ProfileResponse for GET /user/profile/:id
type ProfileResponse struct {
	Profile Profile      `json:"profile"`
	Stats   ProfileStats `json:"stats"`
}

// ProfileCommentResponse is one entry on the profile comments tab
type ProfileCommentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	BlogID    int64     `json:"blogId"`
	Blog      BlogRef   `json:"blog"`
}

// BlogRef is a minimal blog reference for profile listings
type BlogRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ProfileLikeResponse is one entry on the profile likes tab
type ProfileLikeResponse struct {
	ID        int64        `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	Blog      BlogResponse `json:"blog"`
}

// ProfileSavedResponse is one entry on the profile saved tab
type ProfileSavedResponse struct {
	ID        int64        `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	Blog      BlogResponse `json:"blog"`
}
