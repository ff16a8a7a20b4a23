package models

import "time"

// Follow is a directed edge: FollowerID follows FollowingID. Self-follows are
// rejected in the service layer, not by a storage constraint.
type Follow struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FollowerID  int64     `json:"follower_id" gorm:"not null;uniqueIndex:idx_follower_following"`
	FollowingID int64     `json:"following_id" gorm:"not null;uniqueIndex:idx_follower_following;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Follower  User `json:"follower,omitempty" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE;"`
	Following User `json:"following,omitempty" gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE;"`
}

func (Follow) TableName() string {
	return "follows"
}
