package models

import "time"

// SavedPost has the same idempotency shape as Like.
type SavedPost struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_saved_user_blog"`
	BlogID    int64     `json:"blog_id" gorm:"not null;uniqueIndex:idx_saved_user_blog;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Blog Blog `json:"blog,omitempty" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE;"`
}

func (SavedPost) TableName() string {
	return "saved_posts"
}
