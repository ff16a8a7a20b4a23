package models

import "time"

// Like is one user liking one blog. The composite unique index is the only
// defense against a concurrent double-like; inserts go through
// ON CONFLICT DO NOTHING, never check-then-insert.
type Like struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_like_user_blog"`
	BlogID    int64     `json:"blog_id" gorm:"not null;uniqueIndex:idx_like_user_blog;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Blog Blog `json:"blog,omitempty" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE;"`
}

func (Like) TableName() string {
	return "likes"
}
