package models

import "time"

// Comment is either top-level (ParentID nil) or a reply to a top-level
// comment. Replies to replies are rejected at write time, so the stored
// tree is always exactly two levels deep.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	BlogID    int64     `json:"blog_id" gorm:"not null;index"`
	ParentID  *int64    `json:"parent_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User    User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Blog    Blog      `json:"blog,omitempty" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE;"`
	Replies []Comment `json:"replies,omitempty" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}

// IsReply reports whether the comment is a reply rather than top-level.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
