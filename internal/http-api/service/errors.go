package service

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Authorization
// failures (ErrNotOwner) stay distinct from not-found so clients can tell
// "doesn't exist" from "exists but not yours".
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrInvalidToken       = errors.New("invalid token")

	ErrBlogNotFound    = errors.New("blog not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotOwner        = errors.New("access denied")

	ErrSelfFollow   = errors.New("cannot follow yourself")
	ErrEmptyContent = errors.New("content is required")
	ErrReplyDepth   = errors.New("cannot reply to a reply")
)
