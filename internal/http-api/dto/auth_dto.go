package dto

// SignupRequest is the payload for POST /user/signup
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Name     string `json:"name" binding:"omitempty,max=128"`
}

// SigninRequest is the payload for POST /user/signin
type SigninRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}
