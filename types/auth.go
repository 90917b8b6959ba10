package types

type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type RegisterRequest struct {
	Username     string `form:"username" json:"username" binding:"required,max=150"`
	Email        string `form:"email" json:"email" binding:"omitempty,email,max=254"`
	Password     string `form:"password" json:"password" binding:"required"`
	Confirmation string `form:"confirmation" json:"confirmation"`
}

type UserInfo struct {
	ID       int64  `json:"id,string"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"` // unix 秒
	User      UserInfo `json:"user"`
}
