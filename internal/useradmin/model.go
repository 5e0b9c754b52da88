package useradmin

type CreateRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role"`
	IsApproved bool   `json:"is_approved"`
}

type UpdateRequest struct {
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Role       *string `json:"role"`
	IsApproved *bool   `json:"is_approved"`
}
