package user

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type DeleteUserRequest struct {
	Email string `json:"email" binding:"required"`
}

type UserResponse struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
