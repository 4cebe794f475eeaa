package user

// Requests

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=4,max=72"`
	AdminKey string `json:"admin_key"`
}

// Responses

type LoginResponse struct {
	Token string `json:"token"`
}
