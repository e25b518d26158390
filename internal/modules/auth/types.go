package auth

type LoginDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateUserDTO struct {
	Email       string `json:"email"    binding:"required,email"`
	Name        string `json:"name"     binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role"     binding:"required"`
	Association string `json:"association"`
}

type UpdateUserDTO struct {
	Name        *string `json:"name"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
	Association *string `json:"association"`
}
