package dto

// CreateUserDTO POST /users 与 PUT /users/:user_id 共用
type CreateUserDTO struct {
	Username     string  `json:"username" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	PasswordHash string  `json:"password_hash" binding:"required"`
	FullName     *string `json:"full_name"`
	Bio          *string `json:"bio"`
	AvatarURL    *string `json:"avatar_url"`
}

// UserPatchDTO PATCH /users/:user_id，只更新出现的字段
type UserPatchDTO struct {
	Username     *string `json:"username,omitempty"`
	Email        *string `json:"email,omitempty"`
	PasswordHash *string `json:"password_hash,omitempty"`
	FullName     *string `json:"full_name,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
}
