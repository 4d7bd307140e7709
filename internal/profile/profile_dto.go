package profile

type InviteProfileRequest struct {
	FullName string  `json:"full_name" binding:"required,max=255"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
	Role     string  `json:"role" binding:"required,oneof=admin manager swamiji worker"`
	Password string  `json:"password" binding:"required,min=8"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,max=255"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin manager swamiji worker"`
	IsActive *bool   `json:"is_active"`
}

type ListFilter struct {
	Role       string
	ActiveOnly bool
}

type ProfileResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}
