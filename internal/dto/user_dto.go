package dto

type CreateUserUUIDRequest struct {
	UserID uint `json:"userId"`
}

// UpdateProfileRequest is a partial profile update for the
// authenticated user.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}
