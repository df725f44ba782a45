// internal/app/features/profiles/types.go
package profiles

// createProfileRequest is the JSON body for POST /profile/.
type createProfileRequest struct {
	FullName   string  `json:"full_name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Bio        *string `json:"bio"`
	Department *string `json:"department"`
	AvatarURL  *string `json:"avatar_url" validate:"omitempty,url"`
}

// updateProfileRequest is the JSON body for PUT /profile/{id}. All fields
// are optional; an entirely empty body is rejected.
type updateProfileRequest struct {
	FullName   *string `json:"full_name"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Bio        *string `json:"bio"`
	Department *string `json:"department"`
	AvatarURL  *string `json:"avatar_url" validate:"omitempty,url"`
}
