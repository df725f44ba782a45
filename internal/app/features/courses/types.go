// internal/app/features/courses/types.go
package courses

// createCourseRequest is the JSON body for POST /courses.
type createCourseRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	Category    string `json:"category"`
}

// updateCourseRequest is the JSON body for PUT /courses/{id}. Every field is
// optional; absent fields leave the stored value untouched.
type updateCourseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	Category    *string `json:"category"`
}
