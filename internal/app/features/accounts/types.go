// internal/app/features/accounts/types.go
package accounts

// registerUserRequest is the JSON body for POST /register/user.
type registerUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// loginUserRequest is the JSON body for POST /login/user.
type loginUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// registerStudentRequest is the JSON body for POST /register/student.
type registerStudentRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Course   string `json:"course" validate:"required"`
}

// loginStudentRequest is the JSON body for POST /login/student.
type loginStudentRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
