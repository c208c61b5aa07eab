package requests

type CreateInstructor struct {
	Name      string `json:"name" validate:"required,min=2,max=120"`
	Phone     string `json:"phone" validate:"required,min=8,max=20,digits"`
	Email     string `json:"email" validate:"required,email,max=120"`
	Specialty string `json:"specialty"`
	Notes     string `json:"notes"`
}

type UpdateInstructor struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=8,max=20,digits"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Specialty *string `json:"specialty,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}
