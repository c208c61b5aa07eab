package requests

type CreateStudent struct {
	Name         string `json:"name" validate:"required,min=2,max=120"`
	TaxIDCPF     string `json:"tax_id_cpf" validate:"required,len=11,digits"`
	DateOfBirth  string `json:"date_of_birth" validate:"required,date"`
	Phone        string `json:"phone" validate:"required,min=8,max=20,digits"`
	MedicalNotes string `json:"medical_notes"`
	Goals        string `json:"goals"`
}

// UpdateStudent carries only the fields to change.
type UpdateStudent struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	TaxIDCPF     *string `json:"tax_id_cpf,omitempty" validate:"omitempty,len=11,digits"`
	DateOfBirth  *string `json:"date_of_birth,omitempty" validate:"omitempty,date"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,min=8,max=20,digits"`
	MedicalNotes *string `json:"medical_notes,omitempty"`
	Goals        *string `json:"goals,omitempty"`
}
