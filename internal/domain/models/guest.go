package models

// GuestCreate is the POST /guests/ body.
type GuestCreate struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Phone     string  `json:"phone" binding:"required"`
	Email     *string `json:"email"`
	IDNumber  string  `json:"id_number" binding:"required"`
}
