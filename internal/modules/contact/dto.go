package contact

// SubscribeDTO is the request body for newsletter signup.
type SubscribeDTO struct {
	Email  string `json:"email"  binding:"required,email"`
	Source string `json:"source"`
}

// ContactDTO is the request body for the contact form.
type ContactDTO struct {
	Name    string `json:"name"    binding:"required"`
	Email   string `json:"email"   binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
