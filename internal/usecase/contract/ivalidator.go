package contract

type IValidator interface {
	// ValidateEmail checks if the email format is valid.
	ValidateEmail(email string) error
}
