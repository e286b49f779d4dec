package controller

// EmailValidator decides whether a candidate string is a well-formed email.
// A returned error means the check itself could not be performed.
type EmailValidator interface {
	IsValid(email string) (bool, error)
}
