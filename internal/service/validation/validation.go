package validation

import "regexp"

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{2,28}[A-Za-z0-9]$`)
	passwordRe = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()_+=-]{8,64}$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	optionRe   = regexp.MustCompile(`^[A-D]$`)
)

func ValidateUsername(username string) bool {
	return usernameRe.MatchString(username)
}

func ValidatePassword(password string) bool {
	return passwordRe.MatchString(password)
}

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateOption expects the answer already normalized to upper case.
func ValidateOption(option string) bool {
	return optionRe.MatchString(option)
}
