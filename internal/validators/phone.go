package validators

import "strings"

// MaxPhoneLength is the phone column size, separators included.
const MaxPhoneLength = 20

// IsPhoneValid accepts 7 to 20 digits with an optional leading "+" and the
// usual separators (spaces, dots, dashes, parentheses), at most
// MaxPhoneLength characters in all.
func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" || len(phone) > MaxPhoneLength {
		return false
	}

	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return false
		}
	}

	return digits >= 7 && digits <= 20
}
