package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// BirthLayout is the wire format of birth dates.
const BirthLayout = "2006-01-02"

var (
	// phoneRegex matches Korean mobile numbers
	// Formats: 010-1234-5678 or 01012345678
	phoneRegex = regexp.MustCompile(`^01[0-9]-?[0-9]{3,4}-?[0-9]{4}$`)

	// memberIDRegex: 영문 소문자로 시작, 영문 소문자/숫자/_ 4~20자
	memberIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]{3,19}$`)
)

// ValidatePhone validates a Korean mobile phone number
func ValidatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// ValidateMemberID validates a login identifier chosen at join.
func ValidateMemberID(fl validator.FieldLevel) bool {
	return memberIDRegex.MatchString(fl.Field().String())
}

// ValidateBirthDate accepts a past calendar date in BirthLayout.
func ValidateBirthDate(fl validator.FieldLevel) bool {
	birth, err := time.Parse(BirthLayout, fl.Field().String())
	if err != nil {
		return false
	}
	return birth.Before(time.Now())
}
