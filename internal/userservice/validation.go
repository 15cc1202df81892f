package userservice

import (
	"regexp"

	"github.com/reikohana/inkstone/internal/common"
)

var (
	EmailRX     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	UppercaseRX = regexp.MustCompile("[A-Z]")
	LowercaseRX = regexp.MustCompile("[a-z]")
	NumberRX    = regexp.MustCompile("[0-9]")
)

func validateFullname(v *common.Validator, fullname string) {
	v.Check(fullname != "", "fullname", "must be provided")
	v.Check(len(fullname) >= 3, "fullname", "must be at least 3 characters long")
}

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(EmailRX.MatchString(email), "email", "must be a valid email address")
}

func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")

	value := v.CheckStringLength(password, 6, 20) && UppercaseRX.MatchString(password) && LowercaseRX.MatchString(password) && NumberRX.MatchString(password)
	v.Check(value, "password", "must be 6 to 20 characters long and contain at least one number, one lowercase and one uppercase letter")
}

func validateProviderToken(v *common.Validator, token string) {
	v.Check(token != "", "access_token", "must be provided")
}
