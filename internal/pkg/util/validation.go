package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// IsEmail 邮箱格式是否合法
func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}
