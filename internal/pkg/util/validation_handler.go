package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.SetTagName("binding")
}

// ValidateDTO 按结构体 binding 标签做校验，供绕开 gin 绑定的调用方使用
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
