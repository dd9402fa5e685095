package handler

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	officeCodePattern   = regexp.MustCompile(`^[A-Z]{2}[0-9]{4}$`)
	employeeCodePattern = regexp.MustCompile(`^[0-9]{6}$`)
	pinPattern          = regexp.MustCompile(`^[0-9]{4}$`)
)

// NewValidator создаёт валидатор с правилами для кодов филиала, сотрудника и PIN
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("office_code", matchCode(officeCodePattern))
	v.RegisterValidation("employee_code", matchCode(employeeCodePattern))
	v.RegisterValidation("pin", func(fl validator.FieldLevel) bool {
		return pinPattern.MatchString(fl.Field().String())
	})
	return v
}

// коды сверяются после нормализации, как их сохранит сервис
func matchCode(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
	}
}
