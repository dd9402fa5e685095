package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrOfficeNotFound     = errors.New("office not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrSupervisorNotFound = errors.New("supervisor not found")
	ErrRecordNotFound     = errors.New("record not found")

	ErrDuplicateOfficeCode   = errors.New("office with this code already exists")
	ErrDuplicateEmployeeCode = errors.New("employee with this code already exists")
	ErrOfficeHasEmployees    = errors.New("office still has employees")

	ErrMissingRequiredField = errors.New("employee_code and date are required")
	ErrMissingDashboardArgs = errors.New("branch_code and date are required")
	ErrInvalidDate          = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime          = errors.New("time must be in HH:MM format")
	ErrUnknownCategory      = errors.New("unknown item category")
	ErrDuplicateCategory    = errors.New("item category is repeated in one submission")
	ErrCommentRequired      = errors.New("comment is required when is_normal is false")
	ErrFeverMarkedNormal    = errors.New("temperature of 37.5 or higher cannot be marked normal")

	ErrCheckoutBeforeCheckin = errors.New("work end time cannot be registered before work start time")
	ErrEndBeforeStart        = errors.New("work end time is earlier than work start time")
)

// IsValidation сообщает, относится ли ошибка к ошибкам входных данных клиента.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrMissingRequiredField,
		ErrMissingDashboardArgs,
		ErrInvalidDate,
		ErrInvalidTime,
		ErrUnknownCategory,
		ErrDuplicateCategory,
		ErrCommentRequired,
		ErrFeverMarkedNormal,
		ErrCheckoutBeforeCheckin,
		ErrEndBeforeStart,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
