package models

type UserRole string

// Роли пользователей. Строковые значения совпадают с теми, что хранит
// и присылает существующий фронтенд, менять их нельзя.
const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleHR       UserRole = "HR"
	UserRoleEmployee UserRole = "Employee"
	// UserRoleUnassigned - роль по умолчанию после саморегистрации,
	// пока админ не назначил другую
	UserRoleUnassigned UserRole = ""
)

// Valid проверяет, входит ли роль в закрытый набор
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleHR, UserRoleEmployee, UserRoleUnassigned:
		return true
	default:
		return false
	}
}
