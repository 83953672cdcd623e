package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// UserEmailKey - ключ, по которому хранится email из проверенного токена
const UserEmailKey = contextKey("userEmail")
