package domain

import "golang.org/x/crypto/bcrypt"

// AdminUser - учетная запись администратора. Хранится в конфигурации, не в БД.
type AdminUser struct {
	Email        string
	FullName     string
	PasswordHash string
}

// CheckPassword сравнивает пароль с bcrypt-хешем.
func (u *AdminUser) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Claims - данные, извлеченные из валидного токена.
type Claims struct {
	Email string
	Role  string
}

const RoleAdmin = "admin"
