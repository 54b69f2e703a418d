package admins

import (
	"context"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"strings"
)

// StaticDirectory - список администраторов из конфигурации. Таблицы пользователей у сервиса нет.
type StaticDirectory struct {
	byEmail map[string]domain.AdminUser
}

var _ port.AdminDirectoryPort = (*StaticDirectory)(nil)

// NewStaticDirectory пропускает записи без email или хеша пароля.
func NewStaticDirectory(users ...domain.AdminUser) *StaticDirectory {
	d := &StaticDirectory{byEmail: make(map[string]domain.AdminUser, len(users))}
	for _, u := range users {
		key := normalizeEmail(u.Email)
		if key == "" || u.PasswordHash == "" {
			continue
		}
		d.byEmail[key] = u
	}
	return d
}

func (d *StaticDirectory) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	u, ok := d.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// Len - число настроенных администраторов.
func (d *StaticDirectory) Len() int {
	return len(d.byEmail)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
