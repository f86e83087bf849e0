package domain

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User описывает покупателя или администратора.
// Учетные данные хранятся отдельно (Credential): у пользователя может быть
// только одна пара email/пароль.
type User struct {
	ID          int64
	Name        string
	CompanyName string
	Role        Role
	CreatedAt   time.Time
}

func NewUser(name, companyName string, role Role) *User {
	return &User{
		Name:        name,
		CompanyName: companyName,
		Role:        role,
	}
}

// Credential — учетные данные пользователя для входа по email и паролю.
type Credential struct {
	ID           int64
	UserID       int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

func NewCredential(userID int64, email, passwordHash string) *Credential {
	return &Credential{
		UserID:       userID,
		Email:        email,
		PasswordHash: passwordHash,
	}
}
