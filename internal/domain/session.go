package domain

import "time"

// Session — серверная сессия пользователя.
// В базе хранится только SHA-256 от непрозрачного токена; сам токен
// существует лишь в cookie клиента.
type Session struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewSession(userID int64, tokenHash string, expiresAt time.Time) *Session {
	return &Session{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
	}
}
