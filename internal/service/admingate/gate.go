package admingate

import "crypto/subtle"

// Gate проверяет пароль администратора
// Секрет передаётся при создании; глобального состояния нет.
type Gate struct {
	secret []byte
	logger Logger
}

// NewGate создает проверку с заданным секретом
func NewGate(secret string, logger Logger) *Gate {
	return &Gate{
		secret: []byte(secret),
		logger: logger,
	}
}

// Authorize сравнивает переданный пароль с секретом за постоянное время
// Пустой секрет не открывает доступ никому.
func (g *Gate) Authorize(credential string) error {
	if len(g.secret) == 0 {
		g.logger.Error("Authorize: admin secret is not configured, rejecting")
		return ErrInvalidCredential
	}

	if subtle.ConstantTimeCompare([]byte(credential), g.secret) != 1 {
		g.logger.Warn("Authorize: invalid admin credential")
		return ErrInvalidCredential
	}

	g.logger.Info("Authorize: admin credential accepted")
	return nil
}
