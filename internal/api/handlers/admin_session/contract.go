package admin_session

import "context"

type AdminService interface {
	Login(ctx context.Context, sessionID, password string) (string, error)
	Logout(ctx context.Context, sessionID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
