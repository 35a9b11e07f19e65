package middleware

import (
	"vocabtracker/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Replies shared with the handlers
const (
	PasswordPrompt   = "Hi! This word tracker is private. Enter the password:"
	GenericErrorText = "Something went wrong. Please try again later."
)

// AuthMiddleware lets only authorized members through
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if err := authService.EnsureMember(userID, c.Sender().Username); err != nil {
				logger.Error("Failed to ensure member exists in middleware", zap.Error(err))
				return c.Send(GenericErrorText)
			}

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send(GenericErrorText)
			}

			if !authorized {
				logger.Debug("Blocked unauthorized member", zap.Int64("user_id", userID))
				if c.Callback() != nil {
					_ = c.Respond()
				}
				return c.Send(PasswordPrompt)
			}

			return next(c)
		}
	}
}
