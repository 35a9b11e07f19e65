package handler

import (
	"vocabtracker/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command and the menu button
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("Member opened menu",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.authService.EnsureMember(userID, c.Sender().Username); err != nil {
		h.logger.Error("Failed to ensure member exists", zap.Error(err))
		return c.Send(middleware.GenericErrorText)
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(middleware.GenericErrorText)
	}

	h.ResetSession(userID)

	if !authorized {
		return c.Send(middleware.PasswordPrompt)
	}

	return h.reply(c, mainMenuText, mainMenuMarkup(), "")
}
