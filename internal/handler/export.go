package handler

import (
	"bytes"
	"fmt"

	"vocabtracker/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleExport sends the whole list as a CSV document
func (h *Handler) handleExport(c tele.Context) error {
	userID := c.Sender().ID

	export, err := h.wordService.Export()
	if err != nil {
		h.logger.Error("Failed to export words", zap.Error(err), zap.Int64("user_id", userID))
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Export failed"})
		}
		return c.Send(middleware.GenericErrorText)
	}

	doc := &tele.Document{
		File:     tele.FromReader(bytes.NewReader(export.Data)),
		FileName: export.FileName,
		MIME:     export.MIME,
		Caption:  fmt.Sprintf("📤 %d words", h.wordService.Count()),
	}

	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}

	h.logger.Info("Words exported",
		zap.Int64("user_id", userID),
		zap.String("file", export.FileName),
		zap.Int("bytes", len(export.Data)),
	)
	return c.Send(doc)
}
