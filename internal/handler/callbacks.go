package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseSuffix reads the number after prefix in callback data like "del_42"
func parseSuffix(data, prefix string) (int64, error) {
	data = strings.TrimSpace(data)
	if !strings.HasPrefix(data, prefix) {
		return 0, fmt.Errorf("callback data %q has no %q prefix", data, prefix)
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number in callback data %q: %w", data, err)
	}
	return n, nil
}

// reply edits the message behind a callback, or sends a new one for commands and text.
// notice is shown as a callback toast when set.
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup, notice string) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(text, markup)
	}

	if notice != "" {
		return c.Respond(&tele.CallbackResponse{Text: notice})
	}
	return c.Respond()
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Same text and keyboard as before, e.g. a double tap on a page button
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks without a dedicated endpoint
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons whose Unique didn't come through
	switch data {
	case btnAdd.Unique:
		return h.handleAdd(c)
	case btnBrowse.Unique:
		return h.handleBrowse(c)
	case btnExport.Unique:
		return h.handleExport(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnBack.Unique:
		return h.handleStart(c)
	case btnClearSearch.Unique:
		return h.handleClearSearch(c)
	}

	// Dynamic buttons
	switch {
	case strings.HasPrefix(data, pagePrefix):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, deletePrefix):
		return h.handleDelete(c, data)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
