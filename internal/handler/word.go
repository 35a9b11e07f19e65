package handler

import (
	"errors"
	"fmt"
	"strings"

	"vocabtracker/internal/domain"
	"vocabtracker/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// stepPrompt returns what the open dialog asks for next
func stepPrompt(step domain.AddStep) string {
	switch step {
	case domain.StepEnglish:
		return "🇬🇧 Now send the English translation"
	case domain.StepPronunciation:
		return fmt.Sprintf("🔊 Send the pronunciation, or %s to skip", domain.SkipPronunciation)
	default:
		return "✍️ Send the foreign word"
	}
}

// handleAdd opens the add dialog
func (h *Handler) handleAdd(c tele.Context) error {
	userID := c.Sender().ID

	var step domain.AddStep
	h.UpdateSession(userID, func(s *domain.Session) {
		s.Dialog.Open()
		step = s.Dialog.Step
	})

	return h.reply(c, "➕ New word\n\n"+stepPrompt(step), cancelMarkup(), "")
}

// handleCancel closes the add dialog and goes back to the menu
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	h.UpdateSession(userID, func(s *domain.Session) {
		s.Dialog.Cancel()
	})

	return h.reply(c, mainMenuText, mainMenuMarkup(), "Cancelled")
}

// handleText handles all text messages: password entry, dialog input, or search
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.authService.EnsureMember(userID, c.Sender().Username); err != nil {
		h.logger.Error("Failed to ensure member exists", zap.Error(err))
		return nil
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(middleware.GenericErrorText)
	}

	if !authorized {
		return h.handlePassword(c, text)
	}

	var (
		open   bool
		saving bool
		ready  bool
		step   domain.AddStep
		draft  domain.WordInput
	)
	// Fill closes the dialog on the last step, so only one message can submit a draft
	h.UpdateSession(userID, func(s *domain.Session) {
		open = s.Dialog.IsOpen()
		if !open {
			saving = s.Dialog.Submitted()
			return
		}
		ready = s.Dialog.Fill(c.Text())
		step = s.Dialog.Step
		draft = s.Dialog.Draft
	})

	if saving {
		return c.Send(savingText)
	}

	// Outside the dialog any text is a search term
	if !open {
		return h.search(c, text)
	}

	if !ready {
		return c.Send(stepPrompt(step), cancelMarkup())
	}

	return h.submitDraft(c, draft)
}

// handlePassword authorizes the member if text is the bot password
func (h *Handler) handlePassword(c tele.Context, text string) error {
	userID := c.Sender().ID

	if !h.authService.CheckPassword(text) {
		return c.Send("❌ Wrong password")
	}

	if err := h.authService.AuthorizeMember(userID); err != nil {
		h.logger.Error("Failed to authorize member", zap.Error(err))
		return c.Send(middleware.GenericErrorText)
	}

	h.logger.Info("Member authorized", zap.Int64("user_id", userID))
	h.ResetSession(userID)
	return c.Send("✅ Access granted!\n\n"+mainMenuText, mainMenuMarkup())
}

// submitDraft commits the completed draft and resolves the dialog
func (h *Handler) submitDraft(c tele.Context, draft domain.WordInput) error {
	userID := c.Sender().ID

	entry, err := h.wordService.AddWord(draft)

	var step domain.AddStep
	h.UpdateSession(userID, func(s *domain.Session) {
		s.Dialog.Resolve(err)
		step = s.Dialog.Step
	})

	if errors.Is(err, domain.ErrValidationSkip) {
		return c.Send("⚠️ The foreign word and the English translation can't be empty.\n\n"+stepPrompt(step), cancelMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to add word", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(middleware.GenericErrorText)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnAdd),
		markup.Row(btnBrowse, btnBack),
	)
	return c.Send("✅ Saved!\n\n"+formatEntry(entry), markup)
}

// formatEntry renders one entry on a single line
func formatEntry(e domain.WordEntry) string {
	line := fmt.Sprintf("%s — %s", e.Foreign, e.English)
	if e.Pronunciation != "" {
		line += fmt.Sprintf(" [%s]", e.Pronunciation)
	}
	return line
}
