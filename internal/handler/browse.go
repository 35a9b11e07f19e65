package handler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"vocabtracker/internal/domain"

	tele "gopkg.in/telebot.v3"
)

const (
	pagePrefix   = "page_"
	deletePrefix = "del_"

	// Longest foreign word shown on a delete button
	buttonLabelMax = 24

	// Telegram rejects longer messages
	messageMax = 4096

	// Room kept for the page header, which quotes at most termLabelMax runes of the term
	headerMax    = 1024
	termLabelMax = 64

	// Longest entry line when the page has room to spare
	entryLineMax = 200
)

// handleBrowse shows the member's current page, clamped to the view
func (h *Handler) handleBrowse(c tele.Context) error {
	userID := c.Sender().ID
	session := h.GetSession(userID)

	total := h.wordService.TotalPages(session.Browse.Term)
	h.UpdateSession(userID, func(s *domain.Session) {
		s.Browse.GoTo(s.Browse.Page, total)
	})

	return h.showPage(c, "")
}

// handleSearch handles /search <term>; a bare /search clears the term
func (h *Handler) handleSearch(c tele.Context) error {
	return h.search(c, strings.TrimSpace(c.Message().Payload))
}

// handleClearSearch drops the search term
func (h *Handler) handleClearSearch(c tele.Context) error {
	return h.search(c, "")
}

// search sets a new term, which always goes back to page 1
func (h *Handler) search(c tele.Context, term string) error {
	h.UpdateSession(c.Sender().ID, func(s *domain.Session) {
		s.Browse.SetTerm(term)
	})
	return h.showPage(c, "")
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	userID := c.Sender().ID

	page, err := parseSuffix(data, pagePrefix)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}

	session := h.GetSession(userID)
	total := h.wordService.TotalPages(session.Browse.Term)
	h.UpdateSession(userID, func(s *domain.Session) {
		s.Browse.GoTo(int(page), total)
	})

	return h.showPage(c, "")
}

// handleDelete removes the entry behind a delete button
func (h *Handler) handleDelete(c tele.Context, data string) error {
	userID := c.Sender().ID

	id, err := parseSuffix(data, deletePrefix)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid word"})
	}

	notice := "🗑 Deleted"
	if !h.wordService.DeleteWord(id) {
		notice = "Already deleted"
	}

	// Deleting the last entry of the last page must not strand the member on an empty page
	session := h.GetSession(userID)
	total := h.wordService.TotalPages(session.Browse.Term)
	h.UpdateSession(userID, func(s *domain.Session) {
		s.Browse.GoTo(s.Browse.Page, total)
	})

	return h.showPage(c, notice)
}

// showPage renders the member's browse position
func (h *Handler) showPage(c tele.Context, notice string) error {
	session := h.GetSession(c.Sender().ID)
	page := h.wordService.Browse(session.Browse)

	text, markup := renderPage(page)
	return h.reply(c, text, markup, notice)
}

// renderPage builds the message and keyboard for one page of the view
func renderPage(page domain.Page) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	switch {
	case page.Empty() && page.Term != "":
		fmt.Fprintf(&b, "🔍 No words match %q", truncate(page.Term, termLabelMax))
	case page.Empty():
		b.WriteString("📭 No words yet. Tap ➕ Add word to start.")
	default:
		fmt.Fprintf(&b, "📚 Words: page %d of %d (%d total)", page.Number, page.TotalPages, page.Matches)
		if page.Term != "" {
			fmt.Fprintf(&b, "\n🔍 Search: %q", truncate(page.Term, termLabelMax))
		}
		b.WriteString("\n\n")
		if len(page.Items) == 0 {
			b.WriteString("Nothing on this page.")
		}
	}

	offset := page.Offset()
	lineMax := entryLineMax
	if len(page.Items) > 0 && (messageMax-headerMax)/len(page.Items) < lineMax {
		lineMax = (messageMax - headerMax) / len(page.Items)
	}
	for i, e := range page.Items {
		// The newline is part of the budget
		line := truncate(fmt.Sprintf("%d. %s", offset+i+1, formatEntry(e)), lineMax-1)
		b.WriteString(line + "\n")
		btn := markup.Data("🗑 "+truncate(e.Foreign, buttonLabelMax), fmt.Sprintf("%s%d", deletePrefix, e.ID))
		rows = append(rows, markup.Row(btn))
	}

	navRow := tele.Row{}
	if page.HasPrev() {
		navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("%s%d", pagePrefix, page.Number-1)))
	}
	if page.HasNext() {
		navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("%s%d", pagePrefix, page.Number+1)))
	}
	if len(navRow) > 0 {
		rows = append(rows, navRow)
	}

	if page.Term != "" {
		rows = append(rows, markup.Row(btnClearSearch))
	}
	rows = append(rows, markup.Row(btnAdd, btnBack))

	markup.Inline(rows...)
	return strings.TrimRight(b.String(), "\n"), markup
}

// truncate shortens s to at most max runes
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
