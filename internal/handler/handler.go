package handler

import (
	"sync"

	"vocabtracker/internal/domain"
	"vocabtracker/internal/middleware"
	"vocabtracker/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	wordService *service.WordService
	logger      *zap.Logger

	// Per-member dialog and browse position
	sessions   map[int64]*domain.Session
	sessionMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	wordService *service.WordService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		wordService: wordService,
		logger:      logger,
		sessions:    make(map[int64]*domain.Session),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Open to everyone: /start shows the password prompt, text carries the password
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	protected := h.bot.Group()
	protected.Use(middleware.AuthMiddleware(h.authService, h.logger))

	// Commands
	protected.Handle("/add", h.handleAdd)
	protected.Handle("/words", h.handleBrowse)
	protected.Handle("/search", h.handleSearch)
	protected.Handle("/export", h.handleExport)

	// Callback queries (inline buttons)
	protected.Handle(&btnAdd, h.handleAdd)
	protected.Handle(&btnBrowse, h.handleBrowse)
	protected.Handle(&btnExport, h.handleExport)
	protected.Handle(&btnCancel, h.handleCancel)
	protected.Handle(&btnBack, h.handleStart)
	protected.Handle(&btnClearSearch, h.handleClearSearch)

	// Generic callback handler for dynamic data
	protected.Handle(tele.OnCallback, h.handleCallback)
}

// GetSession returns a copy of the member's session
func (h *Handler) GetSession(userID int64) domain.Session {
	h.sessionMux.RLock()
	defer h.sessionMux.RUnlock()

	session, exists := h.sessions[userID]
	if !exists {
		return *domain.NewSession()
	}
	return *session
}

// UpdateSession applies fn to the member's session under the lock
func (h *Handler) UpdateSession(userID int64, fn func(s *domain.Session)) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	session, exists := h.sessions[userID]
	if !exists {
		session = domain.NewSession()
		h.sessions[userID] = session
	}
	fn(session)
}

// ResetSession closes the dialog and clears the search
func (h *Handler) ResetSession(userID int64) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	h.sessions[userID] = domain.NewSession()
}

// Inline keyboard buttons
var (
	btnAdd = tele.Btn{
		Unique: "add",
		Text:   "➕ Add word",
	}
	btnBrowse = tele.Btn{
		Unique: "browse",
		Text:   "📚 My words",
	}
	btnExport = tele.Btn{
		Unique: "export",
		Text:   "📤 Export CSV",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "🏠 Menu",
	}
	btnClearSearch = tele.Btn{
		Unique: "clear_search",
		Text:   "🔍 Clear search",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnAdd),
		menu.Row(btnBrowse),
		menu.Row(btnExport),
	)
	return menu
}

// cancelMarkup returns the keyboard shown while the add dialog is open
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

const (
	mainMenuText = "🏠 Main menu\n\nChoose an action:"
	savingText   = "⏳ Still saving your last word, one moment"
)
