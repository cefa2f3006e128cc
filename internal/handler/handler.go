package handler

import (
	"sync"

	"vocabtutor/internal/domain"
	"vocabtutor/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgInternalError = "Something went wrong. Please try again later."

// Handler manages all bot interactions
type Handler struct {
	bot                 *tele.Bot
	authService         *service.AuthService
	profileService      *service.ProfileService
	vocabularyService   *service.VocabularyService
	practiceService     *service.PracticeService
	conversationService *service.ConversationService
	statsService        *service.StatsService
	logger              *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Serializes answers per user so a session never advances twice at once
	userLocks map[int64]*sync.Mutex
	lockMux   sync.Mutex
}

// Services groups the services the handler depends on
type Services struct {
	Auth         *service.AuthService
	Profile      *service.ProfileService
	Vocabulary   *service.VocabularyService
	Practice     *service.PracticeService
	Conversation *service.ConversationService
	Stats        *service.StatsService
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, services Services, logger *zap.Logger) *Handler {
	return &Handler{
		bot:                 bot,
		authService:         services.Auth,
		profileService:      services.Profile,
		vocabularyService:   services.Vocabulary,
		practiceService:     services.Practice,
		conversationService: services.Conversation,
		statsService:        services.Stats,
		logger:              logger,
		states:              make(map[int64]*domain.StateData),
		userLocks:           make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers. /start and free text stay
// outside auth because they carry the password; everything else goes
// through the given middleware.
func (h *Handler) RegisterHandlers(auth tele.MiddlewareFunc) {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	g := h.bot.Group()
	g.Use(auth)

	// Commands
	g.Handle("/add", h.handleAddWord)
	g.Handle("/list", h.handleVocabulary)
	g.Handle("/practice", h.handlePractice)
	g.Handle("/talk", h.handleConversation)
	g.Handle("/stats", h.handleStats)
	g.Handle("/languages", h.handleLanguages)
	g.Handle("/cancel", h.handleCancel)

	// Documents (.xlsx import)
	g.Handle(tele.OnDocument, h.handleDocument)

	// Callback queries (inline buttons)
	g.Handle(&btnAddWord, h.handleAddWord)
	g.Handle(&btnVocabulary, h.handleVocabulary)
	g.Handle(&btnPractice, h.handlePractice)
	g.Handle(&btnConversation, h.handleConversation)
	g.Handle(&btnStats, h.handleStats)
	g.Handle(&btnLanguages, h.handleLanguages)
	g.Handle(&btnImport, h.handleImportHelp)
	g.Handle(&btnSkip, h.handleSkip)
	g.Handle(&btnStop, h.handleStopConversation)
	g.Handle(&btnCancel, h.handleCancel)
	g.Handle(&btnMainMenu, h.handleMainMenu)

	// Generic callback handler for dynamic data
	g.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// lockUser acquires the per-user lock and returns its release func
func (h *Handler) lockUser(userID int64) func() {
	h.lockMux.Lock()
	lock, exists := h.userLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.userLocks[userID] = lock
	}
	h.lockMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Inline keyboard buttons
var (
	btnAddWord = tele.Btn{
		Unique: "add_word",
		Text:   "➕ Add word",
	}
	btnVocabulary = tele.Btn{
		Unique: "vocabulary",
		Text:   "📚 My vocabulary",
	}
	btnPractice = tele.Btn{
		Unique: "practice",
		Text:   "🎯 Practice",
	}
	btnConversation = tele.Btn{
		Unique: "conversation",
		Text:   "💬 Conversation",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Stats",
	}
	btnLanguages = tele.Btn{
		Unique: "languages",
		Text:   "🌐 Languages",
	}
	btnImport = tele.Btn{
		Unique: "import",
		Text:   "📥 Import .xlsx",
	}
	btnSkip = tele.Btn{
		Unique: "skip",
		Text:   "⏭ Skip",
	}
	btnStop = tele.Btn{
		Unique: "stop",
		Text:   "⏹ Stop",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

const mainMenuText = "🏠 Main menu\n\nChoose an action:"

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnAddWord, btnVocabulary),
		menu.Row(btnPractice, btnConversation),
		menu.Row(btnStats, btnLanguages),
		menu.Row(btnImport),
	)
	return menu
}

func singleButtonMarkup(btn tele.Btn) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btn))
	return markup
}

// reply edits the callback's message, or sends a new one for commands and
// when the edit fails
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// notify answers a callback with a toast, or sends a message for commands
func notify(c tele.Context, text string, alert bool) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: alert})
	}
	return c.Send(text)
}
