package chat

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartsites-digital/leadchat/internal/analysis"
	"github.com/smartsites-digital/leadchat/internal/i18n"
	"github.com/smartsites-digital/leadchat/internal/leads"
	"github.com/smartsites-digital/leadchat/internal/persuasion"
	"github.com/smartsites-digital/leadchat/pkg/logging"
)

// flexibleTimelineDiscount is granted when the visitor picks flexible timing.
const flexibleTimelineDiscount = 10

// readySignalThreshold and readyConfidenceThreshold gate the shortcut that
// skips the remaining scripted questions for a clearly decided visitor.
const (
	readySignalThreshold     = 3
	readyConfidenceThreshold = 70
)

// Submitter hands a finished record to the lead pipeline.
type Submitter interface {
	SubmitChat(ctx context.Context, data *leads.ChatData) (string, error)
}

// Metrics receives conversation counters. A nil Metrics disables them.
type Metrics interface {
	ObserveConversationStarted()
	ObserveMessage(sender string)
	ObservePersuasion(objection string)
	ObserveUpsell()
}

// Engine drives one conversation turn at a time. It holds no per-session
// state itself; everything lives on the Session passed into each call.
type Engine struct {
	catalog  *i18n.Catalog
	strategy *persuasion.Generator
	upsell   *persuasion.UpsellGenerator
	submit   Submitter
	metrics  Metrics
	logger   *logging.Logger
	now      func() time.Time
	newID    func() string
}

type EngineOption func(*Engine)

func WithLogger(logger *logging.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

func WithMetrics(metrics Metrics) EngineOption {
	return func(e *Engine) { e.metrics = metrics }
}

func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

func WithIDGenerator(newID func() string) EngineOption {
	return func(e *Engine) { e.newID = newID }
}

func NewEngine(catalog *i18n.Catalog, strategy *persuasion.Generator, upsell *persuasion.UpsellGenerator, submitter Submitter, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog:  catalog,
		strategy: strategy,
		upsell:   upsell,
		submit:   submitter,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.Default()
	}
	return e
}

// Start creates a fresh session and returns it with the opening messages.
func (e *Engine) Start(locale string) (*Session, []Message) {
	loc := i18n.Normalize(locale)
	if locale == "" {
		loc = e.catalog.DefaultLocale()
	}
	now := e.now()
	s := &Session{
		ID:              e.newID(),
		Locale:          loc,
		Step:            StepService,
		PersuadedCursor: -1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if e.metrics != nil {
		e.metrics.ObserveConversationStarted()
	}
	out := []Message{
		e.bot(s, e.translate(s, i18n.KeyGreeting, nil), nil),
		e.bot(s, e.translate(s, i18n.KeySelectService, nil), nil),
	}
	e.logger.Info("conversation started", "session_id", s.ID, "locale", loc)
	return s, out
}

// SelectService records the chosen service and asks the first question.
func (e *Engine) SelectService(s *Session, name string) ([]Message, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyInput
	}
	if s.Step == StepDone {
		return nil, ErrConversationDone
	}
	if s.Step != StepService {
		return nil, ErrWrongStep
	}

	e.user(s, name)
	s.ServiceKind = leads.ServiceKindOf(name)
	s.Record.Service = name
	s.Record.WebsiteType = leads.WebsiteTypeLabel(s.ServiceKind)
	s.Cursor = 0
	s.Record.QuestionStep = 0
	s.PersuadedCursor = -1
	s.Step = StepDetails
	s.UpdatedAt = e.now()

	questions := e.questions(s)
	return []Message{e.bot(s, questions[0], nil)}, nil
}

// HandleAnswer processes one free-text reply according to the current step.
func (e *Engine) HandleAnswer(ctx context.Context, s *Session, text string) ([]Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	switch s.Step {
	case StepService:
		return e.SelectService(s, text)
	case StepDetails:
		return e.handleDetails(s, text), nil
	case StepContact:
		return e.handleContact(ctx, s, text), nil
	default:
		return nil, ErrConversationDone
	}
}

func (e *Engine) handleDetails(s *Session, text string) []Message {
	// The context is rebuilt from the transcript before this reply joins it.
	convCtx := analysis.BuildContext(s.UserAnswers(), s.LastPersuasionAt)
	e.user(s, text)
	defer func() { s.UpdatedAt = e.now() }()

	questions := e.questions(s)
	n := len(questions)

	if s.Cursor < n {
		a := analysis.Analyze(text, convCtx)

		if len(a.BuyingSignals) >= readySignalThreshold && a.Confidence > readyConfidenceThreshold {
			// Decided visitor: fold the reply and skip straight to timeline.
			leads.Fold(&s.Record, s.ServiceKind, s.Cursor, text)
			s.Cursor = n
			s.Record.QuestionStep = n
			return []Message{
				e.bot(s, e.translate(s, i18n.KeyReadyToProceed, nil), nil),
				e.timelinePrompt(s),
			}
		}

		if (a.NeedsConvincing || a.NeedsUpsell) && s.PersuadedCursor != s.Cursor {
			if msg := e.interject(s, text, a, convCtx); msg != "" {
				now := e.now()
				s.PersuadedCursor = s.Cursor
				s.LastPersuasionAt = &now
				return []Message{e.bot(s, msg, nil)}
			}
		}

		leads.Fold(&s.Record, s.ServiceKind, s.Cursor, text)
		s.Cursor++
		s.Record.QuestionStep = s.Cursor
		if s.Cursor < n {
			return []Message{e.bot(s, questions[s.Cursor], nil)}
		}
		return []Message{e.timelinePrompt(s)}
	}

	if s.Record.Timeline == "" {
		return e.applyTimeline(s, text)
	}
	return e.applyBudget(s, text)
}

// interject builds a persuasion rebuttal or an upsell message. An empty
// result means nothing to say (for example the upsell debounce is open) and
// the conversation advances normally.
func (e *Engine) interject(s *Session, text string, a analysis.Analysis, convCtx *analysis.Context) string {
	if a.NeedsConvincing {
		strategy := e.strategy.Generate(s.Locale, text, a)
		if strategy == nil {
			return ""
		}
		if e.metrics != nil {
			e.metrics.ObservePersuasion(string(a.ObjectionType))
		}
		e.logger.Info("persuasion interjected",
			"session_id", s.ID, "objection", string(a.ObjectionType), "cursor", s.Cursor)
		return strategy.Render(e.strategy.Closing(s.Locale, a))
	}

	msg := e.upsell.Generate(s.Locale, s.Record.Service, a, convCtx)
	if msg != "" {
		if e.metrics != nil {
			e.metrics.ObserveUpsell()
		}
		e.logger.Info("upsell interjected", "session_id", s.ID, "cursor", s.Cursor)
	}
	return msg
}

func (e *Engine) applyTimeline(s *Session, value string) []Message {
	s.Record.Timeline = value

	var out []Message
	lowered := strings.ToLower(value)
	if strings.Contains(lowered, "гибк") || strings.Contains(lowered, "flexible") {
		s.Record.DiscountEligible = true
		s.Record.DiscountPercent = flexibleTimelineDiscount
		out = append(out, e.bot(s, e.translate(s, i18n.KeyDiscountGranted,
			map[string]string{"percent": strconv.Itoa(flexibleTimelineDiscount)}), nil))
	}
	out = append(out, e.bot(s, e.translate(s, i18n.KeyBudgetQ, nil), e.catalog.BudgetOptions(s.Locale)))
	return out
}

func (e *Engine) applyBudget(s *Session, value string) []Message {
	s.Record.Budget = value
	s.Step = StepContact
	return []Message{e.bot(s, e.translate(s, i18n.KeyAskName, nil), nil)}
}

func (e *Engine) handleContact(ctx context.Context, s *Session, text string) []Message {
	e.user(s, text)
	defer func() { s.UpdatedAt = e.now() }()

	switch {
	case s.Record.Name == "":
		s.Record.Name = text
		return []Message{e.bot(s, e.translate(s, i18n.KeyAskEmail,
			map[string]string{"name": s.Record.Name}), nil)}
	case s.Record.Email == "":
		s.Record.Email = text
		return []Message{e.bot(s, e.translate(s, i18n.KeyAskPhone, nil), nil)}
	default:
		s.Record.Phone = text
		return e.finalize(ctx, s)
	}
}

// finalize submits the record. On failure the record is kept intact so the
// visitor's next reply retries with a fresh phone value.
func (e *Engine) finalize(ctx context.Context, s *Session) []Message {
	leadID, err := e.submit.SubmitChat(ctx, &s.Record)
	if err != nil {
		e.logger.Error("lead submission failed", "session_id", s.ID, "error", err)
		return []Message{e.bot(s, e.translate(s, i18n.KeySubmitError, nil), nil)}
	}
	s.Submitted = true
	s.LeadID = leadID
	s.Step = StepDone
	e.logger.Info("lead submitted", "session_id", s.ID, "lead_id", leadID)
	return []Message{e.bot(s, e.translate(s, i18n.KeyThanks,
		map[string]string{"name": s.Record.Name}), nil)}
}

// SelectTimeline handles a clicked timeline option; no analysis runs.
func (e *Engine) SelectTimeline(s *Session, value string) ([]Message, error) {
	if s.Step == StepDone {
		return nil, ErrConversationDone
	}
	if s.Step != StepDetails || s.Record.Timeline != "" {
		return nil, ErrWrongStep
	}
	option, ok := findOption(e.catalog.TimelineOptions(s.Locale), value)
	if !ok {
		return nil, ErrUnknownOption
	}

	e.user(s, option.Label)
	if n := len(e.questions(s)); s.Cursor < n {
		s.Cursor = n
		s.Record.QuestionStep = n
	}
	out := e.applyTimeline(s, option.Label)
	s.UpdatedAt = e.now()
	return out, nil
}

// SelectBudget handles a clicked budget option; no analysis runs.
func (e *Engine) SelectBudget(s *Session, value string) ([]Message, error) {
	if s.Step == StepDone {
		return nil, ErrConversationDone
	}
	if s.Step != StepDetails || s.Record.Timeline == "" || s.Record.Budget != "" {
		return nil, ErrWrongStep
	}
	option, ok := findOption(e.catalog.BudgetOptions(s.Locale), value)
	if !ok {
		return nil, ErrUnknownOption
	}

	e.user(s, option.Label)
	out := e.applyBudget(s, option.Label)
	s.UpdatedAt = e.now()
	return out, nil
}

func (e *Engine) questions(s *Session) []string {
	return e.catalog.ServiceQuestions(s.Locale, s.ServiceKind)
}

func (e *Engine) timelinePrompt(s *Session) Message {
	return e.bot(s, e.translate(s, i18n.KeyTimelineQ, nil), e.catalog.TimelineOptions(s.Locale))
}

func (e *Engine) translate(s *Session, key string, params map[string]string) string {
	return e.catalog.Translate(s.Locale, key, params)
}

func (e *Engine) bot(s *Session, text string, options []i18n.Option) Message {
	return e.append(s, SenderBot, text, options)
}

func (e *Engine) user(s *Session, text string) Message {
	return e.append(s, SenderUser, text, nil)
}

func (e *Engine) append(s *Session, sender Sender, text string, options []i18n.Option) Message {
	m := Message{
		ID:        e.newID(),
		Text:      text,
		Sender:    sender,
		Timestamp: e.now(),
		Options:   options,
	}
	s.Messages = append(s.Messages, m)
	if e.metrics != nil {
		e.metrics.ObserveMessage(string(sender))
	}
	return m
}

func findOption(options []i18n.Option, value string) (i18n.Option, bool) {
	for _, o := range options {
		if o.Value == value {
			return o, true
		}
	}
	return i18n.Option{}, false
}
