package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/ecochat/internal/telemetry/metrics"
	"github.com/2beens/ecochat/internal/telemetry/tracing"
	"github.com/2beens/ecochat/internal/workouts"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=chat_test

const (
	modelCallTimeout = 30 * time.Second

	// shown to the user when the model call fails
	fallbackEcoMessage = "Sorry, something went wrong. Try again?"

	conversationDayFormat = "2006-01-02"
)

var (
	ErrEmptyMessage    = errors.New("empty message")
	ErrCardNotFound    = errors.New("card not found")
	ErrInvalidCardEdit = errors.New("invalid card edit")
)

type chatRepo interface {
	GetOrCreateConversation(ctx context.Context, userID, day string) (*Conversation, error)
	GetConversation(ctx context.Context, userID, day string) (*Conversation, error)
	GetConversationByID(ctx context.Context, id int) (*Conversation, error)
	AddTurn(ctx context.Context, turn Turn) (*Turn, error)
	GetTurn(ctx context.Context, id int) (*Turn, error)
	ListTurns(ctx context.Context, conversationID int) ([]Turn, error)
	ListSummaries(ctx context.Context, conversationID int) ([]Summary, error)
	UpdateTurn(ctx context.Context, id int, cards []Card, state TurnState, workoutSessionID *uuid.UUID) error
}

type modelClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type workoutsStore interface {
	CreateSession(ctx context.Context, session workouts.Session) (*workouts.Session, error)
	AddExercise(ctx context.Context, record workouts.ExerciseRecord) (*workouts.ExerciseRecord, error)
}

type summaryTrigger interface {
	MaybeEnqueue(conversationID, turnCount int) bool
}

// CardEdits carries the user-supplied field edits applied on confirm.
// The exercise name is immutable after extraction and cannot be edited.
type CardEdits struct {
	Sets        *int        `json:"sets,omitempty"`
	MetricType  *MetricType `json:"metricType,omitempty"`
	MetricValue *float64    `json:"metricValue,omitempty"`
	Weight      *float64    `json:"weight,omitempty"`
	WeightUnit  *WeightUnit `json:"weightUnit,omitempty"`
}

// Service drives the chat pipeline: context building, the model call,
// parsing and validation, card creation, persistence and summarization.
type Service struct {
	repo           chatRepo
	model          modelClient
	workoutsStore  workoutsStore
	summaryTrigger summaryTrigger
	cardIDs        *CardIDGenerator
	metricsManager *metrics.Manager

	nowFunc func() time.Time
}

func NewService(
	repo chatRepo,
	model modelClient,
	workoutsStore workoutsStore,
	summaryTrigger summaryTrigger,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		model:          model,
		workoutsStore:  workoutsStore,
		summaryTrigger: summaryTrigger,
		cardIDs:        NewCardIDGenerator(),
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

// SendMessage handles one user submission end to end. Model failures do
// not fail the turn: a fallback assistant message is persisted instead,
// so the conversation always advances to a consistent state.
func (s *Service) SendMessage(ctx context.Context, userID, text string) (_ *Turn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.chat.sendMessage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	day := s.nowFunc().UTC().Format(conversationDayFormat)
	conversation, err := s.repo.GetOrCreateConversation(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("get or create conversation: %w", err)
	}

	// context building is best-effort, a read failure falls back to an
	// empty context instead of failing the user's message
	summaries, err := s.repo.ListSummaries(ctx, conversation.ID)
	if err != nil {
		log.Errorf("list summaries for conversation %d: %s", conversation.ID, err)
	}
	turns, err := s.repo.ListTurns(ctx, conversation.ID)
	priorTurnCount := len(turns)
	if err != nil {
		log.Errorf("list turns for conversation %d: %s", conversation.ID, err)
		// unknown turn count, do not feed a wrong one to the
		// summarization trigger
		priorTurnCount = -1
	}

	prompt := BuildModelPrompt(BuildContext(summaries, turns), text)

	rawResponse, err := s.callModel(ctx, prompt)
	if err != nil {
		log.Errorf("model call for conversation %d: %s", conversation.ID, err)
		if s.metricsManager != nil {
			s.metricsManager.CounterModelCallErrors.Inc()
		}
		return s.persistTurn(ctx, Turn{
			ConversationID: conversation.ID,
			UserText:       text,
			EcoText:        fallbackEcoMessage,
		}, priorTurnCount)
	}

	parsed := ParseResponse(rawResponse)

	var cards []Card
	if parsed.Action == ActionLogWorkouts {
		exercises := ValidateExercises(parsed.Data)
		cards = NewCards(s.cardIDs, exercises)
		if s.metricsManager != nil {
			s.metricsManager.CounterCardsCreated.Add(float64(len(cards)))
		}
	}

	return s.persistTurn(ctx, Turn{
		ConversationID: conversation.ID,
		UserText:       text,
		EcoText:        parsed.Message,
		Cards:          cards,
	}, priorTurnCount)
}

func (s *Service) callModel(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	start := s.nowFunc()
	rawResponse, err := s.model.Generate(ctx, prompt)
	if s.metricsManager != nil {
		s.metricsManager.HistModelCallDuration.Observe(time.Since(start).Seconds())
	}

	return rawResponse, err
}

func (s *Service) persistTurn(ctx context.Context, turn Turn, priorTurnCount int) (*Turn, error) {
	turn.State = DeriveTurnState(turn.Cards)
	turn.CreatedAt = s.nowFunc()

	addedTurn, err := s.repo.AddTurn(ctx, turn)
	if err != nil {
		return nil, fmt.Errorf("add turn: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterChatTurns.Inc()
	}

	if priorTurnCount >= 0 {
		s.summaryTrigger.MaybeEnqueue(turn.ConversationID, priorTurnCount+1)
	}

	return addedTurn, nil
}

// ConfirmCard merges the user's edits into the card, marks it confirmed
// and writes the exercise to the workout store. The first confirmation in
// a turn creates the workout session shared by all its later ones.
func (s *Service) ConfirmCard(
	ctx context.Context,
	userID string,
	turnID int,
	cardID int64,
	edits CardEdits,
) (_ *Turn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.chat.confirmCard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("turn.id", turnID))
	span.SetAttributes(attribute.Int64("card.id", cardID))

	turn, cardIndex, err := s.findCard(ctx, userID, turnID, cardID)
	if err != nil {
		return nil, err
	}

	// confirmed and discarded are terminal, repeated calls are a no-op
	if turn.Cards[cardIndex].State != CardStatePending {
		return turn, nil
	}

	if err := applyEdits(&turn.Cards[cardIndex].Exercise, edits); err != nil {
		return nil, err
	}

	sessionID := turn.WorkoutSessionID
	if sessionID == nil {
		session, err := s.workoutsStore.CreateSession(ctx, workouts.Session{
			UserID:    userID,
			StartedAt: s.nowFunc(),
			Notes:     turn.EcoText,
		})
		if err != nil {
			return nil, fmt.Errorf("create workout session: %w", err)
		}
		sessionID = &session.ID

		// persist the session ref before the exercise write, so a
		// confirm retried after a failure reuses the session instead
		// of creating another one
		turn.WorkoutSessionID = sessionID
		if err := s.repo.UpdateTurn(ctx, turn.ID, turn.Cards, turn.State, sessionID); err != nil {
			return nil, fmt.Errorf("update turn: %w", err)
		}
	}

	exercise := turn.Cards[cardIndex].Exercise
	record := workouts.ExerciseRecord{
		SessionID:   *sessionID,
		Name:        exercise.Name,
		Sets:        exercise.Sets,
		MetricType:  string(exercise.MetricType),
		MetricValue: exercise.MetricValue,
		Weight:      exercise.Weight,
	}
	if exercise.WeightUnit != nil {
		weightUnit := string(*exercise.WeightUnit)
		record.WeightUnit = &weightUnit
	}
	if _, err := s.workoutsStore.AddExercise(ctx, record); err != nil {
		return nil, fmt.Errorf("add workout exercise: %w", err)
	}

	turn.Cards[cardIndex].State = CardStateConfirmed
	turn.State = DeriveTurnState(turn.Cards)
	turn.WorkoutSessionID = sessionID

	if err := s.repo.UpdateTurn(ctx, turn.ID, turn.Cards, turn.State, turn.WorkoutSessionID); err != nil {
		return nil, fmt.Errorf("update turn: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterCardsConfirmed.Inc()
	}

	return turn, nil
}

// DiscardCard marks the card discarded. Nothing is written to the
// workout store and the card stays in the turn for history.
func (s *Service) DiscardCard(
	ctx context.Context,
	userID string,
	turnID int,
	cardID int64,
) (_ *Turn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.chat.discardCard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("turn.id", turnID))
	span.SetAttributes(attribute.Int64("card.id", cardID))

	turn, cardIndex, err := s.findCard(ctx, userID, turnID, cardID)
	if err != nil {
		return nil, err
	}

	if turn.Cards[cardIndex].State != CardStatePending {
		return turn, nil
	}

	turn.Cards[cardIndex].State = CardStateDiscarded
	turn.State = DeriveTurnState(turn.Cards)

	if err := s.repo.UpdateTurn(ctx, turn.ID, turn.Cards, turn.State, turn.WorkoutSessionID); err != nil {
		return nil, fmt.Errorf("update turn: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterCardsDiscarded.Inc()
	}

	return turn, nil
}

// ListTurns returns the turns of the user's conversation for today. No
// conversation yet means no turns, reads never create one.
func (s *Service) ListTurns(ctx context.Context, userID string) (_ []Turn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.chat.listTurns")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	conversation, err := s.todayConversation(ctx, userID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, nil
	}

	return s.repo.ListTurns(ctx, conversation.ID)
}

// ListSummaries returns the summaries of the user's conversation for today.
func (s *Service) ListSummaries(ctx context.Context, userID string) (_ []Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.chat.listSummaries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	conversation, err := s.todayConversation(ctx, userID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, nil
	}

	return s.repo.ListSummaries(ctx, conversation.ID)
}

func (s *Service) todayConversation(ctx context.Context, userID string) (*Conversation, error) {
	day := s.nowFunc().UTC().Format(conversationDayFormat)
	conversation, err := s.repo.GetConversation(ctx, userID, day)
	if err != nil {
		if errors.Is(err, ErrConversationNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return conversation, nil
}

func (s *Service) findCard(ctx context.Context, userID string, turnID int, cardID int64) (*Turn, int, error) {
	turn, err := s.repo.GetTurn(ctx, turnID)
	if err != nil {
		return nil, 0, fmt.Errorf("get turn: %w", err)
	}

	conversation, err := s.repo.GetConversationByID(ctx, turn.ConversationID)
	if err != nil {
		return nil, 0, fmt.Errorf("get conversation of turn: %w", err)
	}
	if conversation.UserID != userID {
		// do not leak the existence of other users' turns
		return nil, 0, ErrTurnNotFound
	}

	for i := range turn.Cards {
		if turn.Cards[i].ID == cardID {
			return turn, i, nil
		}
	}

	return nil, 0, ErrCardNotFound
}

func applyEdits(exercise *Exercise, edits CardEdits) error {
	if edits.Sets != nil {
		if *edits.Sets < 1 {
			return fmt.Errorf("%w: sets must be at least 1", ErrInvalidCardEdit)
		}
		exercise.Sets = *edits.Sets
	}
	if edits.MetricType != nil {
		if !edits.MetricType.IsValid() {
			return fmt.Errorf("%w: unknown metric type %q", ErrInvalidCardEdit, *edits.MetricType)
		}
		exercise.MetricType = *edits.MetricType
	}
	if edits.MetricValue != nil {
		if *edits.MetricValue < 0 {
			return fmt.Errorf("%w: metric value must not be negative", ErrInvalidCardEdit)
		}
		exercise.MetricValue = *edits.MetricValue
	}
	if edits.Weight != nil {
		if *edits.Weight <= 0 {
			// zero weight means "no weight"
			exercise.Weight = nil
			exercise.WeightUnit = nil
		} else {
			exercise.Weight = edits.Weight
		}
	}
	if edits.WeightUnit != nil && exercise.Weight != nil {
		if !edits.WeightUnit.IsValid() {
			return fmt.Errorf("%w: unknown weight unit %q", ErrInvalidCardEdit, *edits.WeightUnit)
		}
		exercise.WeightUnit = edits.WeightUnit
	}
	return nil
}
