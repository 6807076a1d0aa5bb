package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/ecochat/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrTurnNotFound         = errors.New("turn not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetOrCreateConversation returns the conversation of the given user for
// the given day, creating it on the first message of that day.
func (r *Repo) GetOrCreateConversation(ctx context.Context, userID, day string) (_ *Conversation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.getOrCreateConversation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("day", day))

	conversation, err := r.GetConversation(ctx, userID, day)
	if err == nil {
		return conversation, nil
	}
	if !errors.Is(err, ErrConversationNotFound) {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO conversation (user_id, day, created_at)
				VALUES ($1, $2, $3)
			ON CONFLICT (user_id, day) DO UPDATE SET user_id = EXCLUDED.user_id
			RETURNING id, created_at;`,
		userID, day, time.Now(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	conversation = &Conversation{
		UserID: userID,
		Day:    day,
	}
	if err := rows.Scan(&conversation.ID, &conversation.CreatedAt); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("conversation.id", conversation.ID))

	return conversation, nil
}

func (r *Repo) GetConversation(ctx context.Context, userID, day string) (_ *Conversation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.getConversation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, day, created_at FROM conversation WHERE user_id = $1 AND day = $2;`,
		userID, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrConversationNotFound
	}

	var conversation Conversation
	if err := rows.Scan(
		&conversation.ID, &conversation.UserID, &conversation.Day, &conversation.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &conversation, nil
}

func (r *Repo) GetConversationByID(ctx context.Context, id int) (_ *Conversation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.getConversationByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("conversation.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, day, created_at FROM conversation WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrConversationNotFound
	}

	var conversation Conversation
	if err := rows.Scan(
		&conversation.ID, &conversation.UserID, &conversation.Day, &conversation.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &conversation, nil
}

func (r *Repo) AddTurn(ctx context.Context, turn Turn) (_ *Turn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.addTurn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cardsJson, err := json.Marshal(turn.Cards)
	if err != nil {
		return nil, fmt.Errorf("marshal cards: %w", err)
	}

	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO turn
				(conversation_id, user_text, eco_text, cards, state, workout_session_id, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		turn.ConversationID, turn.UserText, turn.EcoText, cardsJson,
		turn.State, turn.WorkoutSessionID, turn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	if err := rows.Scan(&turn.ID); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("turn.id", turn.ID))

	return &turn, nil
}

func (r *Repo) GetTurn(ctx context.Context, id int) (_ *Turn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.getTurn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("turn.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, conversation_id, user_text, eco_text, cards, state, workout_session_id, created_at
			FROM turn WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	turns, err := r.rows2turns(rows)
	if err != nil {
		return nil, err
	}

	if len(turns) != 1 {
		return nil, ErrTurnNotFound
	}

	return &turns[0], nil
}

func (r *Repo) ListTurns(ctx context.Context, conversationID int) (_ []Turn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.listTurns")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("conversation.id", conversationID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, conversation_id, user_text, eco_text, cards, state, workout_session_id, created_at
			FROM turn
			WHERE conversation_id = $1
			ORDER BY created_at, id;`,
		conversationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2turns(rows)
}

// UpdateTurn patches the cards, derived state and workout session of a turn.
func (r *Repo) UpdateTurn(
	ctx context.Context,
	id int,
	cards []Card,
	state TurnState,
	workoutSessionID *uuid.UUID,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.updateTurn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("turn.id", id))

	cardsJson, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("marshal cards: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE turn SET cards = $1, state = $2, workout_session_id = $3 WHERE id = $4;`,
		cardsJson, state, workoutSessionID, id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrTurnNotFound
	}

	return nil
}

func (r *Repo) AddSummary(ctx context.Context, summary Summary) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.addSummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if summary.CreatedAt.IsZero() {
		summary.CreatedAt = time.Now()
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO summary (conversation_id, content, message_count, created_at)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		summary.ConversationID, summary.Content, summary.MessageCount, summary.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	if err := rows.Scan(&summary.ID); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("summary.id", summary.ID))

	return &summary, nil
}

func (r *Repo) ListSummaries(ctx context.Context, conversationID int) (_ []Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.listSummaries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("conversation.id", conversationID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, conversation_id, content, message_count, created_at
			FROM summary
			WHERE conversation_id = $1
			ORDER BY created_at, id;`,
		conversationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var summaries []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(
			&s.ID, &s.ConversationID, &s.Content, &s.MessageCount, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}

func (r *Repo) rows2turns(rows pgx.Rows) ([]Turn, error) {
	var turns []Turn
	for rows.Next() {
		var turn Turn
		var cardsBytes []byte
		if err := rows.Scan(
			&turn.ID, &turn.ConversationID, &turn.UserText, &turn.EcoText,
			&cardsBytes, &turn.State, &turn.WorkoutSessionID, &turn.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(cardsBytes) > 0 {
			if err := json.Unmarshal(cardsBytes, &turn.Cards); err != nil {
				return nil, fmt.Errorf("unmarshal cards of turn %d: %w", turn.ID, err)
			}
		}

		turns = append(turns, turn)
	}
	return turns, nil
}
