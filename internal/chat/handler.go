package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/ecochat/internal/auth"
	"github.com/2beens/ecochat/internal/middleware"
	"github.com/2beens/ecochat/internal/telemetry/metrics"
	"github.com/2beens/ecochat/internal/telemetry/tracing"
	"github.com/2beens/ecochat/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=chat_test

type chatService interface {
	SendMessage(ctx context.Context, userID, text string) (*Turn, error)
	ConfirmCard(ctx context.Context, userID string, turnID int, cardID int64, edits CardEdits) (*Turn, error)
	DiscardCard(ctx context.Context, userID string, turnID int, cardID int64) (*Turn, error)
	ListTurns(ctx context.Context, userID string) ([]Turn, error)
	ListSummaries(ctx context.Context, userID string) ([]Summary, error)
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

type ListTurnsResponse struct {
	Turns []Turn `json:"turns"`
	Total int    `json:"total"`
}

type ListSummariesResponse struct {
	Summaries []Summary `json:"summaries"`
	Total     int       `json:"total"`
}

type Handler struct {
	service chatService
}

func NewHandler(service chatService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	messagesPerMinLimit int,
) {
	sendMessageHandler := http.Handler(http.HandlerFunc(handler.HandleSendMessage))
	if rateLimiter != nil {
		sendMessageHandler = middleware.RateLimit(
			rateLimiter, "new-chat-message", messagesPerMinLimit, metricsManager,
		)(sendMessageHandler)
	}
	router.Handle("/chat/message", sendMessageHandler).
		Methods("POST", "OPTIONS").Name("new-chat-message")
	router.HandleFunc("/chat/turn/{id}/card/{cardId}/confirm", handler.HandleConfirmCard).
		Methods("PUT", "OPTIONS").Name("confirm-card")
	router.HandleFunc("/chat/turn/{id}/card/{cardId}/discard", handler.HandleDiscardCard).
		Methods("PUT", "OPTIONS").Name("discard-card")
	router.HandleFunc("/chat/turns", handler.HandleListTurns).
		Methods("GET", "OPTIONS").Name("list-chat-turns")
	router.HandleFunc("/chat/summaries", handler.HandleListSummaries).
		Methods("GET", "OPTIONS").Name("list-chat-summaries")
}

func (handler *Handler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.sendMessage")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("send message, unmarshal json params: %s", err)
		http.Error(w, "send message failed", http.StatusBadRequest)
		return
	}

	turn, err := handler.service.SendMessage(ctx, userID, req.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			http.Error(w, "error, message empty", http.StatusBadRequest)
			return
		}
		log.Errorf("send message for %s: %s", userID, err)
		http.Error(w, "send message failed", http.StatusInternalServerError)
		return
	}

	handler.writeTurn(w, turn)
}

func (handler *Handler) HandleConfirmCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.confirmCard")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	turnID, cardID, ok := turnAndCardIDs(w, r)
	if !ok {
		return
	}

	var edits CardEdits
	if r.Body != nil && r.ContentLength > 0 {
		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "invalid content type", http.StatusBadRequest)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&edits); err != nil {
			log.Tracef("confirm card, unmarshal json params: %s", err)
			http.Error(w, "confirm card failed", http.StatusBadRequest)
			return
		}
	}

	turn, err := handler.service.ConfirmCard(ctx, userID, turnID, cardID, edits)
	if err != nil {
		handler.writeCardActionError(w, userID, "confirm", err)
		return
	}

	handler.writeTurn(w, turn)
}

func (handler *Handler) HandleDiscardCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.discardCard")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	turnID, cardID, ok := turnAndCardIDs(w, r)
	if !ok {
		return
	}

	turn, err := handler.service.DiscardCard(ctx, userID, turnID, cardID)
	if err != nil {
		handler.writeCardActionError(w, userID, "discard", err)
		return
	}

	handler.writeTurn(w, turn)
}

func (handler *Handler) HandleListTurns(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.listTurns")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	turns, err := handler.service.ListTurns(ctx, userID)
	if err != nil {
		log.Errorf("list turns for %s: %s", userID, err)
		http.Error(w, "failed to list turns", http.StatusInternalServerError)
		return
	}

	resp := ListTurnsResponse{
		Turns: turns,
		Total: len(turns),
	}
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal turns response: %s", err)
		http.Error(w, "failed to list turns", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}

func (handler *Handler) HandleListSummaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.listSummaries")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	summaries, err := handler.service.ListSummaries(ctx, userID)
	if err != nil {
		log.Errorf("list summaries for %s: %s", userID, err)
		http.Error(w, "failed to list summaries", http.StatusInternalServerError)
		return
	}

	resp := ListSummariesResponse{
		Summaries: summaries,
		Total:     len(summaries),
	}
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal summaries response: %s", err)
		http.Error(w, "failed to list summaries", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}

func (handler *Handler) writeTurn(w http.ResponseWriter, turn *Turn) {
	turnBytes, err := json.Marshal(turn)
	if err != nil {
		log.Errorf("marshal turn response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, turnBytes, http.StatusOK)
}

func (handler *Handler) writeCardActionError(w http.ResponseWriter, userID, action string, err error) {
	switch {
	case errors.Is(err, ErrTurnNotFound):
		http.Error(w, "turn not found", http.StatusNotFound)
	case errors.Is(err, ErrCardNotFound):
		http.Error(w, "card not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidCardEdit):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s card for %s: %s", action, userID, err)
		http.Error(w, action+" card failed", http.StatusInternalServerError)
	}
}

func turnAndCardIDs(w http.ResponseWriter, r *http.Request) (turnID int, cardID int64, ok bool) {
	vars := mux.Vars(r)

	turnID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid turn id", http.StatusBadRequest)
		return 0, 0, false
	}

	cardID, err = strconv.ParseInt(vars["cardId"], 10, 64)
	if err != nil {
		http.Error(w, "invalid card id", http.StatusBadRequest)
		return 0, 0, false
	}

	return turnID, cardID, true
}
