package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/ecochat/internal/auth"
	"github.com/2beens/ecochat/internal/telemetry/tracing"
	"github.com/2beens/ecochat/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

const defaultSessionsLimit = 30

type workoutsRepo interface {
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	ListSessions(ctx context.Context, userID string, limit int) ([]Session, error)
	ListExercises(ctx context.Context, sessionID uuid.UUID) ([]ExerciseRecord, error)
}

type ListSessionsResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type SessionExercisesResponse struct {
	Session   Session          `json:"session"`
	Exercises []ExerciseRecord `json:"exercises"`
}

type Handler struct {
	repo workoutsRepo
}

func NewHandler(repo workoutsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts", handler.HandleListSessions).
		Methods("GET", "OPTIONS").Name("list-workouts")
	router.HandleFunc("/workouts/{id}/exercises", handler.HandleSessionExercises).
		Methods("GET", "OPTIONS").Name("workout-exercises")
}

func (handler *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := defaultSessionsLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsedLimit, err := strconv.Atoi(limitParam)
		if err != nil || parsedLimit <= 0 {
			http.Error(w, "invalid limit param", http.StatusBadRequest)
			return
		}
		limit = parsedLimit
	}

	sessions, err := handler.repo.ListSessions(ctx, userID, limit)
	if err != nil {
		log.Errorf("list workout sessions for %s: %s", userID, err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	resp := ListSessionsResponse{
		Sessions: sessions,
		Total:    len(sessions),
	}
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal workout sessions response: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}

func (handler *Handler) HandleSessionExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercises")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	session, err := handler.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout session %s: %s", sessionID, err)
		http.Error(w, "failed to get session", http.StatusInternalServerError)
		return
	}

	if session.UserID != userID {
		// do not leak the existence of other users' sessions
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	exercises, err := handler.repo.ListExercises(ctx, sessionID)
	if err != nil {
		log.Errorf("list exercises for session %s: %s", sessionID, err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	resp := SessionExercisesResponse{
		Session:   *session,
		Exercises: exercises,
	}
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal session exercises response: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}
