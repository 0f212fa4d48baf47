package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
}

// TopicHandler serves topic REST endpoints, including the dialogue chat.
type TopicHandler struct {
	svc topicService
	gen generatorService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, gen generatorService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, gen: gen, log: logger.With("handler", "topic")}
}

type messageRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Reply string `json:"reply"`
}

// Get handles GET /topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	topicID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	topic, err := h.svc.GetTopic(r.Context(), topicID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(topic))
}

// Message handles POST /topics/{id}/message for dialogue topics.
func (h *TopicHandler) Message(w http.ResponseWriter, r *http.Request) {
	topicID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.gen.Reply(r.Context(), topicID, req.Message)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Reply: reply})
}
