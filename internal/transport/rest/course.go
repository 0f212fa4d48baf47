package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/linguacourse-backend/internal/domain"
	"github.com/heartmarshall/linguacourse-backend/internal/generator"
	"github.com/heartmarshall/linguacourse-backend/internal/service/content"
	"github.com/heartmarshall/linguacourse-backend/pkg/ctxutil"
)

// contentService defines the minimal interface needed by CourseHandler.
type contentService interface {
	CreateCourse(ctx context.Context, ownerID uuid.UUID, input content.CreateCourseInput) (*domain.Course, error)
	GetCourse(ctx context.Context, courseID, requesterID uuid.UUID) (*domain.Course, error)
	ListCourses(ctx context.Context, ownerID uuid.UUID) ([]*domain.Course, error)
	CourseTopics(ctx context.Context, courseID, requesterID uuid.UUID, category domain.TopicCategory) ([]*domain.Topic, error)
}

// generatorService defines the generation interface needed by CourseHandler.
type generatorService interface {
	GenerateTopics(ctx context.Context, courseID uuid.UUID, category domain.TopicCategory) ([]generator.TopicSummary, error)
	Reply(ctx context.Context, topicID uuid.UUID, message string) (string, error)
}

// CourseHandler serves course and generation REST endpoints.
type CourseHandler struct {
	svc contentService
	gen generatorService
	log *slog.Logger
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(svc contentService, gen generatorService, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, gen: gen, log: logger.With("handler", "course")}
}

type createCourseRequest struct {
	Name             string `json:"name"`
	NativeLanguage   string `json:"nativeLanguage"`
	LearningLanguage string `json:"learningLanguage"`
	Interest         string `json:"interest"`
	Level            string `json:"level"`
}

type courseResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	NativeLanguage   string    `json:"nativeLanguage"`
	LearningLanguage string    `json:"learningLanguage"`
	Interest         string    `json:"interest"`
	Level            string    `json:"level"`
	GrammarTopics    []string  `json:"grammarTopics"`
	VocabularyTopics []string  `json:"vocabularyTopics"`
	DialogueTopics   []string  `json:"dialogueTopics"`
	CreatedAt        time.Time `json:"createdAt"`
}

type topicResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Category    string        `json:"category"`
	Content     string        `json:"content,omitempty"`
	Description string        `json:"description,omitempty"`
	Status      string        `json:"status"`
	Items       []domain.Item `json:"items"`
}

type topicSummaryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func toCourseResponse(c *domain.Course) courseResponse {
	return courseResponse{
		ID:               c.ID.String(),
		Name:             c.Name,
		NativeLanguage:   c.NativeLanguage,
		LearningLanguage: c.LearningLanguage,
		Interest:         c.Interest,
		Level:            c.Level,
		GrammarTopics:    idStrings(c.GrammarTopicIDs),
		VocabularyTopics: idStrings(c.VocabularyTopicIDs),
		DialogueTopics:   idStrings(c.DialogueTopicIDs),
		CreatedAt:        c.CreatedAt,
	}
}

func toTopicResponse(t *domain.Topic) topicResponse {
	items := t.Items
	if items == nil {
		items = []domain.Item{}
	}
	return topicResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Category:    t.Category.String(),
		Content:     t.Content,
		Description: t.Description,
		Status:      t.Status.String(),
		Items:       items,
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

// Create handles POST /courses.
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	var req createCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.svc.CreateCourse(r.Context(), userID, content.CreateCourseInput{
		Name:             req.Name,
		NativeLanguage:   req.NativeLanguage,
		LearningLanguage: req.LearningLanguage,
		Interest:         req.Interest,
		Level:            req.Level,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCourseResponse(course))
}

// List handles GET /courses.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	courses, err := h.svc.ListCourses(r.Context(), userID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]courseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, toCourseResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /courses/{id}.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	courseID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	course, err := h.svc.GetCourse(r.Context(), courseID, userID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCourseResponse(course))
}

// Topics handles GET /courses/{id}/topics/{category}.
func (h *CourseHandler) Topics(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	courseID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}
	category := domain.TopicCategory(r.PathValue("category"))

	topics, err := h.svc.CourseTopics(r.Context(), courseID, userID, category)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]topicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, toTopicResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

// Generate handles POST /courses/{id}/generate/{category}. The request is
// held open for the whole pipeline, which can take a while.
func (h *CourseHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	courseID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}
	category := domain.TopicCategory(r.PathValue("category"))

	// The generator itself has no owner concept; the ownership gate is here.
	if _, err := h.svc.GetCourse(r.Context(), courseID, userID); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	summaries, err := h.gen.GenerateTopics(r.Context(), courseID, category)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]topicSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, topicSummaryResponse{ID: s.ID.String(), Title: s.Title, Description: s.Description})
	}
	writeJSON(w, http.StatusCreated, out)
}
