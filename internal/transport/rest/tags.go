package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/ledger-tags/internal/domain"
	"github.com/heartmarshall/ledger-tags/internal/service/tag"
)

// tagService defines the minimal interface needed by TagHandler.
type tagService interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	UpsertTags(ctx context.Context, input tag.UpsertTagsInput) ([]domain.Tag, error)
	DeleteTag(ctx context.Context, input tag.DeleteTagInput) error
}

// TagHandler serves the tag catalogue endpoints.
type TagHandler struct {
	svc          tagService
	maxBodyBytes int64
	log          *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, maxBodyBytes int64, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, maxBodyBytes: maxBodyBytes, log: logger.With("handler", "tag")}
}

type tagResponse struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// List handles GET /tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponses(tags))
}

// Upsert handles POST /tags. The body is whitespace-separated tag text.
func (h *TagHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	text, err := readTagText(w, r, h.maxBodyBytes)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	tags, err := h.svc.UpsertTags(r.Context(), tag.UpsertTagsInput{Text: text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponses(tags))
}

// Delete handles DELETE /tags/{id}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tag id")
		return
	}

	if err := h.svc.DeleteTag(r.Context(), tag.DeleteTagInput{ID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTagResponses(tags []domain.Tag) []tagResponse {
	out := make([]tagResponse, len(tags))
	for i, t := range tags {
		out[i] = tagResponse{ID: t.ID, Value: t.Value}
	}
	return out
}
