package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/ledger-tags/internal/domain"
	"github.com/heartmarshall/ledger-tags/internal/filter"
	"github.com/heartmarshall/ledger-tags/internal/service/ledger"
)

// ledgerService defines the minimal interface needed by TransactionHandler.
type ledgerService interface {
	QueryTransactions(ctx context.Context, scope domain.Scope, c filter.Criteria) ([]domain.NormalizedTransaction, error)
	UpdateTransactionTags(ctx context.Context, input ledger.UpdateTransactionTagsInput) ([]domain.NormalizedTransaction, error)
}

// TransactionHandler serves the ledger endpoints.
type TransactionHandler struct {
	svc          ledgerService
	maxBodyBytes int64
	log          *slog.Logger
}

// NewTransactionHandler creates a TransactionHandler.
func NewTransactionHandler(svc ledgerService, maxBodyBytes int64, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{svc: svc, maxBodyBytes: maxBodyBytes, log: logger.With("handler", "transaction")}
}

type transactionResponse struct {
	ID          string      `json:"id"`
	Source      string      `json:"source"`
	Date        int64       `json:"date"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Tags        string      `json:"tags"`
}

// List handles GET /transactions/{source}. source may also be "all".
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := domain.ParseScope(chi.URLParam(r, "source"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rows, err := h.svc.QueryTransactions(r.Context(), scope, criteriaFromQuery(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponses(rows))
}

// UpdateTags handles PUT /transactions/{source}/{id}/tags. The body is the
// new tag text; the query string carries the filter the client is showing.
func (h *TransactionHandler) UpdateTags(w http.ResponseWriter, r *http.Request) {
	source, err := domain.ParseSource(chi.URLParam(r, "source"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	// chi matches on RawPath when it is set, so an id like "A%2F1" arrives escaped.
	id, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("transaction_id", "invalid escape sequence"))
		return
	}

	text, err := readTagText(w, r, h.maxBodyBytes)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	rows, err := h.svc.UpdateTransactionTags(r.Context(), ledger.UpdateTransactionTagsInput{
		Source:        source,
		TransactionID: id,
		TagText:       text,
		Criteria:      criteriaFromQuery(r),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponses(rows))
}

func criteriaFromQuery(r *http.Request) filter.Criteria {
	q := r.URL.Query()
	return filter.Criteria{
		Search:   q.Get("search"),
		Tags:     q.Get("tags"),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
	}
}

func toTransactionResponses(rows []domain.NormalizedTransaction) []transactionResponse {
	out := make([]transactionResponse, len(rows))
	for i, t := range rows {
		out[i] = transactionResponse{
			ID:          t.ID,
			Source:      t.Source.String(),
			Date:        t.DateMillis(),
			Amount:      json.Number(t.Amount.StringFixed(2)),
			Description: t.Description,
			Tags:        t.Tags,
		}
	}
	return out
}
