package batch

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"decor-golang/internal/decoration"
	"decor-golang/internal/decoration/validator"
)

type BatchValidator interface {
	ValidateBatch(items []validator.Item) map[string]validator.Result[decoration.Configuration]
}

type Request struct {
	Items []struct {
		ID        string          `json:"id"`
		Candidate json.RawMessage `json:"candidate"`
	} `json:"items"`
}

type Response struct {
	Results  map[string]validator.Result[decoration.Configuration] `json:"results"`
	AllValid bool                                                  `json:"allValid"`
}

// ValidateBatch validates several candidates at once, keyed by the ids the
// caller supplied.
func ValidateBatch(log *slog.Logger, v BatchValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.decoration.ValidateBatch"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("invalid request body", slog.String("error", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Invalid JSON"})
			return
		}

		items := make([]validator.Item, 0, len(req.Items))
		for _, it := range req.Items {
			if it.ID == "" {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, map[string]string{"error": "Every item needs an id"})
				return
			}
			// absent candidate is validated as null
			var candidate any = it.Candidate
			if it.Candidate == nil {
				candidate = nil
			}
			items = append(items, validator.Item{ID: it.ID, Candidate: candidate})
		}

		results := v.ValidateBatch(items)

		resp := Response{Results: results, AllValid: true}
		for _, res := range results {
			if !res.IsValid {
				resp.AllValid = false
				break
			}
		}

		log.Info("batch validated", slog.Int("items", len(items)), slog.Bool("all_valid", resp.AllValid))

		render.JSON(w, r, resp)
	}
}
