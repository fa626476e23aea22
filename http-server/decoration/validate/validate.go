package validate

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"decor-golang/internal/decoration"
	"decor-golang/internal/decoration/validator"
)

type DetailsValidator interface {
	Validate(candidate any) validator.Result[decoration.Configuration]
	ValidateTechniqueDetails(t decoration.Technique, candidate any) (validator.Result[json.RawMessage], bool)
}

// Validate checks a decoration_details candidate without saving it. The
// outcome is always 200; invalid candidates carry their error tree.
func Validate(log *slog.Logger, v DetailsValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.decoration.Validate"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var candidate json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
			log.Warn("invalid request body", slog.String("error", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Invalid JSON"})
			return
		}

		res := v.Validate(candidate)
		if !res.IsValid {
			log.Debug("decoration details rejected", slog.Any("paths", res.Errors.Paths()))
		}

		render.JSON(w, r, res)
	}
}

// ValidateTechnique checks the details object of the technique named in the
// {technique} route parameter.
func ValidateTechnique(log *slog.Logger, v DetailsValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.decoration.ValidateTechnique"

		technique := decoration.Technique(chi.URLParam(r, "technique"))

		var candidate json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
			log.Warn("invalid request body", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Invalid JSON"})
			return
		}

		res, ok := v.ValidateTechniqueDetails(technique, candidate)
		if !ok {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, map[string]string{"error": "Unknown decoration technique"})
			return
		}

		render.JSON(w, r, res)
	}
}
