package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/invopop/jsonschema"
)

type SchemaSource func() (*jsonschema.Schema, error)

// GetSchema serves the JSON Schema document of decoration_details.
func GetSchema(log *slog.Logger, source SchemaSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.decoration.GetSchema"

		doc, err := source()
		if err != nil {
			log.Error("failed to build schema document", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "Internal server error"})
			return
		}

		w.Header().Set("Cache-Control", "public, max-age=300")
		render.JSON(w, r, doc)
	}
}
