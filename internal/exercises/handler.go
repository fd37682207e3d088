package exercises

import (
	"errors"
	"net/http"

	"github.com/2beens/posecoach/internal/telemetry/tracing"
	"github.com/2beens/posecoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type DefinitionResponse struct {
	Definition
	TargetDurationSec float64 `json:"targetDurationSec,omitempty"`
}

func NewDefinitionResponse(def Definition) DefinitionResponse {
	return DefinitionResponse{
		Definition:        def,
		TargetDurationSec: def.TargetDuration.Seconds(),
	}
}

type ListResponse struct {
	Exercises []DefinitionResponse `json:"exercises"`
	Total     int                  `json:"total"`
}

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	defs := handler.catalog.List()
	resp := ListResponse{
		Exercises: make([]DefinitionResponse, 0, len(defs)),
		Total:     len(defs),
	}
	for _, def := range defs {
		resp.Exercises = append(resp.Exercises, NewDefinitionResponse(def))
	}

	pkg.WriteJSONResponseOK(w, resp)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	slug := mux.Vars(r)["slug"]
	span.SetAttributes(attribute.String("exercise", slug))

	def, err := handler.catalog.Lookup(slug)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not supported", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %s: %s", slug, err)
		http.Error(w, "get exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, NewDefinitionResponse(def))
}
