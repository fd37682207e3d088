package formcheck

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/posecoach/internal/exercises"
	"github.com/2beens/posecoach/internal/pose"
	"github.com/2beens/posecoach/internal/telemetry/tracing"
	"github.com/2beens/posecoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// longer values are clamped, they would overflow time.Duration
const maxElapsed = 24 * time.Hour

type catalog interface {
	Lookup(nameOrSlug string) (exercises.Definition, error)
}

type EvaluateRequest struct {
	Pose      *pose.Pose `json:"pose"`
	ElapsedMs int64      `json:"elapsedMs"`
}

type Handler struct {
	catalog  catalog
	minScore float64
}

func NewHandler(catalog catalog, minScore float64) *Handler {
	return &Handler{
		catalog:  catalog,
		minScore: minScore,
	}
}

// HandleEvaluate runs a single stateless evaluation of the posted pose.
func (handler *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.formcheck.evaluate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	slug := mux.Vars(r)["slug"]
	span.SetAttributes(attribute.String("exercise", slug))

	def, err := handler.catalog.Lookup(slug)
	if err != nil {
		if errors.Is(err, exercises.ErrExerciseNotFound) {
			http.Error(w, "exercise not supported", http.StatusNotFound)
			return
		}
		log.Errorf("evaluate, lookup exercise %s: %s", slug, err)
		http.Error(w, "evaluate failed", http.StatusInternalServerError)
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("evaluate, unmarshal json params: %s", err)
		http.Error(w, "evaluate failed", http.StatusBadRequest)
		return
	}
	if req.ElapsedMs < 0 {
		http.Error(w, "error, elapsed time negative", http.StatusBadRequest)
		return
	}

	elapsed := maxElapsed
	if req.ElapsedMs < maxElapsed.Milliseconds() {
		elapsed = time.Duration(req.ElapsedMs) * time.Millisecond
	}

	res := Evaluate(req.Pose, def, elapsed, WithMinScore(handler.minScore))
	span.SetAttributes(attribute.Bool("good_form", res.IsGoodForm))

	pkg.WriteJSONResponseOK(w, res)
}
