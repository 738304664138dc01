package rest

import (
	"log/slog"
	"net/http"

	"github.com/mkolosov/noteflow-srs/internal/config"
	"github.com/mkolosov/noteflow-srs/internal/service/review"
	"github.com/mkolosov/noteflow-srs/internal/transport/middleware"
)

// NewRouter assembles the REST API with the standard middleware chain:
// request-id, logging, recovery, CORS.
func NewRouter(svc *review.Service, logger *slog.Logger, version string, cors config.CORSConfig) http.Handler {
	reviews := NewReviewHandler(svc, logger)
	health := NewHealthHandler(version)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/review", reviews.Review)
	mux.HandleFunc("POST /v1/preview", reviews.Preview)
	mux.HandleFunc("POST /v1/retrievability", reviews.Retrievability)
	mux.HandleFunc("GET /v1/due", reviews.Due)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /live", health.Live)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cors),
	)
	return chain(mux)
}
