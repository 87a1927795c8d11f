package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/application/bins"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/application/webevents"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("waste-bin-mgmt/api")

var binsGeneratedMessage = fmt.Sprintf("%d new bins with Berlin coordinates generated successfully", bins.GenerationSize)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, svc bins.BinService, we webevents.WebEvents) *chi.Mux {
	log := logging.GetFromContext(ctx)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Post("/generate_bins", generateBinsHandler(log, svc))
	router.Get("/bins", listBinsHandler(log, svc))

	if we != nil {
		router.Get("/api/v0/events", we.Handler().ServeHTTP)
	}

	return router
}

func generateBinsHandler(log zerolog.Logger, svc bins.BinService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "generate-bins")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		err = svc.RegenerateBins(ctx)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to generate bins")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: binsGeneratedMessage})
	}
}

func listBinsHandler(log zerolog.Logger, svc bins.BinService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "list-bins")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		result, err := svc.ListBins(ctx)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to fetch bins")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
			return
		}

		requestLogger.Debug().Msgf("returning %d bins", len(result))

		writeJSON(w, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}
