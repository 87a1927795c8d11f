package gui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/application/bins"
	"github.com/diwise/waste-bin-mgmt/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("waste-bin-mgmt/gui")

//go:embed templates/index.html
var templates embed.FS

var index = template.Must(template.ParseFS(templates, "templates/index.html"))

const (
	FillLow    string = "green"
	FillMedium string = "yellow"
	FillHigh   string = "red"
)

// FillCategory maps a fill level to the colour used for the bin on the map.
func FillCategory(fillLevel int) string {
	switch {
	case fillLevel <= 33:
		return FillLow
	case fillLevel <= 66:
		return FillMedium
	default:
		return FillHigh
	}
}

func RegisterHandlers(log zerolog.Logger, router *chi.Mux, svc bins.BinService) *chi.Mux {
	router.Get("/gui", NewGuiHandler(log, svc))
	return router
}

type binView struct {
	types.Bin
	Category string
}

func NewGuiHandler(log zerolog.Logger, svc bins.BinService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "gui")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		stored, err := svc.ListBins(ctx)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to fetch bins")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		items := lo.Map(stored, func(b types.Bin, _ int) binView {
			return binView{Bin: b, Category: FillCategory(b.FillLevel)}
		})

		data := struct {
			Title  string
			Counts map[string]int
			Items  []binView
		}{
			Title:  "Bins",
			Counts: map[string]int{},
			Items:  items,
		}

		for _, b := range items {
			data.Counts[b.Category]++
		}

		w.Header().Add("Content-Type", "text/html; charset=utf-8")
		if err = index.Execute(w, data); err != nil {
			requestLogger.Error().Err(err).Msg("unable to render template")
		}
	}
}
