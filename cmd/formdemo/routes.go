package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formcascade/pkg/livefield"
	"github.com/dmitrymomot/formcascade/pkg/logger"
)

func newRouter(form *livefield.Form[Booking], log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		signals, err := pageSignals(Booking{Guests: 1})
		if err != nil {
			log.ErrorContext(r.Context(), "failed to encode signals", logger.Handler("page"), logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := bookingPage(form.Manifest(), signals).Render(r.Context(), w); err != nil {
			log.ErrorContext(r.Context(), "failed to render page", logger.Handler("page"), logger.Error(err))
		}
	})
	r.Post("/validate/{property}", form.Handler(func(r *http.Request) string {
		return chi.URLParam(r, "property")
	}))
	r.Post("/submit", form.SubmitHandler(confirmBooking))
	r.Get("/healthz", healthCheck)

	return r
}

// confirmBooking swaps the confirmation into the page once a booking passes
// every rule.
func confirmBooking(_ context.Context, b Booking, sse *datastar.ServerSentEventGenerator) error {
	return sse.PatchElementTempl(bookingConfirmation(b))
}

// requestIDExtractor adds the chi request id to every log record.
func requestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := middleware.GetReqID(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return logger.RequestID(id), true
	}
}
