package controllers

import (
	"net/http"
	"time"

	"github.com/Yackxz2004/Estadia-Banquetes/api/responses"
	"github.com/Yackxz2004/Estadia-Banquetes/api/validators"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/calendar"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/logger"
)

// CalendarFeed returns the merged schedule between the from/to query dates.
// Without parameters it covers the current month.
func CalendarFeed(svc calendar.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, err := validators.QueryDate(r, "from")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		to, err := validators.QueryDate(r, "to")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		now := time.Now()
		if from == nil {
			monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
			from = &monthStart
		}
		if to == nil {
			monthEnd := from.AddDate(0, 1, 0)
			to = &monthEnd
		}

		entries, err := svc.Feed(r.Context(), *from, *to)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}
