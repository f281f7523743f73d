package controllers

import (
	"net/http"

	"github.com/Yackxz2004/Estadia-Banquetes/api/responses"
	"github.com/Yackxz2004/Estadia-Banquetes/api/validators"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/activities"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/reservations"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/logger"
)

type createTastingRequest struct {
	Name         string                   `json:"name" validate:"required"`
	GuestCount   int                      `json:"guest_count" validate:"gte=0"`
	Coordinator  string                   `json:"coordinator" validate:"required"`
	MenuNotes    string                   `json:"menu_notes" validate:"required"`
	Status       *string                  `json:"status,omitempty"`
	TastingDate  string                   `json:"tasting_date" validate:"required"`
	TastingTime  string                   `json:"tasting_time" validate:"required"`
	EventDate    string                   `json:"event_date" validate:"required"`
	Reservations []reservationLineRequest `json:"reservations,omitempty" validate:"omitempty,dive"`
}

type updateTastingRequest struct {
	Name         *string                   `json:"name,omitempty" validate:"omitempty,min=1"`
	GuestCount   *int                      `json:"guest_count,omitempty" validate:"omitempty,gte=0"`
	Coordinator  *string                   `json:"coordinator,omitempty" validate:"omitempty,min=1"`
	MenuNotes    *string                   `json:"menu_notes,omitempty" validate:"omitempty,min=1"`
	Status       *string                   `json:"status,omitempty"`
	TastingDate  *string                   `json:"tasting_date,omitempty"`
	TastingTime  *string                   `json:"tasting_time,omitempty"`
	EventDate    *string                   `json:"event_date,omitempty"`
	Reservations *[]reservationLineRequest `json:"reservations,omitempty" validate:"omitempty,dive"`
}

type tastingResponse struct {
	models.Tasting
	Reservations []models.ReservationLink `json:"reservations"`
}

func ListTastings(svc *activities.Service[models.Tasting], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := statusFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tastings, err := svc.List(r.Context(), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, tastings)
	}
}

func GetTasting(svc *activities.Service[models.Tasting], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tasting, links, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, tastingResponse{Tasting: *tasting, Reservations: links})
	}
}

func CreateTasting(svc *activities.Service[models.Tasting], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTastingRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tasting := models.Tasting{
			Name:        req.Name,
			GuestCount:  req.GuestCount,
			Coordinator: req.Coordinator,
			MenuNotes:   req.MenuNotes,
			Status:      enums.ActivityStatusPending,
		}

		if req.Status != nil {
			status, perr := enums.ParseActivityStatus(*req.Status)
			if perr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, perr, "invalid status"))
				return
			}
			tasting.Status = status
		}

		tastingDate, err := parseDateField("tasting_date", req.TastingDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		tasting.TastingDate = tastingDate

		if err := validateClockField("tasting_time", req.TastingTime); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		tasting.TastingTime = req.TastingTime

		eventDate, err := parseDateField("event_date", req.EventDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		tasting.EventDate = eventDate

		lines, err := toReservationLines(req.Reservations)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), tasting, lines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		links, err := linksFor(r, svc, created.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, tastingResponse{Tasting: *created, Reservations: links})
	}
}

func UpdateTasting(svc *activities.Service[models.Tasting], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateTastingRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		stored, _, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		tasting := *stored

		if req.Name != nil {
			tasting.Name = *req.Name
		}
		if req.GuestCount != nil {
			tasting.GuestCount = *req.GuestCount
		}
		if req.Coordinator != nil {
			tasting.Coordinator = *req.Coordinator
		}
		if req.MenuNotes != nil {
			tasting.MenuNotes = *req.MenuNotes
		}
		if req.Status != nil {
			status, perr := enums.ParseActivityStatus(*req.Status)
			if perr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, perr, "invalid status"))
				return
			}
			tasting.Status = status
		}
		if req.TastingDate != nil {
			tastingDate, perr := parseDateField("tasting_date", *req.TastingDate)
			if perr != nil {
				responses.WriteError(r.Context(), logg, w, perr)
				return
			}
			tasting.TastingDate = tastingDate
		}
		if req.TastingTime != nil {
			if perr := validateClockField("tasting_time", *req.TastingTime); perr != nil {
				responses.WriteError(r.Context(), logg, w, perr)
				return
			}
			tasting.TastingTime = *req.TastingTime
		}
		if req.EventDate != nil {
			eventDate, perr := parseDateField("event_date", *req.EventDate)
			if perr != nil {
				responses.WriteError(r.Context(), logg, w, perr)
				return
			}
			tasting.EventDate = eventDate
		}

		var lines []reservations.Line
		replaceLines := req.Reservations != nil
		if replaceLines {
			lines, err = toReservationLines(*req.Reservations)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		updated, err := svc.Update(r.Context(), tasting, lines, replaceLines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		links, err := linksFor(r, svc, updated.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, tastingResponse{Tasting: *updated, Reservations: links})
	}
}

func DeleteTasting(svc *activities.Service[models.Tasting], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
