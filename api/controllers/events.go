package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Yackxz2004/Estadia-Banquetes/api/responses"
	"github.com/Yackxz2004/Estadia-Banquetes/api/validators"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/activities"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/reservations"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/logger"
)

type reservationLineRequest struct {
	ItemCategory string `json:"item_category" validate:"required"`
	ItemID       string `json:"item_id" validate:"required,uuid"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
}

type createEventRequest struct {
	Name         string                   `json:"name" validate:"required"`
	EventTypeID  *string                  `json:"event_type_id,omitempty" validate:"omitempty,uuid"`
	GuestCount   int                      `json:"guest_count" validate:"gte=0"`
	Coordinator  string                   `json:"coordinator" validate:"required"`
	Venue        string                   `json:"venue" validate:"required"`
	Status       *string                  `json:"status,omitempty"`
	StartDate    string                   `json:"start_date" validate:"required"`
	StartTime    string                   `json:"start_time" validate:"required"`
	Reservations []reservationLineRequest `json:"reservations,omitempty" validate:"omitempty,dive"`
}

type updateEventRequest struct {
	Name         *string                   `json:"name,omitempty" validate:"omitempty,min=1"`
	EventTypeID  *string                   `json:"event_type_id,omitempty" validate:"omitempty,uuid"`
	GuestCount   *int                      `json:"guest_count,omitempty" validate:"omitempty,gte=0"`
	Coordinator  *string                   `json:"coordinator,omitempty" validate:"omitempty,min=1"`
	Venue        *string                   `json:"venue,omitempty" validate:"omitempty,min=1"`
	Status       *string                   `json:"status,omitempty"`
	StartDate    *string                   `json:"start_date,omitempty"`
	StartTime    *string                   `json:"start_time,omitempty"`
	Reservations *[]reservationLineRequest `json:"reservations,omitempty" validate:"omitempty,dive"`
}

type eventResponse struct {
	models.Event
	Reservations []models.ReservationLink `json:"reservations"`
}

func ListEvents(svc *activities.Service[models.Event], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := statusFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		events, err := svc.List(r.Context(), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, events)
	}
}

func GetEvent(svc *activities.Service[models.Event], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event, links, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, eventResponse{Event: *event, Reservations: links})
	}
}

func CreateEvent(svc *activities.Service[models.Event], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEventRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event := models.Event{
			Name:        req.Name,
			GuestCount:  req.GuestCount,
			Coordinator: req.Coordinator,
			Venue:       req.Venue,
			Status:      enums.ActivityStatusPending,
		}

		eventTypeID, err := parseOptionalUUID(req.EventTypeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		event.EventTypeID = eventTypeID

		if req.Status != nil {
			status, perr := enums.ParseActivityStatus(*req.Status)
			if perr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, perr, "invalid status"))
				return
			}
			event.Status = status
		}

		startDate, err := parseDateField("start_date", req.StartDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		event.StartDate = startDate

		if err := validateClockField("start_time", req.StartTime); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		event.StartTime = req.StartTime

		lines, err := toReservationLines(req.Reservations)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), event, lines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		links, err := linksFor(r, svc, created.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, eventResponse{Event: *created, Reservations: links})
	}
}

func UpdateEvent(svc *activities.Service[models.Event], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateEventRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		stored, _, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		event := *stored

		if req.Name != nil {
			event.Name = *req.Name
		}
		if req.EventTypeID != nil {
			eventTypeID, perr := parseOptionalUUID(req.EventTypeID)
			if perr != nil {
				responses.WriteError(r.Context(), logg, w, perr)
				return
			}
			event.EventTypeID = eventTypeID
			event.EventType = nil
		}
		if req.GuestCount != nil {
			event.GuestCount = *req.GuestCount
		}
		if req.Coordinator != nil {
			event.Coordinator = *req.Coordinator
		}
		if req.Venue != nil {
			event.Venue = *req.Venue
		}
		if req.Status != nil {
			status, perr := enums.ParseActivityStatus(*req.Status)
			if perr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, perr, "invalid status"))
				return
			}
			event.Status = status
		}
		if req.StartDate != nil {
			startDate, perr := parseDateField("start_date", *req.StartDate)
			if perr != nil {
				responses.WriteError(r.Context(), logg, w, perr)
				return
			}
			event.StartDate = startDate
		}
		if req.StartTime != nil {
			if perr := validateClockField("start_time", *req.StartTime); perr != nil {
				responses.WriteError(r.Context(), logg, w, perr)
				return
			}
			event.StartTime = *req.StartTime
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

		updated, err := svc.Update(r.Context(), event, lines, replaceLines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		links, err := linksFor(r, svc, updated.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, eventResponse{Event: *updated, Reservations: links})
	}
}

func DeleteEvent(svc *activities.Service[models.Event], logg *logger.Logger) http.HandlerFunc {
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

func linksFor[T activities.Record](r *http.Request, svc *activities.Service[T], id uuid.UUID) ([]models.ReservationLink, error) {
	_, links, err := svc.Get(r.Context(), id)
	return links, err
}

func statusFilter(r *http.Request) (*enums.ActivityStatus, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, nil
	}
	status, err := enums.ParseActivityStatus(raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
	}
	return &status, nil
}

func toReservationLines(reqs []reservationLineRequest) ([]reservations.Line, error) {
	lines := make([]reservations.Line, 0, len(reqs))
	for _, req := range reqs {
		category, err := enums.ParseItemCategory(req.ItemCategory)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid reservation category")
		}
		itemID, err := uuid.Parse(req.ItemID)
		if err != nil {
			return nil, validators.InvalidUUID(req.ItemID, err)
		}
		lines = append(lines, reservations.Line{Category: category, ItemID: itemID, Quantity: req.Quantity})
	}
	return lines, nil
}

func parseDateField(name, raw string) (time.Time, error) {
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid %s %q, expected YYYY-MM-DD", name, raw))
	}
	return value, nil
}

func validateClockField(name, raw string) error {
	if _, err := time.Parse("15:04", raw); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid %s %q, expected HH:MM", name, raw))
	}
	return nil
}
