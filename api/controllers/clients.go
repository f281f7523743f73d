package controllers

import (
	"net/http"
	"strings"

	"github.com/Yackxz2004/Estadia-Banquetes/api/responses"
	"github.com/Yackxz2004/Estadia-Banquetes/api/validators"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/clients"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/logger"
)

type createClientRequest struct {
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	EventTypeID *string `json:"event_type_id,omitempty" validate:"omitempty,uuid"`
	ApproxCount int     `json:"approx_count" validate:"gte=0"`
	Phone       string  `json:"phone" validate:"required"`
	Comments    *string `json:"comments,omitempty"`
}

type updateClientRequest struct {
	FirstName      *string `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName       *string `json:"last_name,omitempty" validate:"omitempty,min=1"`
	EventTypeID    *string `json:"event_type_id,omitempty" validate:"omitempty,uuid"`
	ClearEventType bool    `json:"clear_event_type,omitempty"`
	ApproxCount    *int    `json:"approx_count,omitempty" validate:"omitempty,gte=0"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,min=1"`
	Comments       *string `json:"comments,omitempty"`
}

func ListClients(svc clients.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := strings.TrimSpace(r.URL.Query().Get("search"))
		out, err := svc.List(r.Context(), search)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

func GetClient(svc clients.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		client, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, client)
	}
}

func CreateClient(svc clients.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createClientRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		eventTypeID, err := parseOptionalUUID(req.EventTypeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		client, err := svc.Create(r.Context(), clients.CreateClientInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			EventTypeID: eventTypeID,
			ApproxCount: req.ApproxCount,
			Phone:       req.Phone,
			Comments:    req.Comments,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, client)
	}
}

func UpdateClient(svc clients.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateClientRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		eventTypeID, err := parseOptionalUUID(req.EventTypeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		client, err := svc.Update(r.Context(), id, clients.UpdateClientInput{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			EventTypeID:    eventTypeID,
			ClearEventType: req.ClearEventType,
			ApproxCount:    req.ApproxCount,
			Phone:          req.Phone,
			Comments:       req.Comments,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, client)
	}
}

func DeleteClient(svc clients.Service, logg *logger.Logger) http.HandlerFunc {
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
