package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Yackxz2004/Estadia-Banquetes/api/responses"
	"github.com/Yackxz2004/Estadia-Banquetes/api/validators"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/inventory"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/logger"
)

type createItemRequest struct {
	Product     string  `json:"product" validate:"required"`
	Description *string `json:"description,omitempty"`
	OnHand      int     `json:"on_hand" validate:"gte=0"`
	WarehouseID *string `json:"warehouse_id,omitempty" validate:"omitempty,uuid"`
}

type updateItemRequest struct {
	Product        *string `json:"product,omitempty" validate:"omitempty,min=1"`
	Description    *string `json:"description,omitempty"`
	OnHand         *int    `json:"on_hand,omitempty" validate:"omitempty,gte=0"`
	WarehouseID    *string `json:"warehouse_id,omitempty" validate:"omitempty,uuid"`
	ClearWarehouse bool    `json:"clear_warehouse,omitempty"`
}

type maintenanceRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type categoryInfo struct {
	Value       enums.ItemCategory `json:"value"`
	DisplayName string             `json:"display_name"`
}

// ListCategories returns the fixed category set the catalog is organized by.
func ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := enums.ItemCategories()
		out := make([]categoryInfo, 0, len(categories))
		for _, category := range categories {
			out = append(out, categoryInfo{Value: category, DisplayName: category.DisplayName()})
		}
		responses.WriteSuccess(w, out)
	}
}

func ListItems(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := validators.CategoryParam(r, "category")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		search := strings.TrimSpace(r.URL.Query().Get("search"))
		items, err := svc.List(r.Context(), category, search)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func GetItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, id, err := itemPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Get(r.Context(), category, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func CreateItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := validators.CategoryParam(r, "category")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req createItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		warehouseID, err := parseOptionalUUID(req.WarehouseID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), inventory.CreateItemInput{
			Category:    category,
			Product:     req.Product,
			Description: req.Description,
			OnHand:      req.OnHand,
			WarehouseID: warehouseID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

func UpdateItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, id, err := itemPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		warehouseID, err := parseOptionalUUID(req.WarehouseID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Update(r.Context(), category, id, inventory.UpdateItemInput{
			Product:        req.Product,
			Description:    req.Description,
			OnHand:         req.OnHand,
			WarehouseID:    warehouseID,
			ClearWarehouse: req.ClearWarehouse,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func DeleteItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, id, err := itemPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), category, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func SendItemToMaintenance(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, id, err := itemPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req maintenanceRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.SendToMaintenance(r.Context(), category, id, req.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func ReturnItemFromMaintenance(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, id, err := itemPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req maintenanceRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.ReturnFromMaintenance(r.Context(), category, id, req.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func itemPath(r *http.Request) (enums.ItemCategory, uuid.UUID, error) {
	category, err := validators.CategoryParam(r, "category")
	if err != nil {
		return "", uuid.Nil, err
	}
	id, err := validators.UUIDParam(r, "id")
	if err != nil {
		return "", uuid.Nil, err
	}
	return category, id, nil
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, validators.InvalidUUID(*raw, err)
	}
	return &id, nil
}
