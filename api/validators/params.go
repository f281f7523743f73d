package validators

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
)

// UUIDParam reads a chi URL parameter as a UUID.
func UUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid %s %q", name, raw))
	}
	return id, nil
}

// InvalidUUID wraps a uuid parse failure as a validation error.
func InvalidUUID(raw string, err error) error {
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("invalid uuid %q", raw))
}

// CategoryParam reads a chi URL parameter as an inventory category.
func CategoryParam(r *http.Request, name string) (enums.ItemCategory, error) {
	raw := chi.URLParam(r, name)
	category, err := enums.ParseItemCategory(raw)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown item category %q", raw))
	}
	return category, nil
}

// QueryInt reads an optional integer query parameter, falling back when
// missing or malformed.
func QueryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// QueryDate reads an optional YYYY-MM-DD query parameter.
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid %s %q, expected YYYY-MM-DD", name, raw))
	}
	return &value, nil
}
