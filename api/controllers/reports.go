package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Yackxz2004/Estadia-Banquetes/api/responses"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/reports"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/logger"
)

// ExportInventoryReport streams the inventory workbook as an xlsx download.
func ExportInventoryReport(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := fmt.Sprintf("inventario_%s.xlsx", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)

		if err := svc.WriteInventoryWorkbook(r.Context(), w); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
	}
}
