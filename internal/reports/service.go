package reports

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Yackxz2004/Estadia-Banquetes/internal/inventory"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
)

// Service renders the inventory workbook download.
type Service interface {
	WriteInventoryWorkbook(ctx context.Context, w io.Writer) error
}

type service struct {
	repo inventory.Repository
}

// NewService wires report dependencies.
func NewService(repo inventory.Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "inventory repository required")
	}
	return &service{repo: repo}, nil
}

// WriteInventoryWorkbook streams an xlsx snapshot of the whole catalog: one
// sheet per category plus a totals sheet up front.
func (s *service) WriteInventoryWorkbook(ctx context.Context, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	summary := "Resumen"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rename summary sheet")
	}
	f.SetCellValue(summary, "A1", "Categoría")
	f.SetCellValue(summary, "B1", "Artículos")
	f.SetCellValue(summary, "C1", "Disponibles")
	f.SetCellValue(summary, "D1", "En mantenimiento")
	f.SetCellValue(summary, "F1", "Generado")
	f.SetCellValue(summary, "G1", time.Now().Format("2006-01-02 15:04"))

	for i, category := range enums.ItemCategories() {
		items, err := s.repo.List(ctx, category, "")
		if err != nil {
			return err
		}

		sheet := category.DisplayName()
		if _, err := f.NewSheet(sheet); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create category sheet")
		}
		f.SetCellValue(sheet, "A1", "Producto")
		f.SetCellValue(sheet, "B1", "Descripción")
		f.SetCellValue(sheet, "C1", "Disponibles")
		f.SetCellValue(sheet, "D1", "En mantenimiento")
		f.SetCellValue(sheet, "E1", "Almacén")

		var onHand, inMaintenance int
		for row, item := range items {
			n := fmt.Sprint(row + 2)
			f.SetCellValue(sheet, "A"+n, item.Product)
			if item.Description != nil {
				f.SetCellValue(sheet, "B"+n, *item.Description)
			}
			f.SetCellValue(sheet, "C"+n, item.OnHand)
			f.SetCellValue(sheet, "D"+n, item.InMaintenance)
			if item.Warehouse != nil {
				f.SetCellValue(sheet, "E"+n, item.Warehouse.Name)
			}
			onHand += item.OnHand
			inMaintenance += item.InMaintenance
		}

		n := fmt.Sprint(i + 2)
		f.SetCellValue(summary, "A"+n, category.DisplayName())
		f.SetCellValue(summary, "B"+n, len(items))
		f.SetCellValue(summary, "C"+n, onHand)
		f.SetCellValue(summary, "D"+n, inMaintenance)
	}

	if err := f.Write(w); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write workbook")
	}
	return nil
}
