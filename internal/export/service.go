// Package export produces XLSX workbooks of stored histories for registry
// hand-off and offline review.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ulieet/NeuroSoft/gen/ent"
	"github.com/ulieet/NeuroSoft/internal/repository"
)

// Service is a tiny façade over the history repository that produces XLSX
// bytes for exports.
type Service struct {
	histories repository.HistoryRepository
	logger    *slog.Logger
}

func NewService(histories repository.HistoryRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{histories: histories, logger: logger}
}

// Row is one worksheet line. It is resolved from the validated payload when
// the history has been signed off, from the draft otherwise.
type Row struct {
	PatientName  string
	DNI          string
	Insurer      string
	Consultation string
	Diagnosis    string
	Form         string
	EDSS         string
	Treatment    string
	Status       string
	FileName     string
	ImportedAt   string
}

// ExportHistoriesXLSX returns an XLSX workbook (as bytes) for the filtered
// histories.
func (s *Service) ExportHistoriesXLSX(ctx context.Context, filter *repository.HistoryFilter) ([]byte, error) {
	start := time.Now()

	hs, err := s.histories.ListHistories(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query histories: %w", err)
	}

	rows := make([]Row, 0, len(hs))
	for _, h := range hs {
		rows = append(rows, HistoryRow(h))
	}

	buf, err := WriteWorkbook(rows)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf, nil
}

// HistoryRow flattens one stored history into a worksheet line.
func HistoryRow(h *ent.History) Row {
	payload := h.Draft
	if len(h.Validated) > 0 {
		payload = h.Validated
	}

	r := Row{
		PatientName:  digString(payload, "paciente", "nombre"),
		DNI:          digString(payload, "paciente", "dni"),
		Insurer:      digString(payload, "paciente", "obra_social"),
		Consultation: digString(payload, "consulta", "fecha"),
		Diagnosis:    digString(payload, "enfermedad", "diagnostico"),
		Form:         digString(payload, "enfermedad", "forma"),
		Treatment:    activeTreatment(payload),
		Status:       h.Status,
		FileName:     h.FileName,
		ImportedAt:   h.ImportedAt.UTC().Format("2006-01-02"),
	}
	if edss, ok := digFloat(payload, "enfermedad", "edss"); ok {
		r.EDSS = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", edss), "0"), ".")
	}
	return r
}

var sheetHeaders = []string{
	"Paciente",
	"DNI",
	"Obra Social",
	"Fecha de consulta",
	"Diagnóstico",
	"Forma",
	"EDSS",
	"Tratamiento activo",
	"Estado",
	"Archivo",
	"Importada",
}

// WriteWorkbook renders the rows into a single-sheet workbook.
func WriteWorkbook(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Historias"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range sheetHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for n, r := range rows {
		values := []string{
			r.PatientName, r.DNI, r.Insurer, r.Consultation, r.Diagnosis,
			r.Form, r.EDSS, r.Treatment, r.Status, r.FileName, r.ImportedAt,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, n+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // patient
	_ = f.SetColWidth(sheet, "B", "C", 16)
	_ = f.SetColWidth(sheet, "D", "D", 16) // consultation
	_ = f.SetColWidth(sheet, "E", "E", 30) // diagnosis
	_ = f.SetColWidth(sheet, "H", "H", 26) // treatment
	_ = f.SetColWidth(sheet, "J", "J", 34) // file

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// digString walks a nested JSON map and returns the string leaf, or "".
func digString(m map[string]interface{}, path ...string) string {
	v, ok := dig(m, path...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func digFloat(m map[string]interface{}, path ...string) (float64, bool) {
	v, ok := dig(m, path...)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

func dig(m map[string]interface{}, path ...string) (interface{}, bool) {
	var cur interface{} = m
	for _, p := range path {
		mm, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = mm[p]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// activeTreatment names the first treatment whose status is active.
func activeTreatment(payload map[string]interface{}) string {
	v, ok := dig(payload, "tratamientos")
	if !ok {
		return ""
	}
	list, ok := v.([]interface{})
	if !ok {
		return ""
	}
	for _, item := range list {
		t, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if status, _ := t["estado"].(string); status == "Activo" {
			name, _ := t["molecula"].(string)
			return name
		}
	}
	return ""
}
