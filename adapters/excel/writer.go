package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"coilmap/domain/coil"
	"coilmap/models"

	"github.com/xuri/excelize/v2"
)

// PlanWriter writes pickup analysis results to Excel workbooks
type PlanWriter struct {
	outputDir string
}

// NewPlanWriter creates a writer that places workbooks under outputDir
func NewPlanWriter(outputDir string) *PlanWriter {
	return &PlanWriter{outputDir: outputDir}
}

// WriteAnalysis writes a single analysis to an .xlsx file and returns its path
func (w *PlanWriter) WriteAnalysis(name string, analysis *models.PickupAnalysis) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSummarySheet(f, analysis); err != nil {
		return "", err
	}
	if err := w.writePlanSheet(f, analysis); err != nil {
		return "", err
	}
	if err := w.writeCoilSheet(f, "Slug Coil", analysis.Slug); err != nil {
		return "", err
	}
	if err := w.writeCoilSheet(f, "Screw Coil", analysis.Screw); err != nil {
		return "", err
	}

	// The default sheet is replaced by Summary
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", err
	}

	path := filepath.Join(w.outputDir, sanitizeFilename(name)+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

func (w *PlanWriter) writeSummarySheet(f *excelize.File, analysis *models.PickupAnalysis) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Pickup", analysis.Name},
		{"Wiring mode", analysis.Mode},
		{"Hum canceling", analysis.HumCancel.Cancels},
		{"Verdict", analysis.HumCancel.Message},
	}
	if analysis.Equivalent != nil {
		rows = append(rows, []interface{}{"Equivalent resistance (kΩ)", *analysis.Equivalent})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (w *PlanWriter) writePlanSheet(f *excelize.File, analysis *models.PickupAnalysis) error {
	const sheet = "Wiring Plan"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"Role", "Wires"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Output (hot)", joinWires(analysis.Plan.Output)},
		{"Series link", joinWires(analysis.Plan.Series)},
		{"Ground", joinWires(analysis.Plan.Ground)},
	}
	if analysis.Plan.Notes != "" {
		rows = append(rows, []interface{}{"Note", analysis.Plan.Notes})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (w *PlanWriter) writeCoilSheet(f *excelize.File, sheet string, coil models.CoilAnalysis) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Start wire", coil.Roles.Start},
		{"Finish wire", coil.Roles.Finish},
		{"Positive wire", coil.Polarity.PositiveWire},
		{"Start sign", coil.Polarity.StartSign},
		{"Finish sign", coil.Polarity.FinishSign},
		{"Phase", coil.Phase},
	}
	if coil.ResistanceKOhm != nil {
		rows = append(rows, []interface{}{"Resistance (kΩ)", *coil.ResistanceKOhm})
	}
	if coil.PolarityConflict {
		rows = append(rows, []interface{}{"Warning", "Positive lead does not match the inferred start wire"})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func joinWires(wires []coil.WireLabel) string {
	parts := make([]string, 0, len(wires))
	for _, w := range wires {
		parts = append(parts, string(w))
	}
	return strings.Join(parts, ", ")
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "analysis"
	}
	replacer := strings.NewReplacer("/", "-", "\\", "-", " ", "_", ":", "-")
	return replacer.Replace(name)
}
