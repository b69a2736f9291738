// Package export renders queue and job-history reports as XLSX workbooks.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/calebmartins/exportq/internal/entity"
)

// Source is the slice of the scheduler the report reads from.
type Source interface {
	Jobs() []entity.ExportJob
	WorkerStates() []entity.WorkerState
	GetQueueStatus() entity.QueueStatus
}

// Service produces XLSX bytes describing the current state of a scheduler.
type Service struct {
	source Source
	logger *slog.Logger
}

func NewService(source Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, logger: logger}
}

// ReportXLSX returns a workbook with a Jobs sheet (one row per tracked job)
// and a Workers sheet (one row per pool slot).
func (s *Service) ReportXLSX() ([]byte, error) {
	start := time.Now()

	jobs := s.source.Jobs()
	workers := s.source.WorkerStates()
	status := s.source.GetQueueStatus()

	f := excelize.NewFile()
	const jobsSheet = "Jobs"
	const workersSheet = "Workers"

	if index, _ := f.GetSheetIndex(jobsSheet); index == -1 {
		if _, err := f.NewSheet(jobsSheet); err != nil {
			return nil, err
		}
	}
	if index, _ := f.GetSheetIndex(workersSheet); index == -1 {
		if _, err := f.NewSheet(workersSheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(jobsSheet)
	f.SetActiveSheet(activeIndex)
	// excelize seeds a "Sheet1" we never use.
	_ = f.DeleteSheet("Sheet1")

	jobHeaders := []string{
		"Job ID",
		"Priority",
		"Status",
		"Created",
		"Started",
		"Completed",
		"Retries",
		"Last Error",
	}
	for i, h := range jobHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(jobsSheet, cell, h)
	}

	row := 2
	for _, j := range jobs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(jobsSheet, cell, v)
		}

		write(1, j.ID.String())
		write(2, j.Priority)
		write(3, string(j.Status))
		write(4, j.CreatedAt.UTC().Format(time.RFC3339))
		write(5, formatTime(j.StartedAt))
		write(6, formatTime(j.CompletedAt))
		write(7, j.RetryCount)
		lastErr := ""
		if j.LastError != nil {
			lastErr = *j.LastError
		}
		write(8, truncate(lastErr, 140))

		row++
	}

	workerHeaders := []string{
		"Worker ID",
		"Status",
		"Current Job",
		"Jobs Processed",
		"Last Activity",
	}
	for i, h := range workerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(workersSheet, cell, h)
	}

	row = 2
	for _, w := range workers {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(workersSheet, cell, v)
		}

		write(1, w.ID)
		write(2, string(w.Status))
		current := ""
		if w.CurrentJob != nil {
			current = w.CurrentJob.String()
		}
		write(3, current)
		write(4, w.JobsProcessed)
		write(5, w.LastActivityTime.UTC().Format(time.RFC3339))

		row++
	}

	_ = f.SetColWidth(jobsSheet, "A", "A", 38) // job id
	_ = f.SetColWidth(jobsSheet, "C", "C", 14) // status
	_ = f.SetColWidth(jobsSheet, "D", "F", 22) // timestamps
	_ = f.SetColWidth(jobsSheet, "H", "H", 48) // last error
	_ = f.SetColWidth(workersSheet, "C", "C", 38)
	_ = f.SetColWidth(workersSheet, "E", "E", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.report.xlsx.ok",
		"jobs", len(jobs),
		"workers", len(workers),
		"queued", status.QueuedJobs,
		"processing", status.ProcessingJobs,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// truncate caps s at n runes, ending with an ellipsis. Cutting on rune
// boundaries keeps multi-byte error text valid UTF-8 in the sheet.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
