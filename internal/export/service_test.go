package export

import (
	"bytes"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/calebmartins/exportq/constants"
	"github.com/calebmartins/exportq/internal/entity"
)

type fakeSource struct {
	jobs    []entity.ExportJob
	workers []entity.WorkerState
	status  entity.QueueStatus
}

func (f *fakeSource) Jobs() []entity.ExportJob           { return f.jobs }
func (f *fakeSource) WorkerStates() []entity.WorkerState { return f.workers }
func (f *fakeSource) GetQueueStatus() entity.QueueStatus { return f.status }

func TestReportXLSX(t *testing.T) {
	now := time.Now().UTC()
	errText := "UNAVAILABLE: render service status 503"
	jobID := uuid.New()
	src := &fakeSource{
		jobs: []entity.ExportJob{
			{ID: jobID, Priority: 2, Status: constants.JobStatusComplete, CreatedAt: now, StartedAt: &now, CompletedAt: &now},
			{ID: uuid.New(), Priority: 0, Status: constants.JobStatusFailed, CreatedAt: now, RetryCount: 3, LastError: &errText},
		},
		workers: []entity.WorkerState{
			{ID: 0, Status: constants.WorkerStatusBusy, CurrentJob: &jobID, JobsProcessed: 5, LastActivityTime: now},
			{ID: 1, Status: constants.WorkerStatusIdle, JobsProcessed: 2, LastActivityTime: now},
		},
		status: entity.QueueStatus{TotalJobs: 2, CompletedJobs: 1, FailedJobs: 1},
	}

	bs, err := NewService(src, nil).ReportXLSX()
	if err != nil {
		t.Fatalf("ReportXLSX: %v", err)
	}
	if len(bs) == 0 {
		t.Fatal("empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(bs))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Jobs")
	if err != nil {
		t.Fatalf("GetRows(Jobs): %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Jobs rows = %d, want header + 2", len(rows))
	}
	if rows[1][0] != jobID.String() {
		t.Errorf("job id cell = %q", rows[1][0])
	}
	if rows[2][2] != string(constants.JobStatusFailed) {
		t.Errorf("status cell = %q", rows[2][2])
	}

	wrows, err := f.GetRows("Workers")
	if err != nil {
		t.Fatalf("GetRows(Workers): %v", err)
	}
	if len(wrows) != 3 {
		t.Fatalf("Workers rows = %d, want header + 2", len(wrows))
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("hello world", 5); got != "hell…" {
		t.Errorf("truncate long = %q", got)
	}
	// Cuts must land on rune boundaries, never mid-codepoint.
	if got := truncate("exportação falhou", 7); got != "export…" {
		t.Errorf("truncate multi-byte = %q", got)
	}
	if got := truncate("データベース接続エラー", 4); got != "データ…" {
		t.Errorf("truncate wide runes = %q", got)
	}
	if !utf8.ValidString(truncate("éèêëéèêë", 5)) {
		t.Error("truncate produced invalid UTF-8")
	}
}
