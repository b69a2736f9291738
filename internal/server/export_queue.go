// Package server exposes the scheduler over gRPC.
package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	v1 "github.com/calebmartins/exportq/gen/proto/exportq/v1"
	"github.com/calebmartins/exportq/internal/common"
	"github.com/calebmartins/exportq/internal/entity"
	"github.com/calebmartins/exportq/internal/export"
	"github.com/calebmartins/exportq/internal/scheduler"
)

type ExportQueueService struct {
	v1.UnimplementedExportQueueServiceServer
	manager *scheduler.Manager
	timed   *scheduler.TimedScheduler
	report  *export.Service
	logger  *slog.Logger
}

func NewExportQueueService(manager *scheduler.Manager, timed *scheduler.TimedScheduler, report *export.Service, logger *slog.Logger) *ExportQueueService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportQueueService{manager: manager, timed: timed, report: report, logger: logger}
}

func (s *ExportQueueService) SubmitJob(ctx context.Context, req *v1.SubmitJobRequest) (*v1.SubmitJobResponse, error) {
	if len(req.GetPayload()) == 0 {
		return nil, common.InvalidArgumentError("payload is required")
	}
	id, err := s.manager.AddJob(ctx, req.GetPayload(), int(req.GetPriority()))
	if err != nil {
		return nil, submitError(err)
	}
	return &v1.SubmitJobResponse{JobId: id.String()}, nil
}

func (s *ExportQueueService) SubmitBatch(ctx context.Context, req *v1.SubmitBatchRequest) (*v1.SubmitBatchResponse, error) {
	if len(req.GetItems()) == 0 {
		return nil, common.InvalidArgumentError("items is required")
	}
	items := make([]scheduler.BatchItem, 0, len(req.GetItems()))
	for _, it := range req.GetItems() {
		items = append(items, scheduler.BatchItem{
			Payload:  it.GetPayload(),
			Priority: int(it.GetPriority()),
		})
	}
	ids := s.manager.AddBatch(ctx, items)
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return &v1.SubmitBatchResponse{JobIds: out}, nil
}

func (s *ExportQueueService) CancelJob(ctx context.Context, req *v1.CancelJobRequest) (*v1.CancelJobResponse, error) {
	id, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	return &v1.CancelJobResponse{Cancelled: s.manager.CancelJob(ctx, id)}, nil
}

func (s *ExportQueueService) CancelBatch(ctx context.Context, req *v1.CancelBatchRequest) (*v1.CancelBatchResponse, error) {
	ids, err := parseJobIDs(req.GetJobIds())
	if err != nil {
		return nil, err
	}
	return &v1.CancelBatchResponse{Cancelled: int32(s.manager.CancelBatch(ctx, ids))}, nil
}

func (s *ExportQueueService) ReprioritizeJob(_ context.Context, req *v1.ReprioritizeJobRequest) (*v1.ReprioritizeJobResponse, error) {
	id, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	return &v1.ReprioritizeJobResponse{
		Reprioritized: s.manager.ReprioritizeJob(id, int(req.GetPriority())),
	}, nil
}

func (s *ExportQueueService) GetJobStatus(_ context.Context, req *v1.GetJobStatusRequest) (*v1.GetJobStatusResponse, error) {
	id, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, ok := s.manager.GetJobStatus(id)
	if !ok {
		return nil, common.NotFoundError("job not found")
	}
	return &v1.GetJobStatusResponse{Job: toPBJob(job)}, nil
}

func (s *ExportQueueService) GetBatchStatus(_ context.Context, req *v1.GetBatchStatusRequest) (*v1.GetBatchStatusResponse, error) {
	ids, err := parseJobIDs(req.GetJobIds())
	if err != nil {
		return nil, err
	}
	jobs := s.manager.GetBatchStatus(ids)
	out := make([]*v1.Job, 0, len(jobs))
	for _, id := range ids {
		if job, ok := jobs[id]; ok {
			out = append(out, toPBJob(job))
		}
	}
	return &v1.GetBatchStatusResponse{Jobs: out}, nil
}

func (s *ExportQueueService) GetQueueStatus(context.Context, *v1.GetQueueStatusRequest) (*v1.GetQueueStatusResponse, error) {
	st := s.manager.GetQueueStatus()
	return &v1.GetQueueStatusResponse{Status: &v1.QueueStatus{
		TotalJobs:           int32(st.TotalJobs),
		QueuedJobs:          int32(st.QueuedJobs),
		ProcessingJobs:      int32(st.ProcessingJobs),
		CompletedJobs:       int32(st.CompletedJobs),
		FailedJobs:          int32(st.FailedJobs),
		CancelledJobs:       int32(st.CancelledJobs),
		AverageWaitMs:       st.AverageWaitTime.Milliseconds(),
		AverageProcessingMs: st.AverageProcessingTime.Milliseconds(),
		EstimatedTimeLeftMs: st.EstimatedTimeLeft.Milliseconds(),
		Paused:              st.Paused,
	}}, nil
}

func (s *ExportQueueService) ListWorkers(context.Context, *v1.ListWorkersRequest) (*v1.ListWorkersResponse, error) {
	states := s.manager.WorkerStates()
	out := make([]*v1.WorkerState, 0, len(states))
	for _, w := range states {
		pb := &v1.WorkerState{
			Id:            int32(w.ID),
			Status:        string(w.Status),
			JobsProcessed: int32(w.JobsProcessed),
			LastActivity:  timestamppb.New(w.LastActivityTime),
		}
		if w.CurrentJob != nil {
			pb.CurrentJobId = w.CurrentJob.String()
		}
		out = append(out, pb)
	}
	return &v1.ListWorkersResponse{Workers: out}, nil
}

func (s *ExportQueueService) PauseQueue(ctx context.Context, _ *v1.PauseQueueRequest) (*v1.PauseQueueResponse, error) {
	s.manager.Pause(ctx)
	return &v1.PauseQueueResponse{}, nil
}

func (s *ExportQueueService) ResumeQueue(ctx context.Context, _ *v1.ResumeQueueRequest) (*v1.ResumeQueueResponse, error) {
	s.manager.Resume(ctx)
	return &v1.ResumeQueueResponse{}, nil
}

func (s *ExportQueueService) ScheduleJob(_ context.Context, req *v1.ScheduleJobRequest) (*v1.ScheduleJobResponse, error) {
	if len(req.GetPayload()) == 0 {
		return nil, common.InvalidArgumentError("payload is required")
	}
	hasAt := req.GetRunAt() != nil
	hasInterval := req.GetIntervalMs() > 0
	if hasAt == hasInterval {
		return nil, common.InvalidArgumentError("exactly one of run_at and interval_ms is required")
	}

	var id uuid.UUID
	if hasAt {
		id = s.timed.ScheduleAt(req.GetRunAt().AsTime(), req.GetPayload(), int(req.GetPriority()))
	} else {
		id = s.timed.ScheduleRecurring(time.Duration(req.GetIntervalMs())*time.Millisecond, req.GetPayload(), int(req.GetPriority()))
	}
	if id == uuid.Nil {
		return nil, common.UnavailableError("scheduler is shutting down")
	}
	return &v1.ScheduleJobResponse{ScheduleId: id.String()}, nil
}

func (s *ExportQueueService) CancelSchedule(_ context.Context, req *v1.CancelScheduleRequest) (*v1.CancelScheduleResponse, error) {
	id, err := parseScheduleID(req.GetScheduleId())
	if err != nil {
		return nil, err
	}
	return &v1.CancelScheduleResponse{Cancelled: s.timed.Cancel(id)}, nil
}

func (s *ExportQueueService) ExportReport(_ context.Context, _ *v1.ExportReportRequest) (*v1.ExportReportResponse, error) {
	xlsx, err := s.report.ReportXLSX()
	if err != nil {
		s.logger.Error("export.report.failed", "err", err)
		return nil, common.InternalErrorf("build report: %v", err)
	}
	return &v1.ExportReportResponse{Xlsx: xlsx}, nil
}

func parseScheduleID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("schedule_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("schedule_id must be a UUID")
	}
	return id, nil
}

func parseJobID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("job_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("job_id must be a UUID")
	}
	return id, nil
}

func parseJobIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, common.InvalidArgumentError("job_ids is required")
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := parseJobID(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func submitError(err error) error {
	var appErr *common.AppError
	switch {
	case errors.Is(err, common.ErrQueueFull):
		return common.ResourceExhaustedError(err.Error())
	case errors.Is(err, common.ErrShuttingDown):
		return common.UnavailableError(err.Error())
	case errors.As(err, &appErr) && appErr.Code == "INVALID_PAYLOAD":
		return common.InvalidArgumentError(err.Error())
	default:
		return common.InternalErrorf("submit job: %v", err)
	}
}

func toPBJob(job entity.ExportJob) *v1.Job {
	pb := &v1.Job{
		Id:         job.ID.String(),
		Priority:   int32(job.Priority),
		Status:     string(job.Status),
		CreatedAt:  timestamppb.New(job.CreatedAt),
		RetryCount: int32(job.RetryCount),
		Payload:    job.Payload,
		Result:     job.Result,
	}
	if job.StartedAt != nil {
		pb.StartedAt = timestamppb.New(*job.StartedAt)
	}
	if job.CompletedAt != nil {
		pb.CompletedAt = timestamppb.New(*job.CompletedAt)
	}
	if job.LastError != nil {
		pb.LastError = *job.LastError
	}
	return pb
}
