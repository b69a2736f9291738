package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/calebmartins/exportq/constants"
	"github.com/calebmartins/exportq/gen/ent"
	"github.com/calebmartins/exportq/gen/ent/exportjob"
)

type ExportJobRepository interface {
	Start(ctx context.Context, jobID uuid.UUID, priority int, payload json.RawMessage) (*ent.ExportJob, error)
	MarkStarted(ctx context.Context, jobID uuid.UUID) error
	RecordRetry(ctx context.Context, jobID uuid.UUID, retryCount int, message string) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID, result json.RawMessage, retryCount int) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string, retryCount int) error
	MarkCancelled(ctx context.Context, jobID uuid.UUID) error
	ListRecent(ctx context.Context, limit int) ([]*ent.ExportJob, error)
}

type exportJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExportJobRepository(entc *ent.Client, log *slog.Logger) ExportJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &exportJobRepo{ent: entc, log: log}
}

func (r *exportJobRepo) Start(ctx context.Context, jobID uuid.UUID, priority int, payload json.RawMessage) (*ent.ExportJob, error) {
	job, err := r.ent.ExportJob.
		Create().
		SetID(jobID).
		SetPriority(priority).
		SetStatus(string(constants.JobStatusQueued)).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		r.log.Error("export_job start failed", "job_id", jobID, "err", err)
		return nil, err
	}
	r.log.Info("export_job recorded", "job_id", job.ID, "priority", priority)
	return job, nil
}

func (r *exportJobRepo) MarkStarted(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExportJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusProcessing)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("export_job mark started failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *exportJobRepo) RecordRetry(ctx context.Context, jobID uuid.UUID, retryCount int, message string) error {
	_, err := r.ent.ExportJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusQueued)).
		SetRetryCount(retryCount).
		SetLastError(message).
		Save(ctx)
	if err != nil {
		r.log.Error("export_job record retry failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *exportJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, result json.RawMessage, retryCount int) error {
	_, err := r.ent.ExportJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusComplete)).
		SetResult(result).
		SetRetryCount(retryCount).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("export_job finish(COMPLETE) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("export_job finished (COMPLETE)", "job_id", jobID)
	return nil
}

func (r *exportJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string, retryCount int) error {
	_, err := r.ent.ExportJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetRetryCount(retryCount).
		SetLastError(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("export_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("export_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *exportJobRepo) MarkCancelled(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExportJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusCancelled)).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("export_job mark cancelled failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *exportJobRepo) ListRecent(ctx context.Context, limit int) ([]*ent.ExportJob, error) {
	if limit <= 0 {
		limit = 100
	}
	return r.ent.ExportJob.
		Query().
		Order(ent.Desc(exportjob.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
