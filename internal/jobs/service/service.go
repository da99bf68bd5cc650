// Package service implements the jobs read operations.
package service

import (
	"context"
	"math"
	"time"

	"sidebar_backend/internal/domain"
	"sidebar_backend/internal/jobs/transport"
	"sidebar_backend/internal/snapshot"
	"sidebar_backend/platform/apperr"
	"sidebar_backend/platform/jobtread"
)

// JobSource is the subset of the JobTread client this service needs.
type JobSource interface {
	Jobs(ctx context.Context, grantKey string, filter jobtread.JobsFilter) ([]jobtread.RawJob, error)
	Job(ctx context.Context, grantKey, id string) (jobtread.RawJob, error)
}

// Service reads jobs and dashboard metrics from JobTread.
type Service struct {
	src    JobSource
	loader *snapshot.Loader
}

// New creates the jobs service.
func New(src JobSource, loader *snapshot.Loader) *Service {
	return &Service{src: src, loader: loader}
}

// List fetches jobs matching the filter.
func (s *Service) List(ctx context.Context, grantKey string, req transport.ListJobsRequest) (transport.ListJobsResponse, error) {
	rawJobs, err := s.src.Jobs(ctx, grantKey, jobtread.JobsFilter{
		First:  req.First,
		Status: req.Status,
		Search: req.Search,
	})
	if err != nil {
		return transport.ListJobsResponse{}, err
	}

	jobs := domain.NormalizeJobs(rawJobs)
	data := make([]transport.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		data = append(data, toJobResponse(job))
	}
	return transport.ListJobsResponse{Data: data, TotalCount: len(data)}, nil
}

// Get fetches a single job with its tasks.
func (s *Service) Get(ctx context.Context, grantKey, id string) (transport.JobResponse, error) {
	rawJob, err := s.src.Job(ctx, grantKey, id)
	if err != nil {
		return transport.JobResponse{}, err
	}
	if rawJob.ID == "" {
		return transport.JobResponse{}, apperr.NotFound("job not found")
	}
	return toJobResponse(domain.NormalizeJob(rawJob)), nil
}

// Metrics computes the dashboard aggregates from a full snapshot. Unlike
// the assistant, a failed read here fails the request: an error page beats
// a dashboard that silently reports zero revenue.
func (s *Service) Metrics(ctx context.Context, grantKey string) (transport.MetricsResponse, error) {
	snap, err := s.loader.Load(ctx, grantKey)
	if err != nil {
		return transport.MetricsResponse{}, err
	}

	metrics := domain.BuildMetrics(snap, time.Now())
	metrics.AvgMargin = roundOneDecimal(metrics.AvgMargin)
	return transport.MetricsResponse{Metrics: metrics}, nil
}

func toJobResponse(job domain.Job) transport.JobResponse {
	return transport.JobResponse{
		Job:    job,
		Margin: roundOneDecimal(job.Budget.Margin()),
	}
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
