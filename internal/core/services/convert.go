package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driving"
	"github.com/papyrus-labs/papyrus-cli/internal/logger"
)

// Ensure ConvertService implements the interface.
var _ driving.ConvertService = (*ConvertService)(nil)

// ConvertService runs conversion jobs end to end: registry lookup,
// pipeline execution, atomic output commit, history recording and
// last-used settings persistence. One job runs synchronously; parallel
// jobs share only the read-only registry.
type ConvertService struct {
	registry driven.ConverterRegistry
	output   driven.OutputStore
	history  driven.HistoryStore
	settings driving.SettingsService
}

// NewConvertService creates a new conversion service.
// The history store and settings service may be nil; recording and
// persistence are then skipped.
func NewConvertService(
	registry driven.ConverterRegistry,
	output driven.OutputStore,
	history driven.HistoryStore,
	settings driving.SettingsService,
) *ConvertService {
	return &ConvertService{
		registry: registry,
		output:   output,
		history:  history,
		settings: settings,
	}
}

// NewJob builds a job from the options, filling unset fields from the
// persisted settings and then the built-in defaults.
func (s *ConvertService) NewJob(inputPath string, opts driving.JobOptions) domain.ConversionJob {
	defaults := domain.DefaultAppSettings()
	if s.settings != nil {
		if saved, err := s.settings.Get(); err == nil {
			defaults = saved
		}
	}

	job := domain.ConversionJob{
		ID:            uuid.New().String(),
		InputPath:     inputPath,
		InputFormat:   opts.InputFormat,
		OutputFormat:  opts.OutputFormat,
		Locale:        opts.Locale,
		TableFormat:   domain.TableFormat(opts.TableFormat),
		ChunkSize:     opts.ChunkSize,
		ChunkLimitSet: opts.ChunkSizeSet,
		OutputDir:     opts.OutputDir,
	}

	if job.InputFormat == "" {
		job.InputFormat = "docx"
	}
	if job.OutputFormat == "" {
		job.OutputFormat = "txt"
	}
	if job.Locale == "" {
		job.Locale = defaults.Locale
	}
	if !job.TableFormat.IsValid() {
		job.TableFormat = defaults.TableFormat
	}
	if !job.ChunkLimitSet && defaults.ChunkSize > 0 {
		job.ChunkSize = defaults.ChunkSize
		job.ChunkLimitSet = true
	}
	if job.OutputDir == "" {
		job.OutputDir = defaults.OutputDir
	}

	return job
}

// Run executes the job. It either fully succeeds (all parts committed)
// or fully fails with no output files left behind.
func (s *ConvertService) Run(ctx context.Context, job domain.ConversionJob) (*driving.ConvertResult, error) {
	started := time.Now()

	result, err := s.run(ctx, job)

	s.record(ctx, job, result, started, err)
	if err != nil {
		return nil, err
	}

	s.persistLastUsed(job)
	return result, nil
}

func (s *ConvertService) run(ctx context.Context, job domain.ConversionJob) (*driving.ConvertResult, error) {
	in, out := job.FormatPair()
	converter, err := s.registry.Resolve(in, out)
	if err != nil {
		return nil, err
	}

	logger.Info("converting %s (%s -> %s)", job.InputPath, in, out)
	parts, err := converter.Convert(ctx, job)
	if err != nil {
		return nil, err
	}

	paths, err := s.output.WriteParts(ctx, job, parts)
	if err != nil {
		return nil, err
	}
	logger.Info("wrote %d part(s) to %s", len(paths), job.OutputDir)

	return &driving.ConvertResult{
		Job:       job,
		Paths:     paths,
		PartCount: len(parts),
	}, nil
}

// record saves the job outcome. History failures are logged, never fatal.
func (s *ConvertService) record(ctx context.Context, job domain.ConversionJob, result *driving.ConvertResult, started time.Time, runErr error) {
	if s.history == nil {
		return
	}

	rec := &domain.JobRecord{
		ID:           job.ID,
		InputPath:    job.InputPath,
		InputFormat:  job.InputFormat,
		OutputFormat: job.OutputFormat,
		OutputDir:    job.OutputDir,
		StartedAt:    started,
		FinishedAt:   time.Now(),
	}
	if runErr != nil {
		rec.Error = runErr.Error()
	} else if result != nil {
		rec.PartCount = result.PartCount
	}

	if err := s.history.Record(ctx, rec); err != nil {
		logger.Warn("recording job history: %v", err)
	}
}

// persistLastUsed saves the job's options as the new defaults.
func (s *ConvertService) persistLastUsed(job domain.ConversionJob) {
	if s.settings == nil {
		return
	}

	settings := domain.AppSettings{
		Locale:      job.Locale,
		TableFormat: job.TableFormat,
		OutputDir:   job.OutputDir,
	}
	if job.ChunkLimitSet {
		settings.ChunkSize = job.ChunkSize
	}

	if err := s.settings.Save(settings); err != nil {
		logger.Warn("saving settings: %v", err)
	}
}

// Conversions returns the registered format pairs.
func (s *ConvertService) Conversions() [][2]string {
	return s.registry.Pairs()
}
