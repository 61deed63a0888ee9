package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/filestore"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
)

// HousekeepingService periodically removes expired sessions and reconciles
// the file store with the image table.
type HousekeepingService struct {
	Store    store.Store
	Files    FileStore
	Logger   *slog.Logger
	Interval time.Duration

	// ScratchAge is how old a partial upload or tombstone must be before it
	// is purged. Defaults to Interval.
	ScratchAge time.Duration

	// Now defaults to time.Now.
	Now func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// HousekeepingReport is the outcome of one pass.
type HousekeepingReport struct {
	ExpiredSessions int64
	PurgedScratch   int

	// OrphanFiles are files with no image row, keyed by task id.
	OrphanFiles map[string][]string

	// MissingFiles are image rows with no file, keyed by task id.
	MissingFiles map[string][]string
}

// NewHousekeepingService creates a housekeeping service. If interval is 0 or
// negative, it defaults to 1 hour.
func NewHousekeepingService(st store.Store, files FileStore, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Files:    files,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (s *HousekeepingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-progress pass has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single pass. Each step is independent; a failing step
// is logged and the others still run. Files whose row exists are never
// touched.
func (s *HousekeepingService) RunOnce(ctx context.Context) HousekeepingReport {
	s.Logger.Info("starting housekeeping")
	now := s.now()

	report := HousekeepingReport{
		OrphanFiles:  map[string][]string{},
		MissingFiles: map[string][]string{},
	}

	n, err := s.Store.Sessions().DeleteExpiredSessions(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired sessions", "error", err)
	} else {
		report.ExpiredSessions = n
	}

	age := s.ScratchAge
	if age <= 0 {
		age = s.Interval
	}
	purged, err := s.Files.PurgeScratch(now.Add(-age))
	if err != nil {
		s.Logger.Error("failed to purge scratch files", "error", err)
	}
	report.PurgedScratch = purged

	s.reconcile(ctx, &report)

	s.Logger.Info("housekeeping completed",
		"expired_sessions", report.ExpiredSessions,
		"purged_scratch", report.PurgedScratch,
		"orphan_folders", len(report.OrphanFiles),
		"missing_folders", len(report.MissingFiles),
	)
	return report
}

// reconcile compares the image table with the files on disk and logs the
// drift. It only reports.
func (s *HousekeepingService) reconcile(ctx context.Context, report *HousekeepingReport) {
	rows, err := s.Store.Images().ListFilenames(ctx)
	if err != nil {
		s.Logger.Error("failed to list image rows", "error", err)
		return
	}
	files, err := s.Files.List()
	if err != nil {
		s.Logger.Error("failed to list image files", "error", err)
		return
	}

	for taskID, names := range files {
		for _, name := range names {
			if filestore.IsScratch(name) || slices.Contains(rows[taskID], name) {
				continue
			}
			report.OrphanFiles[taskID] = append(report.OrphanFiles[taskID], name)
		}
	}
	for taskID, names := range rows {
		for _, name := range names {
			if slices.Contains(files[taskID], name) {
				continue
			}
			report.MissingFiles[taskID] = append(report.MissingFiles[taskID], name)
		}
	}

	for taskID, names := range report.OrphanFiles {
		s.Logger.Warn("image files without a row", "task_id", taskID, "files", names)
	}
	for taskID, names := range report.MissingFiles {
		s.Logger.Warn("image rows without a file", "task_id", taskID, "files", names)
	}
}
