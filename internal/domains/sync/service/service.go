package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"frontdesk/config"
	"frontdesk/infras/metrics"
	"frontdesk/infras/otel"
	roomRepo "frontdesk/internal/domains/room/repository"
	settingService "frontdesk/internal/domains/setting/service"
	stayService "frontdesk/internal/domains/stay/service"
	"frontdesk/internal/domains/sync/model"
	"frontdesk/internal/domains/sync/repository"
	"frontdesk/seed"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	errRemoteDisabled = failure.Conflict("remote sync is not configured")
	errSyncRunning    = failure.Conflict("a sync is already running")
)

type Sync interface {
	// Pull copies every table from the remote store into the local store, then reloads
	// the front desk state.
	Pull(ctx context.Context) (model.Report, error)
	// Push copies every local table to the remote store.
	Push(ctx context.Context) (model.Report, error)
	// Bootstrap prepares an empty local store: pull when possible, else seed the default
	// inventory. The front desk state is loaded afterwards.
	Bootstrap(ctx context.Context) error
}

type serviceImpl struct {
	running sync.Mutex

	local   repository.Local
	remote  repository.Remote
	rooms   roomRepo.Room
	stay    stayService.Stay
	setting settingService.Setting
	cfg     *config.Config
	otel    otel.Otel
}

// New builds the sync service. remote may be nil when no remote store is configured.
func New(
	local repository.Local,
	remote repository.Remote,
	rooms roomRepo.Room,
	stay stayService.Stay,
	setting settingService.Setting,
	cfg *config.Config,
	otel otel.Otel,
) Sync {
	return &serviceImpl{
		local:   local,
		remote:  remote,
		rooms:   rooms,
		stay:    stay,
		setting: setting,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) tables() []string {
	tables := s.cfg.Sync.Tables
	if len(tables) == 0 {
		tables = model.DefaultTables
	}

	names := make([]string, 0, len(tables))
	for _, table := range tables {
		if table = strings.ToLower(strings.TrimSpace(table)); table != constant.Empty {
			names = append(names, table)
		}
	}

	return names
}

func (s *serviceImpl) Pull(ctx context.Context) (res model.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncPull")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if s.remote == nil {
		return res, errRemoteDisabled
	}

	if !s.running.TryLock() {
		return res, errSyncRunning
	}
	defer s.running.Unlock()

	s.stay.Wait()

	res = s.pass(ctx, model.DirectionPull, s.remote, s.local)

	s.setting.Invalidate(ctx)

	if err = s.stay.Reload(ctx); err != nil {
		return res, fmt.Errorf("failed to reload after pull: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Push(ctx context.Context) (res model.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncPush")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if s.remote == nil {
		return res, errRemoteDisabled
	}

	if !s.running.TryLock() {
		return res, errSyncRunning
	}
	defer s.running.Unlock()

	s.stay.Wait()

	return s.pass(ctx, model.DirectionPush, s.local, s.remote), nil
}

// pass copies each table from source to target. A failing table is logged, counted and
// skipped.
func (s *serviceImpl) pass(ctx context.Context, direction string, source, target gRepo.Documents) model.Report {
	started := timezone.Now()
	defer metrics.ObserveSyncDuration(direction, started)

	report := model.Report{Direction: direction, Tables: []model.TableReport{}, StartedAt: started}

	for _, table := range s.tables() {
		copied, err := copyTable(ctx, table, source, target)

		entry := model.TableReport{Table: table, Records: copied}
		if err != nil {
			entry.Error = err.Error()

			metrics.IncSyncFailure(direction, table)
			log.Warn().Err(err).Str("direction", direction).Str("table", table).Msg("sync failed for table")
		} else {
			metrics.AddSyncedRecords(direction, table, copied)
		}

		report.Add(entry)
	}

	report.FinishedAt = timezone.Now()

	log.Info().
		Str("direction", direction).
		Int("records", report.Records).
		Int("failedTables", report.Failed).
		Msg("sync completed")

	return report
}

func copyTable(ctx context.Context, table string, source, target gRepo.Documents) (int, error) {
	docs, err := source.All(ctx, table)
	if err != nil {
		return 0, err
	}

	valid := make([]gRepo.Document, 0, len(docs))
	for _, doc := range docs {
		if doc.ID != constant.Empty {
			valid = append(valid, doc)
		}
	}

	if len(valid) == 0 {
		return 0, nil
	}

	if err = target.Put(ctx, table, valid...); err != nil {
		return 0, err
	}

	return len(valid), nil
}

func (s *serviceImpl) Bootstrap(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bootstrap")
	defer scope.End()
	defer scope.TraceIfError(&err)

	rooms, err := s.rooms.ToArray(ctx)
	if err != nil {
		return fmt.Errorf("failed to read rooms: %w", err)
	}

	if len(rooms) == 0 && s.remote != nil {
		log.Info().Msg("local store is empty, pulling from remote")

		if _, err = s.Pull(ctx); err != nil {
			log.Warn().Err(err).Msg("initial pull failed")
		}

		if rooms, err = s.rooms.ToArray(ctx); err != nil {
			return fmt.Errorf("failed to read rooms: %w", err)
		}
	}

	property, err := seed.Default()
	if err != nil {
		return err
	}

	if len(rooms) == 0 {
		rooms = property.Rooms()

		if err = s.rooms.BulkPut(ctx, rooms); err != nil {
			return fmt.Errorf("failed to seed rooms: %w", err)
		}

		log.Info().Int("rooms", len(rooms)).Msg("default room inventory seeded")
	}

	if _, err = s.setting.EnsureDefaults(ctx, property.Settings); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	return s.stay.Reload(ctx)
}
