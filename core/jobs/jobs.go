package jobs

import (
	"context"
	"time"

	"bump-planner/core/config"
	"bump-planner/core/logger"
	syncService "bump-planner/modules/sync/service"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const (
	TypeSyncSources   = "sync:sources"
	TypeSyncReminders = "sync:reminders"
)

// Jobs runs the background sync schedule: a periodic idempotent source import
// and the daily reminder generation. Optional; the HTTP sync endpoints cover
// the same operations on demand.
type Jobs struct {
	cfg       config.JobsConfig
	sync      syncService.SyncServiceInterface
	server    *asynq.Server
	scheduler *asynq.Scheduler
}

func New(cfg config.JobsConfig, sync syncService.SyncServiceInterface) *Jobs {
	return &Jobs{cfg: cfg, sync: sync}
}

// Start verifies the broker connection, registers the handlers and the
// schedule, and launches the worker and scheduler loops.
func (j *Jobs) Start() error {
	if err := j.pingRedis(); err != nil {
		return err
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     j.cfg.RedisAddr,
		Password: j.cfg.RedisPassword,
	}

	j.server = asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSyncSources, j.handleSyncSources)
	mux.HandleFunc(TypeSyncReminders, j.handleSyncReminders)

	j.scheduler = asynq.NewScheduler(redisOpt, nil)
	if _, err := j.scheduler.Register(j.cfg.SyncInterval, asynq.NewTask(TypeSyncSources, nil)); err != nil {
		return err
	}
	if _, err := j.scheduler.Register(j.cfg.ReminderCron, asynq.NewTask(TypeSyncReminders, nil)); err != nil {
		return err
	}

	go func() {
		if err := j.server.Run(mux); err != nil {
			logger.Error("Jobs:Worker:Stopped", "error", err)
		}
	}()
	go func() {
		if err := j.scheduler.Run(); err != nil {
			logger.Error("Jobs:Scheduler:Stopped", "error", err)
		}
	}()

	logger.Info("Jobs:Started",
		"redis_addr", j.cfg.RedisAddr,
		"sync_interval", j.cfg.SyncInterval,
		"reminder_cron", j.cfg.ReminderCron,
	)
	return nil
}

// Stop shuts the scheduler and worker down.
func (j *Jobs) Stop() {
	if j.scheduler != nil {
		j.scheduler.Shutdown()
	}
	if j.server != nil {
		j.server.Shutdown()
	}
}

func (j *Jobs) pingRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     j.cfg.RedisAddr,
		Password: j.cfg.RedisPassword,
	})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}

func (j *Jobs) handleSyncSources(ctx context.Context, t *asynq.Task) error {
	report := j.sync.SyncSources(ctx)
	logger.Info("Jobs:SyncSources:Done", "results", report.Results)
	return nil
}

func (j *Jobs) handleSyncReminders(ctx context.Context, t *asynq.Task) error {
	report, appErr := j.sync.GenerateDailyReminders(ctx)
	if appErr != nil {
		return appErr
	}
	logger.Info("Jobs:SyncReminders:Done", "created", report.Created, "skipped", report.Skipped)
	return nil
}
