package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"petcare_backend/internal/adoption"
	"petcare_backend/internal/config"
)

// RequestSweeperJob periodically rejects pending adoption requests whose pet
// no longer exists.
type RequestSweeperJob struct {
	adoptionService adoption.Service
	logger          *zap.Logger
	cfg             *config.Config
	cronScheduler   *cron.Cron
}

func NewRequestSweeperJob(
	adoptionService adoption.Service,
	logger *zap.Logger,
	cfg *config.Config,
) *RequestSweeperJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &RequestSweeperJob{
		adoptionService: adoptionService,
		logger:          logger.Named("RequestSweeperJob"),
		cfg:             cfg,
		cronScheduler:   scheduler,
	}
}

// SetupAndStart schedules and starts the sweeper. An empty schedule disables
// the job without failing startup.
func (j *RequestSweeperJob) SetupAndStart() error {
	jobSpec := j.cfg.RequestSweeperSchedule
	if jobSpec == "" {
		j.logger.Warn("Request sweeper schedule not defined (REQUEST_SWEEPER_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule request sweeper job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Request sweeper job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

func (j *RequestSweeperJob) runJob() {
	j.logger.Info("Starting request sweeper run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sweptCount, err := j.adoptionService.RejectOrphaned(ctx)
	if err != nil {
		j.logger.Error("Request sweeper run failed", zap.Error(err))
	} else {
		j.logger.Info("Request sweeper run completed", zap.Int("requests_swept", sweptCount))
	}
}

// Stop gracefully stops the cron scheduler.
func (j *RequestSweeperJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping request sweeper scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("Request sweeper scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("Request sweeper scheduler stop timed out.")
		}
	}
}

// cronLogger adapts zap.Logger to the cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Info(msg, cl.parseKeysAndValues(keysAndValues...)...)
}

func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
