package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const reminderJobName = "check-upcoming-reservations"

var ErrCreateJob = errors.New("scheduler: failed to create job")

// Scheduler периодические задачи сервиса
// Все задачи работают в singleton режиме: следующий запуск не стартует, пока не завершился предыдущий
type Scheduler struct {
	scheduler gocron.Scheduler
	timeout   time.Duration
	logger    Logger
}

// New создает планировщик в локальной таймзоне сервера
// timeout ограничивает один запуск задачи
func New(timeout time.Duration, logger Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		return nil, fmt.Errorf("scheduler: failed to create scheduler: %w", err)
	}

	return &Scheduler{
		scheduler: s,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// AddReminderJob регистрирует проверку резерваций по cron-выражению (5 полей)
func (s *Scheduler) AddReminderJob(crontab string, checker ReminderChecker) (gocron.Job, error) {
	job, err := s.scheduler.NewJob(
		gocron.CronJob(crontab, false),
		gocron.NewTask(func() { s.runReminder(checker) }),
		gocron.WithName(reminderJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCreateJob, reminderJobName, err)
	}

	s.logger.Info("Scheduler: job %s registered with schedule %q", reminderJobName, crontab)
	return job, nil
}

// Start запускает планировщик
func (s *Scheduler) Start() {
	s.scheduler.Start()
	s.logger.Info("Scheduler: started with %d jobs", len(s.scheduler.Jobs()))
}

// Shutdown останавливает планировщик и дожидается завершения запущенных задач
func (s *Scheduler) Shutdown() error {
	if err := s.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("scheduler: shutdown: %w", err)
	}
	s.logger.Info("Scheduler: stopped")
	return nil
}

func (s *Scheduler) runReminder(checker ReminderChecker) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	resp, err := checker.Execute(ctx)
	if err != nil {
		s.logger.Error("Scheduler: job %s failed: %v", reminderJobName, err)
		return
	}

	s.logger.Info("Scheduler: job %s done: checked=%d, sent=%d",
		reminderJobName, resp.ReservationsChecked, resp.NotificationsSent)
}
