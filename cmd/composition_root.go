package cmd

import (
	"log/slog"
	"os"
	"strconv"

	"reporting/internal/adapters/out/filestore"
	"reporting/internal/adapters/out/postgres"
	"reporting/internal/adapters/out/postgres/sourcerepo"
	"reporting/internal/adapters/out/smtp"
	"reporting/internal/core/application/usecases/commands"
	"reporting/internal/core/application/usecases/queries"
	"reporting/internal/core/ports"
	"reporting/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	recordSource ports.RecordSource
	sender       ports.MessageSender
	exports      ports.ExportStore

	runHandler *commands.RunScheduleCommandHandler
	scheduler  *jobs.Scheduler
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) *CompositionRoot {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	smtpPort, err := strconv.Atoi(config.SMTPPort)
	if err != nil {
		smtpPort = 587
	}

	root := &CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:       logger,
		recordSource: sourcerepo.NewGormRecordSource(gormDB),
		sender:       smtp.NewSender(config.SMTPHost, smtpPort, config.SMTPUser, config.SMTPPassword),
		exports:      filestore.NewStore(config.ExportDir),
	}

	root.scheduler = jobs.NewScheduler(root.scheduleUoWFactory(), logger)
	root.runHandler = commands.NewRunScheduleCommandHandler(
		root.scheduleUoWFactory(),
		root.recordSource,
		root.sender,
		root.exports,
		root.scheduler,
		logger,
	)
	root.scheduler.SetRunHandler(root.runHandler)

	return root
}

// Scheduler returns the background scheduler so main can manage its lifecycle.
func (c *CompositionRoot) Scheduler() *jobs.Scheduler {
	return c.scheduler
}

func (c *CompositionRoot) CreateCreateScheduleCommandHandler() commands.CreateScheduleCommandHandler {
	return commands.NewCreateScheduleCommandHandler(c.scheduleUoWFactory(), c.scheduler)
}

func (c *CompositionRoot) CreateUpdateScheduleCommandHandler() commands.UpdateScheduleCommandHandler {
	return commands.NewUpdateScheduleCommandHandler(c.scheduleUoWFactory(), c.scheduler)
}

func (c *CompositionRoot) CreateDeleteScheduleCommandHandler() commands.DeleteScheduleCommandHandler {
	return commands.NewDeleteScheduleCommandHandler(c.scheduleUoWFactory(), c.scheduler)
}

func (c *CompositionRoot) CreateRunScheduleCommandHandler() *commands.RunScheduleCommandHandler {
	return c.runHandler
}

func (c *CompositionRoot) CreateGetAllSchedulesQueryHandler() queries.GetAllSchedulesQueryHandler {
	return queries.NewGetAllSchedulesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSourceFieldsQueryHandler() queries.GetSourceFieldsQueryHandler {
	return queries.NewGetSourceFieldsQueryHandler(c.recordSource)
}

func (c *CompositionRoot) scheduleUoWFactory() commands.ScheduleUoWFactory {
	return FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
}

type FuncScheduleUoWFactory func() commands.ScheduleUoW

func (f FuncScheduleUoWFactory) Create() commands.ScheduleUoW {
	return f()
}
