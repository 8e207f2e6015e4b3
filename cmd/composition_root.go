package cmd

import (
	"log/slog"

	httpadapter "shippinglabel/internal/adapters/in/http"
	"shippinglabel/internal/adapters/out/memory/statestore"
	"shippinglabel/internal/adapters/out/postgres"
	"shippinglabel/internal/adapters/out/postgres/labelrepo"
	"shippinglabel/internal/core/application/usecases/commands"
	"shippinglabel/internal/core/application/usecases/queries"
	"shippinglabel/internal/core/domain/model/labelstate"
	"shippinglabel/internal/core/domain/services"
	"shippinglabel/internal/core/ports"
	"shippinglabel/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	store      ports.StateStore
	reducer    *services.LabelReducer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		store:      statestore.New(),
		reducer:    services.NewLabelReducer(labelstate.DefaultInitializer{}),
		logger:     logger,
	}
}

func (c *CompositionRoot) labelUoWFactory() commands.LabelUoWFactory {
	return FuncLabelUoWFactory(func() commands.LabelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateInitOrderLabelsCommandHandler() commands.InitOrderLabelsCommandHandler {
	return commands.NewInitOrderLabelsCommandHandler(c.store, c.reducer, c.labelUoWFactory())
}

func (c *CompositionRoot) CreateDispatchActionCommandHandler() commands.DispatchActionCommandHandler {
	return commands.NewDispatchActionCommandHandler(c.store, c.reducer, c.labelUoWFactory())
}

func (c *CompositionRoot) CreateEvictIdleStatesCommandHandler() commands.EvictIdleStatesCommandHandler {
	return commands.NewEvictIdleStatesCommandHandler(c.store)
}

func (c *CompositionRoot) CreateRefreshLabelStatusCommandHandler() commands.RefreshLabelStatusCommandHandler {
	return commands.NewRefreshLabelStatusCommandHandler(
		c.store,
		labelrepo.NewGormLabelRepository(c.gormDB, nil),
		c.CreateDispatchActionCommandHandler(),
	)
}

func (c *CompositionRoot) CreateGetOrderLabelStateQueryHandler() queries.GetOrderLabelStateQueryHandler {
	return queries.NewGetOrderLabelStateQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderLabelsQueryHandler() queries.GetOrderLabelsQueryHandler {
	return queries.NewGetOrderLabelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateInitOrderLabelsCommandHandler(),
		c.CreateDispatchActionCommandHandler(),
		c.CreateGetOrderLabelStateQueryHandler(),
		c.CreateGetOrderLabelsQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewStateEvictionJob(
			c.CreateEvictIdleStatesCommandHandler(),
			c.config.StateIdleTTL,
			c.config.StateEvictionSchedule,
			c.logger,
		),
		jobs.NewLabelStatusRefreshJob(
			c.CreateRefreshLabelStatusCommandHandler(),
			c.config.LabelStatusRefreshBatch,
			c.config.LabelStatusRefreshSchedule,
			c.logger,
		),
	)
}

type FuncLabelUoWFactory func() commands.LabelUoW

func (f FuncLabelUoWFactory) Create() commands.LabelUoW {
	return f()
}
