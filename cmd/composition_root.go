package cmd

import (
	"log/slog"

	"deliveryhub/internal/adapters/in/http"
	"deliveryhub/internal/adapters/out/postgres"
	"deliveryhub/internal/adapters/out/postgres/courierrepo"
	"deliveryhub/internal/adapters/out/postgres/customerrepo"
	"deliveryhub/internal/adapters/out/postgres/deliveryrepo"
	"deliveryhub/internal/adapters/out/postgres/storerepo"
	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/application/usecases/queries"
	"deliveryhub/internal/jobs"
	"deliveryhub/internal/pkg/keylock"
	"deliveryhub/internal/pkg/password"
	"deliveryhub/internal/pkg/token"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use-case handlers. One keyed-mutex
// registry serializes the check-and-assign sequence per courier across both
// assignment paths, so the assign handler is built once and the dispatch
// handler receives the same registry.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	hasher       password.Hasher
	tokenService *token.Service

	assignmentLocks      *keylock.KeyedMutex
	assignCourierHandler commands.AssignCourierCommandHandler
}

// NewCompositionRoot creates the composition root for the given configuration
// and database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	uowFactory := *postgres.NewGormUnitOfWorkFactory(gormDB)

	root := CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   uowFactory,
		hasher:       password.NewBcryptHasher(),
		tokenService: token.NewService(config.JWTSignKey, config.JWTIssuer, config.JWTTTL),
	}

	root.assignmentLocks = keylock.NewKeyedMutex()
	root.assignCourierHandler = commands.NewAssignCourierCommandHandler(
		root.uowFactoryAdapter(),
		root.assignmentLocks,
	)
	return root
}

// MigrateDB creates or updates the database schema for every persisted
// aggregate.
func (c *CompositionRoot) MigrateDB() error {
	return c.gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&courierrepo.CourierDTO{},
		&customerrepo.CustomerDTO{},
		&storerepo.StoreDTO{},
	)
}

// NewHTTPServer builds the HTTP server with every command and query handler.
func (c *CompositionRoot) NewHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateRegisterCourierCommandHandler(),
		c.CreateRegisterCustomerCommandHandler(),
		c.CreateRegisterStoreCommandHandler(),
		c.CreateLoginCommandHandler(),
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateSubmitRatingCommandHandler(),
		c.CreateSetCourierAvailabilityCommandHandler(),
		c.CreateRegenerateCourierBadgeCommandHandler(),
		c.CreateGetPendingDeliveriesQueryHandler(),
		c.CreateGetDeliveryHistoryQueryHandler(),
		c.CreateGetAvailableCouriersQueryHandler(),
		c.CreateGetTopRatedCouriersQueryHandler(),
	)
}

// NewJobManager builds the background job manager.
func (c *CompositionRoot) NewJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatchPendingCommandHandler(), logger)
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	return commands.NewRegisterCourierCommandHandler(c.courierUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateRegisterStoreCommandHandler() commands.RegisterStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterStoreCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	var f commands.AccountsUoWFactory = FuncAccountsUoWFactory(func() commands.AccountsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCommandHandler(f, c.hasher, c.tokenService)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.CreateDeliveryUoWFactory = FuncCreateDeliveryUoWFactory(func() commands.CreateDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return c.assignCourierHandler
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.uowFactoryAdapter())
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	return commands.NewSubmitRatingCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateSetCourierAvailabilityCommandHandler() commands.SetCourierAvailabilityCommandHandler {
	return commands.NewSetCourierAvailabilityCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateRegenerateCourierBadgeCommandHandler() commands.RegenerateCourierBadgeCommandHandler {
	return commands.NewRegenerateCourierBadgeCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateDispatchPendingCommandHandler() commands.DispatchPendingCommandHandler {
	return commands.NewDispatchPendingCommandHandler(c.uowFactoryAdapter(), c.assignmentLocks)
}

func (c *CompositionRoot) CreateGetPendingDeliveriesQueryHandler() queries.GetPendingDeliveriesQueryHandler {
	return queries.NewGetPendingDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryHistoryQueryHandler() queries.GetDeliveryHistoryQueryHandler {
	return queries.NewGetDeliveryHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableCouriersQueryHandler() queries.GetAvailableCouriersQueryHandler {
	return queries.NewGetAvailableCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTopRatedCouriersQueryHandler() queries.GetTopRatedCouriersQueryHandler {
	return queries.NewGetTopRatedCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryAdapter() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncCreateDeliveryUoWFactory func() commands.CreateDeliveryUoW

func (f FuncCreateDeliveryUoWFactory) Create() commands.CreateDeliveryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncAccountsUoWFactory func() commands.AccountsUoW

func (f FuncAccountsUoWFactory) Create() commands.AccountsUoW {
	return f()
}
