package cmd

import (
	"log/slog"

	httpin "parcels/internal/adapters/in/http"
	"parcels/internal/adapters/out/label"
	"parcels/internal/adapters/out/postgres"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/services"
	"parcels/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and jobs together. Handlers are
// created on demand; each one gets its own unit-of-work factory closed over
// the shared GORM connection.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the application wiring.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, services.NewTrackingNumberGenerator())
}

func (c *CompositionRoot) CreateUpdateParcelCommandHandler() commands.UpdateParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateUserRoleCommandHandler() commands.UpdateUserRoleCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteUserCommandHandler(f)
}

func (c *CompositionRoot) CreateGetParcelsQueryHandler() queries.GetParcelsQueryHandler {
	return queries.NewGetParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCouriersQueryHandler() queries.GetCouriersQueryHandler {
	return queries.NewGetCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountPendingParcelsQueryHandler() queries.CountPendingParcelsQueryHandler {
	return queries.NewCountPendingParcelsQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the HTTP facade with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	commandHandlers := httpin.CommandHandlers{
		CreateParcel:       c.CreateCreateParcelCommandHandler(),
		UpdateParcel:       c.CreateUpdateParcelCommandHandler(),
		UpdateParcelStatus: c.CreateUpdateParcelStatusCommandHandler(),
		AssignCourier:      c.CreateAssignCourierCommandHandler(),
		DeleteParcel:       c.CreateDeleteParcelCommandHandler(),
		CreateCustomer:     c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:     c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:     c.CreateDeleteCustomerCommandHandler(),
		CreateUser:         c.CreateCreateUserCommandHandler(),
		UpdateUser:         c.CreateUpdateUserCommandHandler(),
		UpdateUserRole:     c.CreateUpdateUserRoleCommandHandler(),
		DeleteUser:         c.CreateDeleteUserCommandHandler(),
	}

	queryHandlers := httpin.QueryHandlers{
		GetParcels:          c.CreateGetParcelsQueryHandler(),
		GetParcel:           c.CreateGetParcelQueryHandler(),
		TrackParcel:         c.CreateTrackParcelQueryHandler(),
		GetCustomers:        c.CreateGetCustomersQueryHandler(),
		GetCustomer:         c.CreateGetCustomerQueryHandler(),
		GetUsers:            c.CreateGetUsersQueryHandler(),
		GetCouriers:         c.CreateGetCouriersQueryHandler(),
		CountPendingParcels: c.CreateCountPendingParcelsQueryHandler(),
	}

	return httpin.NewServer(commandHandlers, queryHandlers, label.NewGenerator())
}

// CreateJobManager builds the background job wiring.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCountPendingParcelsQueryHandler(),
		c.config.BacklogSchedule,
		logger,
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
