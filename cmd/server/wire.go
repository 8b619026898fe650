//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"petcare_backend/internal/adoption"
	"petcare_backend/internal/app"
	"petcare_backend/internal/article"
	"petcare_backend/internal/config"
	"petcare_backend/internal/firebase"
	"petcare_backend/internal/jobs"
	"petcare_backend/internal/middleware"
	"petcare_backend/internal/newsletter"
	"petcare_backend/internal/notification"
	"petcare_backend/internal/pet"
	"petcare_backend/internal/platform/database"
	"petcare_backend/internal/platform/logger"
	"petcare_backend/internal/shared"
	"petcare_backend/internal/shelter"
	"petcare_backend/internal/story"
	"petcare_backend/internal/user"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform layer
		logger.New,
		database.NewGORM,
		provideCleanup,

		// Identity
		firebase.NewService,
		middleware.NewAuthMiddleware,

		// Users
		user.NewGORMRepository,
		user.NewService,
		wire.Bind(new(user.Service), new(*user.ServiceImplementation)),
		wire.Bind(new(shared.Service), new(*user.ServiceImplementation)),
		user.NewHandler,

		// Pets
		pet.NewGORMRepository,
		pet.NewService,
		wire.Bind(new(pet.Service), new(*pet.ServiceImplementation)),
		wire.Bind(new(adoption.PetService), new(*pet.ServiceImplementation)),
		pet.NewHandler,

		// Adoption workflow
		adoption.NewGORMRepository,
		adoption.NewService,
		wire.Bind(new(adoption.Service), new(*adoption.ServiceImplementation)),
		wire.Bind(new(notification.RequestLister), new(*adoption.ServiceImplementation)),
		adoption.NewHandler,

		// Notification projection
		notification.NewService,
		wire.Bind(new(notification.Service), new(*notification.ServiceImplementation)),
		notification.NewHandler,

		// Content
		story.NewGORMRepository,
		story.NewService,
		wire.Bind(new(story.Service), new(*story.ServiceImplementation)),
		story.NewHandler,
		shelter.NewGORMRepository,
		shelter.NewService,
		wire.Bind(new(shelter.Service), new(*shelter.ServiceImplementation)),
		shelter.NewHandler,
		article.NewGORMRepository,
		article.NewService,
		wire.Bind(new(article.Service), new(*article.ServiceImplementation)),
		article.NewHandler,
		newsletter.NewGORMRepository,
		newsletter.NewService,
		wire.Bind(new(newsletter.Service), new(*newsletter.ServiceImplementation)),
		newsletter.NewHandler,

		// Jobs
		jobs.NewRequestSweeperJob,

		// Application layer
		app.NewServer,
	)
	return nil, nil, nil
}
