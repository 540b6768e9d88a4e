package main

import (
	bookinghandler "travelease/internal/bookings/handler"
	bookingrepository "travelease/internal/bookings/repository"
	bookingservice "travelease/internal/bookings/service"
	statushandler "travelease/internal/status/handler"
	vehiclehandler "travelease/internal/vehicles/handler"
	vehiclerepository "travelease/internal/vehicles/repository"
	vehicleservice "travelease/internal/vehicles/service"
	"travelease/pkg/app"
	"travelease/pkg/config"
	"travelease/pkg/events"
)

const ServiceName = "travelease"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	publisher := initEvents(cfg)

	vehicleService := vehicleservice.NewVehicleService(
		vehiclerepository.NewMongoVehicleRepository(cfg),
		publisher,
		cfg,
	)
	bookingService := bookingservice.NewBookingService(
		bookingrepository.NewMongoBookingRepository(cfg),
		publisher,
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		statushandler.NewStatusHandler(cfg.Client.Mongo, cfg.Log),
		vehiclehandler.NewVehicleHandler(vehicleService, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
	)
	serverApp.AddShutdownHook(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event producer", "error", err)
		}
		cfg.GracefulShutdown()
	})
	serverApp.Run()
}

func initEvents(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Event publishing disabled, no Kafka brokers configured")
		return events.NoopPublisher{}
	}

	producer, err := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaEventsTopic, ServiceName, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize event producer", "error", err)
	}

	cfg.Log.Info("Event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaEventsTopic)
	return producer
}
