package main

import (
	"github.com/joho/godotenv"

	"pvzadmin/internal/geocode"
	pointshandler "pvzadmin/internal/points/handler"
	pointsservice "pvzadmin/internal/points/service"
	pointsvalidator "pvzadmin/internal/points/validator"
	"pvzadmin/internal/store"
	warehousehandler "pvzadmin/internal/warehouses/handler"
	warehouseservice "pvzadmin/internal/warehouses/service"
	"pvzadmin/pkg/app"
	"pvzadmin/pkg/config"
	"pvzadmin/pkg/kafka"
)

const serviceName = "pickup-points"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(serviceName)
	log := cfg.Log

	st := store.New(store.SeedWarehouses(), store.SeedPickupPoints())

	var events pointsservice.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, serviceName, log)
		if err != nil {
			log.Fatal("Failed to create event producer", "error", err)
		}
		defer producer.Close()
		events = producer
		log.Info("Change events enabled", "topic", cfg.KafkaTopic)
	} else {
		log.Info("Change events disabled: no brokers configured")
	}

	draftValidator := pointsvalidator.New(log)
	pointService := pointsservice.New(st, draftValidator, events, log)
	warehouseService := warehouseservice.New(st, log)

	geocodeCache := geocode.NewCache(cfg.GeocodeCacheTTL)
	geocodeClient := geocode.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderUserAgent, cfg.GeocoderTimeout)
	geocodeService := geocode.NewService(geocodeCache, geocodeClient, log)

	application := app.NewApplication(cfg,
		pointshandler.NewPointHandler(pointService, log),
		warehousehandler.NewWarehouseHandler(warehouseService, log),
		geocode.NewHandler(geocodeService, log),
	)
	application.AddWorker(geocodeCache)

	application.Run()
}
