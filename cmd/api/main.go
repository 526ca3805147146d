package main

import (
	"context"
	"log"

	"github.com/emmzy1212/portfolio-backend/config"
	httpapi "github.com/emmzy1212/portfolio-backend/internal/api/http"
	"github.com/emmzy1212/portfolio-backend/internal/bootstrap"
	"github.com/emmzy1212/portfolio-backend/internal/monitor"
	"github.com/emmzy1212/portfolio-backend/internal/notify"
	"github.com/emmzy1212/portfolio-backend/internal/portfolio/memory"
	mongorepo "github.com/emmzy1212/portfolio-backend/internal/portfolio/mongo"
	"github.com/emmzy1212/portfolio-backend/internal/portfolio/service"
	"github.com/emmzy1212/portfolio-backend/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	// The durable backend is best effort: a failed connection means the
	// process runs on memory storage, it never fails startup.
	var durableRepo *mongorepo.Repo
	if cfg.Mongo.URI != "" {
		db, err := bootstrap.OpenMongo(ctx, bootstrap.MongoOptions{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Printf("MongoDB unavailable, continuing with in-memory storage: %v", err)
		} else {
			durableRepo = mongorepo.NewRepo(db)
			log.Println("MongoDB connected successfully")
		}
	} else {
		log.Println("MONGODB_URI not set, using in-memory storage")
	}

	mem := memory.NewStore()
	mem.Seed()

	var durable service.DurableStore
	var pinger httpapi.Pinger
	if durableRepo != nil {
		durable = durableRepo
		pinger = durableRepo

		sched := monitor.NewScheduler(durableRepo.Ping)
		sched.Start()
		defer sched.Stop()
	}

	store := service.NewStore(durable, mem)

	saver, err := upload.NewSaver(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	notifier := notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if !notifier.Enabled() {
		log.Println("Telegram credentials not set, contact notifications disabled")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		UploadDir:   cfg.Upload.Dir,
		Store:       store,
		Durable:     pinger,
		Files:       saver,
		Notifier:    notifier,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
