package main

import (
	"context"
	"log"

	"github.com/grok-project-10/mvp-dashboard-backend/config"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	fb, err := bootstrap.InitFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	defer fb.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		// Export snapshots are the only Redis consumer; run without them.
		log.Printf("redis unavailable, export snapshots disabled: %v", err)
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "mvp-dashboard-backend",
		Version:     cfg.App.Version,
		AuthClient:  fb.Auth,
		Firestore:   fb.Firestore,
		Collection:  cfg.Firebase.Collection,
		Redis:       rdb,
		Bucket:      fb.Bucket,
		BucketName:  cfg.Firebase.StorageBucket,
		CORSOrigins: cfg.Server.CORSOrigins,
		RateRPS:     cfg.Server.RateLimitRPS,
		RateBurst:   cfg.Server.RateLimitBurst,
		SnapshotTTL: cfg.Redis.SnapshotTTL,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
