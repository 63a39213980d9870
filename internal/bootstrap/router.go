package bootstrap

import (
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/grok-project-10/mvp-dashboard-backend/internal/api/http"
	apimw "github.com/grok-project-10/mvp-dashboard-backend/internal/api/http/middleware"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/auth"
	authmw "github.com/grok-project-10/mvp-dashboard-backend/internal/auth/middleware"
	dashhttp "github.com/grok-project-10/mvp-dashboard-backend/internal/dashboard/http"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/export"
	projhttp "github.com/grok-project-10/mvp-dashboard-backend/internal/projects/http"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/repository"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/service"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/store"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/uploads"
)

type RouterDeps struct {
	ServiceName string
	Version     string

	AuthClient *fbauth.Client // nil enables the dev OptionalUser shim
	Firestore  *firestore.Client
	Collection string
	Redis      *redis.Client
	Bucket     *storage.BucketHandle
	BucketName string

	CORSOrigins []string
	RateRPS     float64
	RateBurst   int
	SnapshotTTL time.Duration
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(dep.CORSOrigins) == 1 && dep.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = dep.CORSOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Firestore, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(apimw.RequestIDMiddleware())
	if dep.RateRPS > 0 {
		api.Use(apimw.RateLimitMiddleware(dep.RateRPS, dep.RateBurst))
	}
	if dep.AuthClient != nil {
		api.Use(authmw.FirebaseAuthMiddleware(dep.AuthClient))
	} else {
		api.Use(auth.OptionalUser())
	}

	projectRepo := repository.New(dep.Firestore, dep.Collection)
	projectStore := store.New(projectRepo)
	projectSvc := service.NewProjectService(projectRepo)

	projhttp.New(projectSvc, projectStore).Register(api.Group("/projects"))

	var exportStore *export.Store
	if dep.Redis != nil {
		exportStore = export.NewStore(dep.Redis, dep.SnapshotTTL)
	}
	dashhttp.New(projectStore, exportStore).Register(api.Group("/dashboard"))

	if dep.Bucket != nil {
		uploadSvc := uploads.NewService(dep.Bucket, dep.BucketName)
		uploads.NewHandler(uploadSvc).Register(api.Group("/uploads"))
	}

	return r
}
