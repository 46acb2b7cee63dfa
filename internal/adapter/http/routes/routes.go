package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "boq_service/docs" // swag generated
	"boq_service/internal/adapter/http/handlers"
	"boq_service/internal/adapter/persistence/memory"
	"boq_service/internal/adapter/persistence/repository"
	"boq_service/internal/infrastructure/blob"
	"boq_service/internal/infrastructure/database"
	"boq_service/internal/infrastructure/metrics"
	"boq_service/internal/infrastructure/report"
	"boq_service/internal/usecase"
	"boq_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	port := getenvInt("PORT", defaultPort)
	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()

	store, err := newStore(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize the store: %v", err)
	}

	recorder, err := metrics.NewPropagationRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("Failed to register propagation metrics: %v", err)
	}

	exportRepo, blobs := newExportStorage(ctx)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	registerRoutes(v1, newHandlers(store, recorder, exportRepo, blobs, getenvDuration("EXPORTS_URL_TTL", usecase.DefaultExportURLTTL)))
}

type handlerSet struct {
	propagation *handlers.PropagationHandler
	estimates   *handlers.EstimateHandler
	templates   *handlers.TemplateHandler
	exports     *handlers.ExportHandler
}

func newHandlers(
	store interfaces.IEstimateStore,
	recorder interfaces.IMetricsRecorder,
	exportRepo interfaces.IEstimateExportRepository,
	blobs interfaces.IBlobStore,
	urlTTL time.Duration,
) handlerSet {
	estimateUseCase := usecase.NewEstimateUseCase(store)
	propagationUseCase := usecase.NewPropagationUseCase(store, recorder)
	templateUseCase := usecase.NewTemplateUseCase(store)
	exportUseCase := usecase.NewExportUseCase(estimateUseCase, report.NewXLSXRenderer(), exportRepo, blobs, urlTTL)

	return handlerSet{
		propagation: handlers.NewPropagationHandler(propagationUseCase, estimateUseCase),
		estimates:   handlers.NewEstimateHandler(estimateUseCase),
		templates:   handlers.NewTemplateHandler(templateUseCase),
		exports:     handlers.NewExportHandler(exportUseCase),
	}
}

func registerRoutes(rg *gin.RouterGroup, h handlerSet) {
	addEstimateRoutes(rg, h.estimates, h.propagation)
	addTemplateRoutes(rg, h.templates)
	addExportRoutes(rg, h.exports)
}

// newStore selects the store backend from STORE_DRIVER (postgres or memory).
func newStore(ctx context.Context) (interfaces.IEstimateStore, error) {
	driver := strings.ToLower(getenvDefault("STORE_DRIVER", "postgres"))
	if driver == "memory" {
		log.Printf("[routes][store] using in-memory store")
		return memory.NewStore(), nil
	}

	cfg := database.NewPostgresConfigFromEnv()
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		return nil, err
	}
	store := repository.NewGormStore(db)
	if getenvBool("DB_AUTO_MIGRATE", true) {
		if err := store.AutoMigrate(ctx); err != nil {
			return nil, err
		}
	}
	log.Printf("[routes][store] using postgres store host=%s db=%s", cfg.Host, cfg.Name)
	return store, nil
}

// newExportStorage wires S3 and DynamoDB when EXPORTS_S3_BUCKET is set. Without it
// only direct downloads are served.
func newExportStorage(ctx context.Context) (interfaces.IEstimateExportRepository, interfaces.IBlobStore) {
	blobCfg := blob.NewConfigFromEnv()
	if blobCfg.Bucket == "" {
		log.Printf("[routes][export] EXPORTS_S3_BUCKET not set; stored exports disabled")
		return nil, nil
	}

	awsCfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		log.Printf("[routes][export] aws config failed; stored exports disabled err=%v", err)
		return nil, nil
	}
	s3Store, err := blob.NewS3Store(awsCfg, blobCfg)
	if err != nil {
		log.Printf("[routes][export] s3 store failed; stored exports disabled err=%v", err)
		return nil, nil
	}
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		log.Printf("[routes][export] dynamodb client failed; stored exports disabled err=%v", err)
		return nil, nil
	}
	return repository.NewEstimateExportDynamoRepository(ddb), s3Store
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(getenvDefault(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getenvDefault(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getenvDefault(key, ""))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
