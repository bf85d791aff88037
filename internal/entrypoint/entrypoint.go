package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/openshelf/internal/catalog"
	"github.com/openshelf/openshelf/internal/config"
	"github.com/openshelf/openshelf/internal/database"
	booksRepo "github.com/openshelf/openshelf/internal/database/books"
	loansRepo "github.com/openshelf/openshelf/internal/database/loans"
	membersRepo "github.com/openshelf/openshelf/internal/database/members"
	notificationsRepo "github.com/openshelf/openshelf/internal/database/notifications"
	http_controllers "github.com/openshelf/openshelf/internal/http"
	"github.com/openshelf/openshelf/internal/members"
	"github.com/openshelf/openshelf/internal/notifications"
	"github.com/openshelf/openshelf/internal/scheduler"
	"github.com/openshelf/openshelf/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down within the
// configured timeout. onShutdown is called before the server stops accepting
// connections so background workers can drain first.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the application together and serves it.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting OpenShelf v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	books := booksRepo.NewRepository(db.DB)
	memberRecords := membersRepo.NewRepository(db.DB)
	ledger := loansRepo.NewRepository(db.DB)
	outbox := notificationsRepo.NewRepository(db.DB)

	// Task queue for notice delivery and ledger cleanup
	var taskClient *tasks.Client
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:           cfg.Tasks.Workers,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer taskClient.Close()

		taskClient.Register(
			tasks.NewSendLoanNoticeQueue(outbox),
			tasks.NewCleanupLedgerQueue(ledger),
		)

		taskCtx, taskCancel := context.WithCancel(context.Background())
		defer taskCancel()
		go taskClient.Start(taskCtx)
	} else {
		log.Printf("Task queue disabled; notices will stay pending in the outbox")
	}

	memberService := members.NewService(memberRecords, cfg.Members.BcryptCost)
	sink := notifications.NewService(outbox, taskClient)
	catalogService := catalog.NewService(books, memberService, sink)

	var ledgerCleanup *scheduler.LedgerCleanupScheduler
	if cfg.Ledger.CleanupEnabled && taskClient != nil {
		ledgerCleanup = scheduler.NewLedgerCleanupScheduler(
			taskClient, cfg.Ledger.CleanupSchedule, cfg.Ledger.RetentionDays)
		if err := ledgerCleanup.Start(); err != nil {
			log.Fatalf("Failed to start ledger cleanup scheduler: %v", err)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog: http_controllers.NewCatalogController(catalogService, ledger),
		Members: http_controllers.NewMembersController(memberService, ledger),
		Health:  http_controllers.NewHealthController(db, version),
	})

	Serve(router, cfg, func(ctx context.Context) {
		if ledgerCleanup != nil {
			ledgerCleanup.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
		}
	})
}
