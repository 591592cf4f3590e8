package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loomledger-backend/internal/adapter/http"
	appmw "loomledger-backend/internal/adapter/middleware"
	"loomledger-backend/internal/adapter/repository/mysql"
	"loomledger-backend/internal/config"
	domainLoom "loomledger-backend/internal/domain/loom"
	domainPayment "loomledger-backend/internal/domain/payment"
	domainWeaver "loomledger-backend/internal/domain/weaver"
	"loomledger-backend/internal/infrastructure/cache"
	"loomledger-backend/internal/infrastructure/db"
	"loomledger-backend/internal/infrastructure/upload"
	ucLoom "loomledger-backend/internal/usecase/loom"
	ucNotification "loomledger-backend/internal/usecase/notification"
	ucPayment "loomledger-backend/internal/usecase/payment"
	ucSaree "loomledger-backend/internal/usecase/saree"
	ucWeaver "loomledger-backend/internal/usecase/weaver"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&domainLoom.Loom{},
		&domainLoom.SareeEntry{},
		&domainLoom.Warp{},
		&domainLoom.Weft{},
		&domainLoom.WarpColor{},
		&domainLoom.WeftColor{},
		&domainWeaver.Weaver{},
		&domainPayment.Payment{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	docs, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	looms := mysql.NewLoomRepository(gdb)
	entries := mysql.NewSareeEntryRepository(gdb)
	weavers := mysql.NewWeaverRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	loomUC := ucLoom.NewUsecase(looms, tx)
	sareeUC := ucSaree.NewUsecase(looms, entries)
	weaverUC := ucWeaver.NewUsecase(weavers, docs)
	paymentUC := ucPayment.NewUsecase(payments, tx)
	notifUC := ucNotification.NewUsecase(looms)

	h := httpadp.NewHandler()
	loomH := httpadp.NewLoomHandler(loomUC)
	sareeH := httpadp.NewSareeHandler(sareeUC)
	weaverH := httpadp.NewWeaverHandler(weaverUC, docs)
	paymentH := httpadp.NewPaymentHandler(paymentUC)
	notifH := httpadp.NewNotificationHandler(notifUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)

	e.POST("/looms", loomH.Create)
	e.GET("/looms", loomH.List)
	e.GET("/looms/:id", loomH.Get)
	e.PUT("/looms/:id", loomH.Update)
	e.DELETE("/looms/:id", loomH.Delete)
	e.POST("/looms/:id/warps", loomH.AddWarp)
	e.POST("/looms/:id/wefts", loomH.AddWeft)
	e.POST("/looms/:id/warp-colors", loomH.AddWarpColor)
	e.POST("/looms/:id/weft-colors", loomH.AddWeftColor)

	e.POST("/looms/:id/sarees", sareeH.Add)
	e.GET("/looms/:id/sarees", sareeH.ListByLoom)
	e.GET("/sarees/:id", sareeH.Get)
	e.PUT("/sarees/:id", sareeH.Update)
	e.POST("/sarees/:id/complete", sareeH.Complete)
	e.DELETE("/sarees/:id", sareeH.Delete)

	e.POST("/weavers", weaverH.Create)
	e.GET("/weavers", weaverH.List)
	e.GET("/weavers/:id", weaverH.Get)
	e.PUT("/weavers/:id", weaverH.Update)
	e.PATCH("/weavers/:id/toggle", weaverH.ToggleActive)
	e.DELETE("/weavers/:id", weaverH.Delete)
	e.POST("/weavers/:id/aadharcard", weaverH.UploadAadhar)

	// Duplicate submits of the same payment are a real hazard on flaky
	// connections, so the ledger write sits behind the replay guard.
	idem := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	e.POST("/payments", paymentH.Record, idem)
	e.GET("/payments/dates", paymentH.Dates)
	e.GET("/payments/by-date/:date", paymentH.ByDate)

	e.GET("/notifications/warp", notifH.Warp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
