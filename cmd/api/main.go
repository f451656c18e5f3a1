package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nautiq-backend/internal/cartstore"
	"nautiq-backend/internal/config"
	"nautiq-backend/internal/db"
	"nautiq-backend/internal/domain"
	"nautiq-backend/internal/httpserver"
	"nautiq-backend/internal/mailer"
	"nautiq-backend/internal/notice"
	boatrepo "nautiq-backend/internal/repository/boat"
	orderrepo "nautiq-backend/internal/repository/order"
	productrepo "nautiq-backend/internal/repository/product"
	availabilitysvc "nautiq-backend/internal/service/availability"
	cartsvc "nautiq-backend/internal/service/cart"
	checkoutsvc "nautiq-backend/internal/service/checkout"
	enquirysvc "nautiq-backend/internal/service/enquiry"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var store cartstore.Store
	if cfg.RedisURL != "" {
		redisStore, err := cartstore.NewRedis(cfg.RedisURL, logger)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		logger.Printf("REDIS_URL not set, carts will not survive a restart")
		store = cartstore.NewMemory()
	}

	var mail mailer.Sender
	if cfg.ResendAPIKey != "" {
		mail = mailer.NewResend(cfg.ResendAPIKey, logger)
	} else {
		logger.Printf("RESEND_API_KEY not set, outbound email is logged only")
		mail = mailer.LogSender{Logger: logger}
	}

	productRepo := productrepo.NewPostgres(dbpool, logger)
	boatRepo := boatrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	notices := notice.NewRegistry(nil)
	cartService := cartsvc.New(store, cfg.Pricing, notices, logger)
	checkoutService := checkoutsvc.New(store, orderRepo, cfg.Pricing, notices, logger)
	checkoutService.OnPlaced(func(o domain.Order) {
		go func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			msg := mailer.OrderConfirmation(cfg.MailFrom, cfg.MailInternalTo, o)
			if err := mail.Send(sendCtx, msg); err != nil {
				logger.Printf("order confirmation email order=%s: %v", o.ID, err)
			}
		}()
	})
	availabilityService := availabilitysvc.New(nil, logger)
	enquiryService := enquirysvc.New(mail, cfg.MailFrom, cfg.MailInternalTo, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Products:     productRepo,
		Boats:        boatRepo,
		Cart:         cartService,
		Checkout:     checkoutService,
		Availability: availabilityService,
		Enquiries:    enquiryService,
		Notices:      notices,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
