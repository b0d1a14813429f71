package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/tripoli-karting/tentdesk/internal/clock"
	"github.com/tripoli-karting/tentdesk/internal/http/handlers"
	imw "github.com/tripoli-karting/tentdesk/internal/http/middleware"
	"github.com/tripoli-karting/tentdesk/internal/otp"
	"github.com/tripoli-karting/tentdesk/internal/receipt"
	"github.com/tripoli-karting/tentdesk/internal/service"
	"github.com/tripoli-karting/tentdesk/internal/store"
	"github.com/tripoli-karting/tentdesk/pkg/config"
	"github.com/tripoli-karting/tentdesk/pkg/events"
	"github.com/tripoli-karting/tentdesk/pkg/logger"
	mw "github.com/tripoli-karting/tentdesk/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	clk := clock.NewSystem()

	// Event publishing is optional; the desk runs standalone by default.
	var publisher events.Publisher
	if cfg.Events.Enabled {
		p, err := events.NewNATSPublisher(cfg.Events.NATSURL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		publisher = p
	} else {
		publisher = events.NewNoopPublisher()
	}
	defer publisher.Close()

	// OTP delivery channel
	var sender otp.Sender
	if cfg.OTP.DevMode {
		sender = otp.NewDevSender()
	} else {
		sender = otp.NewMailerSendSender(cfg.OTP.MailerSendKey, cfg.OTP.EmailFromName, cfg.OTP.EmailFrom, cfg.OTP.RelayDomain)
	}

	// In-memory state; resets with the process, by design.
	sessions := store.NewSessionStore()
	inventory := store.NewInventory()
	inventory.Initialize()
	receipts := store.NewReceiptLog()

	composer := receipt.NewComposer(cfg.Receipt)

	authService := service.NewAuthService(sessions, sender, clk, cfg)
	bookingService := service.NewBookingService(inventory, receipts, composer, publisher, clk, cfg)

	h := handlers.New(authService, bookingService, inventory, cfg)

	otpLimiter := imw.NewRateLimiter(imw.RateLimitConfig{
		Requests: cfg.RateLimit.OTPRequests,
		Window:   cfg.RateLimit.OTPWindow,
		KeyFunc:  imw.IPKeyFunc,
	})

	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("tentdesk"))
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", "X-Receipt-ID"},
		MaxAge:         300,
	}))

	r.Route("/", func(r chi.Router) {
		r.With(otpLimiter.Middleware()).Post("/auth/otp/request", h.RequestOTP)
		r.Post("/auth/otp/verify", h.VerifyOTP)

		r.Get("/i18n/{locale}", h.GetCatalog)

		// Operator routes (require a verified session)
		r.Group(func(r chi.Router) {
			r.Use(imw.RequireOperator(cfg.Auth.JWTSecret, authService))

			r.Post("/auth/logout", h.Logout)

			r.Get("/tents", h.ListTents)
			r.Get("/tents/available", h.ListAvailableTents)
			r.Get("/tents/{code}", h.GetTent)
			r.Patch("/tents/{code}", h.PatchTent)

			r.Post("/bookings", h.CreateBooking)
			r.Get("/receipts", h.ListReceipts)
			r.Get("/receipts/{id}/document", h.DownloadReceipt)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		logger.Info("Starting tentdesk API", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-sigChan:
		case <-ctx.Done():
			return ctx.Err()
		}

		logger.Info("Shutting down tentdesk API...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("tentdesk API error", "error", err)
		os.Exit(1)
	}
}
