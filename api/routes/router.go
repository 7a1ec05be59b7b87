package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yuchialin/gymdesk-backend/api/controllers"
	"github.com/yuchialin/gymdesk-backend/api/middleware"
	"github.com/yuchialin/gymdesk-backend/internal/catalog"
	"github.com/yuchialin/gymdesk-backend/internal/checkins"
	"github.com/yuchialin/gymdesk-backend/internal/members"
	"github.com/yuchialin/gymdesk-backend/internal/photos"
	"github.com/yuchialin/gymdesk-backend/internal/statuses"
	"github.com/yuchialin/gymdesk-backend/internal/transactions"
	"github.com/yuchialin/gymdesk-backend/pkg/config"
	"github.com/yuchialin/gymdesk-backend/pkg/db"
	"github.com/yuchialin/gymdesk-backend/pkg/logger"
	"github.com/yuchialin/gymdesk-backend/pkg/metrics"
	pkgredis "github.com/yuchialin/gymdesk-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	cache *pkgredis.Client,
	httpMetrics *metrics.HTTPMetrics,
	memberService members.Service,
	statusService statuses.Service,
	checkinService checkins.Service,
	catalogService catalog.Service,
	transactionService transactions.Service,
	photoService photos.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware)
	}

	// A nil *Client must stay a nil interface so the middleware skips replay.
	var idempotencyStore pkgredis.IdempotencyStore
	var cachePinger pkgredis.Pinger
	if cache != nil {
		idempotencyStore = cache
		cachePinger = cache
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, cachePinger, logg))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotencyStore, logg, cfg.FeatureFlags.IdempotencyTTL))

		r.Route("/members", func(r chi.Router) {
			r.Post("/", controllers.MemberCreate(memberService, logg))
			r.Get("/", controllers.MemberList(memberService, logg))
			r.Get("/{contactNumber}", controllers.MemberGet(memberService, logg))
			r.Put("/{contactNumber}", controllers.MemberUpdate(memberService, logg))
			r.Delete("/{contactNumber}", controllers.MemberDelete(memberService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.ProductCreate(catalogService, logg))
			r.Get("/", controllers.ProductList(catalogService, logg))
			r.Get("/{itemCode}", controllers.ProductGet(catalogService, logg))
			r.Put("/{itemCode}", controllers.ProductUpdate(catalogService, logg))
			r.Delete("/{itemCode}", controllers.ProductDelete(catalogService, logg))
		})

		r.Route("/membership_plans", func(r chi.Router) {
			r.Post("/", controllers.PlanCreate(catalogService, logg))
			r.Get("/", controllers.PlanList(catalogService, logg))
			r.Get("/{itemCode}", controllers.PlanGet(catalogService, logg))
			r.Put("/{itemCode}", controllers.PlanUpdate(catalogService, logg))
			r.Delete("/{itemCode}", controllers.PlanDelete(catalogService, logg))
		})

		r.Route("/membership_status", func(r chi.Router) {
			r.Post("/", controllers.StatusCreate(statusService, logg))
			r.Get("/", controllers.StatusList(statusService, logg))
			r.Get("/{contactNumber}", controllers.StatusGet(statusService, logg))
			r.Put("/{contactNumber}", controllers.StatusUpdate(statusService, logg))
			r.Delete("/{contactNumber}", controllers.StatusDelete(statusService, logg))
		})

		r.Route("/checkinrecord", func(r chi.Router) {
			r.Post("/", controllers.CheckinCreate(checkinService, logg))
			r.Get("/", controllers.CheckinList(checkinService, logg))
			r.Get("/{contactNumber}", controllers.CheckinGet(checkinService, logg))
			r.Put("/{contactNumber}", controllers.CheckinCheckOut(checkinService, logg))
			r.Delete("/{contactNumber}", controllers.CheckinDelete(checkinService, logg))
		})

		r.Route("/member_photo", func(r chi.Router) {
			r.Post("/", controllers.PhotoCreate(photoService, logg))
			r.Get("/", controllers.PhotoList(photoService, logg))
			r.Get("/{contactNumber}", controllers.PhotoGet(photoService, logg))
			r.Put("/{contactNumber}", controllers.PhotoUpdate(photoService, logg))
			r.Delete("/{contactNumber}", controllers.PhotoDelete(photoService, logg))
		})

		r.Route("/transaction_records", func(r chi.Router) {
			r.Post("/", controllers.TransactionCreate(transactionService, logg))
			r.Get("/", controllers.TransactionList(transactionService, logg))
			r.Get("/{contactNumber}", controllers.TransactionGet(transactionService, logg))
			r.Put("/{contactNumber}/{id}", controllers.TransactionUpdate(transactionService, logg))
			r.Delete("/{contactNumber}/{id}", controllers.TransactionDelete(transactionService, logg))
		})
	})

	return r
}
