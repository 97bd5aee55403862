package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api/middleware"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/config"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
)

// Services bundles the service dependencies of the router.
type Services struct {
	System     *service.SystemService
	User       *service.UserService
	CapType    *service.CapTypeService
	Fund       *service.FundService
	Entry      *service.EntryService
	SIP        *service.SIPService
	Allocation *service.AllocationService
	PF         *service.PFService
	Gold       *service.GoldService
	Price      *service.PriceService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/user", func(r chi.Router) {
			userHandler := handlers.NewUserHandler(services.User)
			r.Get("/", userHandler.Users)
			r.Post("/", userHandler.CreateUser)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", userHandler.DeleteUser)
			})
		})

		r.Route("/captype", func(r chi.Router) {
			capTypeHandler := handlers.NewCapTypeHandler(services.CapType)
			r.Get("/", capTypeHandler.CapTypes)
			r.Post("/", capTypeHandler.CreateCapType)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", capTypeHandler.UpdateCapType)
				r.Delete("/", capTypeHandler.DeleteCapType)
			})
		})

		r.Route("/fund", func(r chi.Router) {
			fundHandler := handlers.NewFundHandler(services.Fund)
			r.Get("/", fundHandler.Funds)
			r.Post("/", fundHandler.CreateFund)

			r.Route("/summary/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", fundHandler.FundSummary)
			})

			r.Route("/metrics/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", fundHandler.FundMetrics)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", fundHandler.UpdateFund)
				r.Delete("/", fundHandler.DeleteFund)
			})
		})

		r.Route("/entry", func(r chi.Router) {
			entryHandler := handlers.NewEntryHandler(services.Entry)
			r.Post("/", entryHandler.CreateEntry)

			r.Route("/user/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", entryHandler.EntriesPerUser)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", entryHandler.UpdateEntry)
				r.Delete("/", entryHandler.DeleteEntry)
			})
		})

		r.Route("/sip", func(r chi.Router) {
			sipHandler := handlers.NewSIPHandler(services.SIP)
			r.Post("/", sipHandler.CreateSIP)

			r.Route("/user/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", sipHandler.SIPsPerUser)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", sipHandler.UpdateSIP)
				r.Delete("/", sipHandler.DeleteSIP)
			})
		})

		r.Route("/allocation", func(r chi.Router) {
			allocationHandler := handlers.NewAllocationHandler(services.Allocation)

			r.Route("/user/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", allocationHandler.AllocationsPerUser)
				r.Put("/", allocationHandler.SaveAllocations)
			})
		})

		r.Route("/pf", func(r chi.Router) {
			pfHandler := handlers.NewPFHandler(services.PF)
			r.Get("/types", pfHandler.Types)
			r.Post("/setup", pfHandler.SetupLedger)
			r.Post("/recalculate", pfHandler.Recalculate)

			r.Route("/interest", func(r chi.Router) {
				r.Get("/", pfHandler.InterestRates)
				r.Post("/", pfHandler.CreateInterestRate)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", pfHandler.UpdateInterestRate)
					r.Delete("/", pfHandler.DeleteInterestRate)
				})
			})

			r.Route("/entry/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", pfHandler.UpdateEntry)
			})

			r.Route("/user/{uuid}/type/{typeuuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", pfHandler.Ledger)
				r.Delete("/", pfHandler.DeleteLedger)
				r.Get("/yearwise", pfHandler.Yearwise)
			})
		})

		r.Route("/gold", func(r chi.Router) {
			goldHandler := handlers.NewGoldHandler(services.Gold)
			r.Post("/", goldHandler.CreateEntry)
			r.Get("/price", goldHandler.TodayPrice)
			r.Put("/price", goldHandler.SetTodayPrice)

			r.Route("/user/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", goldHandler.Portfolio)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", goldHandler.UpdateEntry)
				r.Delete("/", goldHandler.DeleteEntry)
			})
		})

		r.Route("/price", func(r chi.Router) {
			priceHandler := handlers.NewPriceHandler(services.Price)
			r.Post("/refresh", priceHandler.Refresh)
			r.Get("/provider", priceHandler.Provider)
			r.Put("/provider", priceHandler.SetProvider)
		})
	})

	return r
}
