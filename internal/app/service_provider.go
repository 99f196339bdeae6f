package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/xtding233/starrail-backend/internal/api"
	calendarAPI "github.com/xtding233/starrail-backend/internal/api/calendar"
	gachaAPI "github.com/xtding233/starrail-backend/internal/api/gacha"
	jadeAPI "github.com/xtding233/starrail-backend/internal/api/jade"
	tablesAPI "github.com/xtding233/starrail-backend/internal/api/tables"
	"github.com/xtding233/starrail-backend/internal/config"
	"github.com/xtding233/starrail-backend/internal/datasource"
	"github.com/xtding233/starrail-backend/internal/hsr"
	"github.com/xtding233/starrail-backend/internal/pricing"
	"github.com/xtding233/starrail-backend/internal/server"
	"github.com/xtding233/starrail-backend/internal/service"
	"github.com/xtding233/starrail-backend/internal/service/analytics"
)

// ServiceProvider builds the object graph lazily, each piece once.
type ServiceProvider struct {
	cfg     *config.Config
	banners analytics.BannerSource

	// Upstream tables
	fetcher   datasource.Fetcher
	repo      *hsr.Repository
	tableHand *tablesAPI.Handler

	// Analytics
	analyticsServ *analytics.Service
	gachaHand     *gachaAPI.Handler
	jadeHand      *jadeAPI.Handler
	calendarHand  *calendarAPI.Handler
	grpcAnalytics *server.Analytics

	router chi.Router
}

func newServiceProvider(cfg *config.Config, banners analytics.BannerSource) *ServiceProvider {
	return &ServiceProvider{cfg: cfg, banners: banners}
}

func (sp *ServiceProvider) Fetcher() datasource.Fetcher {
	if sp.fetcher == nil {
		sp.fetcher = datasource.NewHTTPFetcher(sp.cfg.UpstreamTimeout, sp.cfg.UpstreamMaxRetries)
	}
	return sp.fetcher
}

func (sp *ServiceProvider) Repository() *hsr.Repository {
	if sp.repo == nil {
		sp.repo = hsr.NewRepository(sp.Fetcher(), hsr.Options{
			DataDir:          sp.cfg.DataDir,
			DimbreathBaseURL: sp.cfg.DimbreathBaseURL,
			Mar7thBaseURL:    sp.cfg.Mar7thBaseURL,
		})
	}
	return sp.repo
}

func (sp *ServiceProvider) TableService() service.TableService {
	return sp.Repository()
}

func (sp *ServiceProvider) TableHandler() *tablesAPI.Handler {
	if sp.tableHand == nil {
		sp.tableHand = tablesAPI.NewHandler(tablesAPI.HandlerDeps{Serv: sp.TableService()})
	}
	return sp.tableHand
}

func (sp *ServiceProvider) AnalyticsService() *analytics.Service {
	if sp.analyticsServ == nil {
		sp.analyticsServ = analytics.NewService(sp.banners, pricing.OneiricShards())
	}
	return sp.analyticsServ
}

func (sp *ServiceProvider) GachaHandler() *gachaAPI.Handler {
	if sp.gachaHand == nil {
		sp.gachaHand = gachaAPI.NewHandler(gachaAPI.HandlerDeps{Serv: sp.AnalyticsService()})
	}
	return sp.gachaHand
}

func (sp *ServiceProvider) JadeHandler() *jadeAPI.Handler {
	if sp.jadeHand == nil {
		sp.jadeHand = jadeAPI.NewHandler(jadeAPI.HandlerDeps{Serv: sp.AnalyticsService()})
	}
	return sp.jadeHand
}

func (sp *ServiceProvider) CalendarHandler() *calendarAPI.Handler {
	if sp.calendarHand == nil {
		sp.calendarHand = calendarAPI.NewHandler(calendarAPI.HandlerDeps{Serv: sp.AnalyticsService()})
	}
	return sp.calendarHand
}

func (sp *ServiceProvider) GRPCAnalytics() *server.Analytics {
	if sp.grpcAnalytics == nil {
		sp.grpcAnalytics = server.NewAnalytics(sp.AnalyticsService(), sp.AnalyticsService())
	}
	return sp.grpcAnalytics
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.Recoverer)
		r.Use(api.Instrument)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))
		r.MethodNotAllowed(api.MethodNotAllowed)
		r.NotFound(api.NotFound)

		r.Get("/healthz", api.Health)

		// Gacha endpoints
		gachaHandler := sp.GachaHandler()
		r.Get("/gacha_cfg", gachaHandler.Config)
		r.Get("/gacha_banner_list", gachaHandler.BannerList)
		r.Post("/probability_rate", gachaHandler.ProbabilityRate)
		r.Post("/probability_rate/sample", gachaHandler.Sample)
		r.Post("/warp", gachaHandler.Warp)

		// Jade endpoints
		jadeHandler := sp.JadeHandler()
		r.Post("/jade_estimate", jadeHandler.Estimate)
		r.Post("/topup_plan", jadeHandler.TopUpPlan)

		// Calendar endpoints
		calendarHandler := sp.CalendarHandler()
		r.Get("/list_future_patch_date", calendarHandler.PatchDates)
		r.Get("/list_future_patch_banner", calendarHandler.PatchBanners)

		// Game tables
		tableHandler := sp.TableHandler()
		r.Get("/characters", tableHandler.Characters)
		r.Get("/characters/{id}", tableHandler.Character)
		r.Get("/characters/{id}/skills", tableHandler.CharacterSkills)
		r.Get("/light_cones", tableHandler.LightCones)
		r.Get("/light_cones/{id}", tableHandler.LightCone)

		sp.router = r
	}

	return sp.router
}
