package marketplacehttp

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	playgroundValidator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type Cart interface {
	Cart(ctx context.Context, userUUID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, principal models.Principal, userUUID, productUUID uuid.UUID, quantity int) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, principal models.Principal, userUUID, productUUID uuid.UUID, quantity int) (*models.Cart, error)
	RemoveItem(ctx context.Context, principal models.Principal, userUUID, productUUID uuid.UUID) (*models.Cart, error)
}

type OrderCreator interface {
	Create(ctx context.Context, principal models.Principal, userUUID uuid.UUID) (*models.Order, error)
}

type OrderRetriever interface {
	Orders(ctx context.Context, principal models.Principal) ([]models.Order, error)
}

type LineStatusUpdater interface {
	UpdateLineStatus(ctx context.Context, principal models.Principal, orderUUID, productUUID uuid.UUID, newStatus models.LineStatus) error
}

type OrderCanceller interface {
	Cancel(ctx context.Context, principal models.Principal, orderUUID uuid.UUID) error
}

type StockAdjuster interface {
	AdjustStock(ctx context.Context, principal models.Principal, productUUID uuid.UUID, delta int) error
}

type Handler struct {
	log      logger.Logger
	validate *playgroundValidator.Validate

	cartService       Cart
	orderCreator      OrderCreator
	orderRetriever    OrderRetriever
	lineStatusUpdater LineStatusUpdater
	orderCanceller    OrderCanceller
	stockAdjuster     StockAdjuster

	metricsRegistry *prometheus.Registry
}

func NewHandler(
	log logger.Logger,
	cartService Cart,
	orderCreator OrderCreator,
	orderRetriever OrderRetriever,
	lineStatusUpdater LineStatusUpdater,
	orderCanceller OrderCanceller,
	stockAdjuster StockAdjuster,
	metricsRegistry *prometheus.Registry,
) *Handler {
	return &Handler{
		log:               log,
		validate:          playgroundValidator.New(),
		cartService:       cartService,
		orderCreator:      orderCreator,
		orderRetriever:    orderRetriever,
		lineStatusUpdater: lineStatusUpdater,
		orderCanceller:    orderCanceller,
		stockAdjuster:     stockAdjuster,
		metricsRegistry:   metricsRegistry,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	if h.metricsRegistry != nil {
		mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.metricsRegistry, promhttp.HandlerOpts{}))
	}

	mux.Group(func(r chi.Router) {
		r.Use(h.withPrincipal)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Post("/items", h.addCartItem)
			r.Patch("/items/{productUUID}", h.updateCartItem)
			r.Delete("/items/{productUUID}", h.removeCartItem)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.checkout)
			r.Get("/", h.listOrders)
			r.Patch("/{orderUUID}/lines/{productUUID}/status", h.updateLineStatus)
			r.Patch("/{orderUUID}/cancel", h.cancelOrder)
		})

		r.Patch("/products/{productUUID}/stock", h.adjustStock)
	})

	return mux
}
