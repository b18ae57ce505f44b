package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"reis-dos-frangos/internal/cart"
	"reis-dos-frangos/internal/catalog"
	"reis-dos-frangos/internal/config"
	"reis-dos-frangos/internal/database"
	"reis-dos-frangos/internal/logger"
	"reis-dos-frangos/internal/models"
	"reis-dos-frangos/internal/order"
)

// ErrUnknownItem is returned when a cart operation names an item the menu
// does not have
var ErrUnknownItem = errors.New("unknown menu item")

// OrderPublisher fans placed orders out to staff tooling
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, order models.PlacedOrder) error
}

// Service owns the catalog and the per-session carts
type Service struct {
	catalog   *catalog.Catalog
	business  config.BusinessConfig
	promotion config.PromotionConfig
	db        *database.DB   // nil when the catalog is static
	publisher OrderPublisher // nil when RabbitMQ is disabled
	logger    *logger.Logger

	whatsappBase string

	mu       sync.RWMutex
	sessions map[string]*session

	orderMu       sync.Mutex
	orderCounter  int
	lastOrderDate string
}

// session serializes access to one visitor's cart
type session struct {
	mu   sync.Mutex
	cart *cart.Engine
}

// NewService creates the storefront service
func NewService(cat *catalog.Catalog, cfg *config.Config, db *database.DB, publisher OrderPublisher, log *logger.Logger) *Service {
	return &Service{
		catalog:      cat,
		business:     cfg.Business,
		promotion:    cfg.Promotion,
		db:           db,
		publisher:    publisher,
		logger:       log,
		whatsappBase: cfg.WhatsAppBaseURL(),
		sessions:     make(map[string]*session),
	}
}

// Menu returns the full menu with business info, sections in display order
func (s *Service) Menu() models.MenuResponse {
	sections := make([]models.MenuSection, 0, len(models.AllCategories))
	for _, category := range s.catalog.Categories() {
		items := s.catalog.ListByCategory(category)
		if len(items) == 0 {
			continue
		}
		for i := range items {
			items[i].Description = catalog.DisplayDescription(items[i])
		}
		sections = append(sections, models.MenuSection{
			Category: category,
			Items:    items,
		})
	}

	return models.MenuResponse{
		Business: models.BusinessInfo{
			Name:         s.business.Name,
			Phone:        s.business.PhoneDisplay,
			WhatsApp:     s.whatsappBase,
			Instagram:    s.business.Instagram,
			Location:     s.business.Location,
			OpeningHours: s.business.OpeningHours,
		},
		Sections: sections,
	}
}

// ensureSession resolves the session for an id, lazily creating one when the
// id is empty or unknown. The resolved id is always returned.
func (s *Service) ensureSession(sessionID string) (string, *session) {
	if sessionID != "" {
		s.mu.RLock()
		sess, ok := s.sessions[sessionID]
		s.mu.RUnlock()
		if ok {
			return sessionID, sess
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if sess, ok := s.sessions[sessionID]; ok {
		return sessionID, sess
	}

	sess := &session{cart: cart.New(s.promotion.DiscountPercent)}
	s.sessions[sessionID] = sess
	return sessionID, sess
}

// view builds the cart payload. Callers hold sess.mu.
func (s *Service) view(sessionID string, sess *session) models.CartView {
	return models.CartView{
		SessionID:        sessionID,
		Lines:            sess.cart.Lines(),
		Totals:           sess.cart.Totals(),
		ContactPhone:     sess.cart.ContactPhone(),
		ContactLocation:  sess.cart.ContactLocation(),
		PromotionApplied: sess.cart.PromotionApplied(),
	}
}

// Cart returns the current cart state for a session
func (s *Service) Cart(sessionID string) models.CartView {
	sessionID, sess := s.ensureSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(sessionID, sess)
}

// AddItem puts one unit of a menu item into the session's cart
func (s *Service) AddItem(sessionID, itemID string) (models.CartView, error) {
	item, ok := s.catalog.ItemByID(itemID)
	if !ok {
		return models.CartView{}, fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}

	sessionID, sess := s.ensureSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.cart.AddItem(item)
	return s.view(sessionID, sess), nil
}

// UpdateQuantity adjusts a cart line's quantity by delta, clamped at one
func (s *Service) UpdateQuantity(sessionID, itemID string, delta int) models.CartView {
	sessionID, sess := s.ensureSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.cart.UpdateQuantity(itemID, delta)
	return s.view(sessionID, sess)
}

// RemoveItem drops a cart line
func (s *Service) RemoveItem(sessionID, itemID string) models.CartView {
	sessionID, sess := s.ensureSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.cart.RemoveItem(itemID)
	return s.view(sessionID, sess)
}

// SetContact stores the delivery phone and location
func (s *Service) SetContact(sessionID, phone, location string) models.CartView {
	sessionID, sess := s.ensureSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.cart.SetContactPhone(phone)
	sess.cart.SetContactLocation(location)
	return s.view(sessionID, sess)
}

// SetPromotion sets the promotion flag
func (s *Service) SetPromotion(sessionID string, applied bool) models.CartView {
	sessionID, sess := s.ensureSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.cart.SetPromotionApplied(applied)
	return s.view(sessionID, sess)
}

// Checkout validates the cart, renders the order message and hands it off.
// On success the session's cart is cleared; the returned wa.me link is the
// visitor's side of the hand-off, and when a publisher is wired the order is
// also fanned out to the staff queue. The fan-out is fire-and-forget: a
// publish failure is logged and never fails the checkout.
func (s *Service) Checkout(ctx context.Context, sessionID, requestID string) (models.CheckoutResponse, string, error) {
	sessionID, sess := s.ensureSession(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	c := sess.cart
	if err := order.ValidateCheckout(c.ContactPhone(), c.ContactLocation(), c.IsEmpty()); err != nil {
		return models.CheckoutResponse{}, sessionID, err
	}

	lines := c.Lines()
	totals := c.Totals()
	msg := order.BuildMessage(s.business.Name, c.ContactLocation(), c.ContactPhone(),
		lines, totals, c.PromotionApplied(), s.promotion.DiscountPercent)

	placed := models.PlacedOrder{
		OrderNumber: s.nextOrderNumber(),
		SessionID:   sessionID,
		Lines:       lines,
		Totals:      totals,
		Message:     msg,
		PlacedAt:    time.Now().UTC(),
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, placed); err != nil {
			s.logger.Error("order_publish_failed", "Failed to fan out placed order", requestID, err,
				map[string]interface{}{"order_number": placed.OrderNumber})
		}
	}

	c.Clear()

	s.logger.Info("order_placed", fmt.Sprintf("Order %s placed", placed.OrderNumber), requestID,
		map[string]interface{}{
			"order_number": placed.OrderNumber,
			"total":        totals.Total,
			"item_count":   totals.ItemCount,
		})

	return models.CheckoutResponse{
		OrderNumber: placed.OrderNumber,
		WhatsAppURL: order.WhatsAppURL(s.whatsappBase, msg),
		Message:     msg,
		Totals:      totals,
	}, sessionID, nil
}

// nextOrderNumber stamps orders as PED_YYYYMMDD_NNN with a daily counter
func (s *Service) nextOrderNumber() string {
	s.orderMu.Lock()
	defer s.orderMu.Unlock()

	today := time.Now().UTC().Format("20060102")
	if today != s.lastOrderDate {
		s.orderCounter = 0
		s.lastOrderDate = today
	}
	s.orderCounter++

	return fmt.Sprintf("PED_%s_%03d", today, s.orderCounter)
}

// HealthCheck reports whether the wired infrastructure is reachable
func (s *Service) HealthCheck(ctx context.Context) bool {
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			return false
		}
	}
	return true
}
