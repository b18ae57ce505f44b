package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"reis-dos-frangos/internal/logger"
	"reis-dos-frangos/internal/models"
	"reis-dos-frangos/internal/order"
)

// SessionHeader carries the visitor's cart session id
const SessionHeader = "X-Session-ID"

// Handler handles HTTP requests for the storefront service
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new storefront handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// SetupRoutes sets up the HTTP routes
func (h *Handler) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /menu", h.withLogging(h.Menu))
	mux.HandleFunc("GET /cart", h.withLogging(h.Cart))
	mux.HandleFunc("POST /cart/items", h.withLogging(h.AddItem))
	mux.HandleFunc("PATCH /cart/items/{id}", h.withLogging(h.UpdateQuantity))
	mux.HandleFunc("DELETE /cart/items/{id}", h.withLogging(h.RemoveItem))
	mux.HandleFunc("PUT /cart/contact", h.withLogging(h.SetContact))
	mux.HandleFunc("POST /cart/promotion", h.withLogging(h.SetPromotion))
	mux.HandleFunc("POST /checkout", h.withLogging(h.Checkout))
	mux.HandleFunc("GET /health", h.withLogging(h.HealthCheck))

	return mux
}

// Menu handles GET /menu requests
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Menu())
}

// Cart handles GET /cart requests
func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	view := h.service.Cart(r.Header.Get(SessionHeader))
	h.writeCartView(w, view)
}

// AddItem handles POST /cart/items requests
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	var req models.AddItemRequest
	if !h.decodeBody(w, r, &req, requestID) {
		return
	}

	view, err := h.service.AddItem(r.Header.Get(SessionHeader), req.ItemID)
	if err != nil {
		if errors.Is(err, ErrUnknownItem) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error(), requestID)
			return
		}
		h.writeErrorResponse(w, http.StatusInternalServerError, "Internal server error", requestID)
		return
	}

	h.writeCartView(w, view)
}

// UpdateQuantity handles PATCH /cart/items/{id} requests
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	var req models.UpdateQuantityRequest
	if !h.decodeBody(w, r, &req, requestID) {
		return
	}

	view := h.service.UpdateQuantity(r.Header.Get(SessionHeader), r.PathValue("id"), req.Delta)
	h.writeCartView(w, view)
}

// RemoveItem handles DELETE /cart/items/{id} requests
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	view := h.service.RemoveItem(r.Header.Get(SessionHeader), r.PathValue("id"))
	h.writeCartView(w, view)
}

// SetContact handles PUT /cart/contact requests
func (h *Handler) SetContact(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	var req models.ContactRequest
	if !h.decodeBody(w, r, &req, requestID) {
		return
	}

	view := h.service.SetContact(r.Header.Get(SessionHeader), req.Phone, req.Location)
	h.writeCartView(w, view)
}

// SetPromotion handles POST /cart/promotion requests
func (h *Handler) SetPromotion(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	var req models.PromotionRequest
	if !h.decodeBody(w, r, &req, requestID) {
		return
	}

	view := h.service.SetPromotion(r.Header.Get(SessionHeader), req.Applied)
	h.writeCartView(w, view)
}

// Checkout handles POST /checkout requests
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	resp, sessionID, err := h.service.Checkout(ctx, r.Header.Get(SessionHeader), requestID)
	if err != nil {
		var verr order.ValidationError
		if errors.As(err, &verr) {
			h.logger.Debug("checkout_rejected", "Checkout validation failed", requestID,
				map[string]interface{}{"field": verr.Field})
			w.Header().Set(SessionHeader, sessionID)
			h.writeErrorResponse(w, http.StatusUnprocessableEntity, verr.Error(), requestID)
			return
		}
		h.logger.Error("checkout_failed", "Failed to place order", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Internal server error", requestID)
		return
	}

	w.Header().Set(SessionHeader, sessionID)
	h.writeJSON(w, http.StatusOK, resp)
}

// HealthCheck handles GET /health requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	healthy := h.service.HealthCheck(ctx)

	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "storefront-service",
		"healthy":   healthy,
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
		response["status"] = "unhealthy"
	}

	h.writeJSON(w, status, response)
}

// decodeBody decodes a JSON request body, writing the error response itself
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, requestID string) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		h.writeErrorResponse(w, http.StatusBadRequest, "Content-Type must be application/json", requestID)
		return false
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return false
	}

	return true
}

// writeCartView writes a cart payload, echoing the session id header
func (h *Handler) writeCartView(w http.ResponseWriter, view models.CartView) {
	w.Header().Set(SessionHeader, view.SessionID)
	h.writeJSON(w, http.StatusOK, view)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", "", err, nil)
	}
}

// writeErrorResponse writes an error response in JSON format
func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, message, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]interface{}{
		"error":      message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	}

	json.NewEncoder(w).Encode(errorResponse)
}

// withLogging adds request logging middleware
func (h *Handler) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := logger.GenerateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		h.logger.Debug("request_started",
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
			})

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(rw, r)

		duration := time.Since(start)
		h.logger.Debug("request_completed",
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": duration.Milliseconds(),
			})
	}
}

type requestIDKey struct{}

// requestIDFrom pulls the request id set by withLogging
func requestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
