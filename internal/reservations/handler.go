package reservations

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/httpx"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/middleware"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/transport"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/validation"
)

// Notifier delivers the confirmation email. Delivery is fire-and-forget and
// never part of the reservation's persistence guarantee.
type Notifier interface {
	SendReservationConfirmation(ctx context.Context, reservation models.Reservation) error
}

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	notifier Notifier
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, notifier Notifier) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		notifier: notifier,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("reservation create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("reservation create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	reservation, err := h.service.Create(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownVilla):
			log.Warn("reservation create: unknown villa", slog.String("villa_id", req.VillaID))
			transport.WriteError(w, http.StatusNotFound, "unknown villa", nil)
		case errors.Is(err, ErrInvalidDateRange):
			log.Warn("reservation create: invalid date range",
				slog.String("checkin", req.CheckinDate),
				slog.String("checkout", req.CheckoutDate),
			)
			transport.WriteError(w, http.StatusBadRequest, "invalid date range", nil)
		case errors.Is(err, ErrDateConflict):
			log.Warn("reservation create: date conflict", slog.String("villa_id", req.VillaID))
			transport.WriteError(w, http.StatusConflict, "villa already reserved on these dates", nil)
		case errors.Is(err, ErrStoreUnavailable):
			log.Error("reservation create: store unavailable", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusServiceUnavailable, "reservation store unavailable, try again", nil)
		default:
			log.Error("reservation create: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		}
		return
	}

	if h.notifier != nil {
		go func(res models.Reservation) {
			sendCtx, sendCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer sendCancel()
			if err := h.notifier.SendReservationConfirmation(sendCtx, res); err != nil {
				h.log.Error("reservation confirmation email failed",
					slog.String("reservation_id", res.ID),
					slog.String("error", err.Error()),
				)
			}
		}(reservation)
	}

	log.Info("reservation create: ok",
		slog.String("reservation_id", reservation.ID),
		slog.String("villa_id", reservation.VillaID),
		slog.Float64("total_price", reservation.TotalPrice),
	)
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success":        true,
		"reservation_id": reservation.ID,
		"total_price":    reservation.TotalPrice,
		"warnings":       reservation.Warnings,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("reservation get: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	reservation, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("reservation get: not found", slog.String("reservation_id", id))
			transport.WriteError(w, http.StatusNotFound, "reservation not found", nil)
			return
		}
		log.Error("reservation get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("reservation get: ok", slog.String("reservation_id", id))
	transport.WriteJSON(w, http.StatusOK, reservation)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 50, 200)
	if err != nil {
		log.Warn("admin reservations list: bad pagination")
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	reservations, err := h.service.List(ctx, int(limit), int(offset))
	if err != nil {
		log.Error("admin reservations list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin reservations list: ok", slog.Int("count", len(reservations)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"reservations": reservations,
		"limit":        limit,
		"offset":       offset,
	})
}

func (h *Handler) AdminSetStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin reservation status: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req StatusRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin reservation status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin reservation status: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.SetStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin reservation status: not found", slog.String("reservation_id", id))
			transport.WriteError(w, http.StatusNotFound, "reservation not found", nil)
			return
		}
		log.Error("admin reservation status: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin reservation status: ok", slog.String("reservation_id", id), slog.String("status", req.Status))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"id":     id,
		"status": req.Status,
	})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
