package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/cache"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/httpx"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/middleware"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/transport"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/validation"
)

type Handler struct {
	service  *Service
	auditor  *Auditor
	val      *validation.Validator
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(service *Service, auditor *Auditor, val *validation.Validator, log *slog.Logger, cacheStore cache.Cache, cacheTTL time.Duration) *Handler {
	return &Handler{
		service:  service,
		auditor:  auditor,
		val:      val,
		log:      log,
		cache:    cacheStore,
		cacheTTL: cacheTTL,
	}
}

type SearchRequest struct {
	Destination string `json:"destination"`
	Guests      int    `json:"guests" validate:"omitempty,gte=1"`
	Category    string `json:"category" validate:"omitempty,category"`
}

type UpsertVillaRequest struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name" validate:"required"`
	Location       string                 `json:"location" validate:"required"`
	Category       string                 `json:"category" validate:"required,category"`
	Price          float64                `json:"price" validate:"required,gt=0"`
	PricingDetails *models.PricingDetails `json:"pricing_details"`
	Guests         int                    `json:"guests" validate:"required,gte=1"`
	GuestsDetail   string                 `json:"guests_detail"`
	Gallery        []string               `json:"gallery"`
	Features       string                 `json:"features"`
	ServicesFull   string                 `json:"services_full"`
	Description    string                 `json:"description"`
	CSVIntegrated  bool                   `json:"csv_integrated"`
	Status         string                 `json:"status" validate:"omitempty,oneof=active inactive"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

type ReseedRequest struct {
	Villas []UpsertVillaRequest `json:"villas" validate:"required,dive"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	cacheKey := "villas:all"
	if h.cache != nil {
		if cached, ok, err := h.cache.Get(r.Context(), cacheKey); err == nil && ok {
			log.Info("villas list: cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	villas, err := h.service.List(ctx)
	if err != nil {
		h.writeServiceError(w, log, "villas list", err)
		return
	}

	response := map[string]interface{}{"villas": villas}
	if payload, err := json.Marshal(response); err == nil && h.cache != nil {
		_ = h.cache.Set(r.Context(), cacheKey, payload, h.cacheTTL)
	}

	log.Info("villas list: ok", slog.Int("count", len(villas)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("villas get: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	villa, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("villas get: not found", slog.String("villa_id", id))
			transport.WriteError(w, http.StatusNotFound, "villa not found", nil)
			return
		}
		h.writeServiceError(w, log, "villas get", err)
		return
	}

	log.Info("villas get: ok", slog.String("villa_id", id))
	transport.WriteJSON(w, http.StatusOK, villa)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req SearchRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("villas search: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("villas search: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	cacheKey := fmt.Sprintf("villas:search:%s:%d:%s",
		strings.ToLower(strings.TrimSpace(req.Destination)), req.Guests, req.Category)
	if h.cache != nil {
		if cached, ok, err := h.cache.Get(r.Context(), cacheKey); err == nil && ok {
			log.Info("villas search: cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	villas, err := h.service.Search(ctx, SearchFilter{
		Destination: req.Destination,
		MinGuests:   req.Guests,
		Category:    req.Category,
	})
	if err != nil {
		h.writeServiceError(w, log, "villas search", err)
		return
	}

	response := map[string]interface{}{"villas": villas}
	if payload, err := json.Marshal(response); err == nil && h.cache != nil {
		_ = h.cache.Set(r.Context(), cacheKey, payload, h.cacheTTL)
	}

	log.Info("villas search: ok",
		slog.String("destination", req.Destination),
		slog.Int("guests", req.Guests),
		slog.String("category", req.Category),
		slog.Int("count", len(villas)),
	)
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) AdminUpsert(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req UpsertVillaRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin villas upsert: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin villas upsert: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	if id := strings.TrimSpace(chi.URLParam(r, "id")); id != "" {
		req.ID = id
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	villa, err := h.service.Upsert(ctx, villaFromRequest(req))
	if err != nil {
		var rejected *PricingRejectedError
		if errors.As(err, &rejected) {
			log.Warn("admin villas upsert: pricing rejected", slog.String("villa_name", req.Name))
			transport.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "pricing rejected",
				"issues": rejected.Issues,
			})
			return
		}
		if errors.Is(err, ErrConflict) {
			log.Warn("admin villas upsert: conflict", slog.String("villa_name", req.Name))
			transport.WriteError(w, http.StatusConflict, err.Error(), nil)
			return
		}
		h.writeServiceError(w, log, "admin villas upsert", err)
		return
	}

	h.invalidate(r.Context())
	log.Info("admin villas upsert: ok", slog.String("villa_id", villa.ID))
	transport.WriteJSON(w, http.StatusOK, villa)
}

func (h *Handler) AdminSetStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin villas status: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req StatusRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin villas status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin villas status: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	villa, err := h.service.SetStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin villas status: not found", slog.String("villa_id", id))
			transport.WriteError(w, http.StatusNotFound, "villa not found", nil)
			return
		}
		h.writeServiceError(w, log, "admin villas status", err)
		return
	}

	h.invalidate(r.Context())
	log.Info("admin villas status: ok", slog.String("villa_id", id), slog.String("status", req.Status))
	transport.WriteJSON(w, http.StatusOK, villa)
}

func (h *Handler) AdminAudit(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	report, err := h.auditor.Run(ctx, h.service.store)
	if err != nil {
		h.writeServiceError(w, log, "admin catalog audit", err)
		return
	}

	log.Info("admin catalog audit: done",
		slog.Int("total_villas", report.TotalVillas),
		slog.Int("issues", len(report.Issues)),
		slog.Bool("passed", report.Passed),
	)
	transport.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) AdminReseed(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req ReseedRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin catalog reseed: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin catalog reseed: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	villas := make([]models.Villa, 0, len(req.Villas))
	for _, item := range req.Villas {
		villas = append(villas, villaFromRequest(item))
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := h.service.Reseed(ctx, villas); err != nil {
		if errors.Is(err, ErrConflict) {
			log.Warn("admin catalog reseed: conflict", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusConflict, err.Error(), nil)
			return
		}
		h.writeServiceError(w, log, "admin catalog reseed", err)
		return
	}

	h.invalidate(r.Context())
	log.Info("admin catalog reseed: ok", slog.Int("count", len(villas)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "reseeded",
		"count":  len(villas),
	})
}

func villaFromRequest(req UpsertVillaRequest) models.Villa {
	return models.Villa{
		ID:             req.ID,
		Name:           req.Name,
		Location:       req.Location,
		Category:       req.Category,
		Price:          req.Price,
		PricingDetails: req.PricingDetails,
		Guests:         req.Guests,
		GuestsDetail:   req.GuestsDetail,
		Gallery:        req.Gallery,
		Features:       req.Features,
		ServicesFull:   req.ServicesFull,
		Description:    req.Description,
		CSVIntegrated:  req.CSVIntegrated,
		Status:         req.Status,
	}
}

func (h *Handler) invalidate(ctx context.Context) {
	if h.cache != nil {
		_ = h.cache.DeletePrefix(ctx, "villas:")
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	if errors.Is(err, ErrStoreUnavailable) {
		log.Error(op+": store unavailable", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusServiceUnavailable, "catalog store unavailable, try again", nil)
		return
	}
	log.Error(op+": database error", slog.String("error", err.Error()))
	transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
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
