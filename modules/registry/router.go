package registry

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/metafit/gymkit/core"
	"github.com/metafit/gymkit/pkg/tenant"
)

// Router mounts the administrative provisioning surface. It is meant to sit
// behind operator authentication, outside the tenant middleware chain:
// provisioning tooling has no tenant of its own.
//
//	r.Mount("/api/admin", registry.Router(svc))
func Router(svc *Service) chi.Router {
	h := &handlers{svc: svc}

	r := chi.NewRouter()
	r.Route("/tenants", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Route("/{code}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Delete("/", h.offboard)
			r.Post("/suspend", h.event(tenant.EventSuspend))
			r.Post("/activate", h.event(tenant.EventActivate))
			r.Post("/cancel", h.event(tenant.EventCancel))
			r.Post("/block", h.event(tenant.EventBlock))
		})
	})
	return r
}

// ConfigRouter mounts the tenant-facing configuration endpoints. It must be
// mounted behind tenant.Require and tenant.Gate; the tenant is taken from
// the request context, never from the URL.
//
//	r.Mount("/api/config", registry.ConfigRouter(svc))
func ConfigRouter(svc *Service) chi.Router {
	h := &handlers{svc: svc}

	r := chi.NewRouter()
	r.Get("/", h.getConfig)
	r.Put("/", h.updateConfig)
	return r
}

type handlers struct {
	svc *Service
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.svc.List(r.Context())
	if err != nil {
		core.Error(w, http.StatusInternalServerError, "Failed to list tenants")
		return
	}
	core.JSON(w, http.StatusOK, tenants)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	var in CreateTenantInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		core.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.svc.Create(r.Context(), in)
	switch {
	case err == nil:
		core.JSON(w, http.StatusCreated, t)
	case errors.Is(err, ErrCodeTaken):
		core.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidCode), errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidConfig):
		core.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		core.Error(w, http.StatusInternalServerError, "Failed to provision tenant")
	}
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetByCode(r.Context(), chi.URLParam(r, "code"))
	switch {
	case err == nil:
		core.JSON(w, http.StatusOK, t)
	case errors.Is(err, tenant.ErrTenantNotFound):
		core.Error(w, http.StatusNotFound, "Tenant not found")
	default:
		core.Error(w, http.StatusInternalServerError, "Failed to load tenant")
	}
}

func (h *handlers) offboard(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Offboard(r.Context(), chi.URLParam(r, "code"))
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, tenant.ErrTenantNotFound):
		core.Error(w, http.StatusNotFound, "Tenant not found")
	case IsNoTransition(err):
		core.Error(w, http.StatusConflict, err.Error())
	default:
		core.Error(w, http.StatusInternalServerError, "Failed to offboard tenant")
	}
}

func (h *handlers) event(event string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := h.svc.ChangeStatus(r.Context(), chi.URLParam(r, "code"), event)
		switch {
		case err == nil:
			core.JSON(w, http.StatusOK, t)
		case errors.Is(err, tenant.ErrTenantNotFound):
			core.Error(w, http.StatusNotFound, "Tenant not found")
		case IsNoTransition(err):
			core.Error(w, http.StatusConflict, err.Error())
		default:
			core.Error(w, http.StatusInternalServerError, "Failed to change tenant status")
		}
	}
}

func (h *handlers) getConfig(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant.FromContext(r.Context())
	if !ok {
		core.Error(w, http.StatusBadRequest, "No tenant in request context")
		return
	}

	cfg, err := h.svc.Config(r.Context(), t.Code)
	if err != nil {
		core.Error(w, http.StatusInternalServerError, "Failed to load tenant configuration")
		return
	}
	core.JSON(w, http.StatusOK, cfg)
}

func (h *handlers) updateConfig(w http.ResponseWriter, r *http.Request) {
	t, ok := tenant.FromContext(r.Context())
	if !ok {
		core.Error(w, http.StatusBadRequest, "No tenant in request context")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		core.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.UpdateConfig(r.Context(), t.Code, body); err != nil {
		if errors.Is(err, ErrInvalidConfig) {
			core.Error(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		core.Error(w, http.StatusInternalServerError, "Failed to update tenant configuration")
		return
	}

	cfg, err := h.svc.Config(r.Context(), t.Code)
	if err != nil {
		core.Error(w, http.StatusInternalServerError, "Failed to load tenant configuration")
		return
	}
	core.JSON(w, http.StatusOK, cfg)
}
