package http

import (
	"net/http"

	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
	"github.com/blubridge/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ConfigHandler interface {
	ListShifts(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
}

type configHandlerImpl struct {
	catalog *shift.Catalog
}

func NewConfigHandler(catalog *shift.Catalog) ConfigHandler {
	return &configHandlerImpl{
		catalog: catalog,
	}
}

// ListShifts implements ConfigHandler.
func (h *configHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.catalog.Definitions())
}

// GetShift implements ConfigHandler.
func (h *configHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "type")

	def, ok := h.catalog.Get(name)
	if !ok {
		response.HandleError(w, shift.ErrUnknownShiftType)
		return
	}

	response.Success(w, def)
}
