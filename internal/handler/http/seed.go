package http

import (
	"net/http"
	"time"

	"github.com/blubridge/hrms-backend-go/internal/fixtures"
	"github.com/blubridge/hrms-backend-go/internal/handler/http/response"
)

type SeedHandler interface {
	Seed(w http.ResponseWriter, r *http.Request)
}

type seedHandlerImpl struct {
	seeder fixtures.Seeder
}

func NewSeedHandler(seeder fixtures.Seeder) SeedHandler {
	return &seedHandlerImpl{
		seeder: seeder,
	}
}

// Seed implements SeedHandler.
func (h *seedHandlerImpl) Seed(w http.ResponseWriter, r *http.Request) {
	message, err := h.seeder.Seed(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, nil)
}
