package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hagrid/api/http/presenter"
	"github.com/artem13815/hagrid/pkg/interaction"
)

// HistoryLister reads stored interactions.
type HistoryLister interface {
	List(ctx context.Context, limit, offset int) ([]interaction.Record, error)
}

type HistoryHandler struct {
	store HistoryLister
}

func NewHistoryHandler(store HistoryLister) *HistoryHandler { return &HistoryHandler{store: store} }

// List returns stored prompt enhancements, oldest first.
// Query: limit (1..200, default 20), offset (>= 0).
// @Summary История улучшенных промптов
// @Tags    history
// @Produce json
// @Param   limit  query int false "Размер страницы (1..200)" default(20)
// @Param   offset query int false "Смещение" default(0)
// @Success 200 {object} presenter.Page[interaction.Record]
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 20)
	items, err := h.store.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to read history")
	}
	return presenter.JSON(c, http.StatusOK, presenter.NewPage(items, limit, offset))
}

// Home is the landing route.
func Home(c *fiber.Ctx) error {
	return c.SendString("hagrid: prompt enhancement history is at /api/v1/history")
}
