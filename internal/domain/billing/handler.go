package billing

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carefront/carefront/internal/store"
	"github.com/carefront/carefront/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/bills", h.CreateBill)
	api.GET("/bills", h.ListBills)
	api.GET("/bills/:id", h.GetBill)
	api.POST("/bills/:id/pay", h.PayBill)
}

func (h *Handler) CreateBill(c echo.Context) error {
	var b Bill
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, h.svc.Create(b))
}

func (h *Handler) ListBills(c echo.Context) error {
	pg := pagination.FromContext(c)
	all := h.svc.List(c.QueryParam("patient_id"))
	page := pagination.Slice(all, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(all), pg.Limit, pg.Offset))
}

func (h *Handler) GetBill(c echo.Context) error {
	b, ok := h.svc.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "bill not found")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) PayBill(c echo.Context) error {
	id := c.Param("id")
	if err := h.svc.Pay(id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, store.ErrIllegalTransition):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id, "status": StatusPaid})
}
