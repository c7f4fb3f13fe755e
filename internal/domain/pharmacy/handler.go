package pharmacy

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
	api.POST("/prescriptions", h.CreatePrescription)
	api.GET("/prescriptions", h.ListPrescriptions)
	api.GET("/prescriptions/:id", h.GetPrescription)
	api.POST("/prescriptions/:id/dispense", h.DispensePrescription)
	api.POST("/prescriptions/:id/pay", h.PayPrescription)
	api.GET("/medications", h.ListMedications)
	api.GET("/medications/:id", h.GetMedication)
}

func (h *Handler) CreatePrescription(c echo.Context) error {
	var p Prescription
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, h.svc.Create(p))
}

func (h *Handler) ListPrescriptions(c echo.Context) error {
	pg := pagination.FromContext(c)
	all := h.svc.List(c.QueryParam("patient_id"))
	page := pagination.Slice(all, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(all), pg.Limit, pg.Offset))
}

func (h *Handler) GetPrescription(c echo.Context) error {
	p, ok := h.svc.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "prescription not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DispensePrescription(c echo.Context) error {
	return h.transition(c, h.svc.Dispense, StatusDispensed)
}

func (h *Handler) PayPrescription(c echo.Context) error {
	return h.transition(c, h.svc.MarkPaid, StatusPaid)
}

func (h *Handler) transition(c echo.Context, fn func(string) error, status string) error {
	id := c.Param("id")
	if err := fn(id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, store.ErrIllegalTransition):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id, "status": status})
}

func (h *Handler) ListMedications(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Medications())
}

func (h *Handler) GetMedication(c echo.Context) error {
	m, ok := h.svc.MedicationByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "medication not found")
	}
	return c.JSON(http.StatusOK, m)
}
