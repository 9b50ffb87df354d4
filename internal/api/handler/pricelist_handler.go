package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
	"github.com/123fakturera/pricelist-system/internal/core/ports"
)

// PricelistHandler handles HTTP requests for price-list operations.
type PricelistHandler struct {
	service ports.PricelistService
}

func NewPricelistHandler(service ports.PricelistService) *PricelistHandler {
	return &PricelistHandler{service: service}
}

// List handles GET /pricelist.
//
// @Summary      List price items
// @Tags         pricelist
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Free-text filter over article number and product name"
// @Success      200     {object}  listPricelistResponse
// @Failure      401     {object}  map[string]string
// @Router       /pricelist [get]
func (h *PricelistHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), userID, c.QueryParam("search"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(items))
}

// Create handles POST /pricelist.
//
// @Summary      Create a price item
// @Tags         pricelist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      priceItemRequest  true  "Item fields"
// @Success      200   {object}  priceItemEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /pricelist [post]
func (h *PricelistHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req priceItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "pricelist.error_server")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), userID, toItemInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, priceItemEnvelope{
		Returncode: domain.CodeOK,
		Data:       toItemResponse(*item),
	})
}

// Update handles PUT /pricelist/:id.
//
// @Summary      Update a price item
// @Tags         pricelist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Item id"
// @Param        body  body      priceItemRequest  true  "Item fields"
// @Success      200   {object}  priceItemEnvelope
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /pricelist/{id} [put]
func (h *PricelistHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req priceItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "pricelist.error_server")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), toItemInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, priceItemEnvelope{
		Returncode: domain.CodeOK,
		Data:       toItemResponse(*item),
	})
}

// Delete handles DELETE /pricelist/:id.
//
// @Summary      Delete a price item
// @Tags         pricelist
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Item id"
// @Success      200  {object}  deleteResponse
// @Failure      404  {object}  map[string]string
// @Router       /pricelist/{id} [delete]
func (h *PricelistHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteResponse{Returncode: domain.CodeOK})
}
