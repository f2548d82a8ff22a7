// Package handler contains the HTTP handlers for the region API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"atlas/internal/delivery/http/response"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RegionHandlerParams holds dependencies for RegionHandler, injected by Fx.
type RegionHandlerParams struct {
	fx.In

	RegionUC usecase.RegionUsecase
	Logger   *slog.Logger
}

// RegionHandler holds dependencies for region-related handlers
type RegionHandler struct {
	regionUC usecase.RegionUsecase
	logger   *slog.Logger
}

// NewRegionHandler is the constructor for RegionHandler
func NewRegionHandler(params RegionHandlerParams) *RegionHandler {
	return &RegionHandler{
		regionUC: params.RegionUC,
		logger:   params.Logger,
	}
}

// GeometryPayload is the GeoJSON-shaped polygon carried on the wire. Only the
// outer ring (coordinates[0]) is modeled; holes are ignored.
type GeometryPayload struct {
	Type        string        `json:"type" validate:"required,eq=Polygon"`
	Coordinates [][][]float64 `json:"coordinates" validate:"required,min=1"`
}

// Ring extracts the outer ring as orb geometry.
func (g *GeometryPayload) Ring() (orb.Ring, bool) {
	if len(g.Coordinates) == 0 {
		return nil, false
	}

	outer := g.Coordinates[0]
	ring := make(orb.Ring, 0, len(outer))
	for _, position := range outer {
		if len(position) < 2 {
			return nil, false
		}
		ring = append(ring, orb.Point{position[0], position[1]})
	}

	return ring, true
}

// CreateRegionRequest represents the request body for creating a region
type CreateRegionRequest struct {
	Name     string           `json:"name" validate:"required,min=3,max=100"`
	Geometry *GeometryPayload `json:"geometry" validate:"required"`
}

// UpdateRegionRequest represents the request body for updating a region
type UpdateRegionRequest struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Geometry *GeometryPayload `json:"geometry,omitempty"`
}

// ListRegions handles retrieving all regions, newest-created-first
func (h *RegionHandler) ListRegions(c echo.Context) error {
	regions, err := h.regionUC.ListRegions(c.Request().Context())
	if err != nil {
		return h.handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, regions, "Regions retrieved successfully")
}

// GetRegion handles retrieving a single region by id
func (h *RegionHandler) GetRegion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid region ID")
	}

	region, err := h.regionUC.GetRegion(c.Request().Context(), id)
	if err != nil {
		return h.handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, region, "Region retrieved successfully")
}

// CreateRegion handles creating a new region
func (h *RegionHandler) CreateRegion(c echo.Context) error {
	var req CreateRegionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid region input")
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := c.Validate(&req); err != nil {
		return response.Error(c, domainerrors.ErrValidationFailed.HTTPCode(), domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), err.Error())
	}

	ring, ok := req.Geometry.Ring()
	if !ok {
		return response.BadRequest(c, domainerrors.ErrRegionInvalidPolygon.ErrorCode(), domainerrors.ErrRegionInvalidPolygon.Message())
	}

	region, err := h.regionUC.CreateRegion(c.Request().Context(), &usecase.CreateRegionInput{
		Name:     req.Name,
		Geometry: ring,
	})
	if err != nil {
		return h.handleDomainError(c, err)
	}

	return response.Success(c, http.StatusCreated, region, "Region created successfully")
}

// UpdateRegion handles a partial update of a region
func (h *RegionHandler) UpdateRegion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid region ID")
	}

	var req UpdateRegionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid region input")
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, domainerrors.ErrValidationFailed.HTTPCode(), domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), err.Error())
	}

	input := &usecase.UpdateRegionInput{Name: req.Name}
	if req.Geometry != nil {
		ring, ok := req.Geometry.Ring()
		if !ok {
			return response.BadRequest(c, domainerrors.ErrRegionInvalidPolygon.ErrorCode(), domainerrors.ErrRegionInvalidPolygon.Message())
		}
		input.Geometry = &ring
	}

	region, err := h.regionUC.UpdateRegion(c.Request().Context(), id, input)
	if err != nil {
		return h.handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, region, "Region updated successfully")
}

// DeleteRegion handles deleting a region by id
func (h *RegionHandler) DeleteRegion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid region ID")
	}

	if err := h.regionUC.DeleteRegion(c.Request().Context(), id); err != nil {
		return h.handleDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// QueryByPoint handles finding regions containing a point. The point arrives
// either as longitude/latitude query params or as a free-text address.
func (h *RegionHandler) QueryByPoint(c echo.Context) error {
	if address := c.QueryParam("address"); address != "" {
		regions, err := h.regionUC.FindRegionsByPointFromAddress(c.Request().Context(), address, c.QueryParam("countryCode"))
		if err != nil {
			return h.handleDomainError(c, err)
		}

		return response.Success(c, http.StatusOK, regions, "Regions retrieved successfully")
	}

	point, ok := h.bindPoint(c)
	if !ok {
		return response.BadRequest(c, "INVALID_COORDINATES", "longitude and latitude are required and must be numbers")
	}

	regions, err := h.regionUC.FindRegionsByPoint(c.Request().Context(), point)
	if err != nil {
		return h.handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, regions, "Regions retrieved successfully")
}

// QueryByDistance handles finding regions within a distance of a point. The
// unit defaults to meters when omitted.
func (h *RegionHandler) QueryByDistance(c echo.Context) error {
	distance, err := strconv.ParseFloat(c.QueryParam("distance"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_DISTANCE", "distance is required and must be a number")
	}
	unit := entity.DistanceUnit(c.QueryParam("unit"))

	if address := c.QueryParam("address"); address != "" {
		regions, err := h.regionUC.FindRegionsByDistanceFromAddress(c.Request().Context(), address, distance, unit, c.QueryParam("countryCode"))
		if err != nil {
			return h.handleDomainError(c, err)
		}

		return response.Success(c, http.StatusOK, regions, "Regions retrieved successfully")
	}

	point, ok := h.bindPoint(c)
	if !ok {
		return response.BadRequest(c, "INVALID_COORDINATES", "longitude and latitude are required and must be numbers")
	}

	regions, err := h.regionUC.FindRegionsByDistance(c.Request().Context(), &usecase.DistanceQuery{
		Point:    point,
		Distance: distance,
		Unit:     unit,
	})
	if err != nil {
		return h.handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, regions, "Regions retrieved successfully")
}

// QueryByAddress handles resolving a free-text address to its geocoding
// candidates. It answers what the address resolves to, not which regions
// contain it.
func (h *RegionHandler) QueryByAddress(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return response.BadRequest(c, "INVALID_ADDRESS", "address is required")
	}

	results, err := h.regionUC.ResolveAddress(c.Request().Context(), address, c.QueryParam("countryCode"))
	if err != nil {
		return h.handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Address candidates retrieved successfully")
}

// QueryReverse handles reverse geocoding a coordinate to an address.
func (h *RegionHandler) QueryReverse(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "latitude is required and must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "longitude is required and must be a number")
	}

	result, err := h.regionUC.ResolveCoordinate(c.Request().Context(), lat, lng)
	if err != nil {
		return h.handleDomainError(c, err)
	}
	if result == nil {
		return response.NotFound(c, "ADDRESS_NOT_RESOLVED", "No address found for the coordinate")
	}

	return response.Success(c, http.StatusOK, result, "Address retrieved successfully")
}

// bindPoint parses longitude/latitude query params into an orb.Point.
func (h *RegionHandler) bindPoint(c echo.Context) (orb.Point, bool) {
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return orb.Point{}, false
	}
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return orb.Point{}, false
	}

	return orb.Point{lng, lat}, true
}

// handleDomainError translates domain error kinds into HTTP responses.
func (h *RegionHandler) handleDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, entity.ErrTooFewCoordinates):
		return response.BadRequest(c, domainerrors.ErrRegionTooFewCoordinates.ErrorCode(), domainerrors.ErrRegionTooFewCoordinates.Message())
	case errors.Is(err, entity.ErrRingNotClosed):
		return response.BadRequest(c, domainerrors.ErrRegionNotClosed.ErrorCode(), domainerrors.ErrRegionNotClosed.Message())
	case errors.Is(err, entity.ErrUnsupportedUnit):
		return response.BadRequest(c, domainerrors.ErrUnsupportedUnit.ErrorCode(), domainerrors.ErrUnsupportedUnit.Message())
	case errors.Is(err, repository.ErrRegionNotFound):
		return response.NotFound(c, domainerrors.ErrRegionNotFound.ErrorCode(), domainerrors.ErrRegionNotFound.Message())
	case errors.Is(err, repository.ErrStoreUnavailable):
		return response.ServiceUnavailable(c, domainerrors.ErrStoreUnavailable.ErrorCode(), domainerrors.ErrStoreUnavailable.Message())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	// Unknown errors fall through to the HTTPErrorHandler.
	return errors.WithStack(err)
}
