package handlers

import (
	"errors"
	"net/http"

	request "design_studio/internal/adapter/http/dto/request"
	response "design_studio/internal/adapter/http/dto/response"
	"design_studio/internal/usecase"
	"design_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSLAConfigPayload = pkg.NewDomainErrorSimple("INVALID_SLA_CONFIG", "Invalid SLA configuration", http.StatusBadRequest)
)

type SLAConfigHandler struct {
	usecase usecase.ISLAConfigUseCase
}

func NewSLAConfigHandler(uc usecase.ISLAConfigUseCase) *SLAConfigHandler {
	return &SLAConfigHandler{usecase: uc}
}

// @Summary     Get SLA policy
// @Tags        sla
// @Produce     json
// @Success     200 {object} response.SLAConfigResponse
// @Failure     500 {object} pkg.HTTPError
// @Router      /sla-config [get]
func (h *SLAConfigHandler) GetSLAConfig(c *gin.Context) {
	cfg, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapSLAConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResolvedSLAConfig(cfg))
}

// UpdateSLAConfig applies a partial policy update and returns the full
// resolved policy.
//
// @Summary     Update SLA policy
// @Tags        sla
// @Accept      json
// @Produce     json
// @Param       body body request.SLAConfigRequest true "Partial policy"
// @Success     200 {object} response.SLAConfigResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /sla-config [put]
func (h *SLAConfigHandler) UpdateSLAConfig(c *gin.Context) {
	var payload request.SLAConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSLAConfigPayload.HTTPStatus, errInvalidSLAConfigPayload.ToHTTPError())
		return
	}

	cfg, err := h.usecase.Update(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapSLAConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResolvedSLAConfig(cfg))
}

func mapSLAConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSLAConfig):
		return errInvalidSLAConfigPayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
