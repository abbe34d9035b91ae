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
	errInvalidPackagePayload = pkg.NewDomainErrorSimple("INVALID_PACKAGE_INPUT", "Invalid package payload", http.StatusBadRequest)
)

type DesignPackageHandler struct {
	usecase usecase.IDesignPackageUseCase
}

func NewDesignPackageHandler(uc usecase.IDesignPackageUseCase) *DesignPackageHandler {
	return &DesignPackageHandler{usecase: uc}
}

// UpsertPackage creates a package, or replaces it when the id already exists.
// PUT /packages/:id takes the id from the path.
//
// @Summary     Create or replace a package
// @Tags        packages
// @Accept      json
// @Produce     json
// @Param       body body request.DesignPackageRequest true "Package"
// @Success     200 {object} response.DesignPackageResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /packages [post]
// @Router      /packages/{id} [put]
func (h *DesignPackageHandler) UpsertPackage(c *gin.Context) {
	var payload request.DesignPackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}
	if id := c.Param("id"); id != "" {
		payload.ID = id
	}

	p, err := h.usecase.Upsert(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDesignPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesignPackage(p))
}

// @Summary     Get a package
// @Tags        packages
// @Produce     json
// @Param       id path string true "Package ID"
// @Success     200 {object} response.DesignPackageResponse
// @Failure     404 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /packages/{id} [get]
func (h *DesignPackageHandler) GetPackage(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDesignPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesignPackage(p))
}

func mapDesignPackageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPackage):
		return errInvalidPackagePayload
	case errors.Is(err, usecase.ErrInvalidPackageID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
