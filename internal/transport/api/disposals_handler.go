package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/internal/repository/repoargs"
)

type DisposalsHandler struct {
	disposalSvs DisposalServicer
	querySvs    QueryServicer
	auditSvs    AuditServicer
}

func NewDisposalsHandler(
	disposalSvs DisposalServicer,
	querySvs QueryServicer,
	auditSvs AuditServicer,
) *DisposalsHandler {
	return &DisposalsHandler{
		disposalSvs: disposalSvs,
		querySvs:    querySvs,
		auditSvs:    auditSvs,
	}
}

type CreateDisposalParams struct {
	ID        string          `json:"id" binding:"required"`
	UserID    string          `json:"userId" binding:"required"`
	WasteType string          `json:"wasteType" binding:"required"`
	Weight    decimal.Decimal `json:"weight" binding:"required"`
	Location  string          `json:"location"`
	Timestamp string          `json:"timestamp"`
}

// Create POST RouteGroup + DisposalsRoute.
func (h *DisposalsHandler) Create(c *gin.Context) {
	var params CreateDisposalParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	record, err := h.disposalSvs.Record(reqCtx, repoargs.DisposalCreate{
		ID:        params.ID,
		UserID:    params.UserID,
		WasteType: domain.WasteType(params.WasteType),
		Weight:    params.Weight,
		Location:  params.Location,
		Timestamp: params.Timestamp,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			c.AbortWithStatus(http.StatusConflict)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// Show GET RouteGroup + DisposalRoute.
func (h *DisposalsHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	record, err := h.disposalSvs.Get(reqCtx, c.Param("id"))
	if err != nil {
		abortNotFoundOrInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Index GET RouteGroup + DisposalsRoute. Ровно один из параметров wasteType или
// userId обязателен.
func (h *DisposalsHandler) Index(c *gin.Context) {
	wasteType := c.Query("wasteType")
	userID := c.Query("userId")

	if (wasteType == "") == (userID == "") {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var records []domain.DisposalRecord
	var err error
	if wasteType != "" {
		records, err = h.querySvs.ByWasteType(reqCtx, domain.WasteType(wasteType))
	} else {
		records, err = h.querySvs.ByUser(reqCtx, userID)
	}
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, records)
}

// History GET RouteGroup + DisposalHistoryRoute.
func (h *DisposalsHandler) History(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := h.auditSvs.History(reqCtx, c.Param("id"))
	if err != nil {
		abortNotFoundOrInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

type UpdateStatusParams struct {
	Status   string `json:"status" binding:"required"`
	Operator string `json:"operator" binding:"required"`
	Remarks  string `json:"remarks"`
}

// UpdateStatus PATCH RouteGroup + DisposalStatusRoute.
func (h *DisposalsHandler) UpdateStatus(c *gin.Context) {
	var params UpdateStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	record, err := h.disposalSvs.UpdateStatus(reqCtx, repoargs.StatusUpdate{
		ID:        c.Param("id"),
		NewStatus: domain.DisposalStatus(params.Status),
		Operator:  params.Operator,
		Remarks:   params.Remarks,
	})
	if err != nil {
		var transitionErr *domain.InvalidTransitionError
		switch {
		case errors.As(err, &transitionErr):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

func abortNotFoundOrInternal(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrRecordNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}
