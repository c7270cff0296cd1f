package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/ecopoints/internal/domain"
)

type UsersHandler struct {
	pointsSvs PointsServicer
}

func NewUsersHandler(pointsSvs PointsServicer) *UsersHandler {
	return &UsersHandler{
		pointsSvs: pointsSvs,
	}
}

// Show GET RouteGroup + UserRoute.
func (h *UsersHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.pointsSvs.GetUser(reqCtx, c.Param("userId"))
	if err != nil {
		abortNotFoundOrInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

type TransferParams struct {
	FromUserID string `json:"fromUserId" binding:"required"`
	ToUserID   string `json:"toUserId" binding:"required"`
	Points     int64  `json:"points"`
	Remarks    string `json:"remarks"`
}

// Transfer POST RouteGroup + TransfersRoute.
func (h *UsersHandler) Transfer(c *gin.Context) {
	var params TransferParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.pointsSvs.Transfer(
		reqCtx,
		params.FromUserID,
		params.ToUserID,
		params.Points,
		params.Remarks,
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, transaction)
}
