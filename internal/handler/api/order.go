package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "flatcart/internal/handler/dto/request"
	resdto "flatcart/internal/handler/dto/response"
	"flatcart/internal/handler/httperr"
	"flatcart/internal/usecase/commands"
	"flatcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Append a new order to the order log
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidOrder) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error())
		return
	}
	c.JSON(http.StatusCreated, resdto.NewCreateOrderResponse(result.OrderID))
}

// @Summary Get order
// @Description Get the first order matching an order number
// @Tags orders
// @Produce json
// @Param order_number path int true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /orders/{order_number} [get]
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("order_number"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order number")
		return
	}
	view, err := h.q.GetByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, queries.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error())
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List user orders
// @Description List a user's orders, most recent order date first
// @Tags orders
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 500 {object} httperr.Response
// @Router /orders/user/{user_id} [get]
func (h *OrderHandler) ListByUser(c *gin.Context) {
	views, err := h.q.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error())
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}
