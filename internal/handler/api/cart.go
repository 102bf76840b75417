package api

import (
	"errors"
	"net/http"

	reqdto "flatcart/internal/handler/dto/request"
	resdto "flatcart/internal/handler/dto/response"
	"flatcart/internal/handler/httperr"
	"flatcart/internal/usecase/commands"
	"flatcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Save cart
// @Description Insert or replace the cart of a user
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.SaveCartRequest true "Save cart request"
// @Success 200 {object} resdto.SaveCartResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /cart [post]
func (h *CartHandler) Save(c *gin.Context) {
	var req reqdto.SaveCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.cmds.Save(c.Request.Context(), req.ToCommand()); err != nil {
		if errors.Is(err, commands.ErrInvalidCart) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error())
		return
	}
	c.JSON(http.StatusOK, resdto.NewSaveCartResponse())
}

// @Summary Get cart
// @Description Get the cart of a user
// @Tags cart
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /cart/{user_id} [get]
func (h *CartHandler) GetByUser(c *gin.Context) {
	view, err := h.q.GetByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, queries.ErrCartNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cart not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error())
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}
