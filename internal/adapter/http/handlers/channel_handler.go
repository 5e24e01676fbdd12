package handlers

import (
	"net/http"

	request "faepa_workflow/internal/adapter/http/dto/request"
	response "faepa_workflow/internal/adapter/http/dto/response"
	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ChannelHandler manages the caller's sender alias per notification channel.
type ChannelHandler struct {
	usecase usecase.IChannelUseCase
}

func NewChannelHandler(uc usecase.IChannelUseCase) *ChannelHandler {
	return &ChannelHandler{usecase: uc}
}

// SetAlias godoc
// @Summary      Set or clear the sender alias of a channel
// @Tags         channels
// @Accept       json
// @Produce      json
// @Param        channel  path      string                       true  "collaborator or coordinator"
// @Param        body     body      request.ChannelAliasRequest  true  "Alias (blank clears it)"
// @Success      200      {object}  response.ChannelAliasResponse
// @Security     Bearer
// @Router       /channels/{channel} [put]
func (h *ChannelHandler) SetAlias(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.ChannelAliasRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	channel := entities.Channel(c.Param("channel"))
	if err := h.usecase.SetAlias(c.Request.Context(), actor.ID, channel, payload.Alias); err != nil {
		log.Printf("[channel][handler] set alias failed user_id=%s channel=%s err=%v", actor.ID, channel, err)
		abortWith(c, mapWorkflowError(err))
		return
	}

	alias, err := h.usecase.GetAlias(c.Request.Context(), actor.ID, channel)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.ChannelAliasResponse{Channel: string(channel), Alias: alias})
}

// GetAlias godoc
// @Summary      Current sender alias of a channel
// @Tags         channels
// @Produce      json
// @Param        channel  path      string  true  "collaborator or coordinator"
// @Success      200      {object}  response.ChannelAliasResponse
// @Security     Bearer
// @Router       /channels/{channel} [get]
func (h *ChannelHandler) GetAlias(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	channel := entities.Channel(c.Param("channel"))
	alias, err := h.usecase.GetAlias(c.Request.Context(), actor.ID, channel)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.ChannelAliasResponse{Channel: string(channel), Alias: alias})
}
