package handlers

import (
	"net/http"

	request "faepa_workflow/internal/adapter/http/dto/request"
	response "faepa_workflow/internal/adapter/http/dto/response"
	"faepa_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// SubmissionHandler serves the requester's payment forms.
type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

// CreateSubmission godoc
// @Summary      Create a payment form
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body  body      request.SubmissionRequest  true  "Fields"
// @Success      201   {object}  response.SubmissionResponse
// @Security     Bearer
// @Router       /submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.SubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor, payload.Fields)
	if err != nil {
		log.Printf("[submission][handler] create failed actor=%s err=%v", actor.ID, err)
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSubmission(created))
}

// UpdateSubmission godoc
// @Summary      Replace the fields of a payment form
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Submission ID"
// @Param        body  body      request.SubmissionRequest  true  "Fields"
// @Success      200   {object}  response.SubmissionResponse
// @Security     Bearer
// @Router       /submissions/{id} [put]
func (h *SubmissionHandler) UpdateSubmission(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.SubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	id := c.Param("id")
	updated, err := h.usecase.Update(c.Request.Context(), actor, id, payload.Fields)
	if err != nil {
		log.Printf("[submission][handler] update failed submission_id=%s err=%v", id, err)
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(updated))
}

// GetSubmission godoc
// @Summary      Get a payment form
// @Tags         submissions
// @Produce      json
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  response.SubmissionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id := c.Param("id")
	sub, err := h.usecase.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(sub))
}
