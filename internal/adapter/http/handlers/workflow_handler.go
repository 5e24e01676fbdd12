package handlers

import (
	"net/http"

	request "faepa_workflow/internal/adapter/http/dto/request"
	response "faepa_workflow/internal/adapter/http/dto/response"
	"faepa_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// WorkflowHandler exposes the batch lifecycle: submission to a coordinator,
// decisions, hand-off to finance, forwarding and payment.
type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// SubmitBatch godoc
// @Summary      Submit a batch of payment requests to a coordinator
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        body  body      request.SubmitBatchRequest  true  "Batch"
// @Success      201   {object}  response.BatchResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /batches [post]
func (h *WorkflowHandler) SubmitBatch(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.SubmitBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	batch, err := h.usecase.SubmitBatch(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[workflow][handler] submit batch failed actor=%s err=%v", actor.ID, err)
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBatch(batch))
}

// Decide godoc
// @Summary      Approve, reject or reopen a request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Request ID"
// @Param        body  body      request.DecisionRequest  true  "Decision"
// @Success      200   {object}  response.RequestRecordResponse
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests/{id}/decision [patch]
func (h *WorkflowHandler) Decide(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	action, valid := usecase.ParseDecisionAction(payload.Action)
	if !valid {
		abortWith(c, mapWorkflowError(usecase.ErrInvalidDecision))
		return
	}

	requestID := c.Param("id")
	record, err := h.usecase.Decide(c.Request.Context(), actor, requestID, action, payload.Note)
	if err != nil {
		log.Printf("[workflow][handler] decide failed request_id=%s action=%s err=%v", requestID, action, err)
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequestRecord(record))
}

// SubmitToFinance godoc
// @Summary      Hand the decided requests of a batch to finance
// @Tags         batches
// @Produce      json
// @Param        batch_id  path      string  true  "Batch ID"
// @Success      200       {object}  response.BatchResponse
// @Failure      409       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /batches/{batch_id}/submit [post]
func (h *WorkflowHandler) SubmitToFinance(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	batchID := c.Param("batch_id")
	batch, err := h.usecase.SubmitBatchToFinance(c.Request.Context(), actor, batchID)
	if err != nil {
		log.Printf("[workflow][handler] submit to finance failed batch_id=%s err=%v", batchID, err)
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBatch(batch))
}

// Forward godoc
// @Summary      Forward the approved requests of a batch to the paying authority
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        batch_id  path      string                  true   "Batch ID"
// @Param        body      body      request.ForwardRequest  false  "Note"
// @Success      200       {object}  response.BatchResponse
// @Failure      409       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /batches/{batch_id}/forward [post]
func (h *WorkflowHandler) Forward(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.ForwardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
	}

	batchID := c.Param("batch_id")
	batch, err := h.usecase.ForwardBatch(c.Request.Context(), actor, batchID, payload.Note)
	if err != nil {
		log.Printf("[workflow][handler] forward failed batch_id=%s err=%v", batchID, err)
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBatch(batch))
}

// MarkPaid godoc
// @Summary      Record the payment of an approved request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Request ID"
// @Param        body  body      request.MarkPaidRequest  true  "Payment"
// @Success      200   {object}  response.RequestRecordResponse
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests/{id}/paid [post]
func (h *WorkflowHandler) MarkPaid(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.MarkPaidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	requestID := c.Param("id")
	record, err := h.usecase.MarkPaid(c.Request.Context(), actor, requestID, payload.ToInput())
	if err != nil {
		log.Printf("[workflow][handler] mark paid failed request_id=%s err=%v", requestID, err)
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequestRecord(record))
}
