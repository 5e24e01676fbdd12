package handlers

import (
	"net/http"

	response "faepa_workflow/internal/adapter/http/dto/response"
	"faepa_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type AttachmentHandler struct {
	usecase usecase.IAttachmentUseCase
}

func NewAttachmentHandler(uc usecase.IAttachmentUseCase) *AttachmentHandler {
	return &AttachmentHandler{usecase: uc}
}

// UploadReceipt godoc
// @Summary      Upload a payment receipt
// @Tags         attachments
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "pdf, png or jpg"
// @Success      201   {object}  response.AttachmentResponse
// @Failure      413   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /attachments [post]
func (h *AttachmentHandler) UploadReceipt(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	file, err := header.Open()
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	defer file.Close()

	uploaded, err := h.usecase.Upload(c.Request.Context(), actor, header.Filename, header.Size, file)
	if err != nil {
		log.Printf("[attachment][handler] upload failed actor=%s file=%s err=%v", actor.ID, header.Filename, err)
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUploadedAttachment(uploaded))
}
