package handlers

import (
	"net/http"
	"strconv"

	response "faepa_workflow/internal/adapter/http/dto/response"
	"faepa_workflow/internal/infrastructure/export"
	"faepa_workflow/internal/usecase"
	"faepa_workflow/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DetailHandler struct {
	usecase usecase.IDetailUseCase
}

func NewDetailHandler(uc usecase.IDetailUseCase) *DetailHandler {
	return &DetailHandler{usecase: uc}
}

// GetDetail godoc
// @Summary      Batch detail with per-request actions for the caller
// @Tags         batches
// @Produce      json
// @Param        batch_id      path      string  true   "Batch ID"
// @Param        readonly      query     bool    false  "Hide every action"
// @Param        lock_actions  query     bool    false  "Hide approve and reject"
// @Success      200           {object}  response.BatchDetailResponse
// @Failure      404           {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /batches/{batch_id} [get]
func (h *DetailHandler) GetDetail(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	opts := usecase.DetailOptions{
		Viewer:      actor,
		Readonly:    queryBool(c, "readonly"),
		LockActions: queryBool(c, "lock_actions"),
	}

	batchID := c.Param("batch_id")
	detail, err := h.usecase.GetDetail(c.Request.Context(), batchID, opts)
	if err != nil {
		log.Printf("[detail][handler] get failed batch_id=%s err=%v", batchID, err)
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBatchDetail(detail))
}

// ExportBatch godoc
// @Summary      Spreadsheet of the forwarded requests of a batch
// @Tags         batches
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        batch_id  path  string  true  "Batch ID"
// @Success      200
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /batches/{batch_id}/export [get]
func (h *DetailHandler) ExportBatch(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	batchID := c.Param("batch_id")
	detail, err := h.usecase.GetForwarded(c.Request.Context(), batchID, actor)
	if err != nil {
		log.Printf("[detail][handler] export failed batch_id=%s err=%v", batchID, err)
		abortWith(c, mapWorkflowError(err))
		return
	}

	f, err := export.BatchWorkbook(detail)
	if err != nil {
		log.WithError(err).Printf("[detail][handler] workbook failed batch_id=%s", batchID)
		abortWith(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	defer f.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", "attachment; filename="+export.FileName(detail))
	if err := f.Write(c.Writer); err != nil {
		log.WithError(err).Printf("[detail][handler] write failed batch_id=%s", batchID)
	}
}

func queryBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}
