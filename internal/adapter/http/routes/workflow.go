package routes

import (
	"faepa_workflow/internal/adapter/http/middleware"
	"faepa_workflow/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathBatches     = "/batches"
	PathRequests    = "/requests"
	PathSubmissions = "/submissions"
	PathChannels    = "/channels"
	PathAttachments = "/attachments"
)

func addWorkflowRoutes(rg *gin.RouterGroup, h Handlers) {
	coordinator := middleware.RequireRole(entities.RoleCoordinator)
	finance := middleware.RequireRole(entities.RoleFinance)
	payer := middleware.RequireRole(entities.RolePayingAuthority)

	batches := rg.Group(PathBatches)
	{
		batches.POST("", h.Workflow.SubmitBatch)
		batches.GET("/:batch_id", h.Detail.GetDetail)
		batches.GET("/:batch_id/export", middleware.RequireRole(entities.RoleFinance, entities.RolePayingAuthority), h.Detail.ExportBatch)
		batches.POST("/:batch_id/submit", middleware.RequireRole(entities.RoleCoordinator, entities.RoleFinance), h.Workflow.SubmitToFinance)
		batches.POST("/:batch_id/forward", finance, h.Workflow.Forward)
	}

	requests := rg.Group(PathRequests)
	{
		requests.PATCH("/:id/decision", coordinator, h.Workflow.Decide)
		requests.POST("/:id/paid", payer, h.Workflow.MarkPaid)
	}

	submissions := rg.Group(PathSubmissions)
	{
		submissions.POST("", h.Submission.CreateSubmission)
		submissions.GET("/:id", h.Submission.GetSubmission)
		submissions.PUT("/:id", h.Submission.UpdateSubmission)
	}

	channels := rg.Group(PathChannels)
	{
		channels.GET("/:channel", h.Channel.GetAlias)
		channels.PUT("/:channel", h.Channel.SetAlias)
	}

	rg.POST(PathAttachments, payer, h.Attachment.UploadReceipt)
}
