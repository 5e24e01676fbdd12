package handlers

import (
	"errors"
	"net/http"

	"faepa_workflow/internal/adapter/http/middleware"
	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/infrastructure/payments"
	"faepa_workflow/internal/usecase"
	"faepa_workflow/internal/usecase/interfaces"
	"faepa_workflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization is required", http.StatusUnauthorized)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// currentActor reads the authenticated actor or answers 401.
func currentActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok || actor.ID == "" {
		abortWith(c, errUnauthorized)
		return entities.Actor{}, false
	}
	return actor, true
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBatchNotFound):
		return pkg.NewDomainErrorSimple("BATCH_NOT_FOUND", "Batch not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)

	case errors.Is(err, usecase.ErrBatchAlreadySubmitted):
		return pkg.NewDomainErrorSimple("BATCH_ALREADY_SUBMITTED", "Batch already submitted to finance", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestNotApproved):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_APPROVED", "Request not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToSubmit):
		return pkg.NewDomainErrorSimple("NOTHING_TO_SUBMIT", "No decided request left to submit", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToForward):
		return pkg.NewDomainErrorSimple("NOTHING_TO_FORWARD", "No approved request to forward", http.StatusConflict)
	case errors.Is(err, usecase.ErrBatchNotForwarded):
		return pkg.NewDomainErrorSimple("BATCH_NOT_FORWARDED", "Batch not forwarded yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotConfirmed):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_CONFIRMED", "Payment not confirmed by provider", http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Request changed concurrently, retry", http.StatusConflict)

	case errors.Is(err, usecase.ErrNotBatchCoordinator), errors.Is(err, usecase.ErrSubmissionForbidden),
		errors.Is(err, usecase.ErrExportForbidden), errors.Is(err, usecase.ErrAttachmentForbidden),
		errors.Is(err, usecase.ErrDetailForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this user", http.StatusForbidden)

	case errors.Is(err, usecase.ErrRejectNoteRequired):
		return pkg.NewDomainErrorSimple("REJECT_NOTE_REQUIRED", "A note is required to reject a request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAttachmentTooLarge):
		return pkg.NewDomainErrorSimple("ATTACHMENT_TOO_LARGE", "Attachment too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrAttachmentType):
		return pkg.NewDomainErrorSimple("ATTACHMENT_TYPE", "Attachment type not allowed", http.StatusUnsupportedMediaType)
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidBatchID),
		errors.Is(err, usecase.ErrInvalidDecision), errors.Is(err, usecase.ErrEmptyBatch),
		errors.Is(err, usecase.ErrInvalidCoordinator), errors.Is(err, usecase.ErrInvalidSubmission),
		errors.Is(err, usecase.ErrInvalidSubmissionID), errors.Is(err, usecase.ErrInvalidChannel),
		errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidAlias),
		errors.Is(err, usecase.ErrAttachmentEmpty), errors.Is(err, payments.ErrInvalidProviderPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

	case errors.Is(err, usecase.ErrAttachmentsDisabled), errors.Is(err, usecase.ErrReceiptsDisabled):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Integration unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
