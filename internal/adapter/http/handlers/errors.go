package handlers

import (
	"errors"
	"net/http"

	"tender_service/internal/usecase"
	"tender_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

var classStatus = map[usecase.ErrorClass]int{
	usecase.ClassValidation:   http.StatusBadRequest,
	usecase.ClassNotFound:     http.StatusNotFound,
	usecase.ClassBusinessRule: http.StatusUnprocessableEntity,
	usecase.ClassConflict:     http.StatusConflict,
}

// mapWorkflowError turns a workflow failure into its HTTP form. Store
// failures never leak their cause to the client.
func mapWorkflowError(err error) *pkg.AppError {
	var we *usecase.WorkflowError
	if !errors.As(err, &we) {
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
	status, ok := classStatus[we.Class]
	if !ok {
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
	message := we.Code
	if we.Err != nil {
		message = we.Err.Error()
	}
	return pkg.NewDomainError(we.Code, message, err, status).WithDetail(we.Detail)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeWorkflowError(c *gin.Context, err error) {
	writeError(c, mapWorkflowError(err))
}

func writeInvalidPayload(c *gin.Context, err error) {
	writeError(c, errInvalidPayload.WithDetail(err.Error()))
}
