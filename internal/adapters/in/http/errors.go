package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/application/workflow"
	"shipment/internal/core/domain/model/loading"
	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/generated/servers"
	"shipment/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	reasonNotFound        = "not-found"
	reasonInvalidRequest  = "invalid-request"
	reasonVersionConflict = "version-conflict"
	reasonTimeout         = "timeout"
	reasonInternal        = "internal"
)

var errInvalidBody = errors.New("invalid request body")

// reasoned is implemented by every domain error that carries a reason string.
type reasoned interface {
	Reason() string
}

// classify maps an error onto the HTTP status and reason string of the
// response. Order matters: a persistence failure wraps its store cause.
func classify(err error) (int, string) {
	var (
		httpErr       *echo.HTTPError
		transitionErr *shipment.TransitionError
		persistErr    *workflow.PersistenceFailedError
		validationErr validator.ValidationErrors
	)

	switch {
	case errors.As(err, &persistErr):
		return http.StatusServiceUnavailable, persistErr.Reason()
	case errors.Is(err, workflow.ErrTransitionCancelled):
		return http.StatusConflict, workflow.ReasonTransitionCancelled
	case errors.As(err, &transitionErr):
		if errors.Is(err, shipment.ErrUnknownState) {
			return http.StatusBadRequest, transitionErr.Reason()
		}
		return http.StatusConflict, transitionErr.Reason()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, reasonNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict, reasonVersionConflict
	case errors.Is(err, loading.ErrRecordLocked):
		return http.StatusLocked, loading.ReasonRecordLocked
	case errors.Is(err, loading.ErrOrderNotReconcilable):
		return http.StatusConflict, loading.ReasonOrderNotReconcilable
	case errors.Is(err, loading.ErrUnknownSku):
		return http.StatusUnprocessableEntity, loading.ReasonUnknownSku
	case errors.Is(err, loading.ErrDivisionByZero):
		return http.StatusUnprocessableEntity, loading.ReasonDivisionByZero
	case errors.As(err, &httpErr):
		if httpErr.Code == http.StatusNotFound {
			return httpErr.Code, reasonNotFound
		}
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, reasonInternal
		}
		return httpErr.Code, reasonInvalidRequest
	case errors.As(err, &validationErr),
		errors.Is(err, errInvalidBody),
		errors.Is(err, commands.ErrItemsAreRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, reasonInvalidRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, reasonTimeout
	}

	var r reasoned
	if errors.As(err, &r) {
		return http.StatusUnprocessableEntity, r.Reason()
	}
	return http.StatusInternalServerError, reasonInternal
}

func messageOf(err error, status int) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprint(httpErr.Message)
	}
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		return http.StatusText(status)
	}
	return err.Error()
}

// NewErrorHandler renders every handler error as a servers.Error body.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, reason := classify(err)
		fields := []zap.Field{
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.String("reason", reason),
			zap.Error(err),
		}
		if orderID := c.Param("orderId"); orderID != "" {
			fields = append(fields, zap.String("orderId", orderID))
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", fields...)
		} else {
			logger.Info("request rejected", fields...)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, servers.Error{
				Code:    status,
				Reason:  reason,
				Message: messageOf(err, status),
			})
		}
		if err != nil {
			logger.Warn("failed to write error response", zap.Error(err))
		}
	}
}
