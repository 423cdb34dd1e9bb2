package utils

import (
	"errors"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/dto/responses"
	"login-service/internal/pkg/exceptions"
	"net/http"

	"github.com/a-h/templ"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, clientMessage, customErr := LogCustomError(log, err)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if customErr != nil && appEnvironment != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	json.NewEncoder(w).Encode(response)
}

// LogCustomError logs every recorded location of err and returns the status
// code and client message it should be reported with.
func LogCustomError(log *zap.Logger, err error) (int, string, *exceptions.CustomError) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.Any("location", location),
				zap.Error(customErr.Err),
			)
		}
		return code, clientMessage, customErr
	}

	log.Error(err.Error())
	return code, clientMessage, nil
}

// BuildHTMLResponse renders component with the given status code. The
// component is rendered into a buffer first so a failed render can still be
// reported with a clean status.
func BuildHTMLResponse(log *zap.Logger, w http.ResponseWriter, r *http.Request, code int, component templ.Component) {
	handler := templ.Handler(component,
		templ.WithStatus(code),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				BuildErrorResponse(log, w, exceptions.ErrRenderPage(err))
			})
		}),
	)
	handler.ServeHTTP(w, r)
}

func Redirect(w http.ResponseWriter, r *http.Request, path string, code int) {
	http.Redirect(w, r, path, code)
}
