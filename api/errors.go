package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	log "github.com/sirupsen/logrus"
)

// ErrorModel is the error body for every API error: a message plus optional
// per-field validation details.
type ErrorModel struct {
	Message string   `json:"message" doc:"Human readable error message"`
	Errors  []string `json:"errors,omitempty" doc:"Per-field validation details"`

	status int
}

func (e *ErrorModel) Error() string {
	return e.Message
}

func (e *ErrorModel) GetStatus() int {
	return e.status
}

// init swaps Huma's default RFC 7807 error body for ErrorModel. Internal
// error causes are logged server-side and never serialized; validation
// details from Huma's schema checks are passed through.
func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err == nil {
				continue
			}
			if status >= http.StatusInternalServerError {
				log.WithError(err).Error("Handler.InternalError")
				continue
			}
			if detailer, ok := err.(huma.ErrorDetailer); ok {
				detail := detailer.ErrorDetail()
				details = append(details, detail.Location+": "+detail.Message)
				continue
			}
			details = append(details, err.Error())
		}

		return &ErrorModel{
			Message: message,
			Errors:  details,
			status:  status,
		}
	}
}
