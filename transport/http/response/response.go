package response

import (
	"chrono/shared/constant"
	"chrono/shared/failure"
	"chrono/shared/logger"
	"encoding/json"
	"net/http"
)

type Error struct {
	Error *string `json:"error,omitempty"`
}

// WithJSON sends payload itself as the JSON body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithError sends a response with an error message, using the failure code when there is one
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg})
}

// WithHTML sends an HTML document
func WithHTML(writer http.ResponseWriter, code int, body string) {
	write(writer, code, constant.ContentTypeHTML, []byte(body))
}

// WithText sends a plain text body
func WithText(writer http.ResponseWriter, code int, body string) {
	write(writer, code, constant.ContentTypePlain, []byte(body))
}

// WithNotFound sends the default response for anything that is not routed
func WithNotFound(writer http.ResponseWriter) {
	WithText(writer, failure.RouteNotFound.Code, failure.RouteNotFound.Message)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithError(writer, failure.PreparingShutdown)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	write(writer, code, constant.ContentTypeJSON, response)
}

func write(writer http.ResponseWriter, code int, contentType string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
