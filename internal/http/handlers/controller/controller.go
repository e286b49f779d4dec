package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	dc "signup/internal/core/domain/controller"
	e "signup/internal/core/domain/errors"
	"signup/internal/core/domain/logging"
	"signup/internal/http/handlers/response"
)

var errTrailingData = errors.New("unexpected data after JSON object")

// Handler exposes a controller over HTTP: the JSON object body becomes the
// request body and the controller response is rendered as is.
type Handler struct {
	log          logging.Logger
	controller   dc.Controller
	maxBodyBytes int64
}

func New(log logging.Logger, controller dc.Controller, maxBodyBytes int64) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if controller == nil {
		panic(e.NewNilArgumentError("controller"))
	}
	return &Handler{log: log, controller: controller, maxBodyBytes: maxBodyBytes}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	body, err := h.decodeBody(rw, r)
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.log.Info(r.Context(), "Request body is too large.", logging.Entry("limit", maxBytesErr.Limit))
		response.RenderRequestTooLarge(rw)
		return
	}
	if err != nil {
		h.log.Info(r.Context(), "Could not decode request body.", logging.Entry("err", err))
		response.RenderInvalidRequestData(rw)
		return
	}

	res := h.controller.Handle(r.Context(), dc.Request{Body: body})
	response.RenderResponse(rw, res)
}

// decodeBody reads exactly one JSON object. An empty body is an empty object.
func (h *Handler) decodeBody(rw http.ResponseWriter, r *http.Request) (dc.Body, error) {
	body := dc.Body{}
	decoder := json.NewDecoder(http.MaxBytesReader(rw, r.Body, h.maxBodyBytes))
	if err := decoder.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return body, nil
		}
		return nil, err
	}

	var trailing json.RawMessage
	err := decoder.Decode(&trailing)
	if err == nil {
		return nil, errTrailingData
	}
	if !errors.Is(err, io.EOF) {
		return nil, err
	}
	return body, nil
}
