package controller

import "net/http"

func OK(body any) Response {
	return Response{StatusCode: http.StatusOK, Body: body}
}

func BadRequest(err *Error) Response {
	return Response{StatusCode: http.StatusBadRequest, Body: err}
}

func InternalServerError() Response {
	return Response{StatusCode: http.StatusInternalServerError, Body: NewServerError()}
}
