package net

import (
	perr "commlog/internal/platform/errors"
)

// ErrorBody is the flat JSON body written for every failed request
type ErrorBody struct {
	Error     string         `json:"error"`
	Details   string         `json:"details,omitempty"`
	Code      perr.ErrorCode `json:"code,omitempty"`
	Field     string         `json:"field,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// Error builds the status and error body for err
// details carries the wrapped cause, which for provider failures is the upstream message
func Error(err error, reqID string) (int, ErrorBody) {
	if err == nil {
		err = perr.Internalf("unknown error")
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, ErrorBody{
		Error:     w.Message,
		Details:   w.Details,
		Code:      w.Code,
		Field:     w.Field,
		RequestID: reqID,
	}
}
