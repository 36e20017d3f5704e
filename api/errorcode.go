package api

import (
	"github.com/anjith1/harvest-demand-link/lifecycle"
	"github.com/anjith1/harvest-demand-link/messaging"
	"github.com/anjith1/harvest-demand-link/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid signature",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "unknown farmer location",

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrStatusConflict.Error(),
		1202: lifecycle.ErrInvalidTransition.Error(),
		1203: lifecycle.ErrNotAcceptedFarmer.Error(),

		1300: messaging.ErrNotParty.Error(),
		1301: messaging.ErrRequestNotAccepted.Error(),
		1302: messaging.ErrEmptyMessage.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidSignature           = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUnknownFarmerLocation = errorJSON(1100)

	errorRequestNotFound   = errorJSON(1200)
	errorRequestTaken      = errorJSON(1201)
	errorInvalidTransition = errorJSON(1202)
	errorNotAcceptedFarmer = errorJSON(1203)

	errorNotParty           = errorJSON(1300)
	errorRequestNotAccepted = errorJSON(1301)
	errorEmptyMessage       = errorJSON(1302)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
