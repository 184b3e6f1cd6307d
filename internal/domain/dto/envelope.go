package dto

import "strings"

// BaseResponse is the envelope returned by endpoints that carry no payload,
// such as the health probes.
//
// swagger:model BaseResponse
type BaseResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Success"`
}

// DataResponse wraps a successful result with its payload.
//
// Data is always present: a data-bearing operation never answers success
// without it.
type DataResponse[T any] struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Stock price retrieved successfully for AAPL"`
	Data    T      `json:"data"`
}

// ErrorResponse is the envelope for every failure: typed errors answered by
// the error handler, request validation failures and recovered panics.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool              `json:"success" example:"false"`
	Message string            `json:"message" example:"Unable to fetch stock data for ticker: XYZ"`
	Details map[string]string `json:"details,omitempty"`
}

// StatusResponse is the plain body of GET /, kept for older callers.
type StatusResponse struct {
	Status  string `json:"status" example:"running"`
	Service string `json:"service" example:"Calix AI Engine"`
	Version string `json:"version" example:"1.0.0"`
}

// OK builds a payload-less success envelope.
func OK(message string) BaseResponse {
	return BaseResponse{Success: true, Message: message}
}

// WithData builds a success envelope around data.
func WithData[T any](message string, data T) DataResponse[T] {
	return DataResponse[T]{Success: true, Message: message, Data: data}
}

// NewErrorResponse builds a failure envelope. An empty message is replaced with
// a generic one so that failures never answer without a message.
func NewErrorResponse(message string, details map[string]string) ErrorResponse {
	if strings.TrimSpace(message) == "" {
		message = "Request failed"
	}
	if len(details) == 0 {
		details = nil
	}
	return ErrorResponse{Success: false, Message: message, Details: details}
}
