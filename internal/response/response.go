// Package response builds the JSON envelopes every API endpoint returns.
package response

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is RFC 3339 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Meta is attached to every envelope.
type Meta struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

// SuccessEnvelope wraps a single payload.
type SuccessEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Meta    Meta `json:"meta"`
}

// ErrorBody is the error half of a failed envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope is returned for every failed request.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
	Meta    Meta      `json:"meta"`
}

// Pagination describes one page of an ordered listing.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PaginatedEnvelope is a success envelope carrying a page of items.
type PaginatedEnvelope[T any] struct {
	Success    bool       `json:"success"`
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
	Meta       Meta       `json:"meta"`
}

// NewMeta stamps the current UTC time. An empty requestID gets a fresh uuid.
func NewMeta(requestID string) Meta {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return Meta{
		Timestamp: time.Now().UTC().Format(TimestampLayout),
		RequestID: requestID,
	}
}

// Success wraps data in a success envelope.
func Success[T any](data T, requestID string) SuccessEnvelope[T] {
	return SuccessEnvelope[T]{Success: true, Data: data, Meta: NewMeta(requestID)}
}

// Failure builds an error envelope. details is omitted from the JSON when nil.
func Failure(code, message string, details any, requestID string) ErrorEnvelope {
	return ErrorEnvelope{
		Success: false,
		Error:   ErrorBody{Code: code, Message: message, Details: details},
		Meta:    NewMeta(requestID),
	}
}

// Paginated wraps a page of items. A nil slice is encoded as [].
func Paginated[T any](data []T, p Pagination, requestID string) PaginatedEnvelope[T] {
	if data == nil {
		data = []T{}
	}
	return PaginatedEnvelope[T]{Success: true, Data: data, Pagination: p, Meta: NewMeta(requestID)}
}

// NewPagination computes total_pages as ceil(total/perPage), 0 when there is nothing to page.
func NewPagination(page, perPage int, total int64) Pagination {
	totalPages := 0
	if total > 0 && perPage > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(perPage)))
	}
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}
