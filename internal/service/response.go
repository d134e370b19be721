package service

import (
	"log"
	"net/http"
)

// Response is the uniform envelope every service operation returns. The
// status code is propagated verbatim as the HTTP response code.
type Response[T any] struct {
	Success      bool   `json:"success"`
	Data         T      `json:"data,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	StatusCode   int    `json:"statusCode"`
}

// Ok wraps data in a successful 200 envelope.
func Ok[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data, StatusCode: http.StatusOK}
}

// Created wraps data in a successful 201 envelope.
func Created[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data, StatusCode: http.StatusCreated}
}

// Error builds a failure envelope with the given message and status code.
func Error[T any](message string, statusCode int) Response[T] {
	return Response[T]{Success: false, ErrorMessage: message, StatusCode: statusCode}
}

// ServerError logs the underlying cause and returns a generic 500
// envelope. Internal detail never reaches the response body.
func ServerError[T any](op string, err error) Response[T] {
	log.Printf("%s: %v", op, err)
	return Error[T]("An unexpected error occurred.", http.StatusInternalServerError)
}
