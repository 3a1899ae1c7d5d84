package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("ai provider failed")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoToken = errors.New("no bearer token in response")
)
