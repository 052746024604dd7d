package service

import "errors"

var (
	ErrNotFound          = errors.New("requisição não encontrada")
	ErrOptionNotFound    = errors.New("opção não encontrada")
	ErrUpstream          = errors.New("upstream failure")
	ErrValidation        = errors.New("invalid input")
	ErrInvalidTransition = errors.New("requisição não está pendente")
	ErrPinNotConfigured  = errors.New("PIN não configurado no sistema")
)
