package entity

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicate          = errors.New("resource already exists")
	ErrAlreadySubscribed  = errors.New("Este email já está inscrito na newsletter.")
	ErrUnauthorized       = errors.New("Usuário não autenticado")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrForbidden          = errors.New("Acesso negado")
	ErrInvalidInput       = errors.New("invalid input")
)
