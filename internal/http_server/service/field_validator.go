// Package service
package service

import (
	c "github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
)

type FieldValidator struct {
	Min, Max          int
	ErrShort, ErrLong *ApiStatus
}

func (v *FieldValidator) CheckString(value string) *ApiStatus {
	length := len(value)
	if length > v.Max {
		return v.ErrLong
	}
	if length < v.Min {
		return v.ErrShort
	}
	return nil
}

var (
	nameValidator     *FieldValidator
	passwordValidator *FieldValidator
	emailValidator    *FieldValidator
)

func InitValidator(config *c.HttpServerLimit) {
	nameValidator = &FieldValidator{
		Min:      config.NameLengthMin,
		Max:      config.NameLengthMax,
		ErrShort: &ApiStatus{StatusName: "NAME_TOO_SHORT", Description: "Name is too short", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "NAME_TOO_LONG", Description: "Name is too long", HttpCode: BadRequest},
	}
	passwordValidator = &FieldValidator{
		Min:      config.PasswordLengthMin,
		Max:      config.PasswordLengthMax,
		ErrShort: &ApiStatus{StatusName: "PASSWORD_TOO_SHORT", Description: "Password is too short", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "PASSWORD_TOO_LONG", Description: "Password is too long", HttpCode: BadRequest},
	}
	emailValidator = &FieldValidator{
		Min:      config.EmailLengthMin,
		Max:      config.EmailLengthMax,
		ErrShort: &ApiStatus{StatusName: "EMAIL_TOO_SHORT", Description: "Email is too short", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "EMAIL_TOO_LONG", Description: "Email is too long", HttpCode: BadRequest},
	}
}
