// Package service
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	c "github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

type Claims struct {
	Uid         uint   `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Admin       bool   `json:"admin"`
	Instructor  bool   `json:"instructor"`
	TowPilot    bool   `json:"tow_pilot"`
	FlushToken  bool   `json:"flushToken"`
	config      *c.JWTConfig
	jwt.RegisteredClaims
}

type JwtHeader struct {
	Uid   uint
	Admin bool
}

func NewClaims(config *c.JWTConfig, pilot *operation.Pilot, flushToken bool) *Claims {
	expiredDuration := config.ExpiresDuration
	if flushToken {
		expiredDuration += config.RefreshDuration
	}
	return &Claims{
		Uid:         pilot.ID,
		Email:       pilot.Email,
		DisplayName: pilot.DisplayName(),
		Admin:       pilot.Admin,
		Instructor:  pilot.Instructor,
		TowPilot:    pilot.TowPilot,
		FlushToken:  flushToken,
		config:      config,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ClubhouseHttpServer",
			Subject:   pilot.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiredDuration)),
		},
	}
}

func (claim *Claims) GenerateKey() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claim)
	tokenString, _ := token.SignedString([]byte(claim.config.Secret))
	return tokenString
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam          = ApiStatus{"PARAM_ERROR", "Invalid parameter", BadRequest}
	ErrLackParam             = ApiStatus{"PARAM_LACK_ERROR", "Missing parameter", BadRequest}
	ErrNoPermission          = ApiStatus{"NO_PERMISSION", "You are not allowed to do that", PermissionDenied}
	ErrDatabaseFail          = ApiStatus{"DATABASE_ERROR", "Internal server error", ServerInternalError}
	ErrPilotNotFound         = ApiStatus{"PILOT_NOT_FOUND", "Pilot does not exist", NotFound}
	ErrAircraftNotFound      = ApiStatus{"AIRCRAFT_NOT_FOUND", "Aircraft does not exist", NotFound}
	ErrFlightNotFound        = ApiStatus{"FLIGHT_NOT_FOUND", "Flight does not exist", NotFound}
	ErrSlotNotFound          = ApiStatus{"SLOT_NOT_FOUND", "Agenda slot does not exist", NotFound}
	ErrSlotTaken             = ApiStatus{"SLOT_TAKEN", "Agenda slot already booked", Conflict}
	ErrSlotNotBooked         = ApiStatus{"SLOT_NOT_BOOKED", "Agenda slot is not booked", Conflict}
	ErrNotFlightOwner        = ApiStatus{"NOT_FLIGHT_OWNER", "Flight belongs to another pilot", PermissionDenied}
	ErrRegisterFail          = ApiStatus{"REGISTER_FAIL", "Registration failed", ServerInternalError}
	ErrEmailTaken            = ApiStatus{"EMAIL_EXISTS", "Email already registered", BadRequest}
	ErrRegistrationTaken     = ApiStatus{"REGISTRATION_EXISTS", "Aircraft registration already in use", BadRequest}
	ErrOldPasswordFail       = ApiStatus{"OLD_PASSWORD_ERROR", "Old password does not match", BadRequest}
	ErrRangeTooWide          = ApiStatus{"RANGE_TOO_WIDE", "Requested date range is too wide", BadRequest}
	ErrExportFail            = ApiStatus{"EXPORT_FAIL", "Report export failed", ServerInternalError}
	ErrMissingOrMalformedJwt = ApiStatus{"MISSING_OR_MALFORMED_JWT", "Missing or malformed JWT token", BadRequest}
	ErrInvalidOrExpiredJwt   = ApiStatus{"INVALID_OR_EXPIRED_JWT", "Invalid or expired JWT token", Unauthorized}
	ErrUnknown               = ApiStatus{"UNKNOWN_JWT_ERROR", "Unknown JWT parsing error", ServerInternalError}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

// CallDBFuncAndCheckError runs a persistence call and maps its sentinel
// errors onto API statuses.
func CallDBFuncAndCheckError[R any, T any](logger log.LoggerInterface, fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	switch {
	case errors.Is(err, operation.ErrIdentifierCheck):
		return nil, NewApiResponse[T](&ErrRegisterFail, Unsatisfied, nil)
	case errors.Is(err, operation.ErrEmailTaken):
		return nil, NewApiResponse[T](&ErrEmailTaken, Unsatisfied, nil)
	case errors.Is(err, operation.ErrRegistrationTaken):
		return nil, NewApiResponse[T](&ErrRegistrationTaken, Unsatisfied, nil)
	case errors.Is(err, operation.ErrPilotNotFound):
		return nil, NewApiResponse[T](&ErrPilotNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrAircraftNotFound):
		return nil, NewApiResponse[T](&ErrAircraftNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrFlightNotFound):
		return nil, NewApiResponse[T](&ErrFlightNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrSlotNotFound):
		return nil, NewApiResponse[T](&ErrSlotNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrSlotTaken):
		return nil, NewApiResponse[T](&ErrSlotTaken, Unsatisfied, nil)
	case errors.Is(err, operation.ErrSlotNotBooked):
		return nil, NewApiResponse[T](&ErrSlotNotBooked, Unsatisfied, nil)
	case errors.Is(err, operation.ErrOldPassword):
		return nil, NewApiResponse[T](&ErrOldPasswordFail, Unsatisfied, nil)
	case err != nil:
		logger.ErrorF("Error in DB function: %v", err)
		return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
	default:
		return result, nil
	}
}

// GetPilotAndCheckAdmin loads the caller's fresh record and verifies the
// admin bit. Sensitive operations never trust the claim alone.
func GetPilotAndCheckAdmin[T any](logger log.LoggerInterface, pilotOperation operation.PilotOperationInterface, uid uint) (*operation.Pilot, *ApiResponse[T]) {
	pilot, res := CallDBFuncAndCheckError[operation.Pilot, T](logger, func() (*operation.Pilot, error) {
		return pilotOperation.GetPilotByID(uid)
	})
	if res != nil {
		return nil, res
	}
	if !pilot.Admin {
		return nil, NewApiResponse[T](&ErrNoPermission, Unsatisfied, nil)
	}
	return pilot, nil
}
