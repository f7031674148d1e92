// Package service
package service

import (
	"errors"
	"fmt"
	"time"

	c "github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
)

type PilotService struct {
	logger            log.LoggerInterface
	emailService      EmailServiceInterface
	config            *c.HttpServerConfig
	pilotOperation    operation.PilotOperationInterface
	auditLogOperation operation.AuditLogOperationInterface
}

func NewPilotService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	pilotOperation operation.PilotOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
	emailService EmailServiceInterface,
) *PilotService {
	return &PilotService{
		logger:            logger,
		emailService:      emailService,
		config:            config,
		pilotOperation:    pilotOperation,
		auditLogOperation: auditLogOperation,
	}
}

var (
	ErrEmailNotFound    = ApiStatus{StatusName: "EMAIL_CODE_NOT_FOUND", Description: "No verification code was sent to this address", HttpCode: BadRequest}
	ErrEmailExpired     = ApiStatus{StatusName: "EMAIL_CODE_EXPIRED", Description: "Verification code has expired", HttpCode: BadRequest}
	ErrEmailCodeInvalid = ApiStatus{StatusName: "EMAIL_CODE_INVALID", Description: "Verification code is wrong", HttpCode: BadRequest}
	SuccessRegister     = ApiStatus{StatusName: "REGISTER_SUCCESS", Description: "Registration successful", HttpCode: Ok}
)

func (pilotService *PilotService) verifyEmailCode(email string, emailCode int) *ApiStatus {
	err := pilotService.emailService.VerifyCode(email, emailCode)
	switch {
	case errors.Is(err, ErrEmailCodeNotFound):
		return &ErrEmailNotFound
	case errors.Is(err, ErrEmailCodeExpired):
		return &ErrEmailExpired
	case errors.Is(err, ErrInvalidEmailCode):
		return &ErrEmailCodeInvalid
	default:
		return nil
	}
}

func (pilotService *PilotService) PilotRegister(req *RequestPilotRegister) *ApiResponse[ResponsePilotRegister] {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return NewApiResponse[ResponsePilotRegister](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := pilotService.verifyEmailCode(req.Email, req.EmailCode); res != nil {
		return NewApiResponse[ResponsePilotRegister](res, Unsatisfied, nil)
	}
	if err := nameValidator.CheckString(req.FirstName); err != nil {
		return NewApiResponse[ResponsePilotRegister](err, Unsatisfied, nil)
	}
	if err := nameValidator.CheckString(req.LastName); err != nil {
		return NewApiResponse[ResponsePilotRegister](err, Unsatisfied, nil)
	}
	if err := emailValidator.CheckString(req.Email); err != nil {
		return NewApiResponse[ResponsePilotRegister](err, Unsatisfied, nil)
	}
	if err := passwordValidator.CheckString(req.Password); err != nil {
		return NewApiResponse[ResponsePilotRegister](err, Unsatisfied, nil)
	}
	pilot, err := pilotService.pilotOperation.NewPilot(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return NewApiResponse[ResponsePilotRegister](&ErrRegisterFail, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponsePilotRegister](pilotService.logger, func() (*interface{}, error) {
		return nil, pilotService.pilotOperation.AddPilot(pilot)
	}); res != nil {
		return res
	}
	token := NewClaims(pilotService.config.JWT, pilot, false)
	flushToken := NewClaims(pilotService.config.JWT, pilot, true)
	return NewApiResponse(&SuccessRegister, Unsatisfied, &ResponsePilotRegister{
		Pilot:      pilot,
		Token:      token.GenerateKey(),
		FlushToken: flushToken.GenerateKey(),
	})
}

var (
	ErrEmailOrPassword = ApiStatus{StatusName: "WRONG_EMAIL_OR_PASSWORD", Description: "Email or password is wrong", HttpCode: BadRequest}
	SuccessLogin       = ApiStatus{StatusName: "LOGIN_SUCCESS", Description: "Login successful", HttpCode: Ok}
)

func (pilotService *PilotService) PilotLogin(req *RequestPilotLogin) *ApiResponse[ResponsePilotLogin] {
	if req.Email == "" || req.Password == "" {
		return NewApiResponse[ResponsePilotLogin](&ErrIllegalParam, Unsatisfied, nil)
	}

	pilot, res := CallDBFuncAndCheckError[operation.Pilot, ResponsePilotLogin](pilotService.logger, func() (*operation.Pilot, error) {
		return pilotService.pilotOperation.GetPilotByEmail(req.Email)
	})
	if res != nil {
		// A wrong address reads the same as a wrong password.
		return NewApiResponse[ResponsePilotLogin](&ErrEmailOrPassword, Unsatisfied, nil)
	}

	if !pilotService.pilotOperation.VerifyPilotPassword(pilot, req.Password) {
		return NewApiResponse[ResponsePilotLogin](&ErrEmailOrPassword, Unsatisfied, nil)
	}

	token := NewClaims(pilotService.config.JWT, pilot, false)
	flushToken := NewClaims(pilotService.config.JWT, pilot, true)
	return NewApiResponse(&SuccessLogin, Unsatisfied, &ResponsePilotLogin{
		Pilot:      pilot,
		Token:      token.GenerateKey(),
		FlushToken: flushToken.GenerateKey(),
	})
}

var SuccessGetToken = ApiStatus{StatusName: "GET_TOKEN", Description: "Token refreshed", HttpCode: Ok}

func (pilotService *PilotService) GetTokenWithFlushToken(req *RequestGetToken) *ApiResponse[ResponseGetToken] {
	if req.Claims == nil || !req.FlushToken {
		return NewApiResponse[ResponseGetToken](&ErrIllegalParam, Unsatisfied, nil)
	}

	pilot, res := CallDBFuncAndCheckError[operation.Pilot, ResponseGetToken](pilotService.logger, func() (*operation.Pilot, error) {
		return pilotService.pilotOperation.GetPilotByID(req.Uid)
	})
	if res != nil {
		return res
	}

	// Rotate the refresh token only once it is close to expiring.
	var flushToken string
	if req.ExpiresAt != nil && req.ExpiresAt.Add(-2*pilotService.config.JWT.ExpiresDuration).After(time.Now()) {
		flushToken = ""
	} else {
		flushToken = NewClaims(pilotService.config.JWT, pilot, true).GenerateKey()
	}

	token := NewClaims(pilotService.config.JWT, pilot, false)
	return NewApiResponse(&SuccessGetToken, Unsatisfied, &ResponseGetToken{
		Pilot:      pilot,
		Token:      token.GenerateKey(),
		FlushToken: flushToken,
	})
}

var (
	EmailAvailable    = ApiStatus{StatusName: "EMAIL_AVAILABLE", Description: "Email is available", HttpCode: Ok}
	EmailNotAvailable = ApiStatus{StatusName: "EMAIL_NOT_AVAILABLE", Description: "Email has been used", HttpCode: Ok}
)

func (pilotService *PilotService) CheckPilotAvailability(req *RequestPilotAvailability) *ApiResponse[ResponsePilotAvailability] {
	if req.Email == "" {
		return NewApiResponse[ResponsePilotAvailability](&ErrIllegalParam, Unsatisfied, nil)
	}
	taken, _ := pilotService.pilotOperation.IsEmailTaken(nil, req.Email)
	data := ResponsePilotAvailability(!taken)
	if taken {
		return NewApiResponse(&EmailNotAvailable, Unsatisfied, &data)
	}
	return NewApiResponse(&EmailAvailable, Unsatisfied, &data)
}

var SuccessGetProfile = ApiStatus{StatusName: "GET_PROFILE_SUCCESS", Description: "Profile fetched", HttpCode: Ok}

func (pilotService *PilotService) GetCurrentProfile(req *RequestPilotCurrentProfile) *ApiResponse[ResponsePilotCurrentProfile] {
	pilot, res := CallDBFuncAndCheckError[operation.Pilot, ResponsePilotCurrentProfile](pilotService.logger, func() (*operation.Pilot, error) {
		return pilotService.pilotOperation.GetPilotByID(req.Uid)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetProfile, Unsatisfied, (*ResponsePilotCurrentProfile)(pilot))
}

var SuccessEditProfile = ApiStatus{StatusName: "EDIT_PROFILE_SUCCESS", Description: "Profile updated", HttpCode: Ok}

func (pilotService *PilotService) EditCurrentProfile(req *RequestPilotEditCurrentProfile) *ApiResponse[ResponsePilotEditCurrentProfile] {
	pilot, res := CallDBFuncAndCheckError[operation.Pilot, ResponsePilotEditCurrentProfile](pilotService.logger, func() (*operation.Pilot, error) {
		return pilotService.pilotOperation.GetPilotByID(req.Uid)
	})
	if res != nil {
		return res
	}

	info := make(map[string]interface{})
	if req.FirstName != "" && req.FirstName != pilot.FirstName {
		if err := nameValidator.CheckString(req.FirstName); err != nil {
			return NewApiResponse[ResponsePilotEditCurrentProfile](err, Unsatisfied, nil)
		}
		info["first_name"] = req.FirstName
	}
	if req.LastName != "" && req.LastName != pilot.LastName {
		if err := nameValidator.CheckString(req.LastName); err != nil {
			return NewApiResponse[ResponsePilotEditCurrentProfile](err, Unsatisfied, nil)
		}
		info["last_name"] = req.LastName
	}
	if req.Email != "" && req.Email != pilot.Email {
		if err := emailValidator.CheckString(req.Email); err != nil {
			return NewApiResponse[ResponsePilotEditCurrentProfile](err, Unsatisfied, nil)
		}
		// Changing the login address requires proving control of the new one.
		if res := pilotService.verifyEmailCode(req.Email, req.EmailCode); res != nil {
			return NewApiResponse[ResponsePilotEditCurrentProfile](res, Unsatisfied, nil)
		}
		taken, err := pilotService.pilotOperation.IsEmailTaken(nil, req.Email)
		if err != nil {
			return NewApiResponse[ResponsePilotEditCurrentProfile](&ErrDatabaseFail, Unsatisfied, nil)
		}
		if taken {
			return NewApiResponse[ResponsePilotEditCurrentProfile](&ErrEmailTaken, Unsatisfied, nil)
		}
		info["email"] = req.Email
	}
	if req.WeeklySummary != nil {
		info["weekly_summary"] = *req.WeeklySummary
	}
	if req.NewPassword != "" {
		if err := passwordValidator.CheckString(req.NewPassword); err != nil {
			return NewApiResponse[ResponsePilotEditCurrentProfile](err, Unsatisfied, nil)
		}
		encoded, err := pilotService.pilotOperation.UpdatePilotPassword(pilot, req.OriginPassword, req.NewPassword)
		if err != nil {
			if errors.Is(err, operation.ErrOldPassword) {
				return NewApiResponse[ResponsePilotEditCurrentProfile](&ErrOldPasswordFail, Unsatisfied, nil)
			}
			return NewApiResponse[ResponsePilotEditCurrentProfile](&ErrDatabaseFail, Unsatisfied, nil)
		}
		info["password"] = string(encoded)
	}

	if len(info) > 0 {
		if _, res := CallDBFuncAndCheckError[interface{}, ResponsePilotEditCurrentProfile](pilotService.logger, func() (*interface{}, error) {
			return nil, pilotService.pilotOperation.UpdatePilotInfo(pilot, info)
		}); res != nil {
			return res
		}
	}
	return NewApiResponse(&SuccessEditProfile, Unsatisfied, (*ResponsePilotEditCurrentProfile)(pilot))
}

func (pilotService *PilotService) GetPilotProfile(req *RequestPilotProfile) *ApiResponse[ResponsePilotProfile] {
	// Any member may look up another: the flight log and agenda show names
	// anyway. Role edits stay admin-only below.
	pilot, res := CallDBFuncAndCheckError[operation.Pilot, ResponsePilotProfile](pilotService.logger, func() (*operation.Pilot, error) {
		return pilotService.pilotOperation.GetPilotByID(req.TargetUid)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetProfile, Unsatisfied, (*ResponsePilotProfile)(pilot))
}

func (pilotService *PilotService) EditPilotProfile(req *RequestPilotEditProfile) *ApiResponse[ResponsePilotEditProfile] {
	operator, res := GetPilotAndCheckAdmin[ResponsePilotEditProfile](pilotService.logger, pilotService.pilotOperation, req.Uid)
	if res != nil {
		return res
	}

	pilot, res := CallDBFuncAndCheckError[operation.Pilot, ResponsePilotEditProfile](pilotService.logger, func() (*operation.Pilot, error) {
		return pilotService.pilotOperation.GetPilotByID(req.TargetUid)
	})
	if res != nil {
		return res
	}

	info := make(map[string]interface{})
	if req.FirstName != "" {
		info["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		info["last_name"] = req.LastName
	}
	if req.Email != "" && req.Email != pilot.Email {
		info["email"] = req.Email
	}
	if req.Admin != nil {
		info["admin"] = *req.Admin
	}
	if req.Instructor != nil {
		info["instructor"] = *req.Instructor
	}
	if req.TowPilot != nil {
		info["tow_pilot"] = *req.TowPilot
	}

	if len(info) > 0 {
		if _, res := CallDBFuncAndCheckError[interface{}, ResponsePilotEditProfile](pilotService.logger, func() (*interface{}, error) {
			return nil, pilotService.pilotOperation.UpdatePilotInfo(pilot, info)
		}); res != nil {
			return res
		}
		auditLog := pilotService.auditLogOperation.NewAuditLog(operator.ID, "pilot.edit",
			fmt.Sprintf("pilot:%d", pilot.ID), fmt.Sprintf("fields %v", info), "", "")
		if err := pilotService.auditLogOperation.SaveAuditLog(auditLog); err != nil {
			pilotService.logger.ErrorF("PilotService.EditPilotProfile audit log error: %v", err)
		}
	}
	return NewApiResponse(&SuccessEditProfile, Unsatisfied, (*ResponsePilotEditProfile)(pilot))
}

var SuccessGetPilots = ApiStatus{StatusName: "GET_PILOTS_SUCCESS", Description: "Pilot list fetched", HttpCode: Ok}

func (pilotService *PilotService) GetPilotList(req *RequestPilotList) *ApiResponse[ResponsePilotList] {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 25
	}
	pilots, total, err := pilotService.pilotOperation.GetPilots(req.Page, req.PageSize)
	if err != nil {
		pilotService.logger.ErrorF("PilotService.GetPilotList db error: %v", err)
		return NewApiResponse[ResponsePilotList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetPilots, Unsatisfied, &ResponsePilotList{Items: pilots, Total: total})
}
