// Package service
package service

import (
	"fmt"
	"slices"

	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
)

type AircraftService struct {
	logger            log.LoggerInterface
	pilotOperation    operation.PilotOperationInterface
	aircraftOperation operation.AircraftOperationInterface
	auditLogOperation operation.AuditLogOperationInterface
}

func NewAircraftService(
	logger log.LoggerInterface,
	pilotOperation operation.PilotOperationInterface,
	aircraftOperation operation.AircraftOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
) *AircraftService {
	return &AircraftService{
		logger:            logger,
		pilotOperation:    pilotOperation,
		aircraftOperation: aircraftOperation,
		auditLogOperation: auditLogOperation,
	}
}

var (
	ErrUnknownCategory  = ApiStatus{StatusName: "UNKNOWN_CATEGORY", Description: "Unknown aircraft category", HttpCode: BadRequest}
	SuccessGetAircraft  = ApiStatus{StatusName: "GET_AIRCRAFT_SUCCESS", Description: "Aircraft fetched", HttpCode: Ok}
	SuccessAddAircraft  = ApiStatus{StatusName: "ADD_AIRCRAFT_SUCCESS", Description: "Aircraft added", HttpCode: Ok}
	SuccessEditAircraft = ApiStatus{StatusName: "EDIT_AIRCRAFT_SUCCESS", Description: "Aircraft updated", HttpCode: Ok}
	SuccessDelAircraft  = ApiStatus{StatusName: "DELETE_AIRCRAFT_SUCCESS", Description: "Aircraft removed", HttpCode: Ok}
)

var allowedCategories = []operation.AircraftCategory{
	operation.CategoryTowPlane,
	operation.CategoryGlider,
	operation.CategoryEngine,
}

func (aircraftService *AircraftService) GetAircraftList(req *RequestAircraftList) *ApiResponse[ResponseAircraftList] {
	var (
		items []*operation.Aircraft
		err   error
	)
	if req.Category == "" {
		items, err = aircraftService.aircraftOperation.GetAllAircraft()
	} else {
		category := operation.AircraftCategory(req.Category)
		if !slices.Contains(allowedCategories, category) {
			return NewApiResponse[ResponseAircraftList](&ErrUnknownCategory, Unsatisfied, nil)
		}
		items, err = aircraftService.aircraftOperation.GetAircraftByCategory(category)
	}
	if err != nil {
		aircraftService.logger.ErrorF("AircraftService.GetAircraftList db error: %v", err)
		return NewApiResponse[ResponseAircraftList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetAircraft, Unsatisfied, &ResponseAircraftList{Items: items})
}

func (aircraftService *AircraftService) GetAircraft(req *RequestAircraft) *ApiResponse[ResponseAircraft] {
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseAircraft](aircraftService.logger, func() (*operation.Aircraft, error) {
		return aircraftService.aircraftOperation.GetAircraftByID(req.TargetID)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAircraft, Unsatisfied, (*ResponseAircraft)(aircraft))
}

func (aircraftService *AircraftService) AddAircraft(req *RequestAddAircraft) *ApiResponse[ResponseAddAircraft] {
	operator, res := GetPilotAndCheckAdmin[ResponseAddAircraft](aircraftService.logger, aircraftService.pilotOperation, req.Uid)
	if res != nil {
		return res
	}
	if req.Registration == "" || req.Name == "" {
		return NewApiResponse[ResponseAddAircraft](&ErrIllegalParam, Unsatisfied, nil)
	}
	category := operation.AircraftCategory(req.Category)
	if !slices.Contains(allowedCategories, category) {
		return NewApiResponse[ResponseAddAircraft](&ErrUnknownCategory, Unsatisfied, nil)
	}

	aircraft := &operation.Aircraft{
		Registration: req.Registration,
		Name:         req.Name,
		Category:     category,
		Active:       true,
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAddAircraft](aircraftService.logger, func() (*interface{}, error) {
		return nil, aircraftService.aircraftOperation.AddAircraft(aircraft)
	}); res != nil {
		return res
	}
	aircraftService.audit(operator.ID, "aircraft.add", aircraft.ID, aircraft.Registration)
	return NewApiResponse(&SuccessAddAircraft, Unsatisfied, (*ResponseAddAircraft)(aircraft))
}

func (aircraftService *AircraftService) EditAircraft(req *RequestEditAircraft) *ApiResponse[ResponseEditAircraft] {
	operator, res := GetPilotAndCheckAdmin[ResponseEditAircraft](aircraftService.logger, aircraftService.pilotOperation, req.Uid)
	if res != nil {
		return res
	}
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseEditAircraft](aircraftService.logger, func() (*operation.Aircraft, error) {
		return aircraftService.aircraftOperation.GetAircraftByID(req.TargetID)
	})
	if res != nil {
		return res
	}

	info := make(map[string]interface{})
	if req.Registration != "" {
		info["registration"] = req.Registration
	}
	if req.Name != "" {
		info["name"] = req.Name
	}
	if req.Category != "" {
		category := operation.AircraftCategory(req.Category)
		if !slices.Contains(allowedCategories, category) {
			return NewApiResponse[ResponseEditAircraft](&ErrUnknownCategory, Unsatisfied, nil)
		}
		info["category"] = category
	}
	if req.Active != nil {
		info["active"] = *req.Active
	}

	if len(info) > 0 {
		if _, res := CallDBFuncAndCheckError[interface{}, ResponseEditAircraft](aircraftService.logger, func() (*interface{}, error) {
			return nil, aircraftService.aircraftOperation.UpdateAircraftInfo(aircraft, info)
		}); res != nil {
			return res
		}
		aircraftService.audit(operator.ID, "aircraft.edit", aircraft.ID, fmt.Sprintf("fields %v", info))
	}
	return NewApiResponse(&SuccessEditAircraft, Unsatisfied, (*ResponseEditAircraft)(aircraft))
}

func (aircraftService *AircraftService) DeleteAircraft(req *RequestDeleteAircraft) *ApiResponse[ResponseDeleteAircraft] {
	operator, res := GetPilotAndCheckAdmin[ResponseDeleteAircraft](aircraftService.logger, aircraftService.pilotOperation, req.Uid)
	if res != nil {
		return res
	}
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseDeleteAircraft](aircraftService.logger, func() (*operation.Aircraft, error) {
		return aircraftService.aircraftOperation.GetAircraftByID(req.TargetID)
	})
	if res != nil {
		return res
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDeleteAircraft](aircraftService.logger, func() (*interface{}, error) {
		return nil, aircraftService.aircraftOperation.DeleteAircraft(aircraft)
	}); res != nil {
		return res
	}
	aircraftService.audit(operator.ID, "aircraft.delete", aircraft.ID, aircraft.Registration)
	deleted := ResponseDeleteAircraft(true)
	return NewApiResponse(&SuccessDelAircraft, Unsatisfied, &deleted)
}

func (aircraftService *AircraftService) audit(operatorID uint, action string, aircraftID uint, detail string) {
	auditLog := aircraftService.auditLogOperation.NewAuditLog(operatorID, action,
		fmt.Sprintf("aircraft:%d", aircraftID), detail, "", "")
	if err := aircraftService.auditLogOperation.SaveAuditLog(auditLog); err != nil {
		aircraftService.logger.ErrorF("AircraftService audit log error: %v", err)
	}
}
