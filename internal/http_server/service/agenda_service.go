// Package service
package service

import (
	"slices"

	"github.com/aeroclub-dev/clubhouse/internal/daylight"
	c "github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
)

type AgendaService struct {
	logger         log.LoggerInterface
	emailService   EmailServiceInterface
	pilotOperation operation.PilotOperationInterface
	slotOperation  operation.SlotOperationInterface
	calculator     *daylight.Calculator
}

func NewAgendaService(
	logger log.LoggerInterface,
	airfield *c.AirfieldConfig,
	pilotOperation operation.PilotOperationInterface,
	slotOperation operation.SlotOperationInterface,
	emailService EmailServiceInterface,
) *AgendaService {
	return &AgendaService{
		logger:         logger,
		emailService:   emailService,
		pilotOperation: pilotOperation,
		slotOperation:  slotOperation,
		calculator:     daylight.NewCalculator(airfield),
	}
}

var (
	ErrUnknownSlotCategory = ApiStatus{StatusName: "UNKNOWN_SLOT_CATEGORY", Description: "Unknown agenda slot category", HttpCode: BadRequest}
	SuccessGetAgenda       = ApiStatus{StatusName: "GET_AGENDA_SUCCESS", Description: "Agenda fetched", HttpCode: Ok}
	SuccessAddSlot         = ApiStatus{StatusName: "ADD_SLOT_SUCCESS", Description: "Agenda slot added", HttpCode: Ok}
	SuccessBookSlot        = ApiStatus{StatusName: "BOOK_SLOT_SUCCESS", Description: "Agenda slot booked", HttpCode: Ok}
	SuccessReleaseSlot     = ApiStatus{StatusName: "RELEASE_SLOT_SUCCESS", Description: "Agenda slot released", HttpCode: Ok}
	SuccessEditSlot        = ApiStatus{StatusName: "EDIT_SLOT_SUCCESS", Description: "Agenda slot updated", HttpCode: Ok}
	SuccessDelSlot         = ApiStatus{StatusName: "DELETE_SLOT_SUCCESS", Description: "Agenda slot removed", HttpCode: Ok}
)

var allowedSlotCategories = []operation.SlotCategory{
	operation.SlotPilot,
	operation.SlotInstructor,
	operation.SlotTowPilot,
}

func (agendaService *AgendaService) GetAgenda(req *RequestAgenda) *ApiResponse[ResponseAgenda] {
	start, status := parseDate(req.StartDate)
	if status != nil {
		return NewApiResponse[ResponseAgenda](status, Unsatisfied, nil)
	}
	end, status := parseDate(req.EndDate)
	if status != nil {
		return NewApiResponse[ResponseAgenda](status, Unsatisfied, nil)
	}
	if end.Before(start) {
		return NewApiResponse[ResponseAgenda](&ErrIllegalParam, Unsatisfied, nil)
	}

	slots, err := agendaService.slotOperation.GetSlotsInRange(start, end)
	if err != nil {
		agendaService.logger.ErrorF("AgendaService.GetAgenda db error: %v", err)
		return NewApiResponse[ResponseAgenda](&ErrDatabaseFail, Unsatisfied, nil)
	}

	// One sun-times entry per requested day, capped so a runaway range
	// cannot turn into an astronomy batch job.
	daylights := make([]*ResponseDaylight, 0)
	for day := start; !day.After(end) && len(daylights) < 31; day = day.AddDate(0, 0, 1) {
		times := agendaService.calculator.For(day)
		daylights = append(daylights, &ResponseDaylight{
			Date:               day.Format("2006-01-02"),
			Sunrise:            clockOrEmpty(times.Sunrise),
			Sunset:             clockOrEmpty(times.Sunset),
			CivilTwilightStart: clockOrEmpty(times.CivilTwilightStart),
			CivilTwilightEnd:   clockOrEmpty(times.CivilTwilightEnd),
			Polar:              times.Polar,
		})
	}
	return NewApiResponse(&SuccessGetAgenda, Unsatisfied, &ResponseAgenda{Items: slots, Daylight: daylights})
}

func (agendaService *AgendaService) AddSlot(req *RequestAddSlot) *ApiResponse[ResponseAddSlot] {
	if _, res := GetPilotAndCheckAdmin[ResponseAddSlot](agendaService.logger, agendaService.pilotOperation, req.Uid); res != nil {
		return res
	}
	date, status := parseDate(req.SlotDate)
	if status != nil {
		return NewApiResponse[ResponseAddSlot](status, Unsatisfied, nil)
	}
	if !validClockTime(req.StartTime) || !validClockTime(req.EndTime) {
		return NewApiResponse[ResponseAddSlot](&ErrBadClockTime, Unsatisfied, nil)
	}
	category := operation.SlotCategory(req.Category)
	if !slices.Contains(allowedSlotCategories, category) {
		return NewApiResponse[ResponseAddSlot](&ErrUnknownSlotCategory, Unsatisfied, nil)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	slot := &operation.AgendaSlot{
		SlotDate:  date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Category:  category,
		Available: available,
		Status:    operation.SlotOpen,
		Notes:     req.Notes,
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAddSlot](agendaService.logger, func() (*interface{}, error) {
		return nil, agendaService.slotOperation.AddSlot(slot)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessAddSlot, Unsatisfied, (*ResponseAddSlot)(slot))
}

func (agendaService *AgendaService) BookSlot(req *RequestBookSlot) *ApiResponse[ResponseBookSlot] {
	slot, res := CallDBFuncAndCheckError[operation.AgendaSlot, ResponseBookSlot](agendaService.logger, func() (*operation.AgendaSlot, error) {
		return agendaService.slotOperation.GetSlotByID(req.TargetID)
	})
	if res != nil {
		return res
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseBookSlot](agendaService.logger, func() (*interface{}, error) {
		return nil, agendaService.slotOperation.BookSlot(slot, req.Uid, req.AircraftID)
	}); res != nil {
		return res
	}

	if pilot, err := agendaService.pilotOperation.GetPilotByID(req.Uid); err == nil {
		if err := agendaService.emailService.SendSlotBookedEmail(pilot, slot); err != nil {
			agendaService.logger.WarnF("AgendaService.BookSlot confirmation email error: %v", err)
		}
	}
	return NewApiResponse(&SuccessBookSlot, Unsatisfied, (*ResponseBookSlot)(slot))
}

func (agendaService *AgendaService) ReleaseSlot(req *RequestReleaseSlot) *ApiResponse[ResponseReleaseSlot] {
	slot, res := CallDBFuncAndCheckError[operation.AgendaSlot, ResponseReleaseSlot](agendaService.logger, func() (*operation.AgendaSlot, error) {
		return agendaService.slotOperation.GetSlotByID(req.TargetID)
	})
	if res != nil {
		return res
	}
	// Holders release their own booking; admins release anyone's.
	if !req.Admin && (slot.PilotID == nil || *slot.PilotID != req.Uid) {
		return NewApiResponse[ResponseReleaseSlot](&ErrNoPermission, Unsatisfied, nil)
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseReleaseSlot](agendaService.logger, func() (*interface{}, error) {
		return nil, agendaService.slotOperation.ReleaseSlot(slot)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessReleaseSlot, Unsatisfied, (*ResponseReleaseSlot)(slot))
}

func (agendaService *AgendaService) EditSlot(req *RequestEditSlot) *ApiResponse[ResponseEditSlot] {
	if _, res := GetPilotAndCheckAdmin[ResponseEditSlot](agendaService.logger, agendaService.pilotOperation, req.Uid); res != nil {
		return res
	}
	slot, res := CallDBFuncAndCheckError[operation.AgendaSlot, ResponseEditSlot](agendaService.logger, func() (*operation.AgendaSlot, error) {
		return agendaService.slotOperation.GetSlotByID(req.TargetID)
	})
	if res != nil {
		return res
	}

	info := make(map[string]interface{})
	if req.StartTime != "" {
		if !validClockTime(req.StartTime) {
			return NewApiResponse[ResponseEditSlot](&ErrBadClockTime, Unsatisfied, nil)
		}
		info["start_time"] = req.StartTime
	}
	if req.EndTime != "" {
		if !validClockTime(req.EndTime) {
			return NewApiResponse[ResponseEditSlot](&ErrBadClockTime, Unsatisfied, nil)
		}
		info["end_time"] = req.EndTime
	}
	if req.Available != nil {
		info["available"] = *req.Available
	}
	if req.Status != nil {
		info["status"] = *req.Status
	}
	if req.Notes != "" {
		info["notes"] = req.Notes
	}

	if len(info) > 0 {
		if _, res := CallDBFuncAndCheckError[interface{}, ResponseEditSlot](agendaService.logger, func() (*interface{}, error) {
			return nil, agendaService.slotOperation.UpdateSlotInfo(slot, info)
		}); res != nil {
			return res
		}
	}
	return NewApiResponse(&SuccessEditSlot, Unsatisfied, (*ResponseEditSlot)(slot))
}

func (agendaService *AgendaService) DeleteSlot(req *RequestDeleteSlot) *ApiResponse[ResponseDeleteSlot] {
	if _, res := GetPilotAndCheckAdmin[ResponseDeleteSlot](agendaService.logger, agendaService.pilotOperation, req.Uid); res != nil {
		return res
	}
	slot, res := CallDBFuncAndCheckError[operation.AgendaSlot, ResponseDeleteSlot](agendaService.logger, func() (*operation.AgendaSlot, error) {
		return agendaService.slotOperation.GetSlotByID(req.TargetID)
	})
	if res != nil {
		return res
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDeleteSlot](agendaService.logger, func() (*interface{}, error) {
		return nil, agendaService.slotOperation.DeleteSlot(slot)
	}); res != nil {
		return res
	}
	deleted := ResponseDeleteSlot(true)
	return NewApiResponse(&SuccessDelSlot, Unsatisfied, &deleted)
}
