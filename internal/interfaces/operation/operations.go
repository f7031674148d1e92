// Package operation
package operation

type DatabaseOperations struct {
	pilotOperation    PilotOperationInterface
	aircraftOperation AircraftOperationInterface
	flightOperation   FlightOperationInterface
	slotOperation     SlotOperationInterface
	auditLogOperation AuditLogOperationInterface
}

func NewDatabaseOperations(
	pilotOperation PilotOperationInterface,
	aircraftOperation AircraftOperationInterface,
	flightOperation FlightOperationInterface,
	slotOperation SlotOperationInterface,
	auditLogOperation AuditLogOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		pilotOperation:    pilotOperation,
		aircraftOperation: aircraftOperation,
		flightOperation:   flightOperation,
		slotOperation:     slotOperation,
		auditLogOperation: auditLogOperation,
	}
}

func (db *DatabaseOperations) PilotOperation() PilotOperationInterface {
	return db.pilotOperation
}

func (db *DatabaseOperations) AircraftOperation() AircraftOperationInterface {
	return db.aircraftOperation
}

func (db *DatabaseOperations) FlightOperation() FlightOperationInterface {
	return db.flightOperation
}

func (db *DatabaseOperations) SlotOperation() SlotOperationInterface {
	return db.slotOperation
}

func (db *DatabaseOperations) AuditLogOperation() AuditLogOperationInterface {
	return db.auditLogOperation
}
