package report

// Purpose codes are stored in English snake_case; the club reads Spanish.
const (
	PurposeTraining            = "training"
	PurposeInstructionReceived = "instruction_received"
	PurposeInstructionGiven    = "instruction_given"
	PurposeTow                 = "tow"
	PurposeTrip                = "trip"
	PurposeLocal               = "local"
	PurposeCheckFlight         = "check_flight"
)

var purposeNames = map[string]string{
	PurposeTraining:            "Entrenamiento",
	PurposeInstructionReceived: "Instrucción recibida",
	PurposeInstructionGiven:    "Instrucción impartida",
	PurposeTow:                 "Remolque",
	PurposeTrip:                "Travesía",
	PurposeLocal:               "Vuelo local",
	PurposeCheckFlight:         "Vuelo de adaptación",
}

// PurposeName maps a stored purpose code to its display string. Codes
// without a translation pass through untouched so old rows keep rendering.
func PurposeName(code string) string {
	if name, ok := purposeNames[code]; ok {
		return name
	}
	return code
}

// instructional purposes produce two log entries for one physical flight,
// one in the student's log and one in the instructor's.
func instructional(code string) bool {
	return code == PurposeInstructionReceived || code == PurposeInstructionGiven
}
