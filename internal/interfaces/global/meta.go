// Package global
package global

import "flag"

var (
	DebugMode      = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath = flag.String("config", "./config.json", "Path to configuration file")
	SkipSmtpCheck  = flag.Bool("skip_smtp_check", false, "Skip SMTP connectivity check on startup")
)

const (
	AppVersion    = "1.2.0"
	ConfigVersion = "1.2.0"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	// UnknownPilotName is substituted whenever a flight references a pilot
	// id that no longer resolves against the pilot table.
	UnknownPilotName = "Unknown Pilot"
	// UnknownAircraftName is the aircraft counterpart of UnknownPilotName.
	UnknownAircraftName = "Unknown Aircraft"
)
