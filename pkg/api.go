package assethashmap

// InitLogging sets the verbose level and debug flags in one call - for CLI use
func InitLogging(level int, flagsStr string) {
	SetVerboseLevel(level)
	SetDebugFlags(flagsStr)
	if level > 0 && flagsStr != "" {
		VerboseLog(1, "Debug flags initialised: %s", flagsStr)
	}
}
