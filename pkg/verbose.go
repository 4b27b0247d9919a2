package assethashmap

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
)

var (
	logMu              sync.Mutex
	globalVerboseLevel int
	debugFlags         map[string]bool
)

// SetVerboseLevel sets the global verbose level
func SetVerboseLevel(level int) {
	logMu.Lock()
	defer logMu.Unlock()
	globalVerboseLevel = level
}

// GetVerboseLevel returns the current verbose level
func GetVerboseLevel() int {
	logMu.Lock()
	defer logMu.Unlock()
	return globalVerboseLevel
}

// VerboseEnter logs function entry at level 3+ and returns a defer function for exit logging
func VerboseEnter() func() {
	if GetVerboseLevel() < 3 {
		return func() {}
	}

	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return func() {}
	}

	funcName := runtime.FuncForPC(pc).Name()
	if idx := strings.LastIndex(funcName, "."); idx != -1 {
		funcName = funcName[idx+1:]
	}

	writeLog("[TRACE] Entering function: %s\n", funcName)
	return func() {
		writeLog("[TRACE] Exiting function: %s\n", funcName)
	}
}

// VerboseLog logs a message at the specified verbose level.
// Hashing goroutines log concurrently, so each line is written under logMu.
func VerboseLog(level int, format string, args ...interface{}) {
	if GetVerboseLevel() < level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	writeLog("[VERBOSE-%d] %s", level, msg)
}

// DebugLog logs at level 3 when the named debug flag is enabled
func DebugLog(flag string, format string, args ...interface{}) {
	if IsDebugEnabled(flag) {
		VerboseLog(3, "["+strings.ToUpper(flag)+"] "+format, args...)
	}
}

func writeLog(format string, args ...interface{}) {
	logMu.Lock()
	defer logMu.Unlock()
	fmt.Fprintf(os.Stderr, format, args...)
}

// SetDebugFlags sets the debug flags from a comma-separated string
// Supports both simple flags ("walk,hash") and key:value format ("walk:true,hash:false")
func SetDebugFlags(flagsStr string) {
	flags := make(map[string]bool)

	for _, flag := range strings.Split(flagsStr, ",") {
		flag = strings.TrimSpace(flag)
		if flag == "" {
			continue
		}

		parts := strings.SplitN(flag, ":", 2)
		flagName := strings.ToLower(parts[0])
		flagValue := true

		if len(parts) > 1 {
			switch strings.ToLower(parts[1]) {
			case "false", "0", "no", "off":
				flagValue = false
			}
		}

		flags[flagName] = flagValue
	}

	logMu.Lock()
	debugFlags = flags
	logMu.Unlock()
}

// IsDebugEnabled returns true if the specified debug flag is enabled
func IsDebugEnabled(flag string) bool {
	logMu.Lock()
	defer logMu.Unlock()
	if debugFlags == nil {
		return false
	}
	return debugFlags[strings.ToLower(flag)]
}
