package utils

import (
	"fmt"
	"runtime"
	"strings"
)

// GetFileAndLoC returns the file path and line of code with skip being the number of stack frames to skip
func GetFileAndLoC(skip int) string {
	_, filepath, line, _ := runtime.Caller(1 + skip)

	// trim to the last two path segments so logs stay readable
	parts := strings.Split(filepath, "/")
	if len(parts) > 2 {
		filepath = strings.Join(parts[len(parts)-2:], "/")
	}

	return fmt.Sprintf(
		"%s:%d",
		filepath,
		line,
	)
}
