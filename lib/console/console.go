package console

import (
	"fmt"

	"github.com/TwiN/go-color"
	"github.com/glabops/cli/config"
)

// Log verbose message to console.
// Only printed when verbose mode is enabled.
func Verbose(message string, vars ...any) {
	if config.I.Verbose {
		fmt.Printf(color.Ize(color.Gray, message+"\n"), vars...)
	}
}

// Log success message to console.
func Success(message string, vars ...any) {
	fmt.Printf(color.Ize(color.Green, message+"\n"), vars...)
}

// Log info message to console.
func Info(message string, vars ...any) {
	fmt.Printf(color.Ize(color.Cyan, message+"\n"), vars...)
}

// Log warning message to console.
func Warning(message string, vars ...any) {
	fmt.Printf(color.Ize(color.Yellow, message+"\n"), vars...)
}

// Log error message to console.
func Error(message string, vars ...any) error {
	return fmt.Errorf(color.Ize(color.Red, message), vars...)
}

// Log error message to console.
func ErrorPrint(message string, vars ...any) {
	fmt.Printf(color.Ize(color.Red, message+"\n"), vars...)
}
