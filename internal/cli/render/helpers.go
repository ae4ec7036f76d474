package render

import (
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Capitalize first letter
	if len(message) > 0 {
		message = strings.ToUpper(message[:1]) + message[1:]
	}
	return color.New(color.FgRed).Sprintf("❌ %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// title renders identifiers like "abiExporter" or "ethers-v5" as headings
func title(s string) string {
	return cases.Title(language.English).String(s)
}
