package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatNumber renders n with locale thousands separators, e.g. 2101 -> "2,101".
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}
