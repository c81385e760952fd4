package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// Format groups thousands, e.g. 10000 -> "10,000".
func Format(amount int) string {
	return printer.Sprintf("%d", amount)
}
