package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// fallback is the language messages are written in.
var fallback = language.AmericanEnglish

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("uasm: locale: %v", err)
	}

	// User locales first; unparsable ones are skipped.
	var prefs []string
	for _, loc := range locales {
		if _, err := language.Parse(loc); err == nil {
			prefs = append(prefs, loc)
		}
	}
	prefs = append(prefs, fallback.String())

	printer = message.NewPrinter(message.MatchLanguage(prefs...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
