package service

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const clearDebtMessage = "%d задолженность успешно очищена"

func init() {
	err := message.Set(language.Russian, clearDebtMessage, plural.Selectf(1, "%d",
		plural.One, "%d задолженность успешно очищена",
		plural.Few, "%d задолженности успешно очищены",
		plural.Many, "%d задолженностей успешно очищено",
		plural.Other, "%d задолженности успешно очищены",
	))
	if err != nil {
		panic(err)
	}
}

var ruPrinter = message.NewPrinter(language.Russian)

// ClearDebtMessage reports how many links had their debt cleared, in Russian.
func ClearDebtMessage(n int64) string {
	return ruPrinter.Sprintf(clearDebtMessage, int(n))
}
