package models

import "strings"

// WeekdayCodes maps the single-letter weekday code used in the calendar
// header to its weekday number (Monday = 1).
var WeekdayCodes = map[string]int{
	"L": 1, // lunes
	"M": 2, // martes
	"W": 3, // miércoles
	"J": 4, // jueves
	"V": 5, // viernes
	"S": 6, // sábado
	"D": 7, // domingo
}

// WeekdayNumber resolves a weekday code. Codes are case-insensitive.
func WeekdayNumber(code string) (int, bool) {
	n, ok := WeekdayCodes[strings.ToUpper(strings.TrimSpace(code))]
	return n, ok
}
