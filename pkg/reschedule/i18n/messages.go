// Package i18n holds the user-facing report messages in every supported
// language.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	SheetLoaded        = "log_sheet_loaded"
	ReadSheetError     = "log_error_read_sheet"
	DayNotFound        = "log_error_day_not_found"
	HolidayIdentified  = "log_holiday_identified"
	FirstDayWarning    = "log_warning_first_day"
	RescheduledNote    = "log_rescheduled_with_substitution"
	ReschedulingDone   = "log_rescheduling_complete"
	ReportHeader       = "report_header"
	SuccessMessage     = "success_message"
	DownloadFileSuffix = "download_file_suffix"
	NoInputSpreadsheet = "error_upload_file"
	SavedSpreadsheet   = "saved_file"
	NothingToDownload  = "nothing_to_download"
)

// Supported lists the languages with a full catalog, default first.
var Supported = []language.Tag{language.English, language.Spanish}

var translations = map[language.Tag]map[string]string{
	language.English: {
		SheetLoaded:        "Spreadsheet '%s' loaded successfully.",
		ReadSheetError:     "ERROR: Could not read the spreadsheet. Please check if it is the correct file. Details: %s",
		DayNotFound:        "ERROR: The day %d was not found in row %d of the Delivery columns.",
		HolidayIdentified:  "Holiday identified in the Delivery column: %s",
		FirstDayWarning:    "Warning: The holiday is the first day of the period. It cannot be anticipated.",
		RescheduledNote:    "Delivery rescheduled (with substitution) from day %d to column %s.",
		ReschedulingDone:   "Rescheduling completed. %d tasks were moved.",
		ReportHeader:       "Operation Report:",
		SuccessMessage:     "Your spreadsheet has been successfully rescheduled!",
		DownloadFileSuffix: "_rescheduled",
		NoInputSpreadsheet: "Please upload a spreadsheet before rescheduling.",
		SavedSpreadsheet:   "Rescheduled spreadsheet saved to %s",
		NothingToDownload:  "No spreadsheet was produced.",
	},
	language.Spanish: {
		SheetLoaded:        "Planilla '%s' cargada exitosamente.",
		ReadSheetError:     "ERROR: No se pudo leer la planilla. Por favor, verifique si es el archivo correcto. Detalles: %s",
		DayNotFound:        "ERROR: El día %d no fue encontrado en la fila %d de las columnas de Entrega.",
		HolidayIdentified:  "Feriado identificado en la columna de Entrega: %s",
		FirstDayWarning:    "Advertencia: El feriado es el primer día del período. No se puede anticipar.",
		RescheduledNote:    "Entrega reprogramada (con sustitución) del día %d a la columna %s.",
		ReschedulingDone:   "Reprogramación completada. Se movieron %d tareas.",
		ReportHeader:       "Reporte de Operación:",
		SuccessMessage:     "¡Su planilla ha sido reprogramada exitosamente!",
		DownloadFileSuffix: "_reprogramada",
		NoInputSpreadsheet: "Por favor, suba una planilla antes de reprogramar.",
		SavedSpreadsheet:   "Planilla reprogramada guardada en %s",
		NothingToDownload:  "No se generó ninguna planilla.",
	},
}

var (
	cat     = newCatalog()
	matcher = language.NewMatcher(Supported)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Match returns the supported language closest to lang, a BCP 47 tag such
// as "es" or "es-CL". Unknown or malformed tags resolve to English.
func Match(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return Supported[0]
	}
	_, idx, _ := matcher.Match(tag)
	return Supported[idx]
}

// NewPrinter returns a printer formatting message keys in the language
// closest to lang.
func NewPrinter(lang string) *message.Printer {
	return message.NewPrinter(Match(lang), message.Catalog(cat))
}
