package models

// Move records one task shifted off the holiday column.
type Move struct {
	// Row is the task row (1-based).
	Row int `json:"row"`
	// OriginalValue is the task value found in the holiday column.
	OriginalValue float64 `json:"original_value"`
	// Weekday is the number written to the destination column.
	Weekday int `json:"weekday"`
	// Note is the text written to the observations column.
	Note string `json:"note"`
}

// Report is the outcome of one rescheduling run.
type Report struct {
	// HolidayDay is the requested day-of-month.
	HolidayDay int `json:"holiday_day"`
	// HolidayColumn is the delivery column matching HolidayDay, if any.
	HolidayColumn string `json:"holiday_column,omitempty"`
	// DestinationColumn is the column tasks were moved into, if any.
	DestinationColumn string `json:"destination_column,omitempty"`
	// Moves lists every moved task in row order.
	Moves []Move `json:"moves,omitempty"`
	// Log holds the human-readable messages in the order they were produced.
	Log []string `json:"log"`
}

// Moved returns the number of tasks moved.
func (r *Report) Moved() int {
	return len(r.Moves)
}

// Append adds a message to the report log.
func (r *Report) Append(msg string) {
	r.Log = append(r.Log, msg)
}
