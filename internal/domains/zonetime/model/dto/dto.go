package dto

// ConvertRequest asks for a wall-clock value in TZ to be expressed in TargetTZ.
// Date uses the MM.DD.YYYY HH:MM:SS layout.
type ConvertRequest struct {
	Date     string `json:"date" validate:"required"`
	TZ       string `json:"tz" validate:"required"`
	TargetTZ string `json:"target_tz" validate:"required"`
}

// DateDiffRequest compares two zoned wall-clock values. The two dates use
// different layouts: FirstDate is MM.DD.YYYY HH:MM:SS and SecondDate is
// hh:mmAM/PM YYYY-MM-DD.
type DateDiffRequest struct {
	FirstDate  string `json:"first_date" validate:"required"`
	FirstTZ    string `json:"first_tz" validate:"required"`
	SecondDate string `json:"second_date" validate:"required"`
	SecondTZ   string `json:"second_tz" validate:"required"`
}

type ConvertResponse struct {
	ConvertedTime string `json:"converted_time"`
}

type DateDiffResponse struct {
	Difference string `json:"difference"`
}

// CurrentTimeResponse is the zone actually used and the formatted time in it.
type CurrentTimeResponse struct {
	Zone string
	Time string
}
