package api

import "github.com/tomvill/f1-analytics/pkg/model"

// wire documents of the upstream API; null means "not recorded"

type scheduleDTO struct {
	Year   int        `json:"year"`
	Events []eventDTO `json:"events"`
}

type eventDTO struct {
	Round   int    `json:"round"`
	Name    string `json:"eventName"`
	Format  string `json:"eventFormat"`
	Circuit string `json:"circuitName"`
	Date    string `json:"eventDate"`
}

type lapDTO struct {
	Driver     string   `json:"driver"`
	LapNumber  int      `json:"lapNumber"`
	Position   *int     `json:"position"`
	LapTime    *float64 `json:"lapTime"`
	Sector1    *float64 `json:"sector1Time"`
	Sector2    *float64 `json:"sector2Time"`
	Sector3    *float64 `json:"sector3Time"`
	PitInTime  *float64 `json:"pitInTime"`
	PitOutTime *float64 `json:"pitOutTime"`
	Stint      int      `json:"stint"`
	Compound   string   `json:"compound"`
	TyreLife   int      `json:"tyreLife"`
	SpeedI1    *float64 `json:"speedI1"`
	SpeedI2    *float64 `json:"speedI2"`
	SpeedFL    *float64 `json:"speedFL"`
	SpeedST    *float64 `json:"speedST"`
}

func (d *lapDTO) toModel() model.Lap {
	pos := 0
	if d.Position != nil {
		pos = *d.Position
	}
	return model.Lap{
		Driver:     d.Driver,
		LapNumber:  d.LapNumber,
		Position:   pos,
		LapTime:    seconds(d.LapTime),
		Sector1:    seconds(d.Sector1),
		Sector2:    seconds(d.Sector2),
		Sector3:    seconds(d.Sector3),
		PitInTime:  d.PitInTime,
		PitOutTime: d.PitOutTime,
		Stint:      d.Stint,
		Compound:   d.Compound,
		TyreLife:   d.TyreLife,
		SpeedI1:    seconds(d.SpeedI1),
		SpeedI2:    seconds(d.SpeedI2),
		SpeedFL:    seconds(d.SpeedFL),
		SpeedST:    seconds(d.SpeedST),
	}
}

type resultDTO struct {
	Abbreviation       string   `json:"abbreviation"`
	DriverNumber       string   `json:"driverNumber"`
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	FullName           string   `json:"fullName"`
	TeamName           string   `json:"teamName"`
	TeamColor          string   `json:"teamColor"`
	HeadshotURL        string   `json:"headshotUrl"`
	CountryCode        string   `json:"countryCode"`
	Position           *float64 `json:"position"`
	ClassifiedPosition string   `json:"classifiedPosition"`
	Status             string   `json:"status"`
}

func (d *resultDTO) toModel() model.ResultRow {
	return model.ResultRow{
		Abbreviation:       d.Abbreviation,
		DriverNumber:       d.DriverNumber,
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		FullName:           d.FullName,
		TeamName:           d.TeamName,
		TeamColor:          d.TeamColor,
		HeadshotURL:        d.HeadshotURL,
		CountryCode:        d.CountryCode,
		Position:           seconds(d.Position),
		ClassifiedPosition: d.ClassifiedPosition,
		Status:             d.Status,
	}
}

type weatherDTO struct {
	Time          float64 `json:"time"`
	AirTemp       float64 `json:"airTemp"`
	TrackTemp     float64 `json:"trackTemp"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection float64 `json:"windDirection"`
	Rainfall      bool    `json:"rainfall"`
}

type cornerDTO struct {
	Number int     `json:"number"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

type telemetryDTO struct {
	Distance float64  `json:"distance"`
	Time     float64  `json:"time"`
	Speed    *float64 `json:"speed"`
	RPM      *float64 `json:"rpm"`
	Gear     *float64 `json:"nGear"`
	Throttle *float64 `json:"throttle"`
	Brake    *float64 `json:"brake"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
}

func (d *telemetryDTO) toModel() model.TelemetryRow {
	return model.TelemetryRow{
		Distance: d.Distance,
		Time:     d.Time,
		Speed:    seconds(d.Speed),
		RPM:      seconds(d.RPM),
		Gear:     seconds(d.Gear),
		Throttle: seconds(d.Throttle),
		Brake:    seconds(d.Brake),
		X:        seconds(d.X),
		Y:        seconds(d.Y),
	}
}
