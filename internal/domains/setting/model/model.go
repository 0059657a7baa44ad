package model

const (
	TableName  = "settings"
	EntityName = "setting"

	// PrimaryID is the id of the single settings record.
	PrimaryID = "primary"
)

type RoomTypeRate struct {
	Single float64 `json:"single" yaml:"single"`
	Double float64 `json:"double" yaml:"double"`
}

type AgentConfig struct {
	Name       string  `json:"name"       yaml:"name"`
	Commission float64 `json:"commission" yaml:"commission"`
}

// Settings is the property-wide configuration maintained by the front office.
type Settings struct {
	ID               string                  `json:"id"                         yaml:"-"`
	Name             string                  `json:"name"                       yaml:"name"`
	Address          string                  `json:"address"                    yaml:"address"`
	Agents           []AgentConfig           `json:"agents"                     yaml:"agents"`
	RoomTypes        []string                `json:"roomTypes"                  yaml:"roomTypes"`
	RoomTypeRates    map[string]RoomTypeRate `json:"roomTypeRates,omitempty"    yaml:"roomTypeRates"`
	MealPlanRates    map[string]float64      `json:"mealPlanRates,omitempty"    yaml:"mealPlanRates"`
	Blocks           []string                `json:"blocks,omitempty"           yaml:"blocks"`
	GSTNumber        string                  `json:"gstNumber,omitempty"        yaml:"gstNumber"`
	TaxRate          float64                 `json:"taxRate"                    yaml:"taxRate"`
	HSNCode          string                  `json:"hsnCode,omitempty"          yaml:"hsnCode"`
	WifiPassword     string                  `json:"wifiPassword,omitempty"     yaml:"wifiPassword"`
	ReceptionPhone   string                  `json:"receptionPhone,omitempty"   yaml:"receptionPhone"`
	RoomServicePhone string                  `json:"roomServicePhone,omitempty" yaml:"roomServicePhone"`
}

func (s Settings) RecordID() string {
	return s.ID
}

// Tariff returns the nightly room rate for a room type at the given occupancy, or 0
// when no rate is configured.
func (s Settings) Tariff(roomType string, doubleOccupancy bool) float64 {
	rate, ok := s.RoomTypeRates[roomType]
	if !ok {
		return 0
	}

	if doubleOccupancy {
		return rate.Double
	}

	return rate.Single
}

// MealRate returns the nightly rate of a meal plan, or 0 when unknown.
func (s Settings) MealRate(plan string) float64 {
	return s.MealPlanRates[plan]
}
