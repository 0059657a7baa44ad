package dto

import (
	"frontdesk/internal/domains/setting/model"
)

type RoomTypeRate struct {
	Single float64 `json:"single" validate:"min=0"`
	Double float64 `json:"double" validate:"min=0"`
}

type AgentConfig struct {
	Name       string  `json:"name"       validate:"required,max=100"`
	Commission float64 `json:"commission" validate:"min=0,max=100"`
}

type UpdateSettingsRequest struct {
	Name             string                  `json:"name"             validate:"required,max=150"`
	Address          string                  `json:"address"          validate:"omitempty,max=300"`
	Agents           []AgentConfig           `json:"agents"           validate:"omitempty,dive"`
	RoomTypes        []string                `json:"roomTypes"        validate:"omitempty,dive,required"`
	RoomTypeRates    map[string]RoomTypeRate `json:"roomTypeRates"    validate:"omitempty,dive"`
	MealPlanRates    map[string]float64      `json:"mealPlanRates"    validate:"omitempty,dive,min=0"`
	Blocks           []string                `json:"blocks"           validate:"omitempty,dive,required"`
	GSTNumber        string                  `json:"gstNumber"        validate:"omitempty,max=20"`
	TaxRate          float64                 `json:"taxRate"          validate:"min=0,max=100"`
	HSNCode          string                  `json:"hsnCode"          validate:"omitempty,max=10"`
	WifiPassword     string                  `json:"wifiPassword"     validate:"omitempty,max=64"`
	ReceptionPhone   string                  `json:"receptionPhone"   validate:"omitempty,max=20"`
	RoomServicePhone string                  `json:"roomServicePhone" validate:"omitempty,max=20"`
}

func (r *UpdateSettingsRequest) ToModel() model.Settings {
	settings := model.Settings{
		ID:               model.PrimaryID,
		Name:             r.Name,
		Address:          r.Address,
		Agents:           make([]model.AgentConfig, 0, len(r.Agents)),
		RoomTypes:        r.RoomTypes,
		RoomTypeRates:    make(map[string]model.RoomTypeRate, len(r.RoomTypeRates)),
		MealPlanRates:    r.MealPlanRates,
		Blocks:           r.Blocks,
		GSTNumber:        r.GSTNumber,
		TaxRate:          r.TaxRate,
		HSNCode:          r.HSNCode,
		WifiPassword:     r.WifiPassword,
		ReceptionPhone:   r.ReceptionPhone,
		RoomServicePhone: r.RoomServicePhone,
	}

	for _, agent := range r.Agents {
		settings.Agents = append(settings.Agents, model.AgentConfig{Name: agent.Name, Commission: agent.Commission})
	}

	for roomType, rate := range r.RoomTypeRates {
		settings.RoomTypeRates[roomType] = model.RoomTypeRate{Single: rate.Single, Double: rate.Double}
	}

	return settings
}
