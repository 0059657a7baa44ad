// Package seed provides the default room inventory and settings used when a property
// starts with an empty store and nothing to pull.
package seed

import (
	_ "embed"
	"fmt"
	"strconv"

	roomModel "frontdesk/internal/domains/room/model"
	settingModel "frontdesk/internal/domains/setting/model"

	"gopkg.in/yaml.v3"
)

//go:embed frontdesk.yaml
var defaults []byte

type floorRange struct {
	Floor int   `yaml:"floor"`
	From  int   `yaml:"from"`
	To    int   `yaml:"to"`
	Skip  []int `yaml:"skip"`
}

type blockSpec struct {
	Block  string       `yaml:"block"`
	Prefix string       `yaml:"prefix"`
	Type   string       `yaml:"type"`
	Price  float64      `yaml:"price"`
	Floors []floorRange `yaml:"floors"`
}

// Property is a parsed seed document.
type Property struct {
	Settings  settingModel.Settings `yaml:"settings"`
	Inventory []blockSpec           `yaml:"inventory"`
}

// Default parses the embedded property seed.
func Default() (Property, error) {
	return Parse(defaults)
}

func Parse(raw []byte) (Property, error) {
	var property Property

	if err := yaml.Unmarshal(raw, &property); err != nil {
		return property, fmt.Errorf("failed to parse seed: %w", err)
	}

	property.Settings.ID = settingModel.PrimaryID

	return property, nil
}

// Rooms expands the inventory ranges into vacant rooms. Room numbers carry the block
// prefix (A101, M204).
func (p Property) Rooms() []roomModel.Room {
	rooms := []roomModel.Room{}

	for _, block := range p.Inventory {
		for _, floor := range block.Floors {
			skip := make(map[int]bool, len(floor.Skip))
			for _, n := range floor.Skip {
				skip[n] = true
			}

			for n := floor.From; n <= floor.To; n++ {
				if skip[n] {
					continue
				}

				id := block.Prefix + strconv.Itoa(n)

				rooms = append(rooms, roomModel.Room{
					ID:     id,
					Number: id,
					Floor:  floor.Floor,
					Block:  block.Block,
					Type:   block.Type,
					Price:  block.Price,
					Status: roomModel.StatusVacant,
				})
			}
		}
	}

	return rooms
}
