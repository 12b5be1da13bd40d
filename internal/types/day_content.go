package types

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Pure JSON contract for the day_plans.content payload. Not a DB model.

type DayContent struct {
	Overview string   `json:"overview"`
	Tasks    []string `json:"tasks"`
	Details  string   `json:"details"`
	Tips     string   `json:"tips"`
}

// Marshal renders the content as the opaque JSON blob stored on DayPlan.
func (dc *DayContent) Marshal() (datatypes.JSON, error) {
	raw, err := json.Marshal(dc)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
