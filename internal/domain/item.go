package domain

// UnitType enumerates how an item is measured on a shopping list.
type UnitType string

const (
	UnitTypeCount    UnitType = "Count"
	UnitTypeMass     UnitType = "Mass"
	UnitTypeCapacity UnitType = "Capacity"
)

// Valid reports whether the unit type is one of the known values.
func (u UnitType) Valid() bool {
	switch u {
	case UnitTypeCount, UnitTypeMass, UnitTypeCapacity:
		return true
	}
	return false
}

// Item is an entry in the shopping catalog.
type Item struct {
	ID              int32    `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	ImageURL        *string  `json:"image_url"`
	DefaultUnitType UnitType `json:"default_unit_type"`
}

// NewItem carries the fields required to insert an item.
type NewItem struct {
	Name            string
	Description     *string
	ImageURL        *string
	DefaultUnitType UnitType
}
