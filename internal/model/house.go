package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"houseprice/internal/utils"
)

// Request field names
const (
	FieldArea             = "area"
	FieldBedrooms         = "bedrooms"
	FieldBathrooms        = "bathrooms"
	FieldStories          = "stories"
	FieldMainRoad         = "mainroad"
	FieldGuestRoom        = "guestroom"
	FieldBasement         = "basement"
	FieldHotWaterHeating  = "hotwaterheating"
	FieldAirConditioning  = "airconditioning"
	FieldParking          = "parking"
	FieldPrefArea         = "prefarea"
	FieldFurnishingStatus = "furnishingstatus"
)

// NumFeatures is the width of the model input
const NumFeatures = 12

// FeatureOrder is the column layout the model artifact was trained on.
// Artifacts declaring any other order are rejected at load time.
var FeatureOrder = [NumFeatures]string{
	FieldArea,
	FieldBedrooms,
	FieldBathrooms,
	FieldStories,
	FieldMainRoad,
	FieldGuestRoom,
	FieldBasement,
	FieldHotWaterHeating,
	FieldAirConditioning,
	FieldParking,
	FieldPrefArea,
	FieldFurnishingStatus,
}

var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidEnum   = errors.New("invalid enum value")
	ErrInvalidNumber = errors.New("invalid numeric value")
)

// YesNo is a binary house attribute
type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

// FurnishingStatus describes how furnished the property is
type FurnishingStatus string

const (
	Furnished     FurnishingStatus = "furnished"
	SemiFurnished FurnishingStatus = "semi-furnished"
	Unfurnished   FurnishingStatus = "unfurnished"
)

// HouseFeatures is a decoded prediction request
type HouseFeatures struct {
	Area             float64          `json:"area"`
	Bedrooms         int              `json:"bedrooms"`
	Bathrooms        int              `json:"bathrooms"`
	Stories          int              `json:"stories"`
	MainRoad         YesNo            `json:"mainroad"`
	GuestRoom        YesNo            `json:"guestroom"`
	Basement         YesNo            `json:"basement"`
	HotWaterHeating  YesNo            `json:"hotwaterheating"`
	AirConditioning  YesNo            `json:"airconditioning"`
	Parking          int              `json:"parking"`
	PrefArea         YesNo            `json:"prefarea"`
	FurnishingStatus FurnishingStatus `json:"furnishingstatus"`
}

// PredictionResponse is the body returned by POST /predict
type PredictionResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
}

// ParseHouseFeatures builds HouseFeatures from a decoded JSON object.
// Every field is required; null counts as missing. Numeric fields accept
// numbers or numeric strings. Enum values are carried verbatim and checked
// against the encoding table when the record is encoded.
func ParseHouseFeatures(raw map[string]json.RawMessage) (*HouseFeatures, error) {
	p := &fieldParser{raw: raw}

	features := &HouseFeatures{
		Area:             p.float(FieldArea),
		Bedrooms:         p.int(FieldBedrooms),
		Bathrooms:        p.int(FieldBathrooms),
		Stories:          p.int(FieldStories),
		MainRoad:         YesNo(p.enum(FieldMainRoad)),
		GuestRoom:        YesNo(p.enum(FieldGuestRoom)),
		Basement:         YesNo(p.enum(FieldBasement)),
		HotWaterHeating:  YesNo(p.enum(FieldHotWaterHeating)),
		AirConditioning:  YesNo(p.enum(FieldAirConditioning)),
		Parking:          p.int(FieldParking),
		PrefArea:         YesNo(p.enum(FieldPrefArea)),
		FurnishingStatus: FurnishingStatus(p.enum(FieldFurnishingStatus)),
	}
	if p.err != nil {
		return nil, p.err
	}
	return features, nil
}

// fieldParser keeps the first error so field extraction reads as one expression
type fieldParser struct {
	raw map[string]json.RawMessage
	err error
}

func (p *fieldParser) lookup(field string) (json.RawMessage, bool) {
	if p.err != nil {
		return nil, false
	}
	value, ok := p.raw[field]
	if !ok || utils.IsJSONNull(value) {
		p.err = fmt.Errorf("%w: %s", ErrMissingField, field)
		return nil, false
	}
	return value, true
}

func (p *fieldParser) float(field string) float64 {
	value, ok := p.lookup(field)
	if !ok {
		return 0
	}
	f, err := utils.FloatFromJSON(value)
	if err != nil {
		p.err = fmt.Errorf("%w: %s: %v", ErrInvalidNumber, field, err)
	}
	return f
}

func (p *fieldParser) int(field string) int {
	value, ok := p.lookup(field)
	if !ok {
		return 0
	}
	i, err := utils.IntFromJSON(value)
	if err != nil {
		p.err = fmt.Errorf("%w: %s: %v", ErrInvalidNumber, field, err)
	}
	return i
}

func (p *fieldParser) enum(field string) string {
	value, ok := p.lookup(field)
	if !ok {
		return ""
	}
	s, err := utils.StringFromJSON(value)
	if err != nil {
		p.err = fmt.Errorf("%w: %s: %v", ErrInvalidEnum, field, err)
	}
	return s
}
