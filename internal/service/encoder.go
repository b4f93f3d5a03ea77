package service

import (
	"fmt"

	"houseprice/internal/model"
)

// FeatureVector is the model input, laid out as model.FeatureOrder
type FeatureVector [model.NumFeatures]float64

// Slice returns the vector as a row for Regressor.Predict
func (v FeatureVector) Slice() []float64 {
	out := make([]float64, len(v))
	copy(out, v[:])
	return out
}

// Encode maps a decoded request onto the model's fixed column order.
// yes/no attributes encode as 1/0; furnishing status as
// furnished=0, semi-furnished=1, unfurnished=2. Values outside the
// table fail with model.ErrInvalidEnum.
func Encode(f model.HouseFeatures) (FeatureVector, error) {
	var v FeatureVector
	var err error

	v[0] = f.Area
	v[1] = float64(f.Bedrooms)
	v[2] = float64(f.Bathrooms)
	v[3] = float64(f.Stories)
	if v[4], err = encodeYesNo(model.FieldMainRoad, f.MainRoad); err != nil {
		return FeatureVector{}, err
	}
	if v[5], err = encodeYesNo(model.FieldGuestRoom, f.GuestRoom); err != nil {
		return FeatureVector{}, err
	}
	if v[6], err = encodeYesNo(model.FieldBasement, f.Basement); err != nil {
		return FeatureVector{}, err
	}
	if v[7], err = encodeYesNo(model.FieldHotWaterHeating, f.HotWaterHeating); err != nil {
		return FeatureVector{}, err
	}
	if v[8], err = encodeYesNo(model.FieldAirConditioning, f.AirConditioning); err != nil {
		return FeatureVector{}, err
	}
	v[9] = float64(f.Parking)
	if v[10], err = encodeYesNo(model.FieldPrefArea, f.PrefArea); err != nil {
		return FeatureVector{}, err
	}
	if v[11], err = encodeFurnishing(f.FurnishingStatus); err != nil {
		return FeatureVector{}, err
	}
	return v, nil
}

func encodeYesNo(field string, value model.YesNo) (float64, error) {
	switch value {
	case model.Yes:
		return 1, nil
	case model.No:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %s must be one of [yes no], got %q", model.ErrInvalidEnum, field, string(value))
}

func encodeFurnishing(value model.FurnishingStatus) (float64, error) {
	switch value {
	case model.Furnished:
		return 0, nil
	case model.SemiFurnished:
		return 1, nil
	case model.Unfurnished:
		return 2, nil
	}
	return 0, fmt.Errorf("%w: %s must be one of [furnished semi-furnished unfurnished], got %q",
		model.ErrInvalidEnum, model.FieldFurnishingStatus, string(value))
}
