package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p MovePayload) Validate() error {
	if len(p.UnitIDs) == 0 {
		return errors.New("unitIds is required")
	}
	return nil
}

func (p TargetPayload) Validate() error {
	if len(p.UnitIDs) == 0 {
		return errors.New("unitIds is required")
	}
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	return nil
}

func (p StancePayload) Validate() error {
	if len(p.UnitIDs) == 0 {
		return errors.New("unitIds is required")
	}
	if p.Stance == "" {
		return errors.New("stance is required")
	}
	return nil
}

func (p BuildPayload) Validate() error {
	if len(p.UnitIDs) == 0 {
		return errors.New("unitIds is required")
	}
	if p.Type == "" && p.TargetID == "" {
		return errors.New("building type or targetId is required")
	}
	return nil
}

func (p TrainPayload) Validate() error {
	if p.BuildingID == "" {
		return errors.New("buildingId is required")
	}
	if p.Type == "" {
		return errors.New("unit type is required")
	}
	return nil
}

func (p RallyPayload) Validate() error {
	if p.BuildingID == "" {
		return errors.New("buildingId is required")
	}
	return nil
}

func (p HostPayload) Validate() error {
	if p.HostID == "" {
		return errors.New("hostId is required")
	}
	return nil
}

func (p UnitsPayload) Validate() error {
	if len(p.UnitIDs) == 0 {
		return errors.New("unitIds is required")
	}
	return nil
}

func (p CheatPayload) Validate() error {
	if p.Code == "" {
		return errors.New("code is required")
	}
	return nil
}
