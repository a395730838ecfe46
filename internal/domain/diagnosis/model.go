package diagnosis

import "github.com/imagems/console/internal/domain/auth"

// Diagnosis mirrors the backend's diagnosis record for a patient.
type Diagnosis struct {
	ID          int64   `json:"id"`
	Diagnosis   string  `json:"diagnosis"`
	Note        string  `json:"note"`
	Cost        float64 `json:"cost"`
	CreatedDate string  `json:"createdDate"`
}

// Input is the diagnosis create/update form.
type Input struct {
	Diagnosis string  `json:"diagnosis" form:"diagnosis"`
	Note      string  `json:"note" form:"note"`
	Cost      float64 `json:"cost" form:"cost"`
}

func (in Input) Validate() error {
	errs := auth.ValidationErrors{}
	if in.Diagnosis == "" {
		errs["diagnosis"] = "Diagnosis is required"
	}
	if in.Cost < 0 {
		errs["cost"] = "Cost must not be negative"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type patientPayload struct {
	ID int64 `json:"id"`
}

// payload is the wire shape for create and update. The owning patient is a
// nested reference in the body.
type payload struct {
	ID        int64          `json:"id,omitempty"`
	Diagnosis string         `json:"diagnosis"`
	Note      string         `json:"note"`
	Cost      float64        `json:"cost"`
	Patient   patientPayload `json:"patient"`
}

func (in Input) payload(id, patientID int64) payload {
	return payload{
		ID:        id,
		Diagnosis: in.Diagnosis,
		Note:      in.Note,
		Cost:      in.Cost,
		Patient:   patientPayload{ID: patientID},
	}
}
