package image

import (
	"github.com/imagems/console/internal/domain/auth"
	"github.com/imagems/console/internal/platform/datauri"
)

// Ref is a lookup reference nested in an image record.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Image mirrors the backend's medical-image record. Base64 holds the data
// URI the upload was encoded to.
type Image struct {
	ID          int64  `json:"id"`
	Base64      string `json:"imagebase64"`
	DiseaseType Ref    `json:"diseaseTypes"`
	ImageType   Ref    `json:"imageTypes"`
	CreatedDate string `json:"createdDate"`
}

// Decode recovers the uploaded file from the stored data URI.
func (i Image) Decode() (datauri.File, error) {
	return datauri.Decode(i.Base64)
}

// Input is the image upload/edit form. The lookup selections arrive as
// id lists; only the first of each is sent.
type Input struct {
	DiseaseType []string `json:"diseaseTypes" form:"diseaseTypes"`
	ImageType   []string `json:"imageTypes" form:"imageTypes"`
	Base64      string   `json:"imagebase64" form:"imagebase64"`
}

func (in Input) Validate() error {
	errs := auth.ValidationErrors{}
	if len(in.DiseaseType) == 0 || in.DiseaseType[0] == "" {
		errs["diseaseTypes"] = "Disease type is required"
	}
	if len(in.ImageType) == 0 || in.ImageType[0] == "" {
		errs["imageTypes"] = "Image type is required"
	}
	if in.Base64 == "" {
		errs["imagebase64"] = "Image file is required"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type refPayload struct {
	ID string `json:"id"`
}

type patientPayload struct {
	ID int64 `json:"id"`
}

// payload is the wire shape for create and update. The owning patient rides
// in the body as a nested reference.
type payload struct {
	ID          int64          `json:"id,omitempty"`
	DiseaseType refPayload     `json:"diseaseTypes"`
	ImageType   refPayload     `json:"imageTypes"`
	Base64      string         `json:"imagebase64"`
	Patient     patientPayload `json:"patient"`
}

func (in Input) payload(id, patientID int64) payload {
	first := func(vs []string) string {
		if len(vs) > 0 {
			return vs[0]
		}
		return ""
	}
	return payload{
		ID:          id,
		DiseaseType: refPayload{ID: first(in.DiseaseType)},
		ImageType:   refPayload{ID: first(in.ImageType)},
		Base64:      in.Base64,
		Patient:     patientPayload{ID: patientID},
	}
}
