package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type sampleRequest struct {
	Status      string `validate:"required,oneof=ok warn block"`
	MoodScore   int    `validate:"min=1,max=5"`
	RestingHR   int    `validate:"gt=0"`
	Description string `validate:"max=3"`
}

func TestFromBindErrorValidation(t *testing.T) {
	err := validator.New().Struct(sampleRequest{MoodScore: 9, Description: "long"})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	p := FromBindError("req-1", err)
	if p.Type != TypeValidation {
		t.Fatalf("Expected validation type, got %q", p.Type)
	}

	byField := map[string]FieldError{}
	for _, fe := range p.Errors {
		byField[fe.Field] = fe
	}
	if fe := byField["status"]; fe.Code != "required" || fe.Message != "is required" {
		t.Errorf("Unexpected status error %+v", fe)
	}
	if fe := byField["mood_score"]; fe.Message != "must be at most 5" {
		t.Errorf("Unexpected mood_score error %+v", fe)
	}
	if fe := byField["resting_hr"]; fe.Message != "must be greater than 0" {
		t.Errorf("Unexpected resting_hr error %+v", fe)
	}
	if fe := byField["description"]; fe.Message != "must be at most 3 characters" {
		t.Errorf("Unexpected description error %+v", fe)
	}
}

func TestFromBindErrorTypeMismatch(t *testing.T) {
	var dst struct {
		Mood int `json:"mood"`
	}
	err := json.Unmarshal([]byte(`{"mood":"high"}`), &dst)

	p := FromBindError("req-1", err)
	if p.Type != TypeValidation || len(p.Errors) != 1 || p.Errors[0].Field != "mood" {
		t.Errorf("Unexpected problem %+v", p)
	}
}

func TestFromBindErrorOther(t *testing.T) {
	p := FromBindError("req-1", errors.New("EOF"))
	if p.Status != http.StatusBadRequest || p.Type != TypeBadRequest {
		t.Errorf("Unexpected problem %+v", p)
	}
}

func TestUseJSONFieldNames(t *testing.T) {
	UseJSONFieldNames()

	type payload struct {
		HRVRMSSD *float64 `json:"hrv_rmssd,omitempty" binding:"omitnil,gt=0"`
	}
	neg := -1.0
	err := binding.Validator.ValidateStruct(&payload{HRVRMSSD: &neg})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	p := FromBindError("req-1", err)
	if len(p.Errors) != 1 || p.Errors[0].Field != "hrv_rmssd" {
		t.Errorf("Expected hrv_rmssd field error, got %+v", p.Errors)
	}
}
