package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	commonv1 "logistics/gen/go/logistics/common/v1"
	pkgerrors "logistics/pkg/apperror"
	validationv1 "logistics/gen/go/logistics/validation/v1"
)

func pt(lat, lon float64) *commonv1.LatLon { return &commonv1.LatLon{Lat: lat, Lon: lon} }

func TestValidateStructure_Valid(t *testing.T) {
	stops := []*validationv1.StopInput{
		{StopId: "a", Point: pt(32, 34), Kind: commonv1.StopKind_STOP_KIND_START},
		{StopId: "b", Point: pt(32.1, 34.1), Kind: commonv1.StopKind_STOP_KIND_VIA},
		{StopId: "c", Point: pt(32.2, 34.2), Kind: commonv1.StopKind_STOP_KIND_END},
	}
	assert.Empty(t, ValidateStructure(stops))
}

func TestValidateStructure_Empty(t *testing.T) {
	errs := ValidateStructure(nil)
	assert.Len(t, errs, 1)
	assert.Equal(t, string(pkgerrors.CodeValidationTooFewPoints), errs[0].Code)
}

func TestValidateStructure_DuplicateStopID(t *testing.T) {
	stops := []*validationv1.StopInput{
		{StopId: "a", Point: pt(32, 34), Kind: commonv1.StopKind_STOP_KIND_START},
		{StopId: "a", Point: pt(32.1, 34.1), Kind: commonv1.StopKind_STOP_KIND_END},
	}
	errs := ValidateStructure(stops)
	assertHasCode(t, errs, pkgerrors.CodeValidationDuplicateID)
}

func TestValidateStructure_MissingStart(t *testing.T) {
	stops := []*validationv1.StopInput{
		{StopId: "a", Point: pt(32, 34), Kind: commonv1.StopKind_STOP_KIND_VIA},
		{StopId: "b", Point: pt(32.1, 34.1), Kind: commonv1.StopKind_STOP_KIND_END},
	}
	assertHasCode(t, ValidateStructure(stops), pkgerrors.CodeValidationMissingStart)
}

func TestValidateStructure_MultipleStart(t *testing.T) {
	stops := []*validationv1.StopInput{
		{StopId: "a", Point: pt(32, 34), Kind: commonv1.StopKind_STOP_KIND_START},
		{StopId: "b", Point: pt(32.1, 34.1), Kind: commonv1.StopKind_STOP_KIND_START},
		{StopId: "c", Point: pt(32.2, 34.2), Kind: commonv1.StopKind_STOP_KIND_END},
	}
	assertHasCode(t, ValidateStructure(stops), pkgerrors.CodeValidationMultipleStart)
}

func TestValidateStructure_MissingEnd(t *testing.T) {
	stops := []*validationv1.StopInput{
		{StopId: "a", Point: pt(32, 34), Kind: commonv1.StopKind_STOP_KIND_START},
		{StopId: "b", Point: pt(32.1, 34.1), Kind: commonv1.StopKind_STOP_KIND_VIA},
	}
	assertHasCode(t, ValidateStructure(stops), pkgerrors.CodeValidationMissingEnd)
}

func TestValidateStructure_InvalidCoords(t *testing.T) {
	stops := []*validationv1.StopInput{
		{StopId: "a", Point: pt(999, 34), Kind: commonv1.StopKind_STOP_KIND_START},
		{StopId: "b", Point: pt(32, 34), Kind: commonv1.StopKind_STOP_KIND_END},
	}
	assertHasCode(t, ValidateStructure(stops), pkgerrors.CodeValidationInvalidCoords)
}

func TestValidateStructure_NilPoint(t *testing.T) {
	stops := []*validationv1.StopInput{
		{StopId: "a", Point: nil, Kind: commonv1.StopKind_STOP_KIND_START},
		{StopId: "b", Point: pt(32, 34), Kind: commonv1.StopKind_STOP_KIND_END},
	}
	assertHasCode(t, ValidateStructure(stops), pkgerrors.CodeValidationInvalidCoords)
}

func assertHasCode(t *testing.T, errs []*commonv1.ValidationError, code pkgerrors.ErrorCode) {
	t.Helper()
	for _, e := range errs {
		if e.Code == string(code) {
			return
		}
	}
	t.Errorf("expected error code %s, got: %+v", code, errs)
}
