package component_test

import (
	"testing"

	"github.com/leighmacdonald/puppybowl-tui/internal/ui/component"
	"github.com/stretchr/testify/require"
)

func TestURLValidator(t *testing.T) {
	validator := component.URLValidator{}

	require.NoError(t, validator.Validate("https://fsa-puppy-bowl.herokuapp.com/api"))
	require.NoError(t, validator.Validate("http://localhost:8080"))
	require.Error(t, validator.Validate(""))
	require.Error(t, validator.Validate("ftp://example.com"))
	require.Error(t, validator.Validate("https://"))
	require.Error(t, validator.Validate("://nope"))
}

func TestCohortValidator(t *testing.T) {
	validator := component.CohortValidator{}

	require.NoError(t, validator.Validate("2307-FSA-ET-WEB-FT-SF"))
	require.Error(t, validator.Validate(""))
	require.Error(t, validator.Validate("-leading"))
	require.Error(t, validator.Validate("has/slash"))
	require.Error(t, validator.Validate("has space"))
}

func TestValidatingTextInputInitialValue(t *testing.T) {
	valid := component.NewValidatingTextInputModel("Cohort", "2307-FSA-ET-WEB-FT-SF", "", component.CohortValidator{})
	require.NoError(t, valid.Input.Err)

	invalid := component.NewValidatingTextInputModel("Cohort", "bad cohort", "", component.CohortValidator{})
	require.Error(t, invalid.Input.Err)
	require.Contains(t, invalid.View(), "Validation Error")
}
