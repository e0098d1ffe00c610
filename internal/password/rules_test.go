package password

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecowaste/site/internal/domain"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		pw   string
		want []bool
	}{
		{"empty", "", []bool{false, false, false, false, false}},
		{"lowercase only", "abcdefgh", []bool{true, false, true, false, false}},
		{"missing special", "Abcdefg1", []bool{true, true, true, true, false}},
		{"short but varied", "Ab1!", []bool{false, true, true, true, true}},
		{"strong", "Recycle#2024", []bool{true, true, true, true, true}},
		{"unlisted symbol is not special", "Abcdefg1?", []bool{true, true, true, true, false}},
		{"seven characters with an accent", "Abcdé1!", []bool{false, true, true, true, true}},
		{"eight characters with an accent", "Abcdéf1!", []bool{true, true, true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqs := Evaluate(tt.pw)
			require.Len(t, reqs, 5)
			for i, r := range reqs {
				assert.Equal(t, tt.want[i], r.Met, "rule %q", r.Text)
			}
		})
	}
}

func TestLength(t *testing.T) {
	assert.Equal(t, 0, Length(""))
	assert.Equal(t, 7, Length("Abcdé1!"))
	assert.Equal(t, 7, Length("Äbcdé1!"))
	assert.Equal(t, 2, Length("😀"), "astral runes take two code units")
	assert.False(t, AllMet("Abcdé1!"))
}

func TestEvaluate_Order(t *testing.T) {
	reqs := Evaluate("x")
	texts := make([]string, len(reqs))
	for i, r := range reqs {
		texts[i] = r.Text
	}
	assert.Equal(t, []string{
		"At least 8 characters",
		"One uppercase letter",
		"One lowercase letter",
		"One number",
		"One special character",
	}, texts)
}

func TestAllMetAndUnmet(t *testing.T) {
	assert.True(t, AllMet("Green&Clean9"))
	assert.Empty(t, Unmet("Green&Clean9"))

	assert.False(t, AllMet("green&clean9"))
	assert.Equal(t, []string{"One uppercase letter"}, Unmet("green&clean9"))
}

func TestCheckChange(t *testing.T) {
	t.Run("mismatch reported before strength", func(t *testing.T) {
		err := CheckChange("weak", "other")
		assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
		assert.False(t, errors.Is(err, domain.ErrWeakPassword))
	})

	t.Run("weak but matching", func(t *testing.T) {
		err := CheckChange("weak", "weak")
		assert.ErrorIs(t, err, domain.ErrWeakPassword)
		assert.Contains(t, err.Error(), "4 of 5 rules unmet")
	})

	t.Run("strong and matching", func(t *testing.T) {
		assert.NoError(t, CheckChange("Compost!42x", "Compost!42x"))
		assert.True(t, CanSubmit("Compost!42x", "Compost!42x"))
	})
}

func TestRegisterValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterValidation(v))

	type form struct {
		Password string `validate:"required,password_strength"`
	}

	assert.NoError(t, v.Struct(form{Password: "Sort&Reuse1"}))

	err := v.Struct(form{Password: "sortreuse"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, Tag, verrs[0].Tag())
}
