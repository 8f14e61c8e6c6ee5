package validation

import (
	"strings"
	"testing"

	"Backend-Feedback-Journey/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var emailQuestion = &models.QuestionDefinition{
	FieldName: "email",
	Slug:      "email",
	Display:   models.TextLine,
	Validators: []models.ValidatorSpec{
		{Kind: models.RuleRequired, Message: "Enter your email address"},
		{Kind: models.RuleEmail, Message: "Enter a valid email address"},
	},
}

func TestFirstFailureWins(t *testing.T) {
	t.Run("RequiredMessageOnlyForEmptyInput", func(t *testing.T) {
		// ค่าว่างพังทั้ง required และ email — ต้องเห็นข้อความ required เท่านั้น
		_, err := Validate(emailQuestion, "")
		require.NotNil(t, err)
		assert.Equal(t, "Enter your email address", err.Message)
		assert.Equal(t, "email", err.Field)
	})

	t.Run("LaterRuleRunsOncePriorRulesPass", func(t *testing.T) {
		_, err := Validate(emailQuestion, "not-an-email")
		require.NotNil(t, err)
		assert.Equal(t, "Enter a valid email address", err.Message)
	})

	t.Run("ValidInputCoerces", func(t *testing.T) {
		v, err := Validate(emailQuestion, "somchai@example.com")
		require.Nil(t, err)
		assert.Equal(t, models.TextValue, v.Kind)
		assert.Equal(t, "somchai@example.com", v.Text)
	})
}

func TestRules(t *testing.T) {
	t.Run("MaxLength", func(t *testing.T) {
		q := &models.QuestionDefinition{
			FieldName: "comments",
			Display:   models.TextArea,
			Validators: []models.ValidatorSpec{
				{Kind: models.RuleRequired, Message: "Enter your feedback"},
				{Kind: models.RuleMaxLength, Max: 10, Message: "Too long"},
			},
		}

		_, err := Validate(q, strings.Repeat("x", 11))
		require.NotNil(t, err)
		assert.Equal(t, "Too long", err.Message)

		v, err := Validate(q, strings.Repeat("x", 10))
		require.Nil(t, err)
		assert.Equal(t, strings.Repeat("x", 10), v.Text)
	})

	t.Run("ChoiceMembership", func(t *testing.T) {
		q := &models.QuestionDefinition{
			FieldName: "rating",
			Display:   models.SingleChoice,
			Choices:   []models.Choice{{Value: "1"}, {Value: "2"}},
			Validators: []models.ValidatorSpec{
				{Kind: models.RuleRequired, Message: "Select a rating"},
				{Kind: models.RuleChoice, Message: "Select from the list"},
			},
		}

		_, err := Validate(q, "9")
		require.NotNil(t, err)
		assert.Equal(t, "Select from the list", err.Message)

		v, err := Validate(q, "2")
		require.Nil(t, err)
		assert.Equal(t, models.ChoiceValue, v.Kind)
		assert.Equal(t, "2", v.Text)
	})

	t.Run("BooleanCoercion", func(t *testing.T) {
		q := &models.QuestionDefinition{
			FieldName: "consent",
			Display:   models.Boolean,
			Validators: []models.ValidatorSpec{
				{Kind: models.RuleRequired, Message: "Select yes or no"},
				{Kind: models.RuleChoice, Message: "Select yes or no"},
			},
		}

		_, err := Validate(q, "maybe")
		require.NotNil(t, err)

		v, err := Validate(q, "yes")
		require.Nil(t, err)
		assert.True(t, v.IsTrue())

		v, err = Validate(q, "no")
		require.Nil(t, err)
		assert.Equal(t, models.BoolValue, v.Kind)
		assert.False(t, v.Bool)
	})

	t.Run("Date", func(t *testing.T) {
		q := &models.QuestionDefinition{
			FieldName: "visited",
			Display:   models.Date,
			Validators: []models.ValidatorSpec{
				{Kind: models.RuleRequired, Message: "Enter the date"},
				{Kind: models.RuleDate, Message: "Enter a real date"},
			},
		}

		_, err := Validate(q, "2026-13-40")
		require.NotNil(t, err)
		assert.Equal(t, "Enter a real date", err.Message)

		v, err := Validate(q, "2026-08-31")
		require.Nil(t, err)
		assert.Equal(t, models.DateValue, v.Kind)
		assert.Equal(t, "2026-08-31", v.Date)
	})

	t.Run("IntRange", func(t *testing.T) {
		q := &models.QuestionDefinition{
			FieldName: "score",
			Display:   models.TextLine,
			Validators: []models.ValidatorSpec{
				{Kind: models.RuleIntRange, Min: 1, Max: 5, Message: "Enter 1 to 5"},
			},
		}

		_, err := Validate(q, "6")
		require.NotNil(t, err)
		_, err = Validate(q, "abc")
		require.NotNil(t, err)

		_, err = Validate(q, "3")
		assert.Nil(t, err)
	})

	t.Run("InputIsTrimmed", func(t *testing.T) {
		v, err := Validate(emailQuestion, "  somchai@example.com  ")
		require.Nil(t, err)
		assert.Equal(t, "somchai@example.com", v.Text)
	})
}
