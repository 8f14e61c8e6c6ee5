package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"Backend-Feedback-Journey/src/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// FieldError ความผิดพลาดของ field เดียว พร้อมข้อความที่แสดงข้างคำถาม
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate runs the question's validators in declaration order against the
// submitted raw value and stops at the first failure — its message is shown
// verbatim and later rules may assume everything before them passed. On
// success the raw input is coerced into the typed answer value to store.
// No I/O happens here.
func Validate(q *models.QuestionDefinition, raw string) (models.AnswerValue, *FieldError) {
	trimmed := strings.TrimSpace(raw)

	for _, rule := range q.Validators {
		if msg := check(q, rule, trimmed); msg != "" {
			return models.AnswerValue{}, &FieldError{Field: q.FieldName, Message: msg}
		}
	}

	return coerce(q, trimmed), nil
}

func check(q *models.QuestionDefinition, rule models.ValidatorSpec, raw string) string {
	switch rule.Kind {
	case models.RuleRequired:
		if raw == "" {
			return rule.Message
		}

	case models.RuleMaxLength:
		if len([]rune(raw)) > rule.Max {
			return rule.Message
		}

	case models.RuleEmail:
		if err := validate.Var(raw, "email"); err != nil {
			return rule.Message
		}

	case models.RuleChoice:
		if q.Display == models.Boolean {
			if raw != "yes" && raw != "no" {
				return rule.Message
			}
		} else if !q.HasChoice(raw) {
			return rule.Message
		}

	case models.RuleDate:
		if _, err := time.Parse(dateLayout, raw); err != nil {
			return rule.Message
		}

	case models.RuleIntRange:
		n, err := strconv.Atoi(raw)
		if err != nil || n < rule.Min || n > rule.Max {
			return rule.Message
		}
	}
	return ""
}

// coerce แปลง raw ที่ผ่าน validator ครบแล้วให้เป็นค่าตาม display type
func coerce(q *models.QuestionDefinition, raw string) models.AnswerValue {
	switch q.Display {
	case models.Boolean:
		return models.NewBool(raw == "yes")
	case models.SingleChoice:
		return models.NewChoice(raw)
	case models.Date:
		return models.NewDate(raw)
	default:
		return models.NewText(raw)
	}
}
