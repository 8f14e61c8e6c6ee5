package journeys

import "Backend-Feedback-Journey/src/models"

// Field names — ใช้ร่วมกันทั้ง journey, validation และ mapping ลง record
const (
	FieldServiceUsed    = "serviceUsed"
	FieldRating         = "rating"
	FieldComments       = "comments"
	FieldContactConsent = "contactConsent"
	FieldFullName       = "fullName"
	FieldEmail          = "email"
)

// EditableFields is the allow-list for the single-field edit flow. It is
// deliberately narrower than the question set: a crafted POST naming any other
// field is refused before a validator ever runs.
var EditableFields = map[string]bool{
	FieldRating:   true,
	FieldComments: true,
}

var (
	questionServiceUsed = &models.QuestionDefinition{
		FieldName: FieldServiceUsed,
		Slug:      "service-used",
		Title:     "Which service did you use?",
		Display:   models.SingleChoice,
		Choices: []models.Choice{
			{Value: "online-service", Label: "The online service"},
			{Value: "phone", Label: "By phone"},
			{Value: "in-person", Label: "In person"},
		},
		Validators: []models.ValidatorSpec{
			{Kind: models.RuleRequired, Message: "Select the service you used"},
			{Kind: models.RuleChoice, Message: "Select a service from the list"},
		},
	}

	questionRating = &models.QuestionDefinition{
		FieldName: FieldRating,
		Slug:      "rating",
		Title:     "Overall, how did you feel about the service?",
		Display:   models.SingleChoice,
		Choices: []models.Choice{
			{Value: "1", Label: "Very dissatisfied"},
			{Value: "2", Label: "Dissatisfied"},
			{Value: "3", Label: "Neither satisfied nor dissatisfied"},
			{Value: "4", Label: "Satisfied"},
			{Value: "5", Label: "Very satisfied"},
		},
		Validators: []models.ValidatorSpec{
			{Kind: models.RuleRequired, Message: "Select how you felt about the service"},
			{Kind: models.RuleChoice, Message: "Select a rating from the list"},
		},
	}

	questionComments = &models.QuestionDefinition{
		FieldName: FieldComments,
		Slug:      "comments",
		Title:     "How could we improve this service?",
		Prompt:    "Do not include any personal or financial information.",
		Display:   models.TextArea,
		Validators: []models.ValidatorSpec{
			{Kind: models.RuleRequired, Message: "Enter your feedback"},
			{Kind: models.RuleMaxLength, Max: 1200, Message: "Feedback must be 1200 characters or fewer"},
		},
	}

	questionContactConsent = &models.QuestionDefinition{
		FieldName: FieldContactConsent,
		Slug:      "contact-consent",
		Title:     "Can we contact you about your feedback?",
		Display:   models.Boolean,
		Validators: []models.ValidatorSpec{
			{Kind: models.RuleRequired, Message: "Select yes if we can contact you"},
		},
	}

	questionFullName = &models.QuestionDefinition{
		FieldName: FieldFullName,
		Slug:      "full-name",
		Title:     "What is your name?",
		Display:   models.TextLine,
		Validators: []models.ValidatorSpec{
			{Kind: models.RuleRequired, Message: "Enter your full name"},
			{Kind: models.RuleMaxLength, Max: 100, Message: "Full name must be 100 characters or fewer"},
		},
	}

	questionEmail = &models.QuestionDefinition{
		FieldName: FieldEmail,
		Slug:      "email",
		Title:     "What is your email address?",
		Prompt:    "We will only use this to ask about your feedback.",
		Display:   models.TextLine,
		Validators: []models.ValidatorSpec{
			{Kind: models.RuleRequired, Message: "Enter your email address"},
			{Kind: models.RuleEmail, Message: "Enter an email address in the correct format, like name@example.com"},
		},
	}
)

// FeedbackJourney สร้าง journey "give feedback" ขา create ขึ้นใหม่
//
// section สุดท้ายเปิดเฉพาะเมื่อผู้ใช้ยินยอมให้ติดต่อกลับ — ตอนยังไม่ตอบ
// contact-consent ระบบถือว่า section ปิดอยู่ เดินหน้าแบบ linear ได้ตามปกติ
func FeedbackJourney() *Journey {
	return NewJourney("giveFeedback", "Give feedback",
		NewSection("Your experience", "experience", "",
			questionServiceUsed,
			questionRating,
			questionComments,
		),
		NewSection("Contact", "contact", "",
			questionContactConsent,
		),
		NewSection("Contact details", "contact-details", "contactConsent == true",
			questionFullName,
			questionEmail,
		),
	)
}
