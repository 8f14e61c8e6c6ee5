package journeys

import (
	"testing"

	"Backend-Feedback-Journey/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answered(fields ...string) models.Answers {
	a := models.Answers{}
	for _, f := range fields {
		a[f] = models.NewText("x")
	}
	return a
}

// journey เส้นตรง 2 section 5 คำถาม ไม่มีเงื่อนไข — ใช้ทดสอบกฎ navigation
func linearJourney() *Journey {
	q := func(name, slug string) *models.QuestionDefinition {
		return &models.QuestionDefinition{FieldName: name, Slug: slug, Display: models.TextLine}
	}
	return NewJourney("linear", "Linear",
		NewSection("One", "one", "", q("a", "a"), q("b", "b"), q("c", "c")),
		NewSection("Two", "two", "", q("d", "d"), q("e", "e")),
	)
}

func TestResolve(t *testing.T) {
	j := FeedbackJourney()

	t.Run("KnownSegmentsResolveToOneQuestion", func(t *testing.T) {
		pos, err := j.Resolve("experience", "rating")
		require.NoError(t, err)
		assert.Equal(t, FieldRating, pos.Question.FieldName)
		assert.Equal(t, "experience", pos.Section.Slug)
	})

	t.Run("UnknownSegmentsFail", func(t *testing.T) {
		_, err := j.Resolve("experience", "nope")
		assert.ErrorIs(t, err, ErrQuestionNotFound)

		_, err = j.Resolve("nope", "rating")
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})

	t.Run("ResolveIsIdempotent", func(t *testing.T) {
		first, err := j.Resolve("contact-details", "email")
		require.NoError(t, err)
		second, err := j.Resolve("contact-details", "email")
		require.NoError(t, err)
		// ได้ definition เดิมทุกครั้ง ไม่มี mutation แอบแฝงจากการ render
		assert.Same(t, first.Question, second.Question)
		assert.Equal(t, *first.Question, *second.Question)
	})
}

func TestLinearTraversalVisitsEveryQuestionOnce(t *testing.T) {
	j := linearJourney()
	a := models.Answers{}

	pos := j.ActiveQuestions(a)[0]
	visited := []string{pos.Question.FieldName}

	for range 10 {
		a[pos.Question.FieldName] = models.NewText("x")
		next := j.NextTarget(pos, a)
		if next == j.CheckAnswersPath() {
			break
		}
		found := false
		for _, p := range j.ActiveQuestions(a) {
			if j.QuestionPath(p) == next {
				pos = p
				found = true
				break
			}
		}
		require.True(t, found, "next target must be an active question: %s", next)
		visited = append(visited, pos.Question.FieldName)
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, visited)
	assert.True(t, j.IsComplete(a))
}

func TestConditionalSection(t *testing.T) {
	j := FeedbackJourney()

	t.Run("InactiveUntilControllingAnswerExists", func(t *testing.T) {
		// ยังไม่ตอบ contact-consent — predicate ต้องเป็น false ไม่ใช่ error
		active := j.ActiveQuestions(models.Answers{})
		for _, p := range active {
			assert.NotEqual(t, "contact-details", p.Section.Slug)
		}
		assert.Len(t, active, 4)
	})

	t.Run("ConsentOpensTheSection", func(t *testing.T) {
		a := models.Answers{FieldContactConsent: models.NewBool(true)}
		active := j.ActiveQuestions(a)
		assert.Len(t, active, 6)
		assert.Equal(t, FieldFullName, active[4].Question.FieldName)
		assert.Equal(t, FieldEmail, active[5].Question.FieldName)
	})

	t.Run("NextAfterConsentDependsOnTheAnswer", func(t *testing.T) {
		pos, err := j.Resolve("contact", "contact-consent")
		require.NoError(t, err)

		yes := models.Answers{FieldContactConsent: models.NewBool(true)}
		assert.Equal(t, "/give-feedback/contact-details/full-name", j.NextTarget(pos, yes))

		no := models.Answers{FieldContactConsent: models.NewBool(false)}
		assert.Equal(t, j.CheckAnswersPath(), j.NextTarget(pos, no))
	})
}

func TestIsComplete(t *testing.T) {
	j := FeedbackJourney()

	t.Run("EmptyAnswersIncomplete", func(t *testing.T) {
		assert.False(t, j.IsComplete(models.Answers{}))
	})

	t.Run("AllActiveAnsweredComplete", func(t *testing.T) {
		a := answered(FieldServiceUsed, FieldRating, FieldComments)
		a[FieldContactConsent] = models.NewBool(false)
		assert.True(t, j.IsComplete(a))
	})

	t.Run("ConsentReopensRequirements", func(t *testing.T) {
		a := answered(FieldServiceUsed, FieldRating, FieldComments)
		a[FieldContactConsent] = models.NewBool(true)
		// section ที่เพิ่งเปิดทำให้ไม่ครบทันที ไม่มี progress cache ค้าง
		assert.False(t, j.IsComplete(a))

		a[FieldFullName] = models.NewText("Somchai")
		a[FieldEmail] = models.NewText("somchai@example.com")
		assert.True(t, j.IsComplete(a))

		// เปลี่ยนใจไม่ให้ติดต่อ — คำถามของ section นั้นหลุดจาก requirement ทันที
		a[FieldContactConsent] = models.NewBool(false)
		assert.True(t, j.IsComplete(a))
	})
}

func TestPreviousTarget(t *testing.T) {
	j := FeedbackJourney()

	t.Run("FirstQuestionBacksToBase", func(t *testing.T) {
		pos, _ := j.Resolve("experience", "service-used")
		assert.Equal(t, "/give-feedback", j.PreviousTarget(pos, models.Answers{}))
	})

	t.Run("SkipsInactiveSections", func(t *testing.T) {
		pos, _ := j.Resolve("contact", "contact-consent")
		assert.Equal(t, "/give-feedback/experience/comments", j.PreviousTarget(pos, models.Answers{}))
	})
}

func TestEditMode(t *testing.T) {
	j := FeedbackJourney()
	edit := j.ForEdit("abc123")

	t.Run("SharesDefinitionsButNotMode", func(t *testing.T) {
		assert.Equal(t, CreateMode, j.Mode.Kind)
		assert.Equal(t, EditMode, edit.Mode.Kind)
		p1, _ := j.Resolve("experience", "rating")
		p2, _ := edit.Resolve("experience", "rating")
		assert.Same(t, p1.Question, p2.Question)
	})

	t.Run("PathsComputedFromMode", func(t *testing.T) {
		pos, _ := edit.Resolve("experience", "rating")
		assert.Equal(t, "/manage/feedback/abc123/edit/experience/rating", edit.QuestionPath(pos))
		// edit mode ไม่เดิน journey ต่อ — กลับหน้า detail เสมอ
		assert.Equal(t, "/manage/feedback/abc123", edit.NextTarget(pos, models.Answers{}))
		assert.Equal(t, "/manage/feedback/abc123", edit.PreviousTarget(pos, models.Answers{}))
	})
}
