package controllers

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"Backend-Feedback-Journey/src/models"
	"Backend-Feedback-Journey/src/services/journeys"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartJourney(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doGet(t, app, "/give-feedback")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/give-feedback/experience/service-used", resp.Header.Get("Location"))
}

func TestGetQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("RendersQuestionWithStoredValue", func(t *testing.T) {
		app, aStore, _ := newTestApp(t)
		require.NoError(t, aStore.Set(ctx, testSession, "giveFeedback", models.Answers{
			journeys.FieldRating: models.NewChoice("3"),
		}))

		resp := doGet(t, app, "/give-feedback/experience/rating")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var page QuestionPage
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
		assert.Equal(t, journeys.FieldRating, page.Question.FieldName)
		assert.Equal(t, "3", page.Value)
		assert.Equal(t, "/give-feedback/experience/rating", page.Action)
		assert.Equal(t, "/give-feedback/experience/service-used", page.BackLink)
	})

	t.Run("UnknownQuestionIs404", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		resp := doGet(t, app, "/give-feedback/experience/nope")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestPostQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidAnswerStoresAndRedirectsToNext", func(t *testing.T) {
		app, aStore, _ := newTestApp(t)

		resp := doPost(t, app, "/give-feedback/experience/service-used",
			url.Values{"value": {"phone"}})
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/give-feedback/experience/rating", resp.Header.Get("Location"))

		a, ok, _ := aStore.Get(ctx, testSession, "giveFeedback")
		require.True(t, ok)
		assert.Equal(t, "phone", a.Text(journeys.FieldServiceUsed))
	})

	t.Run("ValidationFailureRendersInlineNoFlash", func(t *testing.T) {
		app, aStore, _ := newTestApp(t)

		resp := doPost(t, app, "/give-feedback/experience/rating",
			url.Values{"value": {""}})
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var page QuestionPage
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
		require.NotNil(t, page.Error)
		assert.Equal(t, "Select how you felt about the service", page.Error.Message)

		// validation ไม่หลุดไป flash channel และไม่เขียนอะไรลง session
		_, hasFlash, _ := aStore.Flash(ctx, testSession)
		assert.False(t, hasFlash)
		a, _, _ := aStore.Get(ctx, testSession, "giveFeedback")
		assert.False(t, a.Has(journeys.FieldRating))
	})

	t.Run("ConsentNoSkipsDetailSectionToCheckAnswers", func(t *testing.T) {
		app, aStore, _ := newTestApp(t)
		require.NoError(t, aStore.Set(ctx, testSession, "giveFeedback", models.Answers{
			journeys.FieldServiceUsed: models.NewChoice("phone"),
			journeys.FieldRating:      models.NewChoice("4"),
			journeys.FieldComments:    models.NewText("ok"),
		}))

		resp := doPost(t, app, "/give-feedback/contact/contact-consent",
			url.Values{"value": {"no"}})
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/give-feedback/check-your-answers", resp.Header.Get("Location"))
	})

	t.Run("ConsentYesOpensDetailSection", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		resp := doPost(t, app, "/give-feedback/contact/contact-consent",
			url.Values{"value": {"yes"}})
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/give-feedback/contact-details/full-name", resp.Header.Get("Location"))
	})
}

func TestGetCheckAnswers(t *testing.T) {
	ctx := context.Background()
	app, aStore, _ := newTestApp(t)

	require.NoError(t, aStore.Set(ctx, testSession, "giveFeedback", models.Answers{
		journeys.FieldServiceUsed: models.NewChoice("phone"),
	}))

	resp := doGet(t, app, "/give-feedback/check-your-answers")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Rows     []AnswerRow `json:"rows"`
		Complete bool        `json:"complete"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.False(t, body.Complete)
	require.Len(t, body.Rows, 4)
	assert.True(t, body.Rows[0].Answered)
	assert.Equal(t, "phone", body.Rows[0].Value)
	assert.False(t, body.Rows[1].Answered)
	assert.Equal(t, "/give-feedback/experience/rating", body.Rows[1].ChangeLink)
}
