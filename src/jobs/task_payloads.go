package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeFeedbackReceived = "feedback:received"

type FeedbackPayload struct {
	FeedbackID string `json:"feedback_id"`
	Reference  string `json:"reference"`
}

func NewFeedbackReceivedTask(feedbackID, reference string) (*asynq.Task, error) {
	payload, err := json.Marshal(FeedbackPayload{FeedbackID: feedbackID, Reference: reference})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeFeedbackReceived, payload), nil
}
