package scoring

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/klauspost/compress/zstd"
)

// ScoreFeed publishes submitted scores to an SQS queue for downstream
// consumers (live scoreboards, analytics). Messages are json, zstd
// compressed and base64 encoded:
// 1. marshal the submission to json
// 2. compress with zstd
// 3. base64 encode and send to the queue
type ScoreFeed struct {
	client   *sqs.Client
	queueURL string
}

func NewScoreFeed(client *sqs.Client, queueURL string) *ScoreFeed {
	return &ScoreFeed{client: client, queueURL: queueURL}
}

type scoreFeedMsg struct {
	RecordID        string             `json:"record_id"`
	EventID         string             `json:"event_id"`
	EventTitle      string             `json:"event_title"`
	JudgeID         string             `json:"judge_id"`
	ParticipantID   string             `json:"participant_id"`
	ParticipantName string             `json:"participant_name"`
	Scores          map[string]float64 `json:"scores"`
	TotalScore      float64            `json:"total_score"`
	SubmittedAt     time.Time          `json:"submitted_at"`
}

func (f *ScoreFeed) Publish(ctx context.Context, rec *ScoreRecord) error {
	jsonMsg, err := json.Marshal(scoreFeedMsg{
		RecordID:        rec.ID,
		EventID:         rec.EventID,
		EventTitle:      rec.EventTitle,
		JudgeID:         rec.JudgeID,
		ParticipantID:   rec.ParticipantID,
		ParticipantName: rec.ParticipantName,
		Scores:          rec.Scores,
		TotalScore:      rec.TotalScore,
		SubmittedAt:     rec.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal score feed message: %w", err)
	}

	zstdEncoder, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer zstdEncoder.Close()

	compressed := zstdEncoder.EncodeAll(jsonMsg, make([]byte, 0, len(jsonMsg)))
	encoded := base64.StdEncoding.EncodeToString(compressed)

	_, err = f.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(f.queueURL),
		MessageBody: aws.String(encoded),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to score feed queue: %w", err)
	}
	return nil
}
