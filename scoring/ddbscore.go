package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type scoreRow struct {
	ID              string             `dynamodbav:"id"`
	EventID         string             `dynamodbav:"event_id"`
	EventTitle      string             `dynamodbav:"event_title"`
	JudgeID         string             `dynamodbav:"judge_id"`
	JudgeEmail      string             `dynamodbav:"judge_email"`
	ParticipantID   string             `dynamodbav:"participant_id"`
	ParticipantName string             `dynamodbav:"participant_name"`
	Scores          map[string]float64 `dynamodbav:"scores"`
	TotalScore      float64            `dynamodbav:"total_score"`
	SubmittedAt     time.Time          `dynamodbav:"submitted_at"`
	UpdatedAt       time.Time          `dynamodbav:"updated_at"`
}

// DynamoDbScoreTable stores one row per (event, judge, participant)
// submission, keyed by a synthetic id. Lookups by the natural key run as
// filtered scans; score tables stay small enough (judges x participants)
// for that to be fine.
type DynamoDbScoreTable struct {
	ddbClient *dynamodb.Client
	tableName string
}

func NewDynamoDbScoreTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbScoreTable {
	return &DynamoDbScoreTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
}

func (ddb *DynamoDbScoreTable) GetByKey(ctx context.Context, eventID, judgeID, participantID string) (*ScoreRecord, error) {
	filter := expression.And(
		expression.Name("event_id").Equal(expression.Value(eventID)),
		expression.Name("judge_id").Equal(expression.Value(judgeID)),
		expression.Name("participant_id").Equal(expression.Value(participantID)),
	)
	rows, err := ddb.scan(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	rec := rowToRecord(&rows[0])
	return rec, nil
}

func (ddb *DynamoDbScoreTable) Save(ctx context.Context, rec *ScoreRecord) error {
	item, err := attributevalue.MarshalMap(recordToRow(rec))
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}
	_, err = ddb.ddbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(ddb.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put score record: %w", err)
	}
	return nil
}

func (ddb *DynamoDbScoreTable) ListByEvent(ctx context.Context, eventID string) ([]ScoreRecord, error) {
	filter := expression.Name("event_id").Equal(expression.Value(eventID))
	rows, err := ddb.scan(ctx, filter)
	if err != nil {
		return nil, err
	}
	return rowsToRecords(rows), nil
}

func (ddb *DynamoDbScoreTable) ListByEventJudge(ctx context.Context, eventID, judgeID string) ([]ScoreRecord, error) {
	filter := expression.And(
		expression.Name("event_id").Equal(expression.Value(eventID)),
		expression.Name("judge_id").Equal(expression.Value(judgeID)),
	)
	rows, err := ddb.scan(ctx, filter)
	if err != nil {
		return nil, err
	}
	return rowsToRecords(rows), nil
}

func (ddb *DynamoDbScoreTable) DeleteByEvent(ctx context.Context, eventID string) error {
	filter := expression.Name("event_id").Equal(expression.Value(eventID))
	rows, err := ddb.scan(ctx, filter)
	if err != nil {
		return err
	}
	for i := range rows {
		key, err := attributevalue.MarshalMap(map[string]string{"id": rows[i].ID})
		if err != nil {
			return fmt.Errorf("failed to marshal score key: %w", err)
		}
		_, err = ddb.ddbClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(ddb.tableName),
			Key:       key,
		})
		if err != nil {
			return fmt.Errorf("failed to delete score record %s: %w", rows[i].ID, err)
		}
	}
	return nil
}

func (ddb *DynamoDbScoreTable) scan(ctx context.Context, filter expression.ConditionBuilder) ([]scoreRow, error) {
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scan expression: %w", err)
	}

	var rows []scoreRow
	var startKey map[string]types.AttributeValue
	for {
		out, err := ddb.ddbClient.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(ddb.tableName),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan score table: %w", err)
		}
		var page []scoreRow
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score rows: %w", err)
		}
		rows = append(rows, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return rows, nil
}

func rowToRecord(row *scoreRow) *ScoreRecord {
	return &ScoreRecord{
		ID:              row.ID,
		EventID:         row.EventID,
		EventTitle:      row.EventTitle,
		JudgeID:         row.JudgeID,
		JudgeEmail:      row.JudgeEmail,
		ParticipantID:   row.ParticipantID,
		ParticipantName: row.ParticipantName,
		Scores:          row.Scores,
		TotalScore:      row.TotalScore,
		SubmittedAt:     row.SubmittedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func recordToRow(rec *ScoreRecord) *scoreRow {
	return &scoreRow{
		ID:              rec.ID,
		EventID:         rec.EventID,
		EventTitle:      rec.EventTitle,
		JudgeID:         rec.JudgeID,
		JudgeEmail:      rec.JudgeEmail,
		ParticipantID:   rec.ParticipantID,
		ParticipantName: rec.ParticipantName,
		Scores:          rec.Scores,
		TotalScore:      rec.TotalScore,
		SubmittedAt:     rec.SubmittedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

func rowsToRecords(rows []scoreRow) []ScoreRecord {
	records := make([]ScoreRecord, len(rows))
	for i := range rows {
		records[i] = *rowToRecord(&rows[i])
	}
	return records
}
