package criteria

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

type criterionRow struct {
	ID               string `dynamo:"id"`
	Name             string `dynamo:"name"`
	Description      string `dynamo:"description"`
	PercentageWeight int    `dynamo:"percentage_weight"`
	MaxScore         int    `dynamo:"max_score"`
	IsSpecialAward   bool   `dynamo:"is_special_award"`
	SpecialAwardID   string `dynamo:"special_award_id,omitempty"`
	AwardName        string `dynamo:"award_name,omitempty"`
}

type criterionSetRow struct {
	EventID         string         `dynamo:"event_id,hash"` // Primary key
	EventTitle      string         `dynamo:"event_title"`
	Criteria        []criterionRow `dynamo:"criteria"`
	TotalPercentage int            `dynamo:"total_percentage"`
	CreatedAt       time.Time      `dynamo:"created_at"`
	UpdatedAt       time.Time      `dynamo:"updated_at"`
}

// DynamoDbCriteriaTable stores one criteria document per event.
type DynamoDbCriteriaTable struct {
	table *dynamo.Table
}

func NewDynamoDbCriteriaTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbCriteriaTable {
	db := dynamo.NewFromIface(ddbClient)
	table := db.Table(tableName)
	return &DynamoDbCriteriaTable{table: &table}
}

func (ddb *DynamoDbCriteriaTable) Get(ctx context.Context, eventID string) (*CriterionSet, error) {
	row := new(criterionSetRow)
	err := ddb.table.Get("event_id", eventID).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rowToSet(row), nil
}

func (ddb *DynamoDbCriteriaTable) Save(ctx context.Context, set *CriterionSet) error {
	return ddb.table.Put(setToRow(set)).Run(ctx)
}

func (ddb *DynamoDbCriteriaTable) Delete(ctx context.Context, eventID string) error {
	return ddb.table.Delete("event_id", eventID).Run(ctx)
}

func rowToSet(row *criterionSetRow) *CriterionSet {
	set := &CriterionSet{
		EventID:         row.EventID,
		EventTitle:      row.EventTitle,
		Criteria:        make([]Criterion, len(row.Criteria)),
		TotalPercentage: row.TotalPercentage,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	for i, c := range row.Criteria {
		set.Criteria[i] = Criterion(c)
	}
	return set
}

func setToRow(set *CriterionSet) *criterionSetRow {
	row := &criterionSetRow{
		EventID:         set.EventID,
		EventTitle:      set.EventTitle,
		Criteria:        make([]criterionRow, len(set.Criteria)),
		TotalPercentage: set.TotalPercentage,
		CreatedAt:       set.CreatedAt,
		UpdatedAt:       set.UpdatedAt,
	}
	for i, c := range set.Criteria {
		row.Criteria[i] = criterionRow(c)
	}
	return row
}
