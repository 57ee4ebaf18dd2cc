package awards

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

type awardRow struct {
	ID                   string    `dynamo:"id"`
	Name                 string    `dynamo:"name"`
	Description          string    `dynamo:"description"`
	Icon                 string    `dynamo:"icon"`
	Type                 string    `dynamo:"type"`
	BasedOnCriterion     string    `dynamo:"based_on_criterion,omitempty"`
	CriterionName        string    `dynamo:"criterion_name,omitempty"`
	CriterionDescription string    `dynamo:"criterion_description,omitempty"`
	MaxScore             int       `dynamo:"max_score"`
	CreatedAt            time.Time `dynamo:"created_at"`
}

type awardSetRow struct {
	EventID   string     `dynamo:"event_id,hash"` // Primary key
	Awards    []awardRow `dynamo:"awards"`
	UpdatedAt time.Time  `dynamo:"updated_at"`
}

// DynamoDbAwardsTable stores one special awards document per event.
type DynamoDbAwardsTable struct {
	table *dynamo.Table
}

func NewDynamoDbAwardsTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbAwardsTable {
	db := dynamo.NewFromIface(ddbClient)
	table := db.Table(tableName)
	return &DynamoDbAwardsTable{table: &table}
}

func (ddb *DynamoDbAwardsTable) Get(ctx context.Context, eventID string) (*AwardSet, error) {
	row := new(awardSetRow)
	err := ddb.table.Get("event_id", eventID).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	set := &AwardSet{
		EventID:   row.EventID,
		Awards:    make([]Award, len(row.Awards)),
		UpdatedAt: row.UpdatedAt,
	}
	for i, a := range row.Awards {
		set.Awards[i] = Award{
			ID:                   a.ID,
			Name:                 a.Name,
			Description:          a.Description,
			Icon:                 a.Icon,
			Type:                 AwardType(a.Type),
			BasedOnCriterion:     a.BasedOnCriterion,
			CriterionName:        a.CriterionName,
			CriterionDescription: a.CriterionDescription,
			MaxScore:             a.MaxScore,
			CreatedAt:            a.CreatedAt,
		}
	}
	return set, nil
}

func (ddb *DynamoDbAwardsTable) Save(ctx context.Context, set *AwardSet) error {
	row := &awardSetRow{
		EventID:   set.EventID,
		Awards:    make([]awardRow, len(set.Awards)),
		UpdatedAt: set.UpdatedAt,
	}
	for i, a := range set.Awards {
		row.Awards[i] = awardRow{
			ID:                   a.ID,
			Name:                 a.Name,
			Description:          a.Description,
			Icon:                 a.Icon,
			Type:                 string(a.Type),
			BasedOnCriterion:     a.BasedOnCriterion,
			CriterionName:        a.CriterionName,
			CriterionDescription: a.CriterionDescription,
			MaxScore:             a.MaxScore,
			CreatedAt:            a.CreatedAt,
		}
	}
	return ddb.table.Put(row).Run(ctx)
}

func (ddb *DynamoDbAwardsTable) Delete(ctx context.Context, eventID string) error {
	return ddb.table.Delete("event_id", eventID).Run(ctx)
}
