package event

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

type participantRow struct {
	ID      string    `dynamo:"id"`
	Name    string    `dynamo:"name"`
	Status  string    `dynamo:"status"`
	AddedAt time.Time `dynamo:"added_at"`
}

type eventRow struct {
	ID              string           `dynamo:"id,hash"` // Primary key
	Title           string           `dynamo:"title"`
	Description     string           `dynamo:"description"`
	Category        string           `dynamo:"category"`
	Venue           string           `dynamo:"venue,omitempty"`
	MaxParticipants int              `dynamo:"max_participants,omitempty"`
	Participants    []participantRow `dynamo:"participants"`
	CurrentPerformer string          `dynamo:"current_performer,omitempty"`
	AdminActivated  bool             `dynamo:"admin_activated"`
	ShowToJudges    bool             `dynamo:"show_to_judges"`
	JudgingMode     string           `dynamo:"judging_mode"`
	PosterKey       string           `dynamo:"poster_key,omitempty"`
	PosterURL       string           `dynamo:"poster_url,omitempty"`
	StartTime       *time.Time       `dynamo:"start_time,omitempty"`
	CreatedAt       time.Time        `dynamo:"created_at"`
}

// DynamoDbEventTable stores one document per event.
type DynamoDbEventTable struct {
	table *dynamo.Table
}

func NewDynamoDbEventTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbEventTable {
	db := dynamo.NewFromIface(ddbClient)
	table := db.Table(tableName)
	return &DynamoDbEventTable{table: &table}
}

func (ddb *DynamoDbEventTable) Get(ctx context.Context, eventID string) (*Event, error) {
	row := new(eventRow)
	err := ddb.table.Get("id", eventID).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rowToEvent(row), nil
}

func (ddb *DynamoDbEventTable) List(ctx context.Context) ([]Event, error) {
	var rows []eventRow
	if err := ddb.table.Scan().All(ctx, &rows); err != nil {
		return nil, err
	}
	events := make([]Event, len(rows))
	for i := range rows {
		events[i] = *rowToEvent(&rows[i])
	}
	return events, nil
}

func (ddb *DynamoDbEventTable) Save(ctx context.Context, ev *Event) error {
	return ddb.table.Put(eventToRow(ev)).Run(ctx)
}

func (ddb *DynamoDbEventTable) Delete(ctx context.Context, eventID string) error {
	return ddb.table.Delete("id", eventID).Run(ctx)
}

func rowToEvent(row *eventRow) *Event {
	ev := &Event{
		ID:               row.ID,
		Title:            row.Title,
		Description:      row.Description,
		Category:         row.Category,
		Venue:            row.Venue,
		MaxParticipants:  row.MaxParticipants,
		Participants:     make([]Participant, len(row.Participants)),
		CurrentPerformer: row.CurrentPerformer,
		AdminActivated:   row.AdminActivated,
		ShowToJudges:     row.ShowToJudges,
		JudgingMode:      JudgingMode(row.JudgingMode),
		PosterKey:        row.PosterKey,
		PosterURL:        row.PosterURL,
		StartTime:        row.StartTime,
		CreatedAt:        row.CreatedAt,
	}
	for i, p := range row.Participants {
		ev.Participants[i] = Participant{
			ID:      p.ID,
			Name:    p.Name,
			Status:  ParticipantStatus(p.Status),
			AddedAt: p.AddedAt,
		}
	}
	return ev
}

func eventToRow(ev *Event) *eventRow {
	row := &eventRow{
		ID:               ev.ID,
		Title:            ev.Title,
		Description:      ev.Description,
		Category:         ev.Category,
		Venue:            ev.Venue,
		MaxParticipants:  ev.MaxParticipants,
		Participants:     make([]participantRow, len(ev.Participants)),
		CurrentPerformer: ev.CurrentPerformer,
		AdminActivated:   ev.AdminActivated,
		ShowToJudges:     ev.ShowToJudges,
		JudgingMode:      string(ev.JudgingMode),
		PosterKey:        ev.PosterKey,
		PosterURL:        ev.PosterURL,
		StartTime:        ev.StartTime,
		CreatedAt:        ev.CreatedAt,
	}
	for i, p := range ev.Participants {
		row.Participants[i] = participantRow{
			ID:      p.ID,
			Name:    p.Name,
			Status:  string(p.Status),
			AddedAt: p.AddedAt,
		}
	}
	return row
}
