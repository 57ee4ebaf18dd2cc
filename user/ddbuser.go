package user

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

type userRow struct {
	ID        string    `dynamo:"id,hash"` // Primary key
	Email     string    `dynamo:"email"`
	FullName  *string   `dynamo:"full_name"`
	Role      string    `dynamo:"role"`
	BcryptPwd []byte    `dynamo:"bcrypt_pwd"`
	CreatedAt time.Time `dynamo:"created_at"`
}

type DynamoDbUserTable struct {
	table *dynamo.Table
}

func NewDynamoDbUserTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbUserTable {
	db := dynamo.NewFromIface(ddbClient)
	table := db.Table(tableName)
	return &DynamoDbUserTable{table: &table}
}

func (ddb *DynamoDbUserTable) Get(ctx context.Context, userID string) (*UserRow, error) {
	row := new(userRow)
	err := ddb.table.Get("id", userID).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dynamoRowToUserRow(row), nil
}

// GetByEmail scans with an email filter. The user table is small; a
// dedicated GSI is not worth its upkeep here.
func (ddb *DynamoDbUserTable) GetByEmail(ctx context.Context, email string) (*UserRow, error) {
	var rows []userRow
	err := ddb.table.Scan().Filter("'email' = ?", email).All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return dynamoRowToUserRow(&rows[0]), nil
}

func (ddb *DynamoDbUserTable) List(ctx context.Context) ([]UserRow, error) {
	var rows []userRow
	if err := ddb.table.Scan().All(ctx, &rows); err != nil {
		return nil, err
	}
	users := make([]UserRow, len(rows))
	for i := range rows {
		users[i] = *dynamoRowToUserRow(&rows[i])
	}
	return users, nil
}

func (ddb *DynamoDbUserTable) Save(ctx context.Context, row *UserRow) error {
	return ddb.table.Put(&userRow{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		Role:      row.Role,
		BcryptPwd: row.BcryptPwd,
		CreatedAt: row.CreatedAt,
	}).Run(ctx)
}

func dynamoRowToUserRow(row *userRow) *UserRow {
	return &UserRow{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		Role:      row.Role,
		BcryptPwd: row.BcryptPwd,
		CreatedAt: row.CreatedAt,
	}
}
