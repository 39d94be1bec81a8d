package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces"
)

const defaultAccessLogsTableName = "os_access_logs"

type accessLogItem struct {
	ID        string `dynamodbav:"id"`
	NumeroOS  int    `dynamodbav:"numero_os"`
	IPAddress string `dynamodbav:"ip_address"`
	UserAgent string `dynamodbav:"user_agent"`
	Success   bool   `dynamodbav:"success"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AccessLogDynamoRepository appends lookup-audit rows to DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The table is append-only; nothing in the service reads it back.
type AccessLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccessLogRepository = (*AccessLogDynamoRepository)(nil)

func NewAccessLogDynamoRepository(ddb *dynamodb.Client) *AccessLogDynamoRepository {
	return &AccessLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCESS_LOGS_TABLE", defaultAccessLogsTableName),
	}
}

func (r *AccessLogDynamoRepository) Append(ctx context.Context, entry entities.AccessLogEntry) error {
	av, err := attributevalue.MarshalMap(accessLogItem{
		ID:        entry.ID,
		NumeroOS:  entry.NumeroOS,
		IPAddress: entry.IPAddress,
		UserAgent: entry.UserAgent,
		Success:   entry.Success,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
