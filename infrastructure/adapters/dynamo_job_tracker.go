package adapters

import (
	"context"
	"generate-reel-api/application/ports/outbound"
	"generate-reel-api/config"
	"generate-reel-api/domain"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

type dynamoJobItem struct {
	JobID     string `dynamodbav:"job_id"`
	Subject   string `dynamodbav:"subject"`
	Status    string `dynamodbav:"status"`
	ReelKey   string `dynamodbav:"reel_key"`
	Detail    string `dynamodbav:"detail"`
	UpdatedAt int64  `dynamodbav:"updated_at"`
	TTL       int64  `dynamodbav:"ttl"`
}

type dynamoJobTracker struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoJobTracker(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB,
	dynamoConfig *config.DynamoConfig) outbound.JobTrackerPort {
	return &dynamoJobTracker{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (t *dynamoJobTracker) Track(ctx context.Context, job domain.GenerationJob) error {
	now := time.Now()
	item := dynamoJobItem{
		JobID:     job.ID,
		Subject:   job.Subject,
		Status:    string(job.Status),
		ReelKey:   job.ReelKey,
		Detail:    job.Detail,
		UpdatedAt: now.Unix(),
		TTL:       now.Add(time.Duration(t.dynamoConfig.TtlMinutes) * time.Minute).Unix(),
	}

	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		t.logger.ErrorWithFields(err, "Failed to marshal job item", map[string]interface{}{
			"job_id": job.ID,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(t.dynamoConfig.TableName),
	}

	if _, err := t.dynamoSvc.PutItemWithContext(ctx, input); err != nil {
		t.logger.ErrorWithFields(err, "Failed to save job item", map[string]interface{}{
			"job_id": job.ID,
			"status": job.Status,
		})
		return err
	}

	return nil
}
