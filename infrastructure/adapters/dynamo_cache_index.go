package adapters

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"verse-audio-api/application/ports/outbound"
	"verse-audio-api/config"
	"verse-audio-api/domain"
)

type dynamoCacheItem struct {
	CacheKey    string `dynamodbav:"cache_key"`
	StoragePath string `dynamodbav:"storage_path"`
	Url         string `dynamodbav:"url"`
	SizeBytes   int64  `dynamodbav:"size_bytes"`
	CreatedAt   int64  `dynamodbav:"created_at"`
}

type dynamoCacheIndex struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoCacheIndex(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB,
	dynamoConfig *config.DynamoConfig) outbound.CacheIndexPort {
	return &dynamoCacheIndex{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (c *dynamoCacheIndex) Lookup(ctx context.Context, key string) (*domain.CacheEntry, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(c.dynamoConfig.TableName),
		Key: map[string]*dynamodb.AttributeValue{
			"cache_key": {S: aws.String(key)},
		},
	}

	out, err := c.dynamoSvc.GetItemWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to look up cache entry", map[string]interface{}{
			"key": key,
		})
		return nil, err
	}

	if out.Item == nil {
		return nil, nil
	}

	var item dynamoCacheItem

	err = dynamodbattribute.UnmarshalMap(out.Item, &item)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to unmarshal cache entry", map[string]interface{}{
			"key": key,
		})
		return nil, err
	}

	return &domain.CacheEntry{
		Key:         item.CacheKey,
		StoragePath: item.StoragePath,
		URL:         item.Url,
		SizeBytes:   item.SizeBytes,
		CreatedAt:   time.Unix(item.CreatedAt, 0).UTC(),
	}, nil
}

func (c *dynamoCacheIndex) Save(ctx context.Context, entry domain.CacheEntry) error {
	item := dynamoCacheItem{
		CacheKey:    entry.Key,
		StoragePath: entry.StoragePath,
		Url:         entry.URL,
		SizeBytes:   entry.SizeBytes,
		CreatedAt:   entry.CreatedAt.Unix(),
	}

	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to marshal cache entry", map[string]interface{}{
			"item": item,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.dynamoConfig.TableName),
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to save cache entry", map[string]interface{}{
			"item": item,
		})
		return err
	}

	return nil
}
