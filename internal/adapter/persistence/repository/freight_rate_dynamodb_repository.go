package repository

import (
	"context"
	"time"

	"trendy_logistics/internal/domain/entities"
	"trendy_logistics/internal/usecase/interfaces"
	"trendy_logistics/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFreightRatesTableName = "freight_rates"
	laneCodeIndexName            = "lane_code-index"

	// laneQueryPageSize covers the realistic number of historical records
	// per lane while keeping the tie-break scan bounded.
	laneQueryPageSize = 25
)

type freightRateItem struct {
	ID              string  `dynamodbav:"id"`
	LaneCode        string  `dynamodbav:"lane_code"`
	OriginCode      string  `dynamodbav:"origin_code"`
	DestinationCode string  `dynamodbav:"destination_code"`
	MethodCode      string  `dynamodbav:"method_code"`
	MetricCode      string  `dynamodbav:"metric_code"`
	ShippingFee     float64 `dynamodbav:"shipping_fee"`
	ClearingFee     float64 `dynamodbav:"clearing_fee"`
	CurrencyCode    string  `dynamodbav:"currency_code"`
	CurrencyName    string  `dynamodbav:"currency_name,omitempty"`
	PerUnit         bool    `dynamodbav:"per_unit"`
	EstimatedDays   *int    `dynamodbav:"estimated_days,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
}

// FreightRateDynamoRepository persists FreightRate records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI lane_code-index: lane_code (HASH) + created_at (RANGE)
//
// Several records may share a lane_code over time; reads pick the newest.
type FreightRateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFreightRateRepository = (*FreightRateDynamoRepository)(nil)

func NewFreightRateDynamoRepository(ddb *dynamodb.Client) *FreightRateDynamoRepository {
	return &FreightRateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FREIGHT_RATES_TABLE", defaultFreightRatesTableName),
	}
}

// FindLatestByLane resolves the authoritative record for a lane: the newest
// created_at, ties broken by the greatest id.
func (r *FreightRateDynamoRepository) FindLatestByLane(ctx context.Context, origin, destination, method, metric string) (entities.FreightRate, error) {
	laneCode := pkg.ToSlug(origin + " " + destination + " " + method + " " + metric)

	items, err := r.queryByLaneCode(ctx, laneCode, laneQueryPageSize)
	if err != nil || len(items) == 0 {
		return entities.FreightRate{}, err
	}

	best := items[0]
	for _, it := range items[1:] {
		if it.CreatedAt > best.CreatedAt || (it.CreatedAt == best.CreatedAt && it.ID > best.ID) {
			best = it
		}
	}
	return fromFreightRateItem(best), nil
}

func (r *FreightRateDynamoRepository) FindByCode(ctx context.Context, code string) (entities.FreightRate, error) {
	items, err := r.queryByLaneCode(ctx, code, 1)
	if err != nil || len(items) == 0 {
		return entities.FreightRate{}, err
	}
	return fromFreightRateItem(items[0]), nil
}

func (r *FreightRateDynamoRepository) Create(ctx context.Context, rate entities.FreightRate) (entities.FreightRate, error) {
	av, err := attributevalue.MarshalMap(toFreightRateItem(rate))
	if err != nil {
		return entities.FreightRate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.FreightRate{}, err
	}
	return rate, nil
}

func (r *FreightRateDynamoRepository) queryByLaneCode(ctx context.Context, laneCode string, limit int32) ([]freightRateItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(laneCodeIndexName),
		KeyConditionExpression: aws.String("#lane_code = :lane_code"),
		ExpressionAttributeNames: map[string]string{
			"#lane_code": "lane_code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lane_code": &types.AttributeValueMemberS{Value: laneCode},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}

	var items []freightRateItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func toFreightRateItem(rate entities.FreightRate) freightRateItem {
	return freightRateItem{
		ID:              rate.ID,
		LaneCode:        rate.Code,
		OriginCode:      rate.OriginCode,
		DestinationCode: rate.DestinationCode,
		MethodCode:      rate.MethodCode,
		MetricCode:      rate.MetricCode,
		ShippingFee:     rate.ShippingFee,
		ClearingFee:     rate.ClearingFee,
		CurrencyCode:    rate.Currency.Code,
		CurrencyName:    rate.Currency.Name,
		PerUnit:         rate.PerUnit,
		EstimatedDays:   rate.EstimatedDays,
		CreatedAt:       rate.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFreightRateItem(it freightRateItem) entities.FreightRate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.FreightRate{
		ID:              it.ID,
		Code:            it.LaneCode,
		OriginCode:      it.OriginCode,
		DestinationCode: it.DestinationCode,
		MethodCode:      it.MethodCode,
		MetricCode:      it.MetricCode,
		ShippingFee:     it.ShippingFee,
		ClearingFee:     it.ClearingFee,
		Currency:        entities.Currency{Code: it.CurrencyCode, Name: it.CurrencyName},
		PerUnit:         it.PerUnit,
		EstimatedDays:   it.EstimatedDays,
		CreatedAt:       createdAt,
	}
}
