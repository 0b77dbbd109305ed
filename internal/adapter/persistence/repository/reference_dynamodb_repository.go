package repository

import (
	"context"
	"time"

	"trendy_logistics/internal/domain/entities"
	"trendy_logistics/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLocationsTableName     = "locations"
	defaultMethodsTableName       = "shipping_methods"
	defaultMetricsTableName       = "shipping_metrics"
	defaultExchangeRatesTableName = "exchange_rates"
)

type currencyItem struct {
	Code string `dynamodbav:"code"`
	Name string `dynamodbav:"name"`
}

type locationItem struct {
	Code     string        `dynamodbav:"code"`
	City     string        `dynamodbav:"city"`
	Country  string        `dynamodbav:"country"`
	Currency *currencyItem `dynamodbav:"currency,omitempty"`
}

type methodItem struct {
	Code string `dynamodbav:"code"`
	Name string `dynamodbav:"name"`
}

type metricItem struct {
	Code        string  `dynamodbav:"code"`
	Name        string  `dynamodbav:"name"`
	Unit        string  `dynamodbav:"unit"`
	Description string  `dynamodbav:"description,omitempty"`
	Min         float64 `dynamodbav:"min"`
	Max         float64 `dynamodbav:"max"`
	Multiple    float64 `dynamodbav:"multiple"`
}

type exchangeRateItem struct {
	Pair      string       `dynamodbav:"pair"`
	From      currencyItem `dynamodbav:"from_currency"`
	To        currencyItem `dynamodbav:"to_currency"`
	Rate      float64      `dynamodbav:"rate"`
	CreatedAt string       `dynamodbav:"created_at"`
}

// ReferenceDynamoRepository reads the pricing reference data from DynamoDB.
//
// Table requirements (names overridable via env):
//   - locations:        PK code (string)
//   - shipping_methods: PK code (string)
//   - shipping_metrics: PK code (string)
//   - exchange_rates:   PK pair (string, "FROM->TO")
//
// All lookups return the zero value for a miss, matching the repository
// interface contract.
type ReferenceDynamoRepository struct {
	ddb                *dynamodb.Client
	locationsTable     string
	methodsTable       string
	metricsTable       string
	exchangeRatesTable string
}

var _ interfaces.IReferenceRepository = (*ReferenceDynamoRepository)(nil)

func NewReferenceDynamoRepository(ddb *dynamodb.Client) *ReferenceDynamoRepository {
	return &ReferenceDynamoRepository{
		ddb:                ddb,
		locationsTable:     getenvDefault("LOCATIONS_TABLE", defaultLocationsTableName),
		methodsTable:       getenvDefault("SHIPPING_METHODS_TABLE", defaultMethodsTableName),
		metricsTable:       getenvDefault("SHIPPING_METRICS_TABLE", defaultMetricsTableName),
		exchangeRatesTable: getenvDefault("EXCHANGE_RATES_TABLE", defaultExchangeRatesTableName),
	}
}

func (r *ReferenceDynamoRepository) FindLocation(ctx context.Context, code string) (entities.Location, error) {
	var it locationItem
	found, err := r.getByCode(ctx, r.locationsTable, code, &it)
	if err != nil || !found {
		return entities.Location{}, err
	}

	loc := entities.Location{Code: it.Code, City: it.City, Country: it.Country}
	if it.Currency != nil {
		loc.Currency = &entities.Currency{Code: it.Currency.Code, Name: it.Currency.Name}
	}
	return loc, nil
}

func (r *ReferenceDynamoRepository) FindMethod(ctx context.Context, code string) (entities.ShippingMethod, error) {
	var it methodItem
	found, err := r.getByCode(ctx, r.methodsTable, code, &it)
	if err != nil || !found {
		return entities.ShippingMethod{}, err
	}
	return entities.ShippingMethod{Code: it.Code, Name: it.Name}, nil
}

func (r *ReferenceDynamoRepository) FindMetric(ctx context.Context, code string) (entities.Metric, error) {
	var it metricItem
	found, err := r.getByCode(ctx, r.metricsTable, code, &it)
	if err != nil || !found {
		return entities.Metric{}, err
	}
	return entities.Metric{
		Code:        it.Code,
		Name:        it.Name,
		Unit:        it.Unit,
		Description: it.Description,
		Min:         it.Min,
		Max:         it.Max,
		Multiple:    it.Multiple,
	}, nil
}

func (r *ReferenceDynamoRepository) FindExchangeRate(ctx context.Context, from, to string) (entities.ExchangeRate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.exchangeRatesTable),
		Key: map[string]types.AttributeValue{
			"pair": &types.AttributeValueMemberS{Value: exchangeRatePair(from, to)},
		},
	})
	if err != nil {
		return entities.ExchangeRate{}, err
	}
	if len(out.Item) == 0 {
		return entities.ExchangeRate{}, nil
	}

	var it exchangeRateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ExchangeRate{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ExchangeRate{
		Pair:      it.Pair,
		From:      entities.Currency{Code: it.From.Code, Name: it.From.Name},
		To:        entities.Currency{Code: it.To.Code, Name: it.To.Name},
		Rate:      it.Rate,
		CreatedAt: createdAt,
	}, nil
}

func (r *ReferenceDynamoRepository) getByCode(ctx context.Context, table, code string, dest any) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, dest); err != nil {
		return false, err
	}
	return true, nil
}

func exchangeRatePair(from, to string) string {
	return from + "->" + to
}
