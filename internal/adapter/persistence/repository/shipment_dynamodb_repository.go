package repository

import (
	"context"
	"errors"
	"time"

	"trendy_logistics/internal/domain/entities"
	"trendy_logistics/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultShipmentsTableName         = "shipments"
	defaultShipmentLocationsTableName = "shipment_locations"
)

type shipmentLocationItem struct {
	Code    string `dynamodbav:"code"`
	Name    string `dynamodbav:"name"`
	City    string `dynamodbav:"city"`
	Country string `dynamodbav:"country"`
	Type    string `dynamodbav:"type"`
}

type receiverItem struct {
	Name    string `dynamodbav:"name"`
	Phone   string `dynamodbav:"phone"`
	Email   string `dynamodbav:"email,omitempty"`
	Address string `dynamodbav:"address,omitempty"`
	City    string `dynamodbav:"city,omitempty"`
	Country string `dynamodbav:"country,omitempty"`
}

type shipmentEventItem struct {
	ID        string                `dynamodbav:"id"`
	Status    string                `dynamodbav:"status"`
	Message   string                `dynamodbav:"message,omitempty"`
	Location  *shipmentLocationItem `dynamodbav:"location,omitempty"`
	Timestamp string                `dynamodbav:"timestamp"`
}

type shipmentItem struct {
	TrackingCode string                `dynamodbav:"tracking_code"`
	Origin       locationItem          `dynamodbav:"origin"`
	Destination  locationItem          `dynamodbav:"destination"`
	IsPickup     bool                  `dynamodbav:"is_pickup"`
	Receiver     receiverItem          `dynamodbav:"receiver"`
	PickupCenter *shipmentLocationItem `dynamodbav:"pickup_center,omitempty"`
	Events       []shipmentEventItem   `dynamodbav:"events"`
	CreatedAt    string                `dynamodbav:"created_at"`
}

// ShipmentDynamoRepository persists Shipment aggregates in DynamoDB.
//
// Table requirements:
//   - shipments:          PK tracking_code (string); events embedded as a
//     list, newest first
//   - shipment_locations: PK code (string)
type ShipmentDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	locationsTable string
}

var _ interfaces.IShipmentRepository = (*ShipmentDynamoRepository)(nil)

func NewShipmentDynamoRepository(ddb *dynamodb.Client) *ShipmentDynamoRepository {
	return &ShipmentDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("SHIPMENTS_TABLE", defaultShipmentsTableName),
		locationsTable: getenvDefault("SHIPMENT_LOCATIONS_TABLE", defaultShipmentLocationsTableName),
	}
}

func (r *ShipmentDynamoRepository) FindByTrackingCode(ctx context.Context, code string) (entities.Shipment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tracking_code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Shipment{}, nil
	}

	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

func (r *ShipmentDynamoRepository) Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	av, err := attributevalue.MarshalMap(toShipmentItem(s))
	if err != nil {
		return entities.Shipment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#tracking_code)"),
		ExpressionAttributeNames: map[string]string{
			"#tracking_code": "tracking_code",
		},
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	return s, nil
}

// AppendEvent prepends ev to the shipment's event list so events stay newest
// first. Returns the zero value when the tracking code is unknown.
func (r *ShipmentDynamoRepository) AppendEvent(ctx context.Context, trackingCode string, ev entities.ShipmentEvent) (entities.Shipment, error) {
	evAv, err := attributevalue.MarshalMap(toShipmentEventItem(ev))
	if err != nil {
		return entities.Shipment{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tracking_code": &types.AttributeValueMemberS{Value: trackingCode},
		},
		ConditionExpression: aws.String("attribute_exists(#tracking_code)"),
		UpdateExpression:    aws.String("SET #events = list_append(:event, #events)"),
		ExpressionAttributeNames: map[string]string{
			"#tracking_code": "tracking_code",
			"#events":        "events",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":event": &types.AttributeValueMemberL{
				Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: evAv}},
			},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Shipment{}, nil
		}
		return entities.Shipment{}, err
	}

	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

func (r *ShipmentDynamoRepository) FindShipmentLocation(ctx context.Context, code string) (entities.ShipmentLocation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.locationsTable),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		return entities.ShipmentLocation{}, err
	}
	if len(out.Item) == 0 {
		return entities.ShipmentLocation{}, nil
	}

	var it shipmentLocationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ShipmentLocation{}, err
	}
	return fromShipmentLocationItem(it), nil
}

func toShipmentItem(s entities.Shipment) shipmentItem {
	it := shipmentItem{
		TrackingCode: s.TrackingCode,
		Origin:       toLocationItem(s.Origin),
		Destination:  toLocationItem(s.Destination),
		IsPickup:     s.IsPickup,
		Receiver: receiverItem{
			Name:    s.Receiver.Name,
			Phone:   s.Receiver.Phone,
			Email:   s.Receiver.Email,
			Address: s.Receiver.Address,
			City:    s.Receiver.City,
			Country: s.Receiver.Country,
		},
		Events:    make([]shipmentEventItem, 0, len(s.Events)),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.PickupCenter != nil {
		center := toShipmentLocationItem(*s.PickupCenter)
		it.PickupCenter = &center
	}
	for _, ev := range s.Events {
		it.Events = append(it.Events, toShipmentEventItem(ev))
	}
	return it
}

func fromShipmentItem(it shipmentItem) entities.Shipment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	s := entities.Shipment{
		TrackingCode: it.TrackingCode,
		Origin:       fromLocationItem(it.Origin),
		Destination:  fromLocationItem(it.Destination),
		IsPickup:     it.IsPickup,
		Receiver: entities.Receiver{
			Name:    it.Receiver.Name,
			Phone:   it.Receiver.Phone,
			Email:   it.Receiver.Email,
			Address: it.Receiver.Address,
			City:    it.Receiver.City,
			Country: it.Receiver.Country,
		},
		Events:    make([]entities.ShipmentEvent, 0, len(it.Events)),
		CreatedAt: createdAt,
	}
	if it.PickupCenter != nil {
		center := fromShipmentLocationItem(*it.PickupCenter)
		s.PickupCenter = &center
	}
	for _, ev := range it.Events {
		s.Events = append(s.Events, fromShipmentEventItem(ev))
	}
	return s
}

func toShipmentEventItem(ev entities.ShipmentEvent) shipmentEventItem {
	it := shipmentEventItem{
		ID:        ev.ID,
		Status:    ev.Status,
		Message:   ev.Message,
		Timestamp: ev.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	if ev.Location != nil {
		loc := toShipmentLocationItem(*ev.Location)
		it.Location = &loc
	}
	return it
}

func fromShipmentEventItem(it shipmentEventItem) entities.ShipmentEvent {
	timestamp, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	ev := entities.ShipmentEvent{
		ID:        it.ID,
		Status:    it.Status,
		Message:   it.Message,
		Timestamp: timestamp,
	}
	if it.Location != nil {
		loc := fromShipmentLocationItem(*it.Location)
		ev.Location = &loc
	}
	return ev
}

func toLocationItem(loc entities.Location) locationItem {
	it := locationItem{Code: loc.Code, City: loc.City, Country: loc.Country}
	if loc.Currency != nil {
		it.Currency = &currencyItem{Code: loc.Currency.Code, Name: loc.Currency.Name}
	}
	return it
}

func fromLocationItem(it locationItem) entities.Location {
	loc := entities.Location{Code: it.Code, City: it.City, Country: it.Country}
	if it.Currency != nil {
		loc.Currency = &entities.Currency{Code: it.Currency.Code, Name: it.Currency.Name}
	}
	return loc
}

func toShipmentLocationItem(loc entities.ShipmentLocation) shipmentLocationItem {
	return shipmentLocationItem{Code: loc.Code, Name: loc.Name, City: loc.City, Country: loc.Country, Type: loc.Type}
}

func fromShipmentLocationItem(it shipmentLocationItem) entities.ShipmentLocation {
	return entities.ShipmentLocation{Code: it.Code, Name: it.Name, City: it.City, Country: it.Country, Type: it.Type}
}
