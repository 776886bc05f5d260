package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"rentpulse/internal/domain/entities"
	"rentpulse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultIssuesTableName    = "issues"
	defaultProvidersTableName = "providers"
	defaultContractsTableName = "contracts"

	issuesCategoryIndex    = "category-index"
	issuesPropertyIndex    = "property_id-index"
	providersCategoryIndex = "category-index"
	contractsPropertyIndex = "property_id-index"
)

// contractItem is one monthly rollup row per property. The month attribute is
// "YYYY-MM" and doubles as the GSI sort key.
type contractItem struct {
	PropertyID      string `dynamodbav:"property_id"`
	Month           string `dynamodbav:"month"`
	MonthlyRent     string `dynamodbav:"monthly_rent"`
	MaintenanceCost string `dynamodbav:"maintenance_cost"`
}

// HistoryDynamoRepository serves the historical aggregates behind the pricing
// and forecast calculators.
//
// Table requirements:
//   - issues:    PK id, GSI category-index (PK category, SK reported_at),
//     GSI property_id-index (PK property_id, SK reported_at)
//   - providers: PK id, GSI category-index (PK category)
//   - contracts: PK property_id, SK month ("YYYY-MM"), GSI property_id-index
//
// Every read here is a Select COUNT query or a rollup scan; the write side
// belongs to the issue-tracking service, not this one.

type HistoryDynamoRepository struct {
	ddb            *dynamodb.Client
	issuesTable    string
	providersTable string
	contractsTable string
}

var _ interfaces.IHistoryRepository = (*HistoryDynamoRepository)(nil)

func NewHistoryDynamoRepository(ddb *dynamodb.Client) *HistoryDynamoRepository {
	return &HistoryDynamoRepository{
		ddb:            ddb,
		issuesTable:    getenvDefault("ISSUES_TABLE", defaultIssuesTableName),
		providersTable: getenvDefault("PROVIDERS_TABLE", defaultProvidersTableName),
		contractsTable: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *HistoryDynamoRepository) CountIssuesByCategorySince(ctx context.Context, category entities.IssueCategory, since time.Time) (int, error) {
	return r.queryCount(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.issuesTable),
		IndexName:              aws.String(issuesCategoryIndex),
		KeyConditionExpression: aws.String("category = :cat AND reported_at >= :since"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cat":   &types.AttributeValueMemberS{Value: string(category)},
			":since": &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339Nano)},
		},
		Select: types.SelectCount,
	})
}

func (r *HistoryDynamoRepository) CountQualifiedProviders(ctx context.Context, category entities.IssueCategory) (int, error) {
	return r.queryCount(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.providersTable),
		IndexName:              aws.String(providersCategoryIndex),
		KeyConditionExpression: aws.String("category = :cat"),
		FilterExpression:       aws.String("#active = :true"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cat":  &types.AttributeValueMemberS{Value: string(category)},
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
		Select: types.SelectCount,
	})
}

func (r *HistoryDynamoRepository) CountIssuesByPropertySince(ctx context.Context, propertyID string, since time.Time) (int, error) {
	return r.queryCount(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.issuesTable),
		IndexName:              aws.String(issuesPropertyIndex),
		KeyConditionExpression: aws.String("property_id = :pid AND reported_at >= :since"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":   &types.AttributeValueMemberS{Value: propertyID},
			":since": &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339Nano)},
		},
		Select: types.SelectCount,
	})
}

func (r *HistoryDynamoRepository) CountOpenIssuesByProperty(ctx context.Context, propertyID string) (int, error) {
	return r.queryCount(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.issuesTable),
		IndexName:              aws.String(issuesPropertyIndex),
		KeyConditionExpression: aws.String("property_id = :pid"),
		FilterExpression:       aws.String("#status IN (:open, :in_progress)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":         &types.AttributeValueMemberS{Value: propertyID},
			":open":        &types.AttributeValueMemberS{Value: "open"},
			":in_progress": &types.AttributeValueMemberS{Value: "in_progress"},
		},
		Select: types.SelectCount,
	})
}

// GetHistory aggregates the trailing monthly rollup rows into the summary the
// forecast generator consumes. An empty property id aggregates the whole
// portfolio.
func (r *HistoryDynamoRepository) GetHistory(ctx context.Context, propertyID string, months int) (entities.History, error) {
	if months <= 0 {
		months = 12
	}
	sinceMonth := time.Now().UTC().AddDate(0, -months, 0).Format("2006-01")

	var rows []contractItem
	var err error
	if propertyID != "" {
		rows, err = r.queryContracts(ctx, propertyID, sinceMonth)
	} else {
		rows, err = r.scanContracts(ctx, sinceMonth)
	}
	if err != nil {
		return entities.History{}, err
	}
	return summarizeContracts(rows), nil
}

func (r *HistoryDynamoRepository) ListPropertyIDs(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.contractsTable),
			ProjectionExpression: aws.String("property_id"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it contractItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if it.PropertyID != "" {
				seen[it.PropertyID] = struct{}{}
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *HistoryDynamoRepository) queryContracts(ctx context.Context, propertyID, sinceMonth string) ([]contractItem, error) {
	var rows []contractItem
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.contractsTable),
			IndexName:              aws.String(contractsPropertyIndex),
			KeyConditionExpression: aws.String("property_id = :pid AND #month >= :since"),
			ExpressionAttributeNames: map[string]string{
				"#month": "month",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid":   &types.AttributeValueMemberS{Value: propertyID},
				":since": &types.AttributeValueMemberS{Value: sinceMonth},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		batch, err := unmarshalContracts(out.Items)
		if err != nil {
			return nil, err
		}
		rows = append(rows, batch...)
		if len(out.LastEvaluatedKey) == 0 {
			return rows, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *HistoryDynamoRepository) scanContracts(ctx context.Context, sinceMonth string) ([]contractItem, error) {
	var rows []contractItem
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.contractsTable),
			FilterExpression: aws.String("#month >= :since"),
			ExpressionAttributeNames: map[string]string{
				"#month": "month",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":since": &types.AttributeValueMemberS{Value: sinceMonth},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		batch, err := unmarshalContracts(out.Items)
		if err != nil {
			return nil, err
		}
		rows = append(rows, batch...)
		if len(out.LastEvaluatedKey) == 0 {
			return rows, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *HistoryDynamoRepository) queryCount(ctx context.Context, in *dynamodb.QueryInput) (int, error) {
	total := 0
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func unmarshalContracts(raw []map[string]types.AttributeValue) ([]contractItem, error) {
	rows := make([]contractItem, 0, len(raw))
	for _, item := range raw {
		var it contractItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, fmt.Errorf("unmarshal contract row: %w", err)
		}
		rows = append(rows, it)
	}
	return rows, nil
}

// summarizeContracts averages per distinct month, so a portfolio-wide history
// keeps the same scale as a single-property one.
func summarizeContracts(rows []contractItem) entities.History {
	if len(rows) == 0 {
		return entities.History{}
	}

	months := make(map[string]struct{}, len(rows))
	totalRent := 0.0
	totalMaintenance := 0.0
	for _, row := range rows {
		months[row.Month] = struct{}{}
		rent, _ := strconv.ParseFloat(row.MonthlyRent, 64)
		maint, _ := strconv.ParseFloat(row.MaintenanceCost, 64)
		totalRent += rent
		totalMaintenance += maint
	}

	n := len(months)
	if n == 0 {
		return entities.History{}
	}
	return entities.History{
		MonthsOfData:    n,
		AvgMonthlyRent:  totalRent / float64(n),
		MaintenanceCost: totalMaintenance / float64(n),
	}
}
