package repository

import (
	"context"
	"strings"

	"rentpulse/internal/domain/entities"
	"rentpulse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMarketTableName = "market_snapshots"

type marketItem struct {
	City             string             `dynamodbav:"city"`
	AverageRent      float64            `dynamodbav:"average_rent"`
	MarketGrowthRate float64            `dynamodbav:"market_growth_rate"`
	Competition      string             `dynamodbav:"competition"`
	SeasonalFactors  map[string]float64 `dynamodbav:"seasonal_factors,omitempty"`
}

// MarketDynamoRepository serves the per-city market snapshots refreshed out of
// band by an analytics job.
//
// Table requirements:
//   - PK: city (string, lowercased)

type MarketDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMarketRepository = (*MarketDynamoRepository)(nil)

func NewMarketDynamoRepository(ddb *dynamodb.Client) *MarketDynamoRepository {
	return &MarketDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MARKET_TABLE", defaultMarketTableName),
	}
}

func (r *MarketDynamoRepository) GetMarketAnalysis(ctx context.Context, city string) (entities.MarketAnalysis, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"city": &types.AttributeValueMemberS{Value: strings.ToLower(strings.TrimSpace(city))},
		},
	})
	if err != nil {
		return entities.MarketAnalysis{}, err
	}
	if len(out.Item) == 0 {
		return entities.MarketAnalysis{}, nil
	}

	var it marketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MarketAnalysis{}, err
	}
	return entities.MarketAnalysis{
		City:             it.City,
		AverageRent:      it.AverageRent,
		MarketGrowthRate: it.MarketGrowthRate,
		Competition:      entities.CompetitionLevel(it.Competition),
		SeasonalFactors:  it.SeasonalFactors,
	}, nil
}
