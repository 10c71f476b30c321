package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"

	"studymates_server/models"
	"studymates_server/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoStore implements Store on top of DynamoDB
type DynamoStore struct {
	Client *dynamodb.Client
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient() *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// putItem marshals and writes a single item
func (ds *DynamoStore) putItem(ctx context.Context, tableName string, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item for table '%s': %w", tableName, err)
	}
	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put item into table '%s': %w", tableName, err)
	}
	return nil
}

// getItem fetches a single item by key; the result is empty when absent
func (ds *DynamoStore) getItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}
	return output.Item, nil
}

// queryItems queries items using a KeyConditionExpression
func (ds *DynamoStore) queryItems(
	ctx context.Context,
	tableName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		output, err := ds.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(tableName),
			KeyConditionExpression:    aws.String(keyConditionExpression),
			ExpressionAttributeValues: expressionAttributeValues,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query items from table '%s': %w", tableName, err)
		}
		items = append(items, output.Items...)
		if output.LastEvaluatedKey == nil {
			break
		}
		startKey = output.LastEvaluatedKey
	}
	return items, nil
}

// scanItems scans a full table, optionally with a filter expression
func (ds *DynamoStore) scanItems(
	ctx context.Context,
	tableName string,
	filterExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(tableName),
	}
	if filterExpression != "" {
		input.FilterExpression = aws.String(filterExpression)
		input.ExpressionAttributeValues = expressionAttributeValues
		input.ExpressionAttributeNames = expressionAttributeNames
	}

	var items []map[string]types.AttributeValue
	for {
		output, err := ds.Client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table '%s': %w", tableName, err)
		}
		items = append(items, output.Items...)
		if output.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = output.LastEvaluatedKey
	}
	return items, nil
}

func (ds *DynamoStore) PutProfile(ctx context.Context, profile *models.UserProfile) error {
	return ds.putItem(ctx, models.UserProfilesTable, profile)
}

func (ds *DynamoStore) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	item, err := ds.getItem(ctx, models.UserProfilesTable, map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	})
	if err != nil {
		return nil, err
	}
	if len(item) == 0 {
		return nil, ErrNotFound
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

func (ds *DynamoStore) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	items, err := ds.scanItems(ctx, models.UserProfilesTable, "", nil, nil)
	if err != nil {
		return nil, err
	}

	var profiles []models.UserProfile
	if err := attributevalue.UnmarshalListOfMaps(items, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}

	// Scan order is arbitrary; restore creation order
	sort.SliceStable(profiles, func(i, j int) bool {
		if profiles[i].CreatedAt != profiles[j].CreatedAt {
			return profiles[i].CreatedAt < profiles[j].CreatedAt
		}
		return profiles[i].UserID < profiles[j].UserID
	})
	return profiles, nil
}

func (ds *DynamoStore) PutSwipe(ctx context.Context, swipe *models.SwipeAction) error {
	return ds.putItem(ctx, models.SwipeActionsTable, swipe)
}

func (ds *DynamoStore) HasLike(ctx context.Context, userID, targetUserID string) (bool, error) {
	items, err := ds.queryItems(ctx, models.SwipeActionsTable,
		"userId = :userId AND begins_with(targetKey, :target)",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
			":target": &types.AttributeValueMemberS{Value: targetUserID + "#"},
		},
	)
	if err != nil {
		return false, err
	}

	var swipes []models.SwipeAction
	if err := attributevalue.UnmarshalListOfMaps(items, &swipes); err != nil {
		return false, fmt.Errorf("failed to parse swipes: %w", err)
	}
	for _, swipe := range swipes {
		if swipe.Action == models.ActionLike {
			return true, nil
		}
	}
	return false, nil
}

// pairLockID is the Matches-table key of the item that enforces at most one
// match per unordered pair
func pairLockID(pairKey string) string {
	return "pair#" + pairKey
}

func (ds *DynamoStore) CommitMatch(ctx context.Context, swipe *models.SwipeAction, match *models.Match) error {
	swipeItem, err := attributevalue.MarshalMap(swipe)
	if err != nil {
		return fmt.Errorf("failed to marshal swipe: %w", err)
	}
	matchItem, err := attributevalue.MarshalMap(match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	appendMatched := "SET matches = list_append(if_not_exists(matches, :empty), :newItem)"
	emptyList := &types.AttributeValueMemberL{Value: []types.AttributeValue{}}

	_, err = ds.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName: aws.String(models.SwipeActionsTable),
				Item:      swipeItem,
			}},
			{Put: &types.Put{
				TableName: aws.String(models.MatchesTable),
				Item:      matchItem,
			}},
			// The pair lock makes duplicate match creation a conditional failure
			// even when two swipes race
			{Put: &types.Put{
				TableName: aws.String(models.MatchesTable),
				Item: map[string]types.AttributeValue{
					"matchId":  &types.AttributeValueMemberS{Value: pairLockID(match.PairKey)},
					"pairKey":  &types.AttributeValueMemberS{Value: match.PairKey},
					"matchRef": &types.AttributeValueMemberS{Value: match.MatchID},
				},
				ConditionExpression: aws.String("attribute_not_exists(matchId)"),
			}},
			{Update: &types.Update{
				TableName:           aws.String(models.UserProfilesTable),
				Key:                 map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: match.Users[0]}},
				UpdateExpression:    aws.String(appendMatched),
				ConditionExpression: aws.String("attribute_exists(userId)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":empty":   emptyList,
					":newItem": &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: match.Users[1]}}},
				},
			}},
			{Update: &types.Update{
				TableName:           aws.String(models.UserProfilesTable),
				Key:                 map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: match.Users[1]}},
				UpdateExpression:    aws.String(appendMatched),
				ConditionExpression: aws.String("attribute_exists(userId)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":empty":   emptyList,
					":newItem": &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: match.Users[0]}}},
				},
			}},
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return ErrConflict
				}
			}
		}
		return fmt.Errorf("failed to commit match: %w", err)
	}
	return nil
}

func (ds *DynamoStore) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	item, err := ds.getItem(ctx, models.MatchesTable, map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	})
	if err != nil {
		return nil, err
	}
	if len(item) == 0 {
		return nil, ErrNotFound
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to parse match: %w", err)
	}
	return &match, nil
}

func (ds *DynamoStore) GetMatchByPair(ctx context.Context, userA, userB string) (*models.Match, error) {
	item, err := ds.getItem(ctx, models.MatchesTable, map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: pairLockID(models.PairKeyFor(userA, userB))},
	})
	if err != nil {
		return nil, err
	}
	if len(item) == 0 {
		return nil, ErrNotFound
	}
	return ds.GetMatch(ctx, utils.ExtractString(item, "matchRef"))
}

func (ds *DynamoStore) ListMatchesForUser(ctx context.Context, userID string) ([]models.Match, error) {
	// Pair lock items carry no "users" attribute, so the filter skips them
	items, err := ds.scanItems(ctx, models.MatchesTable,
		"contains(#users, :userId)",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		map[string]string{"#users": "users"},
	)
	if err != nil {
		return nil, err
	}

	var matches []models.Match
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to parse matches: %w", err)
	}
	return matches, nil
}

func (ds *DynamoStore) AppendMessage(ctx context.Context, msg *models.Message) error {
	msgItem, err := attributevalue.MarshalMap(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	lastMessage, err := attributevalue.MarshalMap(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal last message: %w", err)
	}

	_, err = ds.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName: aws.String(models.MessagesTable),
				Item:      msgItem,
			}},
			{Update: &types.Update{
				TableName:           aws.String(models.MatchesTable),
				Key:                 map[string]types.AttributeValue{"matchId": &types.AttributeValueMemberS{Value: msg.MatchID}},
				UpdateExpression:    aws.String("SET lastMessage = :msg"),
				ConditionExpression: aws.String("attribute_exists(matchId)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":msg": &types.AttributeValueMemberM{Value: lastMessage},
				},
			}},
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

func (ds *DynamoStore) ListMessages(ctx context.Context, matchID string) ([]models.Message, error) {
	items, err := ds.queryItems(ctx, models.MessagesTable,
		"matchId = :matchId",
		map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchID},
		},
	)
	if err != nil {
		return nil, err
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	return messages, nil
}

func (ds *DynamoStore) MarkMessagesRead(ctx context.Context, matchID, readerID string) error {
	match, err := ds.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}

	messages, err := ds.ListMessages(ctx, matchID)
	if err != nil {
		return err
	}

	// One update per qualifying message; the read flag only moves false->true,
	// so a concurrent markRead doing the same writes is harmless
	for _, msg := range messages {
		if msg.SenderID == readerID || msg.Read {
			continue
		}
		_, err := ds.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(models.MessagesTable),
			Key: map[string]types.AttributeValue{
				"matchId":   &types.AttributeValueMemberS{Value: matchID},
				"messageId": &types.AttributeValueMemberS{Value: msg.MessageID},
			},
			UpdateExpression:          aws.String("SET #read = :true"),
			ExpressionAttributeNames:  map[string]string{"#read": "read"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":true": &types.AttributeValueMemberBOOL{Value: true}},
		})
		if err != nil {
			return fmt.Errorf("failed to mark message '%s' read: %w", msg.MessageID, err)
		}
	}

	// Keep the denormalized lastMessage copy in sync
	if match.LastMessage != nil && match.LastMessage.SenderID != readerID && !match.LastMessage.Read {
		_, err := ds.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(models.MatchesTable),
			Key:                       map[string]types.AttributeValue{"matchId": &types.AttributeValueMemberS{Value: matchID}},
			UpdateExpression:          aws.String("SET lastMessage.#read = :true"),
			ExpressionAttributeNames:  map[string]string{"#read": "read"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":true": &types.AttributeValueMemberBOOL{Value: true}},
		})
		if err != nil {
			return fmt.Errorf("failed to mark last message read: %w", err)
		}
	}
	return nil
}
