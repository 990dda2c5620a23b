package docstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/usecase/interfaces"
)

// DynamoAPI is the subset of the DynamoDB client the store calls.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoStore keeps every collection in its own table.
//
// Table requirements:
//   - name: <prefix><collection>, e.g. "eisen_facturas"
//   - PK: id (string)
type DynamoStore struct {
	ddb     DynamoAPI
	prefix  string
	timeout time.Duration
}

var _ interfaces.IDocumentStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb DynamoAPI, tablePrefix string, timeout time.Duration) *DynamoStore {
	return &DynamoStore{ddb: ddb, prefix: tablePrefix, timeout: timeout}
}

func (s *DynamoStore) table(collection string) *string {
	return aws.String(s.prefix + collection)
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		idField: &types.AttributeValueMemberS{Value: id},
	}
}

func decodeItem(item map[string]types.AttributeValue) (interfaces.Document, error) {
	var doc map[string]any
	err := attributevalue.UnmarshalMapWithOptions(item, &doc, func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	})
	if err != nil {
		return nil, err
	}
	return fromStoreNumbers(doc).(map[string]any), nil
}

func (s *DynamoStore) Get(ctx context.Context, collection, id string) (interfaces.Document, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      s.table(collection),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	doc, err := decodeItem(out.Item)
	if err != nil {
		return nil, err
	}
	return withID(doc, id), nil
}

func (s *DynamoStore) List(ctx context.Context, collection string) ([]interfaces.Document, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var docs []interfaces.Document
	p := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName:      s.table(collection),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			doc, err := decodeItem(item)
			if err != nil {
				return nil, err
			}
			if id, ok := item[idField].(*types.AttributeValueMemberS); ok {
				doc = withID(doc, id.Value)
			}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (s *DynamoStore) Put(ctx context.Context, collection, id string, doc interfaces.Document) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	item, err := attributevalue.MarshalMap(toStoreNumbers(merge(doc, interfaces.Document{idField: id})))
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: s.table(collection),
		Item:      item,
	})
	return err
}

// Update sets the given top-level fields on an existing item.
func (s *DynamoStore) Update(ctx context.Context, collection, id string, partial interfaces.Document) error {
	if len(partial) == 0 {
		return nil
	}
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	fields := make([]string, 0, len(partial))
	for k := range partial {
		if k != idField {
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)

	names := map[string]string{"#id": idField}
	values := make(map[string]types.AttributeValue, len(fields))
	expr := "SET "
	for i, f := range fields {
		av, err := attributevalue.Marshal(toStoreNumbers(partial[f]))
		if err != nil {
			return err
		}
		n, v := fmt.Sprintf("#f%d", i), fmt.Sprintf(":v%d", i)
		names[n] = f
		values[v] = av
		if i > 0 {
			expr += ", "
		}
		expr += n + " = " + v
	}
	if len(fields) == 0 {
		return nil
	}

	_, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 s.table(collection),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return domain.NewNotFoundError(collection, id)
		}
		return err
	}
	return nil
}
