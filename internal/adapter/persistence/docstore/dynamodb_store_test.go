package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/usecase/interfaces"
)

// fakeDynamo keeps items per table and understands the SET expressions the
// store generates. Scan returns one item per page to exercise pagination.
type fakeDynamo struct {
	tables  map[string]map[string]map[string]types.AttributeValue
	lastPut *dynamodb.PutItemInput
	failErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	if f.tables[name] == nil {
		f.tables[name] = map[string]map[string]types.AttributeValue{}
	}
	return f.tables[name]
}

func keyOf(key map[string]types.AttributeValue) string {
	return key["id"].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return &dynamodb.GetItemOutput{Item: f.table(*in.TableName)[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	f.table(*in.TableName)[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	item, ok := f.table(*in.TableName)[keyOf(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	assignments := strings.Split(strings.TrimPrefix(*in.UpdateExpression, "SET "), ", ")
	for _, a := range assignments {
		parts := strings.Split(a, " = ")
		item[in.ExpressionAttributeNames[parts[0]]] = in.ExpressionAttributeValues[parts[1]]
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	items := f.table(*in.TableName)
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := 0
	if in.ExclusiveStartKey != nil {
		last := keyOf(in.ExclusiveStartKey)
		for i, id := range ids {
			if id == last {
				start = i + 1
			}
		}
	}
	if start >= len(ids) {
		return &dynamodb.ScanOutput{}, nil
	}
	out := &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{items[ids[start]]}}
	if start+1 < len(ids) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: ids[start]}}
	}
	return out, nil
}

func TestDynamoStore_PutWritesNumbers(t *testing.T) {
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, "eisen_", 0)

	err := store.Put(context.Background(), "facturas", "FAC-001", interfaces.Document{
		"total": json.Number("1600.00"),
		"pagos": []any{map[string]any{"monto": json.Number("800.00"), "metodo": "ACH"}},
	})
	require.NoError(t, err)

	require.NotNil(t, fake.lastPut)
	assert.Equal(t, "eisen_facturas", *fake.lastPut.TableName)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "1600.00"}, fake.lastPut.Item["total"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "FAC-001"}, fake.lastPut.Item["id"])

	doc, err := store.Get(context.Background(), "facturas", "FAC-001")
	require.NoError(t, err)
	assert.Equal(t, json.Number("1600.00"), doc["total"])
	pagos := doc["pagos"].([]any)
	assert.Equal(t, json.Number("800.00"), pagos[0].(map[string]any)["monto"])
}

func TestDynamoStore_GetMissing(t *testing.T) {
	store := NewDynamoStore(newFakeDynamo(), "", 0)

	doc, err := store.Get(context.Background(), "pagos", "PAG-404")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestDynamoStore_GetError(t *testing.T) {
	fake := newFakeDynamo()
	fake.failErr = errors.New("throttled")
	store := NewDynamoStore(fake, "", 0)

	_, err := store.Get(context.Background(), "pagos", "PAG-001")
	assert.EqualError(t, err, "throttled")
}

func TestDynamoStore_ListPages(t *testing.T) {
	ctx := context.Background()
	store := NewDynamoStore(newFakeDynamo(), "", 0)
	for _, id := range []string{"T-3", "T-1", "T-2"} {
		require.NoError(t, store.Put(ctx, "tickets", id, interfaces.Document{"estado": "En Proceso"}))
	}

	docs, err := store.List(ctx, "tickets")
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "T-1", docs[0]["id"])
	assert.Equal(t, "T-3", docs[2]["id"])
}

func TestDynamoStore_Update(t *testing.T) {
	ctx := context.Background()
	store := NewDynamoStore(newFakeDynamo(), "", 0)
	require.NoError(t, store.Put(ctx, "facturas", "FAC-001", interfaces.Document{"estado": "Enviada", "total": json.Number("1600")}))

	require.NoError(t, store.Update(ctx, "facturas", "FAC-001", interfaces.Document{
		"estado":          "Vencida",
		"diasVencimiento": json.Number("-1"),
	}))

	doc, err := store.Get(ctx, "facturas", "FAC-001")
	require.NoError(t, err)
	assert.Equal(t, "Vencida", doc["estado"])
	assert.Equal(t, json.Number("-1"), doc["diasVencimiento"])
	assert.Equal(t, json.Number("1600"), doc["total"])
}

func TestDynamoStore_UpdateMissing(t *testing.T) {
	store := NewDynamoStore(newFakeDynamo(), "", 0)

	err := store.Update(context.Background(), "facturas", "FAC-404", interfaces.Document{"estado": "Pagada"})
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "FAC-404", nf.ID)
}
