package docstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"eisen_qms/internal/usecase/interfaces"
)

const idField = "id"

// withID returns doc carrying id under "id" when the stored body lacks it.
func withID(doc interfaces.Document, id string) interfaces.Document {
	if doc == nil {
		return nil
	}
	if v, ok := doc[idField].(string); !ok || v == "" {
		doc[idField] = id
	}
	return doc
}

// merge applies partial over base at the top level.
func merge(base, partial interfaces.Document) interfaces.Document {
	out := make(interfaces.Document, len(base)+len(partial))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range partial {
		out[k] = v
	}
	return out
}

// toStoreNumbers rewrites json.Number values so the attributevalue encoder
// stores them as DynamoDB numbers instead of strings.
func toStoreNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		return attributevalue.Number(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = toStoreNumbers(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = toStoreNumbers(e)
		}
		return out
	}
	return v
}

// fromStoreNumbers is the inverse of toStoreNumbers.
func fromStoreNumbers(v any) any {
	switch t := v.(type) {
	case attributevalue.Number:
		return json.Number(t)
	case map[string]any:
		for k, e := range t {
			t[k] = fromStoreNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = fromStoreNumbers(e)
		}
		return t
	}
	return v
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
