package qdrantDB

import (
	"context"
	"slices"
	"strconv"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/rag/vectorDB"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
	"github.com/qdrant/go-client/qdrant"
)

type ClientHolder struct {
	QObj           *qdrant.Client
	collectionName string
	logger         *logger_i.Logger
}

type Params struct {
	Host           string
	Port           int
	APIKey         string
	CollectionName string
}

// FromExistingCollection connects over gRPC and checks the collection is there.
func FromExistingCollection(ctx context.Context, params Params) (vectorDB.Retriever, error) {
	logger := logger_i.NewLogger("Qdrant").WithTrace(ctx)

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     params.Host,
		Port:     params.Port,
		APIKey:   params.APIKey,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate", "error", err)
		return nil, failure.New(failure.DependencyUnavailable, "qdrant.client", err)
	}

	exists, err := client.CollectionExists(ctx, params.CollectionName)
	if err != nil {
		logger.Error("could not reach qdrant", "host", params.Host, "error", err)
		_ = client.Close()
		return nil, classifyError("qdrant.collection_exists", err)
	}
	if !exists {
		_ = client.Close()
		return nil, failure.Newf(failure.DependencyUnavailable, "qdrant.collection_exists", "collection %q does not exist", params.CollectionName)
	}

	logger.Info("Connected to Qdrant", "collection", params.CollectionName)
	return &ClientHolder{QObj: client, collectionName: params.CollectionName, logger: logger_i.NewLogger("Qdrant")}, nil
}

func (db *ClientHolder) Search(ctx context.Context, vector []float32, topK int) ([]chatModel.Document, error) {
	log := db.logger.WithTrace(ctx)
	result, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: db.collectionName,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(topK)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		log.Error("Error querying Qdrant", "error", err)
		return nil, classifyError("qdrant.query", err)
	}

	docs := make([]chatModel.Document, 0, len(result))
	for _, hit := range result {
		if doc, ok := toDocument(hit); ok {
			docs = append(docs, doc)
		}
	}
	log.Debug("Found matches", "count", len(docs))
	return docs, nil
}

func (db *ClientHolder) Close() error {
	return db.QObj.Close()
}

func toDocument(hit *qdrant.ScoredPoint) (chatModel.Document, bool) {
	if hit == nil {
		return chatModel.Document{}, false
	}
	doc := chatModel.Document{Score: hit.Score, Meta: map[string]string{}}
	if hit.Id != nil {
		if uuid := hit.Id.GetUuid(); uuid != "" {
			doc.Id = uuid
		} else {
			doc.Id = qdrantNumID(hit.Id.GetNum())
		}
	}
	for _, key := range contentKeys {
		if text := hit.Payload[key].GetStringValue(); text != "" {
			doc.Content = text
			break
		}
	}
	for key, value := range hit.Payload {
		text := value.GetStringValue()
		if text == "" || slices.Contains(contentKeys, key) {
			continue
		}
		if key == config.DocumentSourceKey {
			doc.Source = text
			continue
		}
		doc.Meta[key] = text
	}
	return doc, doc.Content != ""
}

// contentKeys in priority order. The first non-empty one becomes the chunk text.
var contentKeys = []string{config.DocumentTextKey, "page_content", "content"}

func qdrantNumID(n uint64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatUint(n, 10)
}

// anything that is not a gRPC status means we never reached the server
func classifyError(op string, err error) error {
	if kind, ok := failure.FromGrpcError(err); ok {
		return failure.New(kind, op, err)
	}
	return failure.New(failure.ConnectionFailure, op, err)
}
