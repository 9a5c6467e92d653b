package pineconeDB

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/customHttpClient"
	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/rag/vectorDB"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
	"github.com/pinecone-io/go-pinecone/v4/pinecone"
)

type ClientHolder struct {
	index     *pinecone.IndexConnection
	indexName string
	logger    *logger_i.Logger
}

// FromExistingIndex binds to an index that was built elsewhere. It never creates one.
func FromExistingIndex(ctx context.Context, apiKey string, indexName string) (vectorDB.Retriever, error) {
	logger := logger_i.NewLogger("Pinecone").WithTrace(ctx)
	if apiKey == "" {
		return nil, failure.Newf(failure.MissingCredentials, "pinecone.client", "PINECONE_API_KEY is not set")
	}

	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		RestClient: customHttpClient.GetHttpClient(),
	})
	if err != nil {
		logger.Error("could not instantiate pinecone client", "error", err)
		return nil, failure.New(failure.DependencyUnavailable, "pinecone.client", err)
	}

	logger.Info("Connecting to Pinecone", "index", indexName)
	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		logger.Error("could not describe index", "index", indexName, "error", err)
		return nil, classifyError("pinecone.describe_index", err)
	}

	conn, err := pc.Index(pinecone.NewIndexConnParams{Host: idx.Host})
	if err != nil {
		logger.Error("could not connect to index", "host", idx.Host, "error", err)
		return nil, failure.New(failure.ConnectionFailure, "pinecone.index", err)
	}

	return &ClientHolder{index: conn, indexName: indexName, logger: logger_i.NewLogger("Pinecone")}, nil
}

func (db *ClientHolder) Search(ctx context.Context, vector []float32, topK int) ([]chatModel.Document, error) {
	log := db.logger.WithTrace(ctx)
	res, err := db.index.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(topK),
		IncludeMetadata: true,
	})
	if err != nil {
		log.Error("Error querying Pinecone", "index", db.indexName, "error", err)
		return nil, classifyError("pinecone.query", err)
	}

	docs := make([]chatModel.Document, 0, len(res.Matches))
	for i, match := range res.Matches {
		if doc, ok := toDocument(match, i); ok {
			docs = append(docs, doc)
		}
	}
	log.Debug("Found matches", "count", len(docs))
	return docs, nil
}

func (db *ClientHolder) Close() error {
	return db.index.Close()
}

// toDocument reads the langchain layout: chunk text under "text", the rest is metadata.
func toDocument(match *pinecone.ScoredVector, position int) (chatModel.Document, bool) {
	if match == nil || match.Vector == nil {
		return chatModel.Document{}, false
	}
	doc := chatModel.Document{
		Id:    match.Vector.Id,
		Score: match.Score,
		Meta:  map[string]string{},
	}
	if doc.Id == "" {
		doc.Id = fmt.Sprintf("match-%d", position+1)
	}
	if match.Vector.Metadata == nil {
		return doc, false
	}

	for key, value := range match.Vector.Metadata.GetFields() {
		var text string
		switch {
		case value.GetStringValue() != "":
			text = value.GetStringValue()
		case value.GetNumberValue() != 0:
			text = strconv.FormatFloat(value.GetNumberValue(), 'f', -1, 64)
		default:
			continue
		}
		switch key {
		case config.DocumentTextKey:
			doc.Content = text
		case config.DocumentSourceKey:
			doc.Source = text
		default:
			doc.Meta[key] = text
		}
	}
	return doc, doc.Content != ""
}

func classifyError(op string, err error) error {
	var pcErr *pinecone.PineconeError
	if errors.As(err, &pcErr) {
		kind := failure.FromHTTPStatus(pcErr.Code)
		if pcErr.Code == 404 {
			kind = failure.DependencyUnavailable
		}
		return failure.New(kind, op, err)
	}
	if kind, ok := failure.FromGrpcError(err); ok {
		return failure.New(kind, op, err)
	}
	return failure.New(failure.ConnectionFailure, op, err)
}
