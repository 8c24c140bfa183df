// Package qdrant provides a VectorDB implementation using Qdrant.
package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emryn/chronicle/internal/domain/entities"
	"github.com/emryn/chronicle/internal/domain/ports"
	"github.com/emryn/chronicle/internal/infrastructure/config"
)

// Repository implements the VectorDB interface using Qdrant.
type Repository struct {
	client     pb.CollectionsClient
	points     pb.PointsClient
	collection string
	conn       *grpc.ClientConn
}

// NewRepository creates a new Qdrant repository.
func NewRepository(cfg config.QdrantConfig) (*Repository, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connecting to qdrant: %w", err)
	}

	return &Repository{
		client:     pb.NewCollectionsClient(conn),
		points:     pb.NewPointsClient(conn),
		collection: cfg.Collection,
		conn:       conn,
	}, nil
}

// Close closes the gRPC connection.
func (r *Repository) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// EnsureCollection creates the collection if it doesn't exist.
func (r *Repository) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	_, err := r.client.Get(ctx, &pb.GetCollectionInfoRequest{
		CollectionName: r.collection,
	})
	if err == nil {
		return nil
	}

	_, err = r.client.Create(ctx, &pb.CreateCollection{
		CollectionName: r.collection,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     vectorSize,
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	return nil
}

// DeleteCollection removes the collection and all its data.
func (r *Repository) DeleteCollection(ctx context.Context) error {
	_, err := r.client.Delete(ctx, &pb.DeleteCollection{
		CollectionName: r.collection,
	})
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	return nil
}

// Count returns the number of points in the collection.
func (r *Repository) Count(ctx context.Context) (uint64, error) {
	resp, err := r.points.Count(ctx, &pb.CountPoints{
		CollectionName: r.collection,
	})
	if err != nil {
		return 0, fmt.Errorf("counting points: %w", err)
	}
	return resp.Result.Count, nil
}

// pointID derives a stable UUID for an entity key, so re-syncing the same
// entity upserts instead of duplicating.
func pointID(key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

// Save stores an entity record with its embedding.
func (r *Repository) Save(ctx context.Context, rec entities.EntityRecord) error {
	return r.SaveBatch(ctx, []entities.EntityRecord{rec})
}

// SaveBatch stores multiple entity records.
func (r *Repository) SaveBatch(ctx context.Context, recs []entities.EntityRecord) error {
	points := make([]*pb.PointStruct, 0, len(recs))

	for _, rec := range recs {
		point := &pb.PointStruct{
			Id: &pb.PointId{
				PointIdOptions: &pb.PointId_Uuid{
					Uuid: pointID(rec.Key),
				},
			},
			Vectors: &pb.Vectors{
				VectorsOptions: &pb.Vectors_Vector{
					Vector: &pb.Vector{
						Data: rec.Embedding,
					},
				},
			},
			Payload: map[string]*pb.Value{
				"key":         {Kind: &pb.Value_StringValue{StringValue: rec.Key}},
				"world_id":    {Kind: &pb.Value_StringValue{StringValue: rec.WorldID}},
				"kind":        {Kind: &pb.Value_StringValue{StringValue: string(rec.Kind)}},
				"name":        {Kind: &pb.Value_StringValue{StringValue: rec.Name}},
				"description": {Kind: &pb.Value_StringValue{StringValue: rec.Description}},
			},
		}
		points = append(points, point)
	}

	_, err := r.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: r.collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("upserting points: %w", err)
	}

	return nil
}

// Search returns the entities most similar to the query embedding.
func (r *Repository) Search(ctx context.Context, embedding []float32, limit int) ([]ports.EntityHit, error) {
	resp, err := r.points.Search(ctx, &pb.SearchPoints{
		CollectionName: r.collection,
		Vector:         embedding,
		Limit:          uint64(limit),
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("searching points: %w", err)
	}

	hits := make([]ports.EntityHit, 0, len(resp.Result))
	for _, point := range resp.Result {
		hits = append(hits, ports.EntityHit{
			Record: payloadToRecord(point.Payload),
			Score:  point.Score,
		})
	}
	return hits, nil
}

// Delete removes an entity record by its graph key.
func (r *Repository) Delete(ctx context.Context, key string) error {
	_, err := r.points.Delete(ctx, &pb.DeletePoints{
		CollectionName: r.collection,
		Points: &pb.PointsSelector{
			PointsSelectorOneOf: &pb.PointsSelector_Points{
				Points: &pb.PointsIdsList{
					Ids: []*pb.PointId{
						{PointIdOptions: &pb.PointId_Uuid{Uuid: pointID(key)}},
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("deleting point: %w", err)
	}

	return nil
}

// payloadToRecord converts a qdrant payload back to an entity record.
func payloadToRecord(payload map[string]*pb.Value) entities.EntityRecord {
	return entities.EntityRecord{
		Key:            payloadString(payload, "key"),
		WorldID:        payloadString(payload, "world_id"),
		Kind:           entities.EntityKind(payloadString(payload, "kind")),
		Name:           payloadString(payload, "name"),
		NormalizedName: entities.NormalizeName(payloadString(payload, "name")),
		Description:    payloadString(payload, "description"),
	}
}

// payloadString safely extracts a string value from a payload.
func payloadString(payload map[string]*pb.Value, key string) string {
	if v, ok := payload[key]; ok {
		return v.GetStringValue()
	}
	return ""
}
