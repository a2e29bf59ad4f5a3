package journals

import (
	"context"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"
	"psychology-assessment-client/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type journalMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewJournalMongoRepository(db *mongo.Database, collectionName string, logger *zap.Logger) contracts.JournalRepository {
	return &journalMongoRepository{
		Collection: db.Collection(collectionName),
		Log:        logger,
	}
}

func (r *journalMongoRepository) Insert(ctx context.Context, record *models.SubmissionRecord) error {
	requestID := utils.GetRequestID(ctx)

	now := time.Now()
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	_, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		r.Log.Error("journalMongoRepository.Insert error inserting record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, record.SubmissionID.String()),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBInsertDocument(err)
	}

	r.Log.Info("journalMongoRepository.Insert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, record.SubmissionID.String()),
	)
	return nil
}

// UpdateStatus stamps completedAt the first time a terminal status is
// recorded.
func (r *journalMongoRepository) UpdateStatus(ctx context.Context, submissionID models.SubmissionID, status models.ReportStatus, message string) error {
	requestID := utils.GetRequestID(ctx)

	now := time.Now()
	set := bson.M{
		"status":    status,
		"message":   message,
		"updatedAt": now,
	}
	if status.IsTerminal() {
		set["completedAt"] = now
	}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"submissionId": submissionID}, bson.M{"$set": set})
	if err != nil {
		r.Log.Error("journalMongoRepository.UpdateStatus error updating record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, submissionID.String()),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *journalMongoRepository) FindRecent(ctx context.Context, limit int64) ([]models.SubmissionRecord, error) {
	requestID := utils.GetRequestID(ctx)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.Log.Error("journalMongoRepository.FindRecent error finding records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	records := make([]models.SubmissionRecord, 0, limit)
	if err := cursor.All(ctx, &records); err != nil {
		r.Log.Error("journalMongoRepository.FindRecent error decoding records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	r.Log.Info("journalMongoRepository.FindRecent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(records)),
	)
	return records, nil
}
