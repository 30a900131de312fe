package notifier

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"service-broker/internal/usecase/shared"
)

const (
	mongoCollection   = "notifications"
	mongoWriteTimeout = 5 * time.Second
)

// MongoNotifier stores notifications in a Mongo collection read by the
// delivery side.
type MongoNotifier struct {
	notifications *mongo.Collection
}

func NewMongoNotifier(client *mongo.Client, dbName string) *MongoNotifier {
	return &MongoNotifier{
		notifications: client.Database(dbName).Collection(mongoCollection),
	}
}

func (n *MongoNotifier) EnsureIndexes(ctx context.Context) error {
	_, err := n.notifications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "recipient_type", Value: 1}, {Key: "recipient_id", Value: 1}, {Key: "occurred_at", Value: -1}}},
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
	})
	return err
}

func (n *MongoNotifier) Notify(ctx context.Context, msg shared.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, mongoWriteTimeout)
	defer cancel()
	_, err := n.notifications.InsertOne(ctx, toMessage(msg))
	return err
}

// ConnectMongo opens and pings a client for the configured URI.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, mongoWriteTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}
