package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoOptions struct {
	URL      string
	Database string
	Timeout  time.Duration
}

// ConnectMongo dials the deployment and checks it answers a ping. Every
// operation on the returned client is bounded by opts.Timeout.
func ConnectMongo(ctx context.Context, opts MongoOptions) (*mongo.Client, error) {
	clientOpts := options.Client().ApplyURI(opts.URL)
	if opts.Timeout > 0 {
		clientOpts.SetTimeout(opts.Timeout).SetConnectTimeout(opts.Timeout)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("can not connect to mongo: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("can not reach mongo: %w", err)
	}

	return client, nil
}
