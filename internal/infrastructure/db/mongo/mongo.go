package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MadeCbt/roombooking/internal/infrastructure/config"
)

// opTimeout bounds individual repository operations (inserts, finds, the
// conditional booking update) so a stalled replica cannot hang a request.
const opTimeout = 10 * time.Second

// Connect opens the client for the roombooking database and pings it before
// any repository is built, so a bad MONGO_URI fails at startup rather than
// on the first request.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = opTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect %q: %w", cfg.Database, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping %q: %w", cfg.Database, err)
	}

	return client, client.Database(cfg.Database), nil
}
