package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/newtron-network/fgobj/pkg/util"
)

// Redis key prefixes of the outbox.
const (
	APIKeyPrefix = "FGAPI"
	CLIKeyPrefix = "FGCLI"
)

// RedisSink queues rendered objects in Redis for an external applier.
// Each API request becomes a hash at FGAPI|<vdom>|<path>.<name>|<key>|<op>;
// each CLI script is appended to the list FGCLI|<vdom>. "global" stands in
// for objects outside any VDOM.
type RedisSink struct {
	client *redis.Client
}

// NewRedisSink creates a sink writing to the given Redis database.
func NewRedisSink(addr string, db int) *RedisSink {
	return &RedisSink{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		}),
	}
}

// Connect tests the connection.
func (s *RedisSink) Connect(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the connection.
func (s *RedisSink) Close() error {
	return s.client.Close()
}

// APIKey returns the hash key an API request is stored under, or "" when r
// carries no request.
func APIKey(r Rendered) string {
	if r.API == nil {
		return ""
	}
	key := r.ID
	if r.API.MKey != nil {
		key = r.API.MKey
	}
	return fmt.Sprintf("%s|%s|%s.%s|%v|%s", APIKeyPrefix, outboxVDOM(r), r.API.Path, r.API.Name, key, r.Op)
}

// CLIKey returns the list key a CLI script is appended to.
func CLIKey(r Rendered) string {
	return CLIKeyPrefix + "|" + outboxVDOM(r)
}

func outboxVDOM(r Rendered) string {
	if r.VDOM == "" {
		return "global"
	}
	return r.VDOM
}

// apiFields flattens a request into hash fields. Structured values are
// JSON encoded.
func apiFields(r Rendered) ([]interface{}, error) {
	mkey, err := json.Marshal(r.API.MKey)
	if err != nil {
		return nil, err
	}
	params, err := json.Marshal(r.API.Parameters)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(r.API.Data)
	if err != nil {
		return nil, err
	}
	return []interface{}{
		"api", r.API.API,
		"path", r.API.Path,
		"name", r.API.Name,
		"mkey", string(mkey),
		"parameters", string(params),
		"data", string(data),
		"op", string(r.Op),
	}, nil
}

// Write queues batch in a single MULTI/EXEC transaction: either every
// object is queued or none is.
func (s *RedisSink) Write(ctx context.Context, batch []Rendered) error {
	if len(batch) == 0 {
		return nil
	}

	pipe := s.client.TxPipeline()
	for _, r := range batch {
		if r.API == nil {
			return fmt.Errorf("%s %v: no API request to queue", r.Kind, r.ID)
		}
		fields, err := apiFields(r)
		if err != nil {
			return fmt.Errorf("encoding %s %v: %w", r.Kind, r.ID, err)
		}
		pipe.HSet(ctx, APIKey(r), fields...)
		if r.CLI != "" {
			pipe.RPush(ctx, CLIKey(r), r.CLI)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return fmt.Errorf("pipeline exec: %w", err)
	}
	util.Debugf("queued %d objects in redis", len(batch))
	return nil
}
