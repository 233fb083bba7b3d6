package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/loan_service/internal/apperrors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectionState is the lifecycle position of a MongoConnector.
type ConnectionState int32

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateConnected
)

func (s ConnectionState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// MongoConfig describes how to reach the document store and how hard to try.
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	RetryInterval  time.Duration
	// MaxAttempts bounds the number of connection attempts; zero retries forever.
	MaxAttempts int
}

// DialFunc opens a client and confirms the server answers.
type DialFunc func(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error)

// MongoConnector owns the MongoDB client and establishes it with fixed-interval retries.
// Once connected, the driver's own server monitoring handles later outages.
type MongoConnector struct {
	cfg    MongoConfig
	dial   DialFunc
	logger *slog.Logger

	mu       sync.RWMutex
	state    ConnectionState
	client   *mongo.Client
	attempts int
}

// ConnectorOption configures optional MongoConnector dependencies.
type ConnectorOption func(*MongoConnector)

// WithDialFunc replaces the function used to open clients.
func WithDialFunc(dial DialFunc) ConnectorOption {
	return func(c *MongoConnector) {
		c.dial = dial
	}
}

// NewMongoConnector creates a connector in the disconnected state. Call Run to connect.
func NewMongoConnector(cfg MongoConfig, logger *slog.Logger, opts ...ConnectorOption) (*MongoConnector, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("%w: mongo URI cannot be empty", apperrors.ErrConfiguration)
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("%w: mongo database name cannot be empty", apperrors.ErrConfiguration)
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 5 * time.Second
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &MongoConnector{
		cfg:    cfg,
		dial:   DialMongo,
		logger: logger.With(slog.String("component", "mongodb")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// DialMongo connects and pings the primary.
func DialMongo(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return client, nil
}

// Run attempts to connect until it succeeds, ctx is cancelled, or MaxAttempts is reached.
// Failed attempts are logged and retried after RetryInterval.
func (c *MongoConnector) Run(ctx context.Context) error {
	for {
		attempt := c.beginAttempt()
		c.logger.Info("Connecting to MongoDB...", slog.Int("attempt", attempt))

		dialCtx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
		client, err := c.dial(dialCtx, c.clientOptions())
		cancel()

		if err == nil {
			c.mu.Lock()
			c.client = client
			c.state = StateConnected
			c.mu.Unlock()
			c.logger.Info("Connected to MongoDB successfully", slog.Int("attempt", attempt), slog.String("database", c.cfg.Database))
			return nil
		}

		c.setState(StateDisconnected)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if c.cfg.MaxAttempts > 0 && attempt >= c.cfg.MaxAttempts {
			c.logger.Error("Giving up connecting to MongoDB", slog.Int("attempt", attempt), slog.String("error", err.Error()))
			return fmt.Errorf("%w after %d attempts: %v", apperrors.ErrConnectionAttemptsExhausted, attempt, err)
		}

		c.logger.Error("MongoDB connection attempt failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("retry_in", c.cfg.RetryInterval),
			slog.String("error", err.Error()),
		)

		timer := time.NewTimer(c.cfg.RetryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Database returns the configured database, or apperrors.ErrNotConnected before Run succeeds.
func (c *MongoConnector) Database() (*mongo.Database, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state != StateConnected || c.client == nil {
		return nil, apperrors.ErrNotConnected
	}
	return c.client.Database(c.cfg.Database), nil
}

// State reports the current connection state.
func (c *MongoConnector) State() ConnectionState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Attempts reports how many connection attempts have been started.
func (c *MongoConnector) Attempts() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.attempts
}

// Close disconnects the client if one was established.
func (c *MongoConnector) Close(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	c.client = nil
	c.state = StateDisconnected
	c.mu.Unlock()

	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil && !errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("failed to disconnect mongo client: %w", err)
	}
	c.logger.Info("MongoDB connection closed.")
	return nil
}

func (c *MongoConnector) clientOptions() *options.ClientOptions {
	return options.Client().
		ApplyURI(c.cfg.URI).
		SetConnectTimeout(c.cfg.ConnectTimeout).
		SetServerSelectionTimeout(c.cfg.ConnectTimeout)
}

func (c *MongoConnector) beginAttempt() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attempts++
	c.state = StateConnecting
	return c.attempts
}

func (c *MongoConnector) setState(state ConnectionState) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}
