// Package dbauth supplies database credentials at connection time. The
// relational store may authenticate with a static password or with an
// IAM auth token that has to be freshly generated for every connection
// attempt, so the credential lookup hangs off the pool's connect path
// rather than the connection string.
package dbauth

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/rds/auth"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenProvider supplies the password for a database connection attempt
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Static is a TokenProvider that returns the same password every time
type Static string

// Token implements TokenProvider
func (s Static) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

// RDSIAM generates an RDS IAM auth token per connection attempt
type RDSIAM struct {
	endpoint string // host:port
	region   string
	user     string
	creds    aws.CredentialsProvider
}

// NewRDSIAM creates an RDS IAM token provider using the default AWS
// credential chain.
func NewRDSIAM(ctx context.Context, endpoint, region, user string) (*RDSIAM, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &RDSIAM{
		endpoint: endpoint,
		region:   region,
		user:     user,
		creds:    cfg.Credentials,
	}, nil
}

// Token implements TokenProvider. Tokens are short-lived, so one is
// built for each call rather than cached.
func (p *RDSIAM) Token(ctx context.Context) (string, error) {
	token, err := auth.BuildAuthToken(ctx, p.endpoint, p.region, p.user, p.creds)
	if err != nil {
		return "", fmt.Errorf("failed to build RDS auth token: %w", err)
	}
	return token, nil
}

// NewPool creates a pgx connection pool whose connections authenticate
// through the given provider and can scan numeric columns into
// shopspring decimals. A nil provider leaves whatever credential the
// connection string carries untouched.
func NewPool(ctx context.Context, databaseURL string, provider TokenProvider) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	if provider != nil {
		cfg.BeforeConnect = func(ctx context.Context, cc *pgx.ConnConfig) error {
			token, err := provider.Token(ctx)
			if err != nil {
				return fmt.Errorf("failed to obtain database credential: %w", err)
			}
			cc.Password = token
			return nil
		}
	}

	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return pool, nil
}
