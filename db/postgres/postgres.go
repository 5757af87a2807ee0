package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"fueldelivery/models"
)

// PostgresDB holds the order database connection pool.
type PostgresDB struct {
	Conn   *sql.DB
	Ctx    context.Context
	Cancel context.CancelFunc
	URL    string
}

func NewPostgresDB(url string) *PostgresDB {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	return &PostgresDB{
		Ctx:    ctx,
		Cancel: cancel,
		URL:    url,
	}
}

// Connect opens the pool and pings it. An empty URL is a configuration
// error; a failed ping means the store is down.
func (p *PostgresDB) Connect() error {
	if p.URL == "" {
		return errors.Wrap(models.ErrConfigMissing, "POSTGRES_URL is empty")
	}
	conn, err := sql.Open("postgres", p.URL)
	if err != nil {
		return errors.Wrap(models.ErrConfigMissing, "invalid POSTGRES_URL: "+err.Error())
	}

	conn.SetMaxOpenConns(5)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(30 * time.Minute)

	if err := conn.PingContext(p.Ctx); err != nil {
		conn.Close()
		return models.StoreError("ping postgres", err)
	}
	p.Conn = conn
	log.Info().Msg("connected to postgres")
	return nil
}

func (p *PostgresDB) Disconnect() error {
	p.Cancel()
	if p.Conn != nil {
		return p.Conn.Close()
	}
	return nil
}
