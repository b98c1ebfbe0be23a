package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

type reservationRow struct {
	bun.BaseModel `bun:"table:reservations,alias:r"`

	ID             string    `bun:"id,pk"`
	RestaurantID   string    `bun:"restaurant_id,notnull"`
	RestaurantName string    `bun:"restaurant_name"`
	Name           string    `bun:"name,notnull"`
	Phone          string    `bun:"phone"`
	Date           string    `bun:"res_date,notnull"`
	Time           string    `bun:"res_time,notnull"`
	PartySize      int       `bun:"party_size,notnull"`
	Status         string    `bun:"status,notnull"`
	CreatedAt      time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// BunStore persists reservations in Postgres.
type BunStore struct {
	db *bun.DB
}

type BunConfig struct {
	DSN     string        `envconfig:"DSN" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

func NewBunStore(cfg BunConfig) (*BunStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(timeout),
	))
	return &BunStore{db: bun.NewDB(sqldb, pgdialect.New())}, nil
}

// Init creates the reservations table if it does not exist yet.
func (s *BunStore) Init(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*reservationRow)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("%w: create reservations table: %v", contractx.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *BunStore) Add(ctx context.Context, rec contractx.Reservation) (string, error) {
	row := rowFromReservation(rec)
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return "", fmt.Errorf("%w: insert reservation: %v", contractx.ErrStorageUnavailable, err)
	}
	return rec.ID, nil
}

func (s *BunStore) Find(ctx context.Context, restaurantID, date, timeSlot string) ([]contractx.Reservation, error) {
	var rows []reservationRow
	err := s.db.NewSelect().
		Model(&rows).
		Where("restaurant_id = ?", restaurantID).
		Where("res_date = ?", date).
		Where("res_time = ?", timeSlot).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: query reservations: %v", contractx.ErrStorageUnavailable, err)
	}
	return reservationsFromRows(rows), nil
}

func (s *BunStore) All(ctx context.Context) ([]contractx.Reservation, error) {
	var rows []reservationRow
	if err := s.db.NewSelect().Model(&rows).Order("created_at ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("%w: query reservations: %v", contractx.ErrStorageUnavailable, err)
	}
	return reservationsFromRows(rows), nil
}

func (s *BunStore) Clear(ctx context.Context) error {
	if _, err := s.db.NewTruncateTable().Model((*reservationRow)(nil)).Exec(ctx); err != nil {
		return fmt.Errorf("%w: truncate reservations: %v", contractx.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *BunStore) Close() error {
	return s.db.Close()
}

func rowFromReservation(rec contractx.Reservation) reservationRow {
	return reservationRow{
		ID:             rec.ID,
		RestaurantID:   rec.RestaurantID,
		RestaurantName: rec.RestaurantName,
		Name:           rec.Name,
		Phone:          rec.Phone,
		Date:           rec.Date,
		Time:           rec.Time,
		PartySize:      rec.PartySize,
		Status:         rec.Status,
	}
}

func reservationsFromRows(rows []reservationRow) []contractx.Reservation {
	if len(rows) == 0 {
		return nil
	}
	records := make([]contractx.Reservation, 0, len(rows))
	for _, row := range rows {
		records = append(records, contractx.Reservation{
			ID:             row.ID,
			RestaurantID:   row.RestaurantID,
			RestaurantName: row.RestaurantName,
			Name:           row.Name,
			Phone:          row.Phone,
			Date:           row.Date,
			Time:           row.Time,
			PartySize:      row.PartySize,
			Status:         row.Status,
		})
	}
	return records
}
