package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"roomBooker/internal/booking"
	"roomBooker/internal/config"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS reservations (
		id           SERIAL PRIMARY KEY,
		room_id      INTEGER     NOT NULL,
		user_name    TEXT        NOT NULL,
		phone_number TEXT        NOT NULL DEFAULT '',
		date         DATE        NOT NULL,
		start_time   TIME        NOT NULL,
		end_time     TIME        NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (start_time < end_time)
	);
	CREATE INDEX IF NOT EXISTS reservations_room_date_idx ON reservations (room_id, date);`

const selectColumns = `
	id, room_id, user_name, phone_number,
	to_char(date, 'YYYY-MM-DD'),
	to_char(start_time, 'HH24:MI'),
	to_char(end_time, 'HH24:MI'),
	created_at`

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return New(db)
}

// New checks the connection and applies the schema. db is closed on failure.
func New(db *sql.DB) (*Storage, error) {
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	query := `SELECT` + selectColumns + `
		FROM reservations
		ORDER BY date ASC, start_time ASC, id ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, storage.Unavailable("failed to get reservations", err)
	}
	defer rows.Close()

	reservations, err := scanReservations(rows)
	if err != nil {
		return nil, storage.Unavailable("failed to get reservations", err)
	}

	return reservations, nil
}

// CreateReservation serialises writers per room with a transaction-scoped
// advisory lock, so the conflict check and the insert cannot interleave with
// another booking of the same room.
func (s *Storage) CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Reservation{}, storage.Unavailable("failed to begin transaction", err)
	}
	defer tx.Rollback()

	r.ID = 0
	if err = checkSlot(ctx, tx, r); err != nil {
		return models.Reservation{}, err
	}

	insertQuery := `
		INSERT INTO reservations (room_id, user_name, phone_number, date, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, NOW()))
		RETURNING id, created_at`

	err = tx.QueryRowContext(ctx, insertQuery,
		r.RoomID, r.UserName, r.PhoneNumber, r.Date, r.StartTime, r.EndTime, nullTime(r),
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return models.Reservation{}, storage.Unavailable("failed to create reservation", err)
	}

	if err = tx.Commit(); err != nil {
		return models.Reservation{}, storage.Unavailable("failed to commit reservation", err)
	}

	return r, nil
}

func (s *Storage) UpdateReservation(ctx context.Context, id int, r models.Reservation) (models.Reservation, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Reservation{}, storage.Unavailable("failed to begin transaction", err)
	}
	defer tx.Rollback()

	var createdAt sql.NullTime
	err = tx.QueryRowContext(ctx, `SELECT created_at FROM reservations WHERE id = $1 FOR UPDATE`, id).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reservation{}, fmt.Errorf("%w: %d", storage.ErrReservationNotFound, id)
		}
		return models.Reservation{}, storage.Unavailable("failed to check reservation", err)
	}

	r.ID = id
	r.CreatedAt = createdAt.Time
	if err = checkSlot(ctx, tx, r); err != nil {
		return models.Reservation{}, err
	}

	updateQuery := `
		UPDATE reservations
		SET room_id = $2, user_name = $3, phone_number = $4, date = $5, start_time = $6, end_time = $7
		WHERE id = $1`

	_, err = tx.ExecContext(ctx, updateQuery, id, r.RoomID, r.UserName, r.PhoneNumber, r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return models.Reservation{}, storage.Unavailable("failed to update reservation", err)
	}

	if err = tx.Commit(); err != nil {
		return models.Reservation{}, storage.Unavailable("failed to commit reservation", err)
	}

	return r, nil
}

func (s *Storage) DeleteReservation(ctx context.Context, id int) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return storage.Unavailable("failed to delete reservation", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storage.Unavailable("failed to delete reservation", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %d", storage.ErrReservationNotFound, id)
	}

	return nil
}

func (s *Storage) PurgeBefore(ctx context.Context, date string) (int, error) {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM reservations WHERE date < $1`, date)
	if err != nil {
		return 0, storage.Unavailable("failed to purge reservations", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, storage.Unavailable("failed to purge reservations", err)
	}

	return int(rowsAffected), nil
}

// checkSlot takes the room lock and runs the conflict test against the
// reservations already booked for the same room and date.
func checkSlot(ctx context.Context, tx *sql.Tx, r models.Reservation) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, r.RoomID); err != nil {
		return storage.Unavailable("failed to lock room", err)
	}

	query := `SELECT` + selectColumns + `
		FROM reservations
		WHERE room_id = $1 AND date = $2`

	rows, err := tx.QueryContext(ctx, query, r.RoomID, r.Date)
	if err != nil {
		return storage.Unavailable("failed to get room reservations", err)
	}
	defer rows.Close()

	existing, err := scanReservations(rows)
	if err != nil {
		return storage.Unavailable("failed to get room reservations", err)
	}

	if conflicts := booking.Conflicts(r, existing); len(conflicts) > 0 {
		return &booking.ConflictError{Conflicts: conflicts}
	}

	return nil
}

func scanReservations(rows *sql.Rows) ([]models.Reservation, error) {
	reservations := make([]models.Reservation, 0)

	for rows.Next() {
		var r models.Reservation
		err := rows.Scan(
			&r.ID,
			&r.RoomID,
			&r.UserName,
			&r.PhoneNumber,
			&r.Date,
			&r.StartTime,
			&r.EndTime,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservations: %w", err)
	}

	return reservations, nil
}

func nullTime(r models.Reservation) sql.NullTime {
	return sql.NullTime{Time: r.CreatedAt, Valid: !r.CreatedAt.IsZero()}
}
