package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jortega87/restaurant-booking/internal/core/domain"
)

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Store(ctx context.Context, client *domain.Client) error {
	query := `
	INSERT INTO clients (id, name, email, phone, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		email = EXCLUDED.email,
		phone = EXCLUDED.phone,
		updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		client.ID(),
		client.Name(),
		client.Email(),
		client.Phone(),
		client.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to store client: %w", err)
	}

	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `
	SELECT id, name, email, phone, created_at
	FROM clients
	WHERE id = $1
	`

	var (
		clientID  uuid.UUID
		name      string
		email     sql.NullString
		phone     sql.NullString
		createdAt sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(&clientID, &name, &email, &phone, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return domain.ReconstituteClient(clientID, name, nullableString(email), nullableString(phone), createdAt.Time), nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %s: %w", id, domain.ErrClientNotFound)
	}
	return client, nil
}
