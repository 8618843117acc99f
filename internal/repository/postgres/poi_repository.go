package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/poi-explorer/internal/domain"
	"github.com/poi-explorer/internal/domain/repository"
	"github.com/poi-explorer/internal/pkg/errors"
)

type poiRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPOIRepository(db *DB) repository.POIRepository {
	return &poiRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const poiColumns = `
	id, user_id, name, description, latitude, longitude,
	category, is_visited, client_id, created_at, updated_at
`

func (r *poiRepository) Create(ctx context.Context, poi domain.POICreate) (int64, error) {
	if poi.Category == "" {
		poi.Category = domain.DefaultCategory
	}

	query := `
		INSERT INTO pois (
			user_id, name, description, latitude, longitude,
			category, is_visited, client_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		poi.UserID, poi.Name, poi.Description, poi.Latitude, poi.Longitude,
		poi.Category, poi.IsVisited, poi.ClientID,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to create POI",
			zap.Int64("user_id", poi.UserID),
			zap.String("name", poi.Name),
			zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return id, nil
}

func (r *poiRepository) GetByID(ctx context.Context, id int64) (*domain.POI, error) {
	query := `SELECT ` + poiColumns + ` FROM pois WHERE id = $1`

	var poi domain.POI
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&poi.ID, &poi.UserID, &poi.Name, &poi.Description,
		&poi.Latitude, &poi.Longitude, &poi.Category, &poi.IsVisited,
		&poi.ClientID, &poi.CreatedAt, &poi.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.ErrPOINotFound
	}
	if err != nil {
		r.logger.Error("Failed to get POI by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &poi, nil
}

func (r *poiRepository) GetAllByUser(ctx context.Context, userID int64) ([]*domain.POI, error) {
	query := `
		SELECT ` + poiColumns + `
		FROM pois
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	return r.queryPOIs(ctx, query, userID)
}

func (r *poiRepository) GetAllByUserAndCategories(
	ctx context.Context,
	userID int64,
	categories []string,
) ([]*domain.POI, error) {
	if len(categories) == 0 {
		return r.GetAllByUser(ctx, userID)
	}

	query := `
		SELECT ` + poiColumns + `
		FROM pois
		WHERE user_id = $1 AND category = ANY($2)
		ORDER BY created_at DESC, id DESC
	`

	return r.queryPOIs(ctx, query, userID, pq.Array(categories))
}

func (r *poiRepository) queryPOIs(ctx context.Context, query string, args ...interface{}) ([]*domain.POI, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query POIs", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	pois := make([]*domain.POI, 0)
	for rows.Next() {
		var poi domain.POI
		err := rows.Scan(
			&poi.ID, &poi.UserID, &poi.Name, &poi.Description,
			&poi.Latitude, &poi.Longitude, &poi.Category, &poi.IsVisited,
			&poi.ClientID, &poi.CreatedAt, &poi.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan POI", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		pois = append(pois, &poi)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate POIs", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return pois, nil
}

func (r *poiRepository) Update(ctx context.Context, id int64, patch domain.POIPatch) error {
	// SET собирается только из заданных полей; updated_at обновляется
	// всегда, даже для пустого patch
	setClauses := make([]string, 0, 8)
	args := make([]interface{}, 0, 8)
	argIdx := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Latitude != nil {
		addSet("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		addSet("longitude", *patch.Longitude)
	}
	if patch.Category != nil {
		addSet("category", *patch.Category)
	}
	if patch.IsVisited != nil {
		addSet("is_visited", *patch.IsVisited)
	}
	if patch.ClientID != nil {
		addSet("client_id", *patch.ClientID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(
		"UPDATE pois SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "),
		argIdx,
	)
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update POI", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to get affected rows", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrPOINotFound
	}

	return nil
}

func (r *poiRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pois WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete POI", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to get affected rows", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrPOINotFound
	}

	return nil
}
