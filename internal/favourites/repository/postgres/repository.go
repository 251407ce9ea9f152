package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/domain"
	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
)

// PgxPool is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db PgxPool
}

func NewRepository(db PgxPool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, userID string) ([]domain.Favourite, error) {
	query := `
		SELECT exercise_id, name, type, muscle, equipment, difficulty, instructions, added_at
		FROM favourites
		WHERE user_id = $1
		ORDER BY added_at;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favourites: %w", err)
	}
	defer rows.Close()

	favs := make([]domain.Favourite, 0)
	for rows.Next() {
		var f domain.Favourite
		if err := rows.Scan(&f.ExerciseID, &f.Name, &f.Type, &f.Muscle,
			&f.Equipment, &f.Difficulty, &f.Instructions, &f.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favourite: %w", err)
		}
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

// Add relies on the unique index on (user_id, name): a concurrent duplicate
// insert simply affects zero rows.
func (r *Repository) Add(ctx context.Context, userID string, fav domain.Favourite) error {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO favourites (user_id, exercise_id, name, type, muscle, equipment, difficulty, instructions, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, name) DO NOTHING
	`, userID, fav.ExerciseID, fav.Name, fav.Type, fav.Muscle, fav.Equipment,
		fav.Difficulty, fav.Instructions, fav.AddedAt)
	if err != nil {
		return fmt.Errorf("failed to add favourite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFavouriteExists
	}
	return nil
}

func (r *Repository) Remove(ctx context.Context, userID, exerciseName string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM favourites
		WHERE user_id = $1 AND name = $2
	`, userID, exerciseName)
	if err != nil {
		return fmt.Errorf("failed to remove favourite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFavouriteNotFound
	}
	return nil
}

func (r *Repository) Clear(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM favourites WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear favourites: %w", err)
	}
	return nil
}
