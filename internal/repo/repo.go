package repo

import (
	"context"
	"database/sql"
)

// Defaults are the weld parameters pre-filled into a user's calculator forms.
// They seed the Globals of a calculation; the engine itself stores nothing.
type Defaults struct {
	EffectiveFactor float64 `json:"effective_factor"`
	Passes          float64 `json:"passes"`
	RoundTo         float64 `json:"round_to"`
}

type Profile struct {
	ID       int      `json:"id"`
	Login    string   `json:"login"`
	Email    string   `json:"email"`
	Company  string   `json:"company"`
	Defaults Defaults `json:"defaults"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, company string, d Defaults) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := `INSERT INTO users (login, email, password, effective_factor, passes, round_to)
		VALUES ($1, $2, $3, 1.0, 1, 0.01) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	var company sql.NullString

	query := `SELECT id, login, email, company, effective_factor, passes, round_to
		FROM users WHERE id=$1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Login, &p.Email, &company,
		&p.Defaults.EffectiveFactor, &p.Defaults.Passes, &p.Defaults.RoundTo,
	)
	if err != nil {
		return Profile{}, err
	}
	p.Company = company.String
	return p, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, company string, d Defaults) error {
	query := `UPDATE users SET company=$2, effective_factor=$3, passes=$4, round_to=$5 WHERE id=$1`
	_, err := r.db.ExecContext(ctx, query, id, company, d.EffectiveFactor, d.Passes, d.RoundTo)
	return err
}
