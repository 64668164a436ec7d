package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/pkg/util"
)

// SurveyRepository encapsulates survey persistence. List and Search return
// rows ordered by timestamp descending; pagination and trend sampling rely
// on that contract.
type SurveyRepository interface {
	Save(ctx context.Context, s *domain.Survey) error
	Update(ctx context.Context, id string, s *domain.Survey) error
	// Delete removes the row and returns the removed record so its payload
	// is never lost; sql.ErrNoRows when nothing matched.
	Delete(ctx context.Context, id string) (*domain.Survey, error)
	GetByID(ctx context.Context, id string) (*domain.Survey, error)
	List(ctx context.Context) ([]domain.Survey, error)
	Search(ctx context.Context, keyword string) ([]domain.Survey, error)
}

const surveyColumns = `id, timestamp, customer_name, customer_email, customer_phone,
	customer_gender, customer_location, quality, timeliness, service, overall,
	comments, owner_username, created_at`

type surveyRepository struct {
	db *sql.DB
}

// NewSurveyRepository returns a database/sql backed implementation.
func NewSurveyRepository(db *sql.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Save(ctx context.Context, s *domain.Survey) error {
	const query = `
        INSERT INTO surveys (` + surveyColumns + `)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Timestamp, s.Name, s.Email, s.Phone,
		s.Gender, s.Location, s.Quality, s.Timeliness, s.Service, s.Overall,
		s.Comments, s.Owner, s.CreatedAt,
	)
	if err != nil {
		return util.NewStorageError("save survey", err)
	}
	return nil
}

func (r *surveyRepository) Update(ctx context.Context, id string, s *domain.Survey) error {
	const query = `
        UPDATE surveys SET timestamp=$1, customer_name=$2, customer_email=$3,
            customer_phone=$4, customer_gender=$5, customer_location=$6,
            quality=$7, timeliness=$8, service=$9, overall=$10, comments=$11
        WHERE id=$12`

	result, err := r.db.ExecContext(ctx, query,
		s.Timestamp, s.Name, s.Email,
		s.Phone, s.Gender, s.Location,
		s.Quality, s.Timeliness, s.Service, s.Overall, s.Comments,
		id,
	)
	if err != nil {
		return util.NewStorageError("update survey", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return util.NewStorageError("update survey", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *surveyRepository) Delete(ctx context.Context, id string) (*domain.Survey, error) {
	// Fetch first so the deleted payload survives for the undo buffer.
	record, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM surveys WHERE id=$1`, id)
	if err != nil {
		return nil, util.NewStorageError("delete survey", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, util.NewStorageError("delete survey", err)
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}
	return record, nil
}

func (r *surveyRepository) GetByID(ctx context.Context, id string) (*domain.Survey, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+surveyColumns+` FROM surveys WHERE id=$1`, id)

	var s domain.Survey
	if err := scanSurvey(row, &s); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, util.NewStorageError("get survey", err)
	}
	return &s, nil
}

func (r *surveyRepository) List(ctx context.Context) ([]domain.Survey, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+surveyColumns+` FROM surveys ORDER BY timestamp DESC`)
	if err != nil {
		return nil, util.NewStorageError("list surveys", err)
	}
	defer rows.Close()
	return collectSurveys(rows, "list surveys")
}

func (r *surveyRepository) Search(ctx context.Context, keyword string) ([]domain.Survey, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		// Empty keyword means no filter: same set and order as List.
		return r.List(ctx)
	}

	kw := "%" + strings.ToLower(keyword) + "%"
	rows, err := r.db.QueryContext(ctx, `
        SELECT `+surveyColumns+` FROM surveys
        WHERE LOWER(customer_name) LIKE $1
           OR LOWER(customer_email) LIKE $1
           OR LOWER(customer_location) LIKE $1
           OR LOWER(comments) LIKE $1
        ORDER BY timestamp DESC`, kw)
	if err != nil {
		return nil, util.NewStorageError("search surveys", err)
	}
	defer rows.Close()
	return collectSurveys(rows, "search surveys")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSurvey(row rowScanner, s *domain.Survey) error {
	return row.Scan(
		&s.ID, &s.Timestamp, &s.Name, &s.Email, &s.Phone,
		&s.Gender, &s.Location, &s.Quality, &s.Timeliness, &s.Service, &s.Overall,
		&s.Comments, &s.Owner, &s.CreatedAt,
	)
}

func collectSurveys(rows *sql.Rows, operation string) ([]domain.Survey, error) {
	var result []domain.Survey
	for rows.Next() {
		var s domain.Survey
		if err := scanSurvey(rows, &s); err != nil {
			return nil, util.NewStorageError(operation, err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, util.NewStorageError(operation, err)
	}
	return result, nil
}
