package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizzly/trivia-backend/internal/model"
)

// QuestionRepository handles question data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// List retrieves all questions ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, answer, category, difficulty FROM questions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// Search retrieves questions whose text contains the term, case-insensitively.
// SQL wildcards in the term are matched literally.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, answer, category, difficulty
		 FROM questions
		 WHERE question ILIKE '%' || $1 || '%' ESCAPE '\'
		 ORDER BY id`, escapeLike(term),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// ListByCategory retrieves all questions in a category ordered by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, answer, category, difficulty
		 FROM questions WHERE category = $1
		 ORDER BY id`, categoryID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// ListEligible retrieves the questions in a category whose ids are not in
// excludeIDs. An empty exclusion list returns the whole category.
func (r *QuestionRepository) ListEligible(ctx context.Context, categoryID int, excludeIDs []int) ([]model.Question, error) {
	if excludeIDs == nil {
		excludeIDs = []int{}
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, answer, category, difficulty
		 FROM questions
		 WHERE category = $1 AND id <> ALL($2)
		 ORDER BY id`, categoryID, excludeIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// Create inserts a new question and fills in its store-assigned id.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		q.Question, q.Answer, q.Category, q.Difficulty,
	).Scan(&q.ID)
}

// Delete removes a question by id and returns the deleted record.
// The delete and the echo are a single statement, so concurrent readers
// never observe a half-deleted state. Returns ErrNotFound if absent.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (*model.Question, error) {
	q := &model.Question{}
	err := r.pool.QueryRow(ctx,
		`DELETE FROM questions WHERE id = $1
		 RETURNING id, question, answer, category, difficulty`, id,
	).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return q, nil
}

func scanQuestions(rows pgx.Rows) ([]model.Question, error) {
	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// escapeLike escapes LIKE wildcards so a search term matches literally.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
