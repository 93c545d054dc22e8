package repository

import (
	"context"
	"errors"

	"reimbursement_tracker/internal/apperr"
	"reimbursement_tracker/internal/model"
	"reimbursement_tracker/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// EmployeeRepository defines operations for employee data. Lookups return a
// nil employee, not an error, when no row matches.
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]model.Employee, error)
	FindByID(ctx context.Context, id int) (*model.Employee, error)
	FindByUniqueKey(ctx context.Context, key, value string) (*model.Employee, error)
	FindByCredentials(ctx context.Context, username, password string) (*model.Employee, error)
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, employee *model.Employee) (bool, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
	GetRoles(ctx context.Context) ([]string, error)
}

// foreignKeyViolation is the PostgreSQL SQLSTATE for a violated foreign key.
const foreignKeyViolation = "23503"

// uniqueColumns maps the lookup properties to their columns.
var uniqueColumns = map[string]string{
	"username": "eu.username",
	"email":    "eu.email",
}

const employeeBaseQuery = `
	SELECT eu.ers_user_id, eu.username, eu.password, eu.first_name, eu.last_name, eu.email, ur.role_name
	FROM ers_users eu
	JOIN ers_user_roles ur ON eu.user_role_id = ur.role_id`

type employeeRepository struct {
	db DBTX
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db DBTX) EmployeeRepository {
	return &employeeRepository{db: db}
}

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	e := &model.Employee{}
	err := row.Scan(&e.UserID, &e.Username, &e.Password, &e.FirstName, &e.LastName, &e.Email, &e.Role)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) findOne(ctx context.Context, op, sql string, args ...any) (*model.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperr.Internal("failed to find employee by "+op, err)
	}
	return e, nil
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.db.Query(ctx, employeeBaseQuery+` ORDER BY eu.ers_user_id`)
	if err != nil {
		return nil, apperr.Internal("failed to query employees", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, apperr.Internal("failed to scan employee row", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal("error iterating employee rows", err)
	}
	return employees, nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id int) (*model.Employee, error) {
	return r.findOne(ctx, "ID", employeeBaseQuery+` WHERE eu.ers_user_id = $1`, id)
}

// FindByUniqueKey looks an employee up by username or email.
func (r *employeeRepository) FindByUniqueKey(ctx context.Context, key, value string) (*model.Employee, error) {
	column, ok := uniqueColumns[key]
	if !ok {
		return nil, apperr.BadRequest("Unsupported lookup key: " + key)
	}
	return r.findOne(ctx, key, employeeBaseQuery+` WHERE `+column+` = $1`, value)
}

// FindByCredentials returns the employee only if the password matches the stored hash.
func (r *employeeRepository) FindByCredentials(ctx context.Context, username, password string) (*model.Employee, error) {
	e, err := r.findOne(ctx, "credentials", employeeBaseQuery+` WHERE eu.username = $1`, username)
	if err != nil || e == nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, e.Password) {
		return nil, nil
	}
	return e, nil
}

// Create inserts a new employee, resolving the role name to its id, and sets UserID.
func (r *employeeRepository) Create(ctx context.Context, e *model.Employee) error {
	sql := `INSERT INTO ers_users (username, password, first_name, last_name, email, user_role_id)
            VALUES ($1, $2, $3, $4, $5, (SELECT role_id FROM ers_user_roles WHERE role_name = $6))
            RETURNING ers_user_id`
	err := r.db.QueryRow(ctx, sql, e.Username, e.Password, e.FirstName, e.LastName, e.Email, e.Role).Scan(&e.UserID)
	if err != nil {
		return apperr.Internal("failed to create employee", err)
	}
	return nil
}

// Update writes the mutable fields of the employee identified by username.
func (r *employeeRepository) Update(ctx context.Context, e *model.Employee) (bool, error) {
	sql := `UPDATE ers_users SET password = $1, first_name = $2, last_name = $3, email = $4 WHERE username = $5`
	tag, err := r.db.Exec(ctx, sql, e.Password, e.FirstName, e.LastName, e.Email, e.Username)
	if err != nil {
		return false, apperr.Internal("failed to update employee", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByID removes an employee. Employees who authored or resolved a
// reimbursement are kept, since those records must stay retrievable.
func (r *employeeRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM ers_users WHERE ers_user_id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return false, apperr.Persistence("Employee has reimbursements on record.")
		}
		return false, apperr.Internal("failed to delete employee", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetRoles lists the role names an employee may hold.
func (r *employeeRepository) GetRoles(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT role_name FROM ers_user_roles ORDER BY role_id`)
	if err != nil {
		return nil, apperr.Internal("failed to query roles", err)
	}
	roles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperr.Internal("failed to collect roles", err)
	}
	return roles, nil
}
