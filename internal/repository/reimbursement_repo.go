package repository

import (
	"context"
	"errors"

	"reimbursement_tracker/internal/apperr"
	"reimbursement_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// ReimbursementRepository defines operations for reimbursement data.
type ReimbursementRepository interface {
	FindAll(ctx context.Context) ([]model.Reimbursement, error)
	FindByID(ctx context.Context, id int) (*model.Reimbursement, error)
	FindByAuthorID(ctx context.Context, authorID int) ([]model.Reimbursement, error)
	FindByStatus(ctx context.Context, status model.ReimbStatus) ([]model.Reimbursement, error)
	FindByType(ctx context.Context, reimbType string) ([]model.Reimbursement, error)
	FindUserIDByUsername(ctx context.Context, username string) (int, error)
	GetTypes(ctx context.Context) ([]string, error)
	Create(ctx context.Context, reimb *model.Reimbursement, authorID int) error
	Update(ctx context.Context, req *model.UpdateReimbursementRequest) (bool, error)
	Resolve(ctx context.Context, req *model.ResolveReimbursementRequest, resolverID int) (bool, error)
}

const reimbBaseQuery = `
	SELECT r.reimb_id, r.amount, r.submitted, r.resolved, r.description,
	       us.username AS author, ue.username AS resolver, rs.reimb_status AS status, rt.reimb_type AS type
	FROM ers_reimbursements r
	JOIN ers_users us ON us.ers_user_id = r.author_id
	LEFT JOIN ers_users ue ON ue.ers_user_id = r.resolver_id
	JOIN ers_reimbursement_statuses rs ON rs.reimb_status_id = r.reimb_status_id
	JOIN ers_reimbursement_types rt ON rt.reimb_type_id = r.reimb_type_id`

const reimbOrder = ` ORDER BY r.reimb_id`

const pendingStatusID = `(SELECT reimb_status_id FROM ers_reimbursement_statuses WHERE reimb_status = 'Pending')`

type reimbursementRepository struct {
	db DBTX
}

// NewReimbursementRepository creates a new ReimbursementRepository
func NewReimbursementRepository(db DBTX) ReimbursementRepository {
	return &reimbursementRepository{db: db}
}

func scanReimbursement(row pgx.Row) (*model.Reimbursement, error) {
	var (
		r        model.Reimbursement
		resolver *string
		status   string
	)
	err := row.Scan(&r.ReimbID, &r.Amount, &r.Submitted, &r.Resolved, &r.Description,
		&r.Author, &resolver, &status, &r.ReimbType)
	if err != nil {
		return nil, err
	}
	if resolver != nil {
		r.Resolver = *resolver
	}
	r.Status = model.ReimbStatus(status)
	return &r, nil
}

func (r *reimbursementRepository) findMany(ctx context.Context, op, sql string, args ...any) ([]model.Reimbursement, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperr.Internal("failed to query reimbursements "+op, err)
	}
	defer rows.Close()

	var reimbs []model.Reimbursement
	for rows.Next() {
		reimb, err := scanReimbursement(rows)
		if err != nil {
			return nil, apperr.Internal("failed to scan reimbursement row", err)
		}
		reimbs = append(reimbs, *reimb)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal("error iterating reimbursement rows", err)
	}
	return reimbs, nil
}

func (r *reimbursementRepository) FindAll(ctx context.Context) ([]model.Reimbursement, error) {
	return r.findMany(ctx, "", reimbBaseQuery+reimbOrder)
}

func (r *reimbursementRepository) FindByID(ctx context.Context, id int) (*model.Reimbursement, error) {
	reimb, err := scanReimbursement(r.db.QueryRow(ctx, reimbBaseQuery+` WHERE r.reimb_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperr.Internal("failed to find reimbursement by ID", err)
	}
	return reimb, nil
}

func (r *reimbursementRepository) FindByAuthorID(ctx context.Context, authorID int) ([]model.Reimbursement, error) {
	return r.findMany(ctx, "by author", reimbBaseQuery+` WHERE r.author_id = $1`+reimbOrder, authorID)
}

func (r *reimbursementRepository) FindByStatus(ctx context.Context, status model.ReimbStatus) ([]model.Reimbursement, error) {
	return r.findMany(ctx, "by status", reimbBaseQuery+` WHERE rs.reimb_status = $1`+reimbOrder, string(status))
}

func (r *reimbursementRepository) FindByType(ctx context.Context, reimbType string) ([]model.Reimbursement, error) {
	return r.findMany(ctx, "by type", reimbBaseQuery+` WHERE rt.reimb_type = $1`+reimbOrder, reimbType)
}

// FindUserIDByUsername returns 0 when no employee has the username.
func (r *reimbursementRepository) FindUserIDByUsername(ctx context.Context, username string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `SELECT ers_user_id FROM ers_users WHERE username = $1`, username).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, apperr.Internal("failed to find user ID by username", err)
	}
	return id, nil
}

// GetTypes lists the reimbursement types currently accepted.
func (r *reimbursementRepository) GetTypes(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT reimb_type FROM ers_reimbursement_types ORDER BY reimb_type_id`)
	if err != nil {
		return nil, apperr.Internal("failed to query reimbursement types", err)
	}
	types, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperr.Internal("failed to collect reimbursement types", err)
	}
	return types, nil
}

// Create inserts the reimbursement and fills in its generated id and submission time.
func (r *reimbursementRepository) Create(ctx context.Context, reimb *model.Reimbursement, authorID int) error {
	sql := `INSERT INTO ers_reimbursements (amount, description, author_id, reimb_status_id, reimb_type_id)
            VALUES ($1, $2, $3,
                (SELECT reimb_status_id FROM ers_reimbursement_statuses WHERE reimb_status = $4),
                (SELECT reimb_type_id FROM ers_reimbursement_types WHERE reimb_type = $5))
            RETURNING reimb_id, submitted`
	err := r.db.QueryRow(ctx, sql, reimb.Amount, reimb.Description, authorID, string(reimb.Status), reimb.ReimbType).
		Scan(&reimb.ReimbID, &reimb.Submitted)
	if err != nil {
		return apperr.Internal("failed to create reimbursement", err)
	}
	return nil
}

// Update rewrites amount, description and type. Only a pending row is touched.
func (r *reimbursementRepository) Update(ctx context.Context, req *model.UpdateReimbursementRequest) (bool, error) {
	sql := `UPDATE ers_reimbursements
            SET amount = $1, description = $2,
                reimb_type_id = (SELECT reimb_type_id FROM ers_reimbursement_types WHERE reimb_type = $3)
            WHERE reimb_id = $4 AND reimb_status_id = ` + pendingStatusID
	tag, err := r.db.Exec(ctx, sql, req.Amount, req.Description, req.ReimbType, req.ReimbID)
	if err != nil {
		return false, apperr.Internal("failed to update reimbursement", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Resolve records the final status, the resolver and the resolution time.
// The write only applies while the stored status is still pending, so of two
// concurrent resolutions at most one reports true.
func (r *reimbursementRepository) Resolve(ctx context.Context, req *model.ResolveReimbursementRequest, resolverID int) (bool, error) {
	sql := `UPDATE ers_reimbursements
            SET reimb_status_id = (SELECT reimb_status_id FROM ers_reimbursement_statuses WHERE reimb_status = $1),
                resolver_id = $2, resolved = NOW()
            WHERE reimb_id = $3 AND reimb_status_id = ` + pendingStatusID
	tag, err := r.db.Exec(ctx, sql, string(req.Status), resolverID, req.ReimbID)
	if err != nil {
		return false, apperr.Internal("failed to resolve reimbursement", err)
	}
	return tag.RowsAffected() == 1, nil
}
