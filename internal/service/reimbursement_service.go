package service

import (
	"context"
	"slices"

	"reimbursement_tracker/internal/apperr"
	"reimbursement_tracker/internal/metrics"
	"reimbursement_tracker/internal/model"
	"reimbursement_tracker/internal/repository"
	"reimbursement_tracker/internal/validation"

	"github.com/rs/zerolog"
)

// ReimbursementService validates and orchestrates the reimbursement lifecycle:
// submission as Pending, edits while Pending, and a single resolution to
// Approved or Denied.
type ReimbursementService interface {
	GetAllReimb(ctx context.Context) ([]model.Reimbursement, error)
	GetReimbByID(ctx context.Context, id int) (*model.Reimbursement, error)
	GetReimbByAuthorID(ctx context.Context, authorID int) ([]model.Reimbursement, error)
	GetReimbByStatus(ctx context.Context, status model.ReimbStatus) ([]model.Reimbursement, error)
	GetReimbByType(ctx context.Context, reimbType string) ([]model.Reimbursement, error)
	AddNewReimb(ctx context.Context, candidate model.Reimbursement) (*model.Reimbursement, error)
	UpdateReimb(ctx context.Context, candidate model.UpdateReimbursementRequest) (bool, error)
	ResolveReimb(ctx context.Context, candidate model.ResolveReimbursementRequest) (bool, error)
}

type reimbursementService struct {
	repo repository.ReimbursementRepository
	log  zerolog.Logger
}

// NewReimbursementService creates a new ReimbursementService
func NewReimbursementService(repo repository.ReimbursementRepository, log zerolog.Logger) ReimbursementService {
	return &reimbursementService{repo: repo, log: log.With().Str("component", "reimbursement_service").Logger()}
}

func (s *reimbursementService) GetAllReimb(ctx context.Context) ([]model.Reimbursement, error) {
	reimbs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if validation.IsEmptyObject(reimbs) {
		return nil, apperr.NotFound()
	}
	return reimbs, nil
}

func (s *reimbursementService) GetReimbByID(ctx context.Context, id int) (*model.Reimbursement, error) {
	if !validation.IsValidID(id) {
		return nil, apperr.BadRequest()
	}

	reimb, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if validation.IsEmptyObject(reimb) {
		return nil, apperr.NotFound()
	}
	return reimb, nil
}

func (s *reimbursementService) GetReimbByAuthorID(ctx context.Context, authorID int) ([]model.Reimbursement, error) {
	if !validation.IsValidID(authorID) {
		return nil, apperr.BadRequest()
	}

	reimbs, err := s.repo.FindByAuthorID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if validation.IsEmptyObject(reimbs) {
		return nil, apperr.NotFound()
	}
	return reimbs, nil
}

func (s *reimbursementService) GetReimbByStatus(ctx context.Context, status model.ReimbStatus) ([]model.Reimbursement, error) {
	if !slices.Contains(model.Statuses, status) {
		return nil, apperr.BadRequest("Status not valid")
	}

	reimbs, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	if validation.IsEmptyObject(reimbs) {
		return nil, apperr.NotFound()
	}
	return reimbs, nil
}

func (s *reimbursementService) GetReimbByType(ctx context.Context, reimbType string) ([]model.Reimbursement, error) {
	if !validation.IsValidStrings(reimbType) {
		return nil, apperr.BadRequest()
	}
	if err := s.checkType(ctx, reimbType); err != nil {
		return nil, err
	}

	reimbs, err := s.repo.FindByType(ctx, reimbType)
	if err != nil {
		return nil, err
	}
	if validation.IsEmptyObject(reimbs) {
		return nil, apperr.NotFound()
	}
	return reimbs, nil
}

// AddNewReimb submits a reimbursement on behalf of candidate.Author. Whatever
// status the candidate carries, the stored record starts out Pending.
func (s *reimbursementService) AddNewReimb(ctx context.Context, candidate model.Reimbursement) (*model.Reimbursement, error) {
	if !validation.IsValidObject(candidate, "reimbId", "submitted", "resolved", "resolver", "status") {
		return nil, apperr.BadRequest("Invalid property values found in provided reimbursement.")
	}
	if candidate.Amount <= 0 {
		return nil, apperr.BadRequest("Invalid amount value found.")
	}
	if !validation.IsValidStrings(candidate.Description) {
		return nil, apperr.BadRequest("Invalid description value found.")
	}

	authorID, err := s.repo.FindUserIDByUsername(ctx, candidate.Author)
	if err != nil {
		return nil, err
	}
	if !validation.IsValidID(authorID) {
		return nil, apperr.NotFound("ID by username was not found")
	}

	if err := s.checkType(ctx, candidate.ReimbType); err != nil {
		return nil, err
	}

	reimb := model.Reimbursement{
		Amount:      candidate.Amount,
		Description: candidate.Description,
		Author:      candidate.Author,
		Status:      model.StatusPending,
		ReimbType:   candidate.ReimbType,
	}
	if err := s.repo.Create(ctx, &reimb, authorID); err != nil {
		return nil, err
	}

	metrics.ReimbursementsSubmittedTotal.WithLabelValues(reimb.ReimbType).Inc()
	s.log.Info().Int("reimb_id", reimb.ReimbID).Str("author", reimb.Author).Float64("amount", reimb.Amount).Msg("reimbursement submitted")
	return &reimb, nil
}

// UpdateReimb changes amount, description and type of a reimbursement that
// has not been resolved yet.
func (s *reimbursementService) UpdateReimb(ctx context.Context, candidate model.UpdateReimbursementRequest) (bool, error) {
	if !validation.IsValidObject(candidate) {
		return false, apperr.BadRequest("Invalid reimbursement provided (invalid values found).")
	}
	if !validation.IsValidID(candidate.ReimbID) {
		return false, apperr.BadRequest()
	}
	for _, key := range candidate.Keys() {
		if !validation.IsPropertyOf(key, model.Reimbursement{}) {
			return false, apperr.BadRequest("Unknown property: " + key)
		}
	}
	if candidate.Amount <= 0 {
		return false, apperr.BadRequest("You need to provide a positive non-zero value.")
	}
	if !validation.IsValidStrings(candidate.Description) {
		return false, apperr.BadRequest("You need to provide a description.")
	}
	if err := s.checkType(ctx, candidate.ReimbType); err != nil {
		return false, err
	}

	existing, err := s.repo.FindByID(ctx, candidate.ReimbID)
	if err != nil {
		return false, err
	}
	if validation.IsEmptyObject(existing) {
		return false, apperr.NotFound()
	}
	if existing.Status != model.StatusPending {
		return false, apperr.Persistence("The Reimbursement was already processed.")
	}

	ok, err := s.repo.Update(ctx, &candidate)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.Persistence("The Reimbursement was already processed.")
	}
	s.log.Info().Int("reimb_id", candidate.ReimbID).Msg("reimbursement updated")
	return true, nil
}

// ResolveReimb moves a pending reimbursement to Approved or Denied. The stored
// record is re-read and must still be Pending, and the write itself is
// conditional on that, so a reimbursement is resolved at most once.
func (s *reimbursementService) ResolveReimb(ctx context.Context, candidate model.ResolveReimbursementRequest) (bool, error) {
	if candidate.Status == model.StatusPending {
		return false, apperr.Persistence("Can only be updated to Denied or Approved")
	}
	if !validation.IsValidStrings(string(candidate.Status)) {
		return false, apperr.BadRequest("Invalid status input.")
	}
	if !candidate.Status.IsResolution() {
		return false, apperr.BadRequest("Invalid status input.")
	}
	if !validation.IsValidStrings(candidate.Resolver) {
		return false, apperr.BadRequest("Invalid username input.")
	}
	if !validation.IsValidID(candidate.ReimbID) {
		return false, apperr.BadRequest()
	}

	existing, err := s.repo.FindByID(ctx, candidate.ReimbID)
	if err != nil {
		return false, err
	}
	if validation.IsEmptyObject(existing) {
		return false, apperr.NotFound()
	}
	if existing.Status != model.StatusPending {
		return false, apperr.Persistence("The Reimbursement was already processed.")
	}

	resolverID, err := s.repo.FindUserIDByUsername(ctx, candidate.Resolver)
	if err != nil {
		return false, err
	}
	if !validation.IsValidID(resolverID) {
		return false, apperr.NotFound("ID by username was not found")
	}

	ok, err := s.repo.Resolve(ctx, &candidate, resolverID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.Persistence("The Reimbursement was already processed.")
	}

	metrics.ReimbursementsResolvedTotal.WithLabelValues(string(candidate.Status)).Inc()
	s.log.Info().Int("reimb_id", candidate.ReimbID).Str("status", string(candidate.Status)).Str("resolver", candidate.Resolver).Msg("reimbursement resolved")
	return true, nil
}

func (s *reimbursementService) checkType(ctx context.Context, reimbType string) error {
	types, err := s.repo.GetTypes(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(types, reimbType) {
		return apperr.BadRequest("Type not valid")
	}
	return nil
}
