package service

import (
	"context"
	"testing"
	"time"

	"reimbursement_tracker/internal/apperr"
	"reimbursement_tracker/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var allTypes = []string{"LODGING", "TRAVEL", "FOOD", "OTHER"}

func pendingReimb(id int) *model.Reimbursement {
	return &model.Reimbursement{
		ReimbID:     id,
		Amount:      120.5,
		Submitted:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Description: "hotel",
		Author:      "jdoe",
		Status:      model.StatusPending,
		ReimbType:   "LODGING",
	}
}

func TestAddNewReimb_AlwaysPending(t *testing.T) {
	repo := new(MockReimbursementRepository)
	svc := NewReimbursementService(repo, zerolog.Nop())
	ctx := context.Background()

	repo.On("FindUserIDByUsername", ctx, "jdoe").Return(3, nil)
	repo.On("GetTypes", ctx).Return(allTypes, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(r *model.Reimbursement) bool {
		return r.Status == model.StatusPending && r.Resolver == "" && r.Resolved == nil
	}), 3).Run(func(args mock.Arguments) {
		r := args.Get(1).(*model.Reimbursement)
		r.ReimbID = 11
		r.Submitted = time.Now()
	}).Return(nil)

	candidate := model.Reimbursement{
		Amount:      42,
		Description: "taxi",
		Author:      "jdoe",
		Status:      model.StatusApproved,
		ReimbType:   "TRAVEL",
	}
	reimb, err := svc.AddNewReimb(ctx, candidate)

	require.NoError(t, err)
	assert.Equal(t, 11, reimb.ReimbID)
	assert.Equal(t, model.StatusPending, reimb.Status)
	assert.False(t, reimb.Submitted.IsZero())
	repo.AssertExpectations(t)
}

func TestAddNewReimb_Validation(t *testing.T) {
	ctx := context.Background()
	valid := model.Reimbursement{Amount: 10, Description: "lunch", Author: "jdoe", ReimbType: "FOOD"}

	cases := []struct {
		name   string
		mutate func(r *model.Reimbursement)
	}{
		{"missing author", func(r *model.Reimbursement) { r.Author = "" }},
		{"missing type", func(r *model.Reimbursement) { r.ReimbType = "" }},
		{"negative amount", func(r *model.Reimbursement) { r.Amount = -5 }},
		{"missing description", func(r *model.Reimbursement) { r.Description = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockReimbursementRepository)
			svc := NewReimbursementService(repo, zerolog.Nop())
			candidate := valid
			tc.mutate(&candidate)

			_, err := svc.AddNewReimb(ctx, candidate)

			assert.ErrorIs(t, err, apperr.ErrBadRequest)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAddNewReimb_UnknownAuthor(t *testing.T) {
	repo := new(MockReimbursementRepository)
	svc := NewReimbursementService(repo, zerolog.Nop())
	ctx := context.Background()
	repo.On("FindUserIDByUsername", ctx, "ghost").Return(0, nil)

	_, err := svc.AddNewReimb(ctx, model.Reimbursement{Amount: 10, Description: "lunch", Author: "ghost", ReimbType: "FOOD"})

	assert.ErrorIs(t, err, apperr.ErrResourceNotFound)
	assert.Equal(t, "ID by username was not found", err.Error())
}

func TestAddNewReimb_UnknownType(t *testing.T) {
	repo := new(MockReimbursementRepository)
	svc := NewReimbursementService(repo, zerolog.Nop())
	ctx := context.Background()
	repo.On("FindUserIDByUsername", ctx, "jdoe").Return(3, nil)
	repo.On("GetTypes", ctx).Return(allTypes, nil)

	_, err := svc.AddNewReimb(ctx, model.Reimbursement{Amount: 10, Description: "lunch", Author: "jdoe", ReimbType: "SPA"})

	assert.ErrorIs(t, err, apperr.ErrBadRequest)
	assert.Equal(t, "Type not valid", err.Error())
}

func TestGetReimbByStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid status", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())

		_, err := svc.GetReimbByStatus(ctx, "Archived")

		assert.ErrorIs(t, err, apperr.ErrBadRequest)
		assert.Equal(t, "Status not valid", err.Error())
	})

	t.Run("none", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		repo.On("FindByStatus", ctx, model.StatusDenied).Return([]model.Reimbursement{}, nil)

		_, err := svc.GetReimbByStatus(ctx, model.StatusDenied)

		assert.ErrorIs(t, err, apperr.ErrResourceNotFound)
	})

	t.Run("pending", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		repo.On("FindByStatus", ctx, model.StatusPending).Return([]model.Reimbursement{*pendingReimb(1), *pendingReimb(2)}, nil)

		reimbs, err := svc.GetReimbByStatus(ctx, model.StatusPending)

		require.NoError(t, err)
		assert.Len(t, reimbs, 2)
	})
}

func TestGetReimbByType(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid type", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		repo.On("GetTypes", ctx).Return(allTypes, nil)

		_, err := svc.GetReimbByType(ctx, "SPA")

		assert.ErrorIs(t, err, apperr.ErrBadRequest)
		repo.AssertNotCalled(t, "FindByType", mock.Anything, mock.Anything)
	})

	t.Run("found", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		repo.On("GetTypes", ctx).Return(allTypes, nil)
		repo.On("FindByType", ctx, "LODGING").Return([]model.Reimbursement{*pendingReimb(1)}, nil)

		reimbs, err := svc.GetReimbByType(ctx, "LODGING")

		require.NoError(t, err)
		assert.Len(t, reimbs, 1)
	})
}

func TestGetReimbByIDAndAuthor(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReimbursementRepository)
	svc := NewReimbursementService(repo, zerolog.Nop())

	_, err := svc.GetReimbByID(ctx, 0)
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	_, err = svc.GetReimbByAuthorID(ctx, -3)
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	repo.On("FindByID", ctx, 404).Return(nil, nil)
	_, err = svc.GetReimbByID(ctx, 404)
	assert.ErrorIs(t, err, apperr.ErrResourceNotFound)

	repo.On("FindByAuthorID", ctx, 3).Return([]model.Reimbursement{*pendingReimb(1)}, nil)
	reimbs, err := svc.GetReimbByAuthorID(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, reimbs, 1)

	repo.On("FindAll", ctx).Return(nil, nil)
	_, err = svc.GetAllReimb(ctx)
	assert.ErrorIs(t, err, apperr.ErrResourceNotFound)
}

func TestUpdateReimb(t *testing.T) {
	ctx := context.Background()
	request := func() model.UpdateReimbursementRequest {
		r := model.UpdateReimbursementRequest{ReimbID: 5, Amount: 80, Description: "train", ReimbType: "TRAVEL"}
		r.WithKeys("reimbId", "amount", "description", "reimbType")
		return r
	}

	t.Run("unknown property", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		candidate := request()
		candidate.WithKeys("reimbId", "amount", "description", "reimbType", "bonus")

		_, err := svc.UpdateReimb(ctx, candidate)

		assert.ErrorIs(t, err, apperr.ErrBadRequest)
	})

	t.Run("negative id", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		candidate := request()
		candidate.ReimbID = -4

		_, err := svc.UpdateReimb(ctx, candidate)

		assert.ErrorIs(t, err, apperr.ErrBadRequest)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("zero amount", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		candidate := request()
		candidate.Amount = 0

		_, err := svc.UpdateReimb(ctx, candidate)

		assert.ErrorIs(t, err, apperr.ErrBadRequest)
	})

	t.Run("invalid type", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		repo.On("GetTypes", ctx).Return(allTypes, nil)
		candidate := request()
		candidate.ReimbType = "SPA"

		_, err := svc.UpdateReimb(ctx, candidate)

		assert.ErrorIs(t, err, apperr.ErrBadRequest)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		repo.On("GetTypes", ctx).Return(allTypes, nil)
		repo.On("FindByID", ctx, 5).Return(nil, nil)

		_, err := svc.UpdateReimb(ctx, request())

		assert.ErrorIs(t, err, apperr.ErrResourceNotFound)
	})

	t.Run("already processed", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		approved := pendingReimb(5)
		approved.Status = model.StatusApproved
		repo.On("GetTypes", ctx).Return(allTypes, nil)
		repo.On("FindByID", ctx, 5).Return(approved, nil)

		_, err := svc.UpdateReimb(ctx, request())

		assert.ErrorIs(t, err, apperr.ErrResourcePersistence)
		assert.Equal(t, "The Reimbursement was already processed.", err.Error())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("resolved concurrently", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		repo.On("GetTypes", ctx).Return(allTypes, nil)
		repo.On("FindByID", ctx, 5).Return(pendingReimb(5), nil)
		repo.On("Update", ctx, mock.Anything).Return(false, nil)

		_, err := svc.UpdateReimb(ctx, request())

		assert.ErrorIs(t, err, apperr.ErrResourcePersistence)
	})

	t.Run("updated", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		repo.On("GetTypes", ctx).Return(allTypes, nil)
		repo.On("FindByID", ctx, 5).Return(pendingReimb(5), nil)
		repo.On("Update", ctx, mock.MatchedBy(func(r *model.UpdateReimbursementRequest) bool {
			return r.ReimbID == 5 && r.Amount == 80 && r.ReimbType == "TRAVEL"
		})).Return(true, nil)

		ok, err := svc.UpdateReimb(ctx, request())

		require.NoError(t, err)
		assert.True(t, ok)
		repo.AssertExpectations(t)
	})
}

func TestResolveReimb(t *testing.T) {
	ctx := context.Background()
	approve := model.ResolveReimbursementRequest{ReimbID: 5, Status: model.StatusApproved, Resolver: "fmanager"}

	t.Run("to pending", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		candidate := approve
		candidate.Status = model.StatusPending

		_, err := svc.ResolveReimb(ctx, candidate)

		assert.ErrorIs(t, err, apperr.ErrResourcePersistence)
		assert.Equal(t, "Can only be updated to Denied or Approved", err.Error())
	})

	t.Run("empty status", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		candidate := approve
		candidate.Status = ""

		_, err := svc.ResolveReimb(ctx, candidate)

		assert.ErrorIs(t, err, apperr.ErrBadRequest)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		candidate := approve
		candidate.Status = "Archived"

		_, err := svc.ResolveReimb(ctx, candidate)

		assert.ErrorIs(t, err, apperr.ErrBadRequest)
	})

	t.Run("empty resolver", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		candidate := approve
		candidate.Resolver = ""

		_, err := svc.ResolveReimb(ctx, candidate)

		assert.ErrorIs(t, err, apperr.ErrBadRequest)
		assert.Equal(t, "Invalid username input.", err.Error())
	})

	t.Run("already processed", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		denied := pendingReimb(5)
		denied.Status = model.StatusDenied
		repo.On("FindByID", ctx, 5).Return(denied, nil)

		_, err := svc.ResolveReimb(ctx, approve)

		assert.ErrorIs(t, err, apperr.ErrResourcePersistence)
		repo.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown resolver", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		repo.On("FindByID", ctx, 5).Return(pendingReimb(5), nil)
		repo.On("FindUserIDByUsername", ctx, "fmanager").Return(0, nil)

		_, err := svc.ResolveReimb(ctx, approve)

		assert.ErrorIs(t, err, apperr.ErrResourceNotFound)
	})

	t.Run("lost race", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		repo.On("FindByID", ctx, 5).Return(pendingReimb(5), nil)
		repo.On("FindUserIDByUsername", ctx, "fmanager").Return(2, nil)
		repo.On("Resolve", ctx, mock.Anything, 2).Return(false, nil)

		_, err := svc.ResolveReimb(ctx, approve)

		assert.ErrorIs(t, err, apperr.ErrResourcePersistence)
	})

	t.Run("approved", func(t *testing.T) {
		repo := new(MockReimbursementRepository)
		svc := NewReimbursementService(repo, zerolog.Nop())
		repo.On("FindByID", ctx, 5).Return(pendingReimb(5), nil)
		repo.On("FindUserIDByUsername", ctx, "fmanager").Return(2, nil)
		repo.On("Resolve", ctx, mock.MatchedBy(func(r *model.ResolveReimbursementRequest) bool {
			return r.ReimbID == 5 && r.Status == model.StatusApproved
		}), 2).Return(true, nil)

		ok, err := svc.ResolveReimb(ctx, approve)

		require.NoError(t, err)
		assert.True(t, ok)
		repo.AssertExpectations(t)
	})
}
