package service

import (
	"context"

	"reimbursement_tracker/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]model.Employee)
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id int) (*model.Employee, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*model.Employee)
	return e, args.Error(1)
}

func (m *MockEmployeeRepository) FindByUniqueKey(ctx context.Context, key, value string) (*model.Employee, error) {
	args := m.Called(ctx, key, value)
	e, _ := args.Get(0).(*model.Employee)
	return e, args.Error(1)
}

func (m *MockEmployeeRepository) FindByCredentials(ctx context.Context, username, password string) (*model.Employee, error) {
	args := m.Called(ctx, username, password)
	e, _ := args.Get(0).(*model.Employee)
	return e, args.Error(1)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *model.Employee) (bool, error) {
	args := m.Called(ctx, employee)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) GetRoles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]string)
	return roles, args.Error(1)
}

type MockReimbursementRepository struct {
	mock.Mock
}

func (m *MockReimbursementRepository) FindAll(ctx context.Context) ([]model.Reimbursement, error) {
	args := m.Called(ctx)
	reimbs, _ := args.Get(0).([]model.Reimbursement)
	return reimbs, args.Error(1)
}

func (m *MockReimbursementRepository) FindByID(ctx context.Context, id int) (*model.Reimbursement, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Reimbursement)
	return r, args.Error(1)
}

func (m *MockReimbursementRepository) FindByAuthorID(ctx context.Context, authorID int) ([]model.Reimbursement, error) {
	args := m.Called(ctx, authorID)
	reimbs, _ := args.Get(0).([]model.Reimbursement)
	return reimbs, args.Error(1)
}

func (m *MockReimbursementRepository) FindByStatus(ctx context.Context, status model.ReimbStatus) ([]model.Reimbursement, error) {
	args := m.Called(ctx, status)
	reimbs, _ := args.Get(0).([]model.Reimbursement)
	return reimbs, args.Error(1)
}

func (m *MockReimbursementRepository) FindByType(ctx context.Context, reimbType string) ([]model.Reimbursement, error) {
	args := m.Called(ctx, reimbType)
	reimbs, _ := args.Get(0).([]model.Reimbursement)
	return reimbs, args.Error(1)
}

func (m *MockReimbursementRepository) FindUserIDByUsername(ctx context.Context, username string) (int, error) {
	args := m.Called(ctx, username)
	return args.Int(0), args.Error(1)
}

func (m *MockReimbursementRepository) GetTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]string)
	return types, args.Error(1)
}

func (m *MockReimbursementRepository) Create(ctx context.Context, reimb *model.Reimbursement, authorID int) error {
	args := m.Called(ctx, reimb, authorID)
	return args.Error(0)
}

func (m *MockReimbursementRepository) Update(ctx context.Context, req *model.UpdateReimbursementRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *MockReimbursementRepository) Resolve(ctx context.Context, req *model.ResolveReimbursementRequest, resolverID int) (bool, error) {
	args := m.Called(ctx, req, resolverID)
	return args.Bool(0), args.Error(1)
}
