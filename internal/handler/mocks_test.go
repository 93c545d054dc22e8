package handler

import (
	"context"

	"reimbursement_tracker/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*model.EmployeeView, string, error) {
	args := m.Called(ctx, username, password)
	e, _ := args.Get(0).(*model.EmployeeView)
	return e, args.String(1), args.Error(2)
}

type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) GetAllEmployees(ctx context.Context) ([]model.EmployeeView, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]model.EmployeeView)
	return v, args.Error(1)
}

func (m *MockEmployeeService) GetEmployeeByID(ctx context.Context, id int) (*model.EmployeeView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.EmployeeView)
	return v, args.Error(1)
}

func (m *MockEmployeeService) GetEmployeeByUniqueKey(ctx context.Context, key, value string) (*model.EmployeeView, error) {
	args := m.Called(ctx, key, value)
	v, _ := args.Get(0).(*model.EmployeeView)
	return v, args.Error(1)
}

func (m *MockEmployeeService) AuthenticateEmployee(ctx context.Context, username, password string) (*model.EmployeeView, error) {
	args := m.Called(ctx, username, password)
	v, _ := args.Get(0).(*model.EmployeeView)
	return v, args.Error(1)
}

func (m *MockEmployeeService) AddNewEmployee(ctx context.Context, candidate model.Employee) (*model.EmployeeView, error) {
	args := m.Called(ctx, candidate)
	v, _ := args.Get(0).(*model.EmployeeView)
	return v, args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, candidate model.Employee) (bool, error) {
	args := m.Called(ctx, candidate)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeService) DeleteByID(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockReimbursementService struct {
	mock.Mock
}

func (m *MockReimbursementService) GetAllReimb(ctx context.Context) ([]model.Reimbursement, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).([]model.Reimbursement)
	return r, args.Error(1)
}

func (m *MockReimbursementService) GetReimbByID(ctx context.Context, id int) (*model.Reimbursement, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Reimbursement)
	return r, args.Error(1)
}

func (m *MockReimbursementService) GetReimbByAuthorID(ctx context.Context, authorID int) ([]model.Reimbursement, error) {
	args := m.Called(ctx, authorID)
	r, _ := args.Get(0).([]model.Reimbursement)
	return r, args.Error(1)
}

func (m *MockReimbursementService) GetReimbByStatus(ctx context.Context, status model.ReimbStatus) ([]model.Reimbursement, error) {
	args := m.Called(ctx, status)
	r, _ := args.Get(0).([]model.Reimbursement)
	return r, args.Error(1)
}

func (m *MockReimbursementService) GetReimbByType(ctx context.Context, reimbType string) ([]model.Reimbursement, error) {
	args := m.Called(ctx, reimbType)
	r, _ := args.Get(0).([]model.Reimbursement)
	return r, args.Error(1)
}

func (m *MockReimbursementService) AddNewReimb(ctx context.Context, candidate model.Reimbursement) (*model.Reimbursement, error) {
	args := m.Called(ctx, candidate)
	r, _ := args.Get(0).(*model.Reimbursement)
	return r, args.Error(1)
}

func (m *MockReimbursementService) UpdateReimb(ctx context.Context, candidate model.UpdateReimbursementRequest) (bool, error) {
	args := m.Called(ctx, candidate)
	return args.Bool(0), args.Error(1)
}

func (m *MockReimbursementService) ResolveReimb(ctx context.Context, candidate model.ResolveReimbursementRequest) (bool, error) {
	args := m.Called(ctx, candidate)
	return args.Bool(0), args.Error(1)
}
