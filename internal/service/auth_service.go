package service

import (
	"context"

	"reimbursement_tracker/internal/apperr"
	"reimbursement_tracker/internal/model"
	"reimbursement_tracker/internal/utils"
)

// AuthService exchanges credentials for a signed token.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.EmployeeView, string, error)
}

type authService struct {
	employees EmployeeService
	jwtUtil   *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(employees EmployeeService, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{employees: employees, jwtUtil: jwtUtil}
}

// Login authenticates an employee and returns a JWT token
func (s *authService) Login(ctx context.Context, username, password string) (*model.EmployeeView, string, error) {
	employee, err := s.employees.AuthenticateEmployee(ctx, username, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtUtil.GenerateToken(employee.UserID, employee.Username, employee.Role)
	if err != nil {
		return nil, "", apperr.Internal("failed to generate token", err)
	}
	return employee, token, nil
}
