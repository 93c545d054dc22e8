package service

import (
	"context"
	"slices"

	"reimbursement_tracker/internal/apperr"
	"reimbursement_tracker/internal/model"
	"reimbursement_tracker/internal/repository"
	"reimbursement_tracker/internal/utils"
	"reimbursement_tracker/internal/validation"

	"github.com/rs/zerolog"
)

// lookupKeys are the Employee properties that identify a single record.
var lookupKeys = []string{"username", "email"}

// EmployeeService validates and orchestrates employee record operations.
// Every employee it returns is the public view, without the password.
type EmployeeService interface {
	GetAllEmployees(ctx context.Context) ([]model.EmployeeView, error)
	GetEmployeeByID(ctx context.Context, id int) (*model.EmployeeView, error)
	GetEmployeeByUniqueKey(ctx context.Context, key, value string) (*model.EmployeeView, error)
	AuthenticateEmployee(ctx context.Context, username, password string) (*model.EmployeeView, error)
	AddNewEmployee(ctx context.Context, candidate model.Employee) (*model.EmployeeView, error)
	UpdateEmployee(ctx context.Context, candidate model.Employee) (bool, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

type employeeService struct {
	repo repository.EmployeeRepository
	log  zerolog.Logger
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(repo repository.EmployeeRepository, log zerolog.Logger) EmployeeService {
	return &employeeService{repo: repo, log: log.With().Str("component", "employee_service").Logger()}
}

func (s *employeeService) GetAllEmployees(ctx context.Context) ([]model.EmployeeView, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if validation.IsEmptyObject(employees) {
		return nil, apperr.NotFound()
	}

	views := make([]model.EmployeeView, 0, len(employees))
	for i := range employees {
		views = append(views, *employees[i].View())
	}
	return views, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, id int) (*model.EmployeeView, error) {
	if !validation.IsValidID(id) {
		return nil, apperr.BadRequest()
	}

	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if validation.IsEmptyObject(employee) {
		return nil, apperr.NotFound()
	}
	return employee.View(), nil
}

func (s *employeeService) GetEmployeeByUniqueKey(ctx context.Context, key, value string) (*model.EmployeeView, error) {
	if !validation.IsPropertyOf(key, model.Employee{}) || !slices.Contains(lookupKeys, key) {
		return nil, apperr.BadRequest("Invalid lookup key: " + key)
	}
	if !validation.IsValidStrings(value) {
		return nil, apperr.BadRequest()
	}

	employee, err := s.repo.FindByUniqueKey(ctx, key, value)
	if err != nil {
		return nil, err
	}
	if validation.IsEmptyObject(employee) {
		return nil, apperr.NotFound()
	}
	return employee.View(), nil
}

func (s *employeeService) AuthenticateEmployee(ctx context.Context, username, password string) (*model.EmployeeView, error) {
	if !validation.IsValidStrings(username, password) {
		return nil, apperr.BadRequest()
	}

	employee, err := s.repo.FindByCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if validation.IsEmptyObject(employee) {
		return nil, apperr.Authentication("Bad credentials provided.")
	}
	return employee.View(), nil
}

func (s *employeeService) AddNewEmployee(ctx context.Context, candidate model.Employee) (*model.EmployeeView, error) {
	if !validation.IsValidObject(candidate, "userId") {
		return nil, apperr.BadRequest("Invalid property values found in provided employee.")
	}
	if !validation.IsValidStrings(candidate.Username, candidate.Email) {
		return nil, apperr.BadRequest()
	}

	roles, err := s.repo.GetRoles(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(roles, candidate.Role) {
		return nil, apperr.BadRequest("Invalid role provided.")
	}

	available, err := s.isAvailable(ctx, "username", candidate.Username)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperr.Persistence("The provided username is already taken.")
	}

	available, err = s.isAvailable(ctx, "email", candidate.Email)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperr.Persistence("The provided email is already taken.")
	}

	hashed, err := utils.HashPassword(candidate.Password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	employee := candidate
	employee.UserID = 0
	employee.Password = hashed
	if err := s.repo.Create(ctx, &employee); err != nil {
		return nil, err
	}

	s.log.Info().Int("user_id", employee.UserID).Str("username", employee.Username).Str("role", employee.Role).Msg("employee created")
	return employee.View(), nil
}

// UpdateEmployee rewrites password, names and email of the employee with the
// candidate's username. Username and role cannot change.
func (s *employeeService) UpdateEmployee(ctx context.Context, candidate model.Employee) (bool, error) {
	if !validation.IsValidObject(candidate, "userId", "role") {
		return false, apperr.BadRequest("Invalid employee provided (invalid values found).")
	}

	existing, err := s.repo.FindByUniqueKey(ctx, "username", candidate.Username)
	if err != nil {
		return false, err
	}
	if validation.IsEmptyObject(existing) {
		return false, apperr.NotFound()
	}

	if candidate.Email != existing.Email {
		available, err := s.isAvailable(ctx, "email", candidate.Email)
		if err != nil {
			return false, err
		}
		if !available {
			return false, apperr.BadRequest("The provided email is already taken.")
		}
	}

	hashed, err := utils.HashPassword(candidate.Password)
	if err != nil {
		return false, apperr.Internal("failed to hash password", err)
	}

	updated := *existing
	updated.Password = hashed
	updated.FirstName = candidate.FirstName
	updated.LastName = candidate.LastName
	updated.Email = candidate.Email

	ok, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return false, err
	}
	s.log.Info().Str("username", updated.Username).Bool("updated", ok).Msg("employee updated")
	return ok, nil
}

func (s *employeeService) DeleteByID(ctx context.Context, id int) (bool, error) {
	if !validation.IsValidID(id) {
		return false, apperr.BadRequest()
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if validation.IsEmptyObject(existing) {
		return false, apperr.NotFound()
	}

	ok, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	s.log.Info().Int("user_id", id).Bool("deleted", ok).Msg("employee deleted")
	return ok, nil
}

func (s *employeeService) isAvailable(ctx context.Context, key, value string) (bool, error) {
	employee, err := s.repo.FindByUniqueKey(ctx, key, value)
	if err != nil {
		return false, err
	}
	return validation.IsEmptyObject(employee), nil
}
