package model

const (
	RoleAdmin          = "admin"
	RoleFinanceManager = "finance manager"
	RoleUser           = "user"
)

// Employee is the stored employee record. It carries the password and must
// never be written to a response; use View for anything leaving the service.
type Employee struct {
	UserID    int    `json:"userId"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// EmployeeView is the public projection of an Employee.
type EmployeeView struct {
	UserID    int    `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// View projects the employee onto its public shape.
func (e *Employee) View() *EmployeeView {
	if e == nil {
		return nil
	}
	return &EmployeeView{
		UserID:    e.UserID,
		Username:  e.Username,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Role:      e.Role,
	}
}

// LoginRequest carries the credential pair for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
