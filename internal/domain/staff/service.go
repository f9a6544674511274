package staff

import "context"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, employee Employee) (Employee, error) {
	if employee.Policy.RestDays == nil {
		employee.Policy.RestDays = []int{}
	}
	id, err := s.store.Create(ctx, employee)
	if err != nil {
		return Employee{}, err
	}
	employee.ID = id
	return employee, nil
}

func (s *Service) Update(ctx context.Context, employee Employee) error {
	if employee.Policy.RestDays == nil {
		employee.Policy.RestDays = []int{}
	}
	return s.store.Update(ctx, employee)
}

func (s *Service) Get(ctx context.Context, branchID, employeeID string) (Employee, error) {
	return s.store.GetByID(ctx, branchID, employeeID)
}

func (s *Service) List(ctx context.Context, branchID string, limit, offset int) ([]Employee, error) {
	return s.store.List(ctx, branchID, limit, offset)
}
