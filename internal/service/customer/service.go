package customer

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

// Service управляет учётными записями клиентов.
type Service struct {
	customers domain.CustomerRepository
	logger    *log.Entry
}

// NewService конструирует сервис клиентов.
func NewService(customers domain.CustomerRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "customer-service")
	}
	return &Service{customers: customers, logger: logger}
}

// Create регистрирует нового клиента.
func (s *Service) Create(firstName, lastName, email string) (domain.Customer, error) {
	customer, err := domain.NewCustomer("", firstName, lastName, email)
	if err != nil {
		return domain.Customer{}, err
	}
	if err := s.customers.Add(*customer); err != nil {
		s.logger.WithError(err).Error("failed to persist customer")
		return domain.Customer{}, err
	}
	return *customer, nil
}

// Get возвращает клиента по идентификатору.
func (s *Service) Get(id string) (domain.Customer, error) {
	return s.customers.GetByID(id)
}

// List возвращает всех клиентов.
func (s *Service) List() ([]domain.Customer, error) {
	return s.customers.ListAll()
}

// UpdateInfo обновляет имя и email клиента.
func (s *Service) UpdateInfo(id, firstName, lastName, email string) (domain.Customer, error) {
	return s.mutate(id, func(c *domain.Customer) error {
		return c.UpdateInfo(firstName, lastName, email)
	})
}

// Activate включает учётную запись клиента.
func (s *Service) Activate(id string) (domain.Customer, error) {
	return s.mutate(id, func(c *domain.Customer) error {
		c.Activate()
		return nil
	})
}

// Deactivate выключает учётную запись клиента.
func (s *Service) Deactivate(id string) (domain.Customer, error) {
	return s.mutate(id, func(c *domain.Customer) error {
		c.Deactivate()
		return nil
	})
}

// Delete удаляет клиента.
func (s *Service) Delete(id string) error {
	return s.customers.Remove(id)
}

func (s *Service) mutate(id string, fn func(*domain.Customer) error) (domain.Customer, error) {
	customer, err := s.customers.GetByID(id)
	if err != nil {
		return domain.Customer{}, err
	}
	if err := fn(&customer); err != nil {
		return domain.Customer{}, err
	}
	if err := s.customers.Save(customer); err != nil {
		s.logger.WithError(err).WithField("customer_id", id).Error("failed to save customer")
		return domain.Customer{}, err
	}
	return customer, nil
}
