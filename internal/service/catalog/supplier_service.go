package catalog

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

// SupplierService управляет справочником поставщиков.
type SupplierService struct {
	suppliers domain.SupplierRepository
	logger    *log.Entry
}

// NewSupplierService конструирует сервис поставщиков.
func NewSupplierService(suppliers domain.SupplierRepository, logger *log.Entry) *SupplierService {
	if logger == nil {
		logger = log.New().WithField("component", "supplier-service")
	}
	return &SupplierService{suppliers: suppliers, logger: logger}
}

// Create регистрирует нового поставщика.
func (s *SupplierService) Create(companyName, contactEmail, phone string) (domain.Supplier, error) {
	supplier, err := domain.NewSupplier("", companyName, contactEmail, phone)
	if err != nil {
		return domain.Supplier{}, err
	}
	if err := s.suppliers.Add(*supplier); err != nil {
		s.logger.WithError(err).Error("failed to persist supplier")
		return domain.Supplier{}, err
	}
	return *supplier, nil
}

// Get возвращает поставщика по идентификатору.
func (s *SupplierService) Get(id string) (domain.Supplier, error) {
	return s.suppliers.GetByID(id)
}

// List возвращает всех поставщиков.
func (s *SupplierService) List() ([]domain.Supplier, error) {
	return s.suppliers.ListAll()
}

// UpdateInfo обновляет контактные данные поставщика.
func (s *SupplierService) UpdateInfo(id, companyName, contactEmail, phone string) (domain.Supplier, error) {
	return s.mutate(id, func(sup *domain.Supplier) error {
		return sup.UpdateInfo(companyName, contactEmail, phone)
	})
}

// Activate включает поставщика.
func (s *SupplierService) Activate(id string) (domain.Supplier, error) {
	return s.mutate(id, func(sup *domain.Supplier) error {
		sup.Activate()
		return nil
	})
}

// Deactivate выключает поставщика.
func (s *SupplierService) Deactivate(id string) (domain.Supplier, error) {
	return s.mutate(id, func(sup *domain.Supplier) error {
		sup.Deactivate()
		return nil
	})
}

// Delete удаляет поставщика.
func (s *SupplierService) Delete(id string) error {
	return s.suppliers.Remove(id)
}

func (s *SupplierService) mutate(id string, fn func(*domain.Supplier) error) (domain.Supplier, error) {
	supplier, err := s.suppliers.GetByID(id)
	if err != nil {
		return domain.Supplier{}, err
	}
	if err := fn(&supplier); err != nil {
		return domain.Supplier{}, err
	}
	if err := s.suppliers.Save(supplier); err != nil {
		s.logger.WithError(err).WithField("supplier_id", id).Error("failed to save supplier")
		return domain.Supplier{}, err
	}
	return supplier, nil
}
