package catalog

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

// ProductService управляет каталогом товаров.
type ProductService struct {
	products domain.ProductRepository
	logger   *log.Entry
}

// NewProductService конструирует сервис каталога товаров.
func NewProductService(products domain.ProductRepository, logger *log.Entry) *ProductService {
	if logger == nil {
		logger = log.New().WithField("component", "product-service")
	}
	return &ProductService{products: products, logger: logger}
}

// Create добавляет новый товар в каталог.
func (s *ProductService) Create(name, description string, priceMinor int64) (domain.Product, error) {
	product, err := domain.NewProduct("", name, description, priceMinor)
	if err != nil {
		return domain.Product{}, err
	}
	if err := s.products.Add(*product); err != nil {
		s.logger.WithError(err).Error("failed to persist product")
		return domain.Product{}, err
	}
	return *product, nil
}

// Get возвращает товар по идентификатору.
func (s *ProductService) Get(id string) (domain.Product, error) {
	return s.products.GetByID(id)
}

// List возвращает все товары каталога.
func (s *ProductService) List() ([]domain.Product, error) {
	return s.products.ListAll()
}

// UpdateInfo обновляет название и описание товара.
func (s *ProductService) UpdateInfo(id, name, description string) (domain.Product, error) {
	return s.mutate(id, func(p *domain.Product) error {
		return p.UpdateInfo(name, description)
	})
}

// ChangePrice устанавливает новую цену активного товара.
func (s *ProductService) ChangePrice(id string, priceMinor int64) (domain.Product, error) {
	return s.mutate(id, func(p *domain.Product) error {
		return p.ChangePrice(priceMinor)
	})
}

// ApplyDiscount применяет процентную скидку к активному товару.
func (s *ProductService) ApplyDiscount(id string, percentage int64) (domain.Product, error) {
	return s.mutate(id, func(p *domain.Product) error {
		return p.ApplyDiscount(percentage)
	})
}

// Activate возвращает товар в продажу.
func (s *ProductService) Activate(id string) (domain.Product, error) {
	return s.mutate(id, func(p *domain.Product) error {
		p.Activate()
		return nil
	})
}

// Deactivate снимает товар с продажи.
func (s *ProductService) Deactivate(id string) (domain.Product, error) {
	return s.mutate(id, func(p *domain.Product) error {
		p.Deactivate()
		return nil
	})
}

// Delete удаляет товар из каталога.
func (s *ProductService) Delete(id string) error {
	return s.products.Remove(id)
}

func (s *ProductService) mutate(id string, fn func(*domain.Product) error) (domain.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return domain.Product{}, err
	}
	if err := fn(&product); err != nil {
		return domain.Product{}, err
	}
	if err := s.products.Save(product); err != nil {
		s.logger.WithError(err).WithField("product_id", id).Error("failed to save product")
		return domain.Product{}, err
	}
	return product, nil
}
