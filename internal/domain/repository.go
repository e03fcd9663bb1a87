package domain

// OrderRepository описывает требования к хранилищу заказов.
// Save заменяет агрегат целиком, включая позиции: частичных записей не бывает.
// Реализация обязана сериализовать конкурентные записи по одному заказу
// (optimistic locking по Version), см. ErrOrderVersionConflict.
type OrderRepository interface {
	// Add сохраняет новый заказ. Возвращает ErrAlreadyExists, если ID занят.
	Add(order Order) error
	// Save перезаписывает заказ вместе с позициями с учётом optimistic locking.
	Save(order Order) error
	// GetByID возвращает заказ по идентификатору или ErrOrderNotFound.
	GetByID(id string) (Order, error)
	// ListAll возвращает все заказы, новые первыми.
	ListAll() ([]Order, error)
	// ListByCustomer возвращает заказы клиента с опциональным ограничением на количество.
	ListByCustomer(customerID string, limit int) ([]Order, error)
	// Remove удаляет заказ вместе с позициями. Возвращает ErrOrderNotFound, если его нет.
	Remove(id string) error
}

// ProductRepository описывает хранилище каталога товаров.
type ProductRepository interface {
	Add(product Product) error
	Save(product Product) error
	GetByID(id string) (Product, error)
	ListAll() ([]Product, error)
	Remove(id string) error
}

// CustomerRepository описывает хранилище клиентов.
type CustomerRepository interface {
	Add(customer Customer) error
	Save(customer Customer) error
	GetByID(id string) (Customer, error)
	ListAll() ([]Customer, error)
	Remove(id string) error
}

// SupplierRepository описывает хранилище поставщиков.
type SupplierRepository interface {
	Add(supplier Supplier) error
	Save(supplier Supplier) error
	GetByID(id string) (Supplier, error)
	ListAll() ([]Supplier, error)
	Remove(id string) error
}
