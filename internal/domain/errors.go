package domain

import "errors"

// Ошибки валидации: возникают в конструкторах и сеттерах,
// всегда локальны для вызова и не подлежат повторам.
var (
	// Ошибка отсутствующего идентификатора клиента при создании заказа.
	ErrCustomerRequired = errors.New("customer_id is required")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrQuantityInvalid = errors.New("quantity must be greater than zero")
	// Ошибка при некорректной цене (<= 0).
	ErrPriceInvalid = errors.New("unit price must be strictly positive")
	// Ошибка отсутствующего имени или названия (товар, клиент, поставщик).
	ErrNameRequired = errors.New("name is required")
	// Ошибка отсутствующего email.
	ErrEmailRequired = errors.New("email is required")
	// Ошибка некорректного процента скидки.
	ErrDiscountInvalid = errors.New("discount percentage must be between 0 and 100")
	// Ошибка операции над неактивным товаром.
	ErrProductInactive = errors.New("product is inactive")
)

// Бизнес-ошибки: нарушения инвариантов агрегата Order.
// Операция либо полностью успешна, либо оставляет состояние нетронутым.
var (
	// ErrInvalidTransition возвращается при недопустимом переходе статуса.
	ErrInvalidTransition = errors.New("invalid order status transition")
	// ErrEmptyOrder возвращается при подтверждении заказа без позиций.
	ErrEmptyOrder = errors.New("cannot confirm order without items")
	// ErrDuplicateItem возвращается при повторном добавлении того же товара.
	ErrDuplicateItem = errors.New("product is already in the order")
	// ErrItemNotFound возвращается, если позиция не найдена в заказе.
	ErrItemNotFound = errors.New("item not found in the order")
	// ErrAlreadyDelivered возвращается при отмене уже доставленного заказа.
	ErrAlreadyDelivered = errors.New("cannot cancel a delivered order")
	// ErrAlreadyCancelled возвращается при повторной отмене заказа.
	ErrAlreadyCancelled = errors.New("order is already cancelled")
)

// Ошибки адресации: сущность не найдена на уровне приложения/репозитория.
var (
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrCustomerNotFound возвращается, если клиент не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductNotFound возвращается, если товар не найден.
	ErrProductNotFound = errors.New("product not found")
	// ErrSupplierNotFound возвращается, если поставщик не найден.
	ErrSupplierNotFound = errors.New("supplier not found")
)

// Ошибки хранилища: отделены от доменных, чтобы транспортный слой
// мог отличить проблему клиента от сбоя инфраструктуры.
var (
	// ErrOrderVersionConflict сигнализирует о конфликте версий при сохранении.
	ErrOrderVersionConflict = errors.New("order version conflict")
	// ErrAlreadyExists возвращается при вставке записи с занятым ID.
	ErrAlreadyExists = errors.New("entity already exists")
	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

var validationErrors = []error{
	ErrCustomerRequired,
	ErrQuantityInvalid,
	ErrPriceInvalid,
	ErrNameRequired,
	ErrEmailRequired,
	ErrDiscountInvalid,
	ErrProductInactive,
}

var businessRuleErrors = []error{
	ErrInvalidTransition,
	ErrEmptyOrder,
	ErrDuplicateItem,
	ErrItemNotFound,
	ErrAlreadyDelivered,
	ErrAlreadyCancelled,
}

var notFoundErrors = []error{
	ErrOrderNotFound,
	ErrCustomerNotFound,
	ErrProductNotFound,
	ErrSupplierNotFound,
}

func matchAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsValidation проверяет, является ли ошибка ошибкой валидации входных данных.
func IsValidation(err error) bool {
	return matchAny(err, validationErrors)
}

// IsBusinessRule проверяет, является ли ошибка нарушением доменного инварианта.
func IsBusinessRule(err error) bool {
	return matchAny(err, businessRuleErrors)
}

// IsNotFound проверяет, является ли ошибка отсутствием сущности.
func IsNotFound(err error) bool {
	return matchAny(err, notFoundErrors)
}

// IsVersionConflict проверяет, является ли ошибка конфликтом версий.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrOrderVersionConflict)
}
