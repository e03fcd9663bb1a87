package domain

import "strings"

// isBlank сообщает, пустая ли строка после обрезки пробелов.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validQty проверяет, что количество строго положительное.
func validQty(qty int32) bool {
	return qty > 0
}

// validPriceMinor проверяет, что цена в минимальных денежных единицах строго положительная.
func validPriceMinor(price int64) bool {
	return price > 0
}
