package models

import "fmt"

// StockType is the closed set of stock categories. Inputs are validated
// once at the boundary with ParseStockType; everything downstream works
// with the typed value.
type StockType string

const (
	StockTypeSound      StockType = "sound"
	StockTypeLighting   StockType = "lighting"
	StockTypeVideo      StockType = "video"
	StockTypeStructure  StockType = "structure"
	StockTypeConsumable StockType = "consumable"
)

var stockTypes = map[StockType]bool{
	StockTypeSound:      true,
	StockTypeLighting:   true,
	StockTypeVideo:      true,
	StockTypeStructure:  true,
	StockTypeConsumable: true,
}

func ParseStockType(s string) (StockType, error) {
	t := StockType(s)
	if !stockTypes[t] {
		return "", fmt.Errorf("unknown stock type %q", s)
	}
	return t, nil
}

// DetailType marks the direction of a form line item.
type DetailType string

const (
	DetailTypeCheckout DetailType = "checkout"
	DetailTypeReturn   DetailType = "return"
)

func ParseDetailType(s string) (DetailType, error) {
	t := DetailType(s)
	if t != DetailTypeCheckout && t != DetailTypeReturn {
		return "", fmt.Errorf("unknown detail type %q", s)
	}
	return t, nil
}

// Role is the user role set. Registration always creates RoleUser.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)
