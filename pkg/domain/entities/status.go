package entities

import "fmt"

// OrderStatus represents the fulfillment state of a segment or a segment material
type OrderStatus int

const (
	NotOrdered OrderStatus = iota
	Ordered
	Delivered
)

// String method for OrderStatus enum
func (s OrderStatus) String() string {
	switch s {
	case NotOrdered:
		return "not_ordered"
	case Ordered:
		return "ordered"
	case Delivered:
		return "delivered"
	default:
		return "unknown"
	}
}

// ParseOrderStatus converts a wire value into an OrderStatus
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch s {
	case "not_ordered":
		return NotOrdered, nil
	case "ordered":
		return Ordered, nil
	case "delivered":
		return Delivered, nil
	default:
		return NotOrdered, fmt.Errorf("invalid order status: %q", s)
	}
}

func (s OrderStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *OrderStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseOrderStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// WorkScope is the trade classification of a segment's work
type WorkScope int

const (
	ScopePaint WorkScope = iota
	ScopeFirestopping
	ScopeMixed
)

// String method for WorkScope enum
func (w WorkScope) String() string {
	switch w {
	case ScopePaint:
		return "paint"
	case ScopeFirestopping:
		return "firestopping"
	case ScopeMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Label returns the human readable scope name used in listings
func (w WorkScope) Label() string {
	switch w {
	case ScopePaint:
		return "Paint"
	case ScopeFirestopping:
		return "Fire Stopping"
	case ScopeMixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// ParseWorkScope converts a wire value into a WorkScope
func ParseWorkScope(s string) (WorkScope, error) {
	switch s {
	case "paint":
		return ScopePaint, nil
	case "firestopping":
		return ScopeFirestopping, nil
	case "mixed":
		return ScopeMixed, nil
	default:
		return ScopeMixed, fmt.Errorf("invalid work scope: %q", s)
	}
}

func (w WorkScope) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *WorkScope) UnmarshalText(text []byte) error {
	parsed, err := ParseWorkScope(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// MaterialCategory groups catalog materials
type MaterialCategory int

const (
	CategoryPaint MaterialCategory = iota
	CategoryFirestopping
)

// String method for MaterialCategory enum
func (c MaterialCategory) String() string {
	switch c {
	case CategoryPaint:
		return "paint"
	case CategoryFirestopping:
		return "firestopping"
	default:
		return "unknown"
	}
}

// Label returns the catalog heading for the category
func (c MaterialCategory) Label() string {
	switch c {
	case CategoryPaint:
		return "Intumescent Paint"
	case CategoryFirestopping:
		return "Fire Stopping"
	default:
		return "Unknown"
	}
}

// ParseMaterialCategory converts a wire value into a MaterialCategory
func ParseMaterialCategory(s string) (MaterialCategory, error) {
	switch s {
	case "paint":
		return CategoryPaint, nil
	case "firestopping":
		return CategoryFirestopping, nil
	default:
		return CategoryPaint, fmt.Errorf("invalid material category: %q", s)
	}
}

func (c MaterialCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *MaterialCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseMaterialCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
