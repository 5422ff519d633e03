package rectpack

import "strconv"

// FaceOrder selects the order in which Find tries faces.
type FaceOrder int

const (
	// OrderAscending tries faces 0..Faces-1 on every call.
	OrderAscending FaceOrder = iota

	// OrderRoundRobin starts at the face after the one that satisfied the
	// previous successful Find, wrapping around.
	OrderRoundRobin
)

// String returns the order name.
func (o FaceOrder) String() string {
	switch o {
	case OrderAscending:
		return "ascending"
	case OrderRoundRobin:
		return "round-robin"
	default:
		return "FaceOrder(" + strconv.Itoa(int(o)) + ")"
	}
}

// ParseFaceOrder parses the names produced by FaceOrder.String.
func ParseFaceOrder(s string) (FaceOrder, error) {
	switch s {
	case "ascending", "":
		return OrderAscending, nil
	case "round-robin", "roundrobin":
		return OrderRoundRobin, nil
	}
	return 0, &ConfigError{Field: "Order", Reason: "unknown face order " + strconv.Quote(s)}
}

// Default atlas settings.
const (
	// DefaultFaces is the number of faces of a cube map.
	DefaultFaces = 6

	// DefaultSide is the default face dimension (2048x2048).
	DefaultSide = 2048

	// DefaultMaxNodes is the default node budget per face.
	DefaultMaxNodes = 256

	// MaxFaces is the largest supported face count.
	MaxFaces = 256
)

// Config holds atlas configuration.
type Config struct {
	// Faces is the number of independent surfaces.
	// Default: 6
	Faces int

	// Side is the width and height of every face.
	// Default: 2048
	Side int

	// MaxNodes caps the tree nodes per face. An allocation whose split
	// would exceed the cap is not placed on that node.
	// Zero selects DefaultMaxNodes in New. Default: 256
	MaxNodes int

	// Order is the face search order.
	// Default: OrderAscending
	Order FaceOrder
}

// DefaultConfig returns default configuration: a 2048x2048 cube map.
func DefaultConfig() Config {
	return Config{
		Faces:    DefaultFaces,
		Side:     DefaultSide,
		MaxNodes: DefaultMaxNodes,
		Order:    OrderAscending,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Faces < 1 {
		return &ConfigError{Field: "Faces", Reason: "must be at least 1"}
	}
	if c.Faces > MaxFaces {
		return &ConfigError{Field: "Faces", Reason: "must be at most 256"}
	}
	if c.Side < 1 {
		return &ConfigError{Field: "Side", Reason: "must be positive"}
	}
	if c.MaxNodes < 1 {
		return &ConfigError{Field: "MaxNodes", Reason: "must be at least 1"}
	}
	if c.Order != OrderAscending && c.Order != OrderRoundRobin {
		return &ConfigError{Field: "Order", Reason: "unknown face order"}
	}
	return nil
}
