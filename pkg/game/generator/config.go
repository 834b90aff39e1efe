package generator

import (
	"errors"
	"fmt"
	"time"
)

// ErrConfiguration is returned for invalid generation parameters. Generation
// is aborted and nothing is returned.
var ErrConfiguration = errors.New("configuration error")

// Config holds every external knob of a generation pass
type Config struct {
	// Algorithm names the builder ("tree" or "rooms"); empty means "tree"
	Algorithm string

	// Seed for every random draw; 0 picks a time-based seed
	Seed int64

	// Depth is the number of rooms in each branch between the start and the boss
	Depth int

	// Branches is the number of branches forking off the start room
	Branches int

	// Width and Height of the tile grid
	Width  int
	Height int

	// MaxRooms is the number of placement attempts of the "rooms" builder; 0 uses DefaultMaxRooms
	MaxRooms int
}

// DefaultConfig returns a three-branch, three-deep dungeon on a 100x100 grid
func DefaultConfig() Config {
	return Config{
		Depth:    3,
		Branches: 3,
		Width:    100,
		Height:   100,
	}
}

// Validate reports the first invalid parameter
func (c Config) Validate() error {
	if _, err := BuilderFor(c.Algorithm); err != nil {
		return err
	}
	if c.Algorithm == AlgorithmRooms {
		return c.validateRooms()
	}
	if c.Depth < 1 {
		return fmt.Errorf("%w: depth must be at least 1, got %d", ErrConfiguration, c.Depth)
	}
	if c.Branches < 1 {
		return fmt.Errorf("%w: branch count must be at least 1, got %d", ErrConfiguration, c.Branches)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid size must be positive, got %dx%d", ErrConfiguration, c.Width, c.Height)
	}
	return nil
}

// ResolvedSeed returns Seed, or a time-based seed when Seed is 0
func (c Config) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	seed := time.Now().UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}

func (c Config) validateRooms() error {
	if c.MaxRooms < 0 || c.MaxRooms == 1 {
		return fmt.Errorf("%w: max rooms must be at least 2, got %d", ErrConfiguration, c.MaxRooms)
	}
	minSide := MaxRoomSize + 3
	if c.Width < minSide || c.Height < minSide {
		return fmt.Errorf("%w: grid %dx%d too small for random rooms, need at least %dx%d",
			ErrConfiguration, c.Width, c.Height, minSide, minSide)
	}
	return nil
}

// RoomAttempts returns MaxRooms, or DefaultMaxRooms when unset
func (c Config) RoomAttempts() int {
	if c.MaxRooms == 0 {
		return DefaultMaxRooms
	}
	return c.MaxRooms
}
