package renderer

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleCorridor
	StylePlayer
	StyleEnemy
	StyleBoss
	StyleMarker
	StyleSubtle
	StyleHeading
)

// Renderer defines the interface for dungeon preview backends.
// Implementations consume a finished Scene and never mutate it.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Render presents the scene. Windowed backends block until closed.
	Render(s *Scene) error

	// Name returns the backend name used by the -renderer flag
	Name() string
}
