package scene

import "fmt"

// minResolution keeps at least one interior row and column between the
// border cells.
const minResolution = 3

// Session owns the current scene. Switching scenes or resolution discards
// the old grid and builds a new one. A zero Session has no scene until the
// first successful Rebuild.
type Session struct {
	Aspect float32

	// Resolution overrides the preset row count when non-zero.
	Resolution int

	current  *Scene
	dragging bool
}

func NewSession(aspect float32, kind Kind) (*Session, error) {
	s := &Session{}
	if _, err := s.Rebuild(kind, aspect, 0); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Current() *Scene { return s.current }

// Load replaces the current scene with a fresh preset.
func (s *Session) Load(kind Kind) (*Scene, error) {
	return s.Rebuild(kind, s.Aspect, s.Resolution)
}

// SetResolution stores a row-count override and reloads the current preset.
// Zero restores the preset default.
func (s *Session) SetResolution(rows int) (*Scene, error) {
	return s.Rebuild(s.current.Kind, s.Aspect, rows)
}

// Rebuild validates a domain of width aspect at rows rows (0 for the preset
// default) and builds kind on it. On error the current scene and settings
// are kept.
func (s *Session) Rebuild(kind Kind, aspect float32, rows int) (*Scene, error) {
	if err := checkGrid(kind, aspect, rows); err != nil {
		return nil, err
	}
	s.Aspect = aspect
	s.Resolution = rows
	s.current = New(kind, aspect, rows)
	s.dragging = false
	return s.current, nil
}

func checkGrid(kind Kind, aspect float32, rows int) error {
	if !(aspect > 0) {
		return fmt.Errorf("aspect %v must be positive", aspect)
	}
	if rows < 0 || rows != 0 && rows < minResolution {
		return fmt.Errorf("resolution %d is below the minimum of %d rows", rows, minResolution)
	}
	if rows == 0 {
		rows = kind.Resolution()
	}
	if numX, _ := gridSize(aspect, rows); numX < minResolution {
		return fmt.Errorf("aspect %.3f leaves %d columns at %d rows, need %d", aspect, numX, rows, minResolution)
	}
	return nil
}

// StartDrag places the obstacle at (x, y) without giving it any velocity.
func (s *Session) StartDrag(x, y float32) {
	s.dragging = true
	s.current.SetObstacle(x, y, true)
}

// Drag moves the obstacle while a drag is in progress.
func (s *Session) Drag(x, y float32) {
	if !s.dragging {
		return
	}
	s.current.SetObstacle(x, y, false)
}

func (s *Session) EndDrag() {
	s.dragging = false
}

func (s *Session) Dragging() bool { return s.dragging }
