package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/pkg/math"
)

// Selection errors.
var (
	ErrInvalidSelection = errors.New("invalid vertex selection")
	ErrUnknownObject    = errors.New("unknown object")
)

// ParseSelection converts a 1-based vertex number typed by the user into a
// vertex id. The input must be an integer in [1, count].
func ParseSelection(input string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("%w: enter a value between 1 and %d", ErrInvalidSelection, count)
	}
	return n - 1, nil
}

// Select colors the star of the vertex typed by the user on the named object
// and returns the vertex id. Stars accumulate; earlier selections stay
// colored. On error nothing is changed.
func (s *Scene) Select(name, input string, color math.Vec4) (int, error) {
	o, ok := s.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownObject, name)
	}

	id, err := ParseSelection(input, o.Mesh.VertexCount())
	if err != nil {
		return 0, err
	}
	if err := o.ColorStar(id, color); err != nil {
		return 0, err
	}

	faces, closed := o.Mesh.Star(id)
	s.log.Info("star colored",
		zap.String("object", name),
		zap.Int("vertex", id+1),
		zap.Int("faces", len(faces)),
		zap.Bool("closed", closed))
	return id, nil
}

// ClearSelection repaints every vertex of the named object with color,
// removing all accumulated stars.
func (s *Scene) ClearSelection(name string, color math.Vec4) error {
	o, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownObject, name)
	}
	o.ResetColors(color)
	s.log.Info("selection cleared", zap.String("object", name))
	return nil
}
