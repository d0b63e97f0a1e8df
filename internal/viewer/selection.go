package viewer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/scene"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/math"
)

// applySelection colors the star of the typed vertex and returns the message
// to show the user, and whether the selection was accepted.
func applySelection(s *scene.Scene, target, input string, color math.Vec4) (string, bool) {
	id, err := s.Select(target, input, color)
	if err != nil {
		logger.Warn("selection rejected",
			zap.String("object", target),
			zap.String("input", input),
			zap.Error(err))

		if errors.Is(err, scene.ErrInvalidSelection) {
			o, _ := s.Object(target)
			return fmt.Sprintf("Invalid vertex! Enter a value between 1 and %d.", o.Mesh.VertexCount()), false
		}
		return fmt.Sprintf("Selection failed: %v", err), false
	}

	return fmt.Sprintf("The region around vertex %d of %s was painted!", id+1, target), true
}
