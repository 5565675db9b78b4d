package brush

import "errors"

var (
	// ErrMaxFaces is returned when adding a face to a brush that already holds MaxFaces faces.
	ErrMaxFaces = errors.New("brush: face limit reached")
	// ErrFaceIndex is returned for a face index outside the brush.
	ErrFaceIndex = errors.New("brush: face index out of range")
	// ErrStaleMemento is returned when a memento refers to released faces.
	ErrStaleMemento = errors.New("brush: stale memento")
	// ErrForeignMemento is returned when a memento was exported by another brush.
	ErrForeignMemento = errors.New("brush: memento belongs to another brush")
	// ErrSides is returned by primitive constructors for an unsupported side count.
	ErrSides = errors.New("brush: unsupported number of sides")
	// ErrInvalidPlane is returned when a face would be built from collinear points.
	ErrInvalidPlane = errors.New("brush: invalid plane")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("brush: invalid config")
	// ErrReentrantMutation is the panic value raised when an event listener
	// mutates the brush that is notifying it.
	ErrReentrantMutation = errors.New("brush: mutation from inside an event listener")
)
