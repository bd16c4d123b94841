package mines

import "errors"

var (
	ErrInvalidDimensions = errors.New("rows and columns must be positive")
	ErrInvalidMineCount  = errors.New("mine count must be positive and less than the number of panels")
	ErrInvalidPanelWidth = errors.New("panel width must be positive")
	ErrInvalidPlacement  = errors.New("invalid mine placement")
)
