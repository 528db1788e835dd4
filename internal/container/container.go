package container

import (
	"context"
	"errors"
)

// ErrAssembly wraps every failure to build the output animation.
var ErrAssembly = errors.New("container assembly failed")

// Encoder packs an ordered list of frame files into one animated file.
type Encoder interface {
	Assemble(ctx context.Context, framePaths []string, outputPath string, loopForever bool) error
}
