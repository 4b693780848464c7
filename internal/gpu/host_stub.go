//go:build !raylib

package gpu

import (
	"context"
	"fmt"

	"github.com/finnegancarroll/graphdrift/internal/frame"
	"go.uber.org/zap"
)

const Available = false

func Run(ctx context.Context, loop *frame.Loop, opts HostOptions, logger *zap.Logger) error {
	return fmt.Errorf("%w: built without the raylib tag", ErrContextUnavailable)
}
