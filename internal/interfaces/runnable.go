package interfaces

import "context"

// Runnable is a long-living component, stopped by cancelling ctx
type Runnable interface {
	Run(ctx context.Context) error
}
