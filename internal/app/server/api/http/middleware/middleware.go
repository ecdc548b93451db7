package middleware

import "github.com/danielgtaylor/huma/v2"

// Container collects per-handler middleware chains during wiring.
type Container struct {
	mws huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.mws = append(c.mws, mw)
}

// GetAllAndClear hands out the accumulated chain and resets the
// container for the next handler.
func (c *Container) GetAllAndClear() huma.Middlewares {
	out := c.mws
	c.mws = nil
	return out
}
