package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container - înveliș peste huma.Middlewares cu acumulare și golire.
type Container struct {
	huma.Middlewares
}

// NewContainer creează un container gol de middleware-uri.
func NewContainer() *Container {
	return &Container{
		Middlewares: make(huma.Middlewares, 0),
	}
}

// Add adaugă un middleware în container.
func (mc *Container) Add(middleware func(ctx huma.Context, next func(huma.Context))) {
	mc.Middlewares = append(mc.Middlewares, middleware)
}

// GetAllAndClear întoarce middleware-urile acumulate și golește lista.
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := mc.Middlewares
	mc.Middlewares = nil
	return result
}
