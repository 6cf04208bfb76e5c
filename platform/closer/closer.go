package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFn struct {
	name string
	fn   func(context.Context) error
}

// Closer runs registered shutdown hooks in reverse registration order.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFn
	logger Logger
}

var globalCloser = New()

func New() *Closer { return &Closer{} }

func SetLogger(l Logger) { globalCloser.SetLogger(l) }

func AddNamed(name string, fn func(context.Context) error) { globalCloser.AddNamed(name, fn) }

func CloseAll(ctx context.Context) error { return globalCloser.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) AddNamed(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFn{name: name, fn: fn})
}

func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", f.name, err))
				continue
			}

			if err := f.fn(ctx); err != nil {
				if log != nil {
					log.Error(ctx, "close resource", zap.String("name", f.name), zap.Error(err))
				}
				errs = append(errs, fmt.Errorf("close %s: %w", f.name, err))
				continue
			}

			if log != nil {
				log.Info(ctx, "resource closed", zap.String("name", f.name))
			}
		}
		result = errors.Join(errs...)
	})

	return result
}
