package closer

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(ctx context.Context) error
}

// Closer runs registered shutdown functions in reverse registration order.
type Closer struct {
	mu     sync.Mutex
	funcs  []namedFunc
	done   bool
	logger Logger
}

var globalCloser = New()

func New() *Closer {
	return &Closer{logger: nopLogger{}}
}

func SetLogger(l Logger)                                       { globalCloser.SetLogger(l) }
func Add(fn func(ctx context.Context) error)                   { globalCloser.Add(fn) }
func AddNamed(name string, fn func(ctx context.Context) error) { globalCloser.AddNamed(name, fn) }
func CloseAll(ctx context.Context) error                       { return globalCloser.CloseAll(ctx) }

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger = l
}

func (c *Closer) Add(fn func(ctx context.Context) error) {
	c.AddNamed("", fn)
}

func (c *Closer) AddNamed(name string, fn func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll is safe to call more than once; only the first call runs the funcs.
func (c *Closer) CloseAll(ctx context.Context) error {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return nil
	}
	c.done = true
	funcs := c.funcs
	c.funcs = nil
	log := c.logger
	c.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		f := funcs[i]

		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if err := f.fn(ctx); err != nil {
			log.Error(ctx, "failed to close", zap.String("name", f.name), zap.Error(err))
			errs = append(errs, err)
			continue
		}

		if f.name != "" {
			log.Info(ctx, "closed", zap.String("name", f.name))
		}
	}

	return errors.Join(errs...)
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}
