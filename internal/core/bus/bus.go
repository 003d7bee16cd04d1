// Package bus provides the command, query and event dispatch machinery.
// Each bus holds a registry keyed by a request's declared name; every name
// maps to exactly one handler, wired once at startup. A missing or
// duplicate registration is a configuration error and should abort boot.
package bus

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrHandlerNotFound   = errors.New("no handler registered")
	ErrDuplicateHandler  = errors.New("handler already registered")
	ErrUnexpectedRequest = errors.New("handler received unexpected request type")
)

// Command expresses an intent to change state. Dispatch is synchronous and
// returns no value beyond an error.
type Command interface {
	CommandName() string
}

type CommandHandler interface {
	Handle(ctx context.Context, cmd Command) error
}

type CommandBus struct {
	handlers map[string]CommandHandler
}

func NewCommandBus() *CommandBus {
	return &CommandBus{handlers: make(map[string]CommandHandler)}
}

func (b *CommandBus) Register(name string, handler CommandHandler) error {
	if _, ok := b.handlers[name]; ok {
		return fmt.Errorf("%w: command %q", ErrDuplicateHandler, name)
	}
	b.handlers[name] = handler
	return nil
}

func (b *CommandBus) Has(name string) bool {
	_, ok := b.handlers[name]
	return ok
}

// Dispatch routes the command to its single handler. Errors from the
// handler bubble up untranslated.
func (b *CommandBus) Dispatch(ctx context.Context, cmd Command) error {
	handler, ok := b.handlers[cmd.CommandName()]
	if !ok {
		return fmt.Errorf("%w: command %q", ErrHandlerNotFound, cmd.CommandName())
	}
	return handler.Handle(ctx, cmd)
}

// Query expresses an intent to read state. Dispatch is synchronous and
// returns the handler's result.
type Query interface {
	QueryName() string
}

type QueryHandler interface {
	Handle(ctx context.Context, query Query) (any, error)
}

type QueryBus struct {
	handlers map[string]QueryHandler
}

func NewQueryBus() *QueryBus {
	return &QueryBus{handlers: make(map[string]QueryHandler)}
}

func (b *QueryBus) Register(name string, handler QueryHandler) error {
	if _, ok := b.handlers[name]; ok {
		return fmt.Errorf("%w: query %q", ErrDuplicateHandler, name)
	}
	b.handlers[name] = handler
	return nil
}

func (b *QueryBus) Has(name string) bool {
	_, ok := b.handlers[name]
	return ok
}

func (b *QueryBus) Dispatch(ctx context.Context, query Query) (any, error) {
	handler, ok := b.handlers[query.QueryName()]
	if !ok {
		return nil, fmt.Errorf("%w: query %q", ErrHandlerNotFound, query.QueryName())
	}
	return handler.Handle(ctx, query)
}
