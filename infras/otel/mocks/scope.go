package mocks

import "dailytodo/infras/otel"

// noopScope discards everything, so tests of traced code need no provider.
type noopScope struct{}

func NewScope() otel.Scope {
	return noopScope{}
}

func (noopScope) End() {}

func (noopScope) AddEvent(string) {}

func (noopScope) SetAttribute(string, any) {}

func (noopScope) SetAttributes(map[string]any) {}

func (noopScope) TraceError(error) {}

func (noopScope) TraceIfError(error) {}
