//go:build wireinject
// +build wireinject

package provider

import (
	"context"

	"github.com/google/wire"
)

func NewProvider(ctx context.Context) (*Provider, func(), error) {
	panic(wire.Build(
		wire.Struct(new(Provider), "*"),
		AllProvider,
	))
}
