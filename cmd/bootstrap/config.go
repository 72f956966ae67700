package bootstrap

import (
	"go.uber.org/fx"

	"github.com/iliyamo/seat-inventory/internal/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
	),
)
