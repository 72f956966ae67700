package bootstrap

import (
	"go.uber.org/fx"
)

// Module wires the HTTP server with its background sweeper.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	QueueModule,
	ServiceModule,
	HTTPModule,
	SweeperModule,
)

// WorkerModule wires everything the standalone sweeper needs: no HTTP, no
// Redis.
var WorkerModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	QueueModule,
	ServiceModule,
)
