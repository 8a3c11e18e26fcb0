package bootstrap

import (
	"travel-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the HTTP API.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// WorkerModule wires the notification outbox worker.
var WorkerModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.NotifyModule,
)
