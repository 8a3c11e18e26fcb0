package main

import (
	"context"
	"log/slog"
	"os"

	"travel-booking/cmd/bootstrap"

	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		bootstrap.WorkerModule,
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("ワーカーの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("ワーカーの停止に失敗しました", "error", err)
	}

	slog.Info("ワーカーが正常に停止しました")
}
