// dcclient — клиент командной строки для ручного тестирования
// REST API сервиса STAPRO Data Connector.
//
// Использование:
//
//	dcclient [-b URL] [-u USER] [-p PASSWORD] [--pretty] <command> [flags]
//
// Команды:
//
//	version  Версия сервиса
//	status   Состояние сервиса
//	patsum   Сводка неотложной информации о пациенте
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/shaiso/dcclient/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	// .env необязателен; переменные окружения процесса не перезаписываются
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Warning: could not load .env:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Run(ctx, os.Args[1:], cli.Env{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: version,
	})

	stop()
	os.Exit(code)
}
