// Package telemetry обеспечивает наблюдаемость CLI.
//
// Включает:
//   - logging.go — structured logging через slog (в stderr)
//   - metrics.go — Prometheus метрики запросов к Data Connector
//
// stdout зарезервирован под ответы сервиса, поэтому все логи
// пишутся в stderr. Метрики по умолчанию остаются в памяти процесса
// и отправляются в Pushgateway только при заданном --pushgateway.
package telemetry
