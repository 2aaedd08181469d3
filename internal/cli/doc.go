// Package cli реализует командную строку клиента Data Connector.
//
// # Обзор
//
// Утилита для ручного тестирования REST API сервиса Data Connector
// (STAPRO). Каждый запуск — ровно один запрос: разобрать флаги,
// отправить POST, напечатать ответ, выйти.
//
//	dcclient [-b URL] [-u USER] [-p PASS] [--pretty] <command> [flags]
//
// # Ключевые компоненты
//
// ## Run
//
// Единственная точка входа и единственное место, где определяется
// код выхода: 0 при успехе, 1 при любой ошибке. Ошибки обмена с
// сервисом печатаются в stderr с префиксом "Connection error:",
// остальные — с префиксом "Error:". В stdout при ошибке ничего не пишется.
//
// ## Session
//
// Неизменяемая конфигурация запуска (Config) вместе с клиентом и
// Output. Создаётся один раз в PersistentPreRunE корневой команды
// и передаётся подкомандам через sessionFn.
//
// ## Output
//
// Печатает тело ответа как есть или, с --pretty, как JSON с отступом
// в 4 пробела. Невалидный JSON в режиме --pretty — ошибка ErrInvalidJSON.
//
// ## Commands
//
//   - version: POST /GetWebServiceVersion
//   - status:  POST /GetWebServiceState
//   - patsum:  POST /PatientInfo {RodneCislo, DateFrom, DateTo}
package cli
