// Package connector — HTTP-клиент REST API сервиса Data Connector.
//
// Каждый вызов — один синхронный POST с Basic-аутентификацией.
// Тело запроса (если есть) сериализуется в JSON, ответ возвращается
// как есть, без разбора: схема ответа принадлежит сервису.
//
//	client := connector.NewClient(connector.Config{
//		BaseURL:  "http://localhost/WSConnectorREST",
//		User:     "amis",
//		Password: "amis",
//	})
//	resp, err := client.Version(ctx)
//
// Ошибки транспорта оборачивают ErrTransport, ответы с кодом вне 2xx
// (и вне Config.AcceptCodes) — ErrHTTPStatus через *StatusError.
// Повторов нет.
package connector
