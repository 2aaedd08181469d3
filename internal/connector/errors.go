package connector

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Ошибки клиента.
var (
	// ErrTransport — запрос не дошёл до сервиса или ответ не прочитан
	// (DNS, отказ в соединении, таймаут, отмена контекста).
	ErrTransport = errors.New("transport error")

	// ErrHTTPStatus — сервис ответил кодом вне 2xx.
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrEncodeRequest — параметры запроса не сериализуются в JSON.
	ErrEncodeRequest = errors.New("encode request")

	// ErrResponseTooLarge — тело ответа превышает maxResponseBody.
	ErrResponseTooLarge = errors.New("response body too large")
)

// StatusError — ответ сервиса с неуспешным кодом.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
	Body       string
}

// Error реализует интерфейс error.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s for url: %s", e.Status, e.URL)
	}
	return fmt.Sprintf("%s for url: %s: %s", e.Status, e.URL, truncate(e.Body, 200))
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrHTTPStatus).
func (e *StatusError) Unwrap() error {
	return ErrHTTPStatus
}

// IsConnectionError сообщает, относится ли ошибка к обмену с сервисом.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrHTTPStatus)
}

// truncate обрезает строку до maxLen байт, не разрывая UTF-8 символы.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
