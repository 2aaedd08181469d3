package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shaiso/dcclient/internal/connector"
)

// prettyIndent — отступ в режиме --pretty.
const prettyIndent = "    "

// Output управляет форматированием вывода CLI.
type Output struct {
	pretty bool
	w      io.Writer // stdout для ответов сервиса
}

// NewOutput создаёт Output. Если pretty=true, JSON переформатируется с отступами.
func NewOutput(pretty bool, w io.Writer) *Output {
	return &Output{
		pretty: pretty,
		w:      w,
	}
}

// Response выводит тело ответа сервиса.
// Для принятых (AcceptCodes) ответов ничего не выводит.
func (o *Output) Response(resp *connector.Response) error {
	if resp.Accepted {
		return nil
	}
	return o.Print(resp.Body)
}

// Print выводит текст как есть или, в режиме pretty, как JSON с отступом
// в 4 пробела. Порядок ключей сохраняется.
func (o *Output) Print(text string) error {
	if !o.pretty {
		_, err := fmt.Fprintln(o.w, text)
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(text)), "", prettyIndent); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	buf.WriteByte('\n')
	_, err := buf.WriteTo(o.w)
	return err
}

// reportError выводит ошибку в stderr.
// Ошибки обмена с сервисом печатаются с префиксом "Connection error:".
func reportError(w io.Writer, err error) {
	if connector.IsConnectionError(err) {
		fmt.Fprintln(w, "Connection error:", err)
		return
	}
	fmt.Fprintln(w, "Error:", err)
}
