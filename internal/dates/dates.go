package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// Layout — формат даты на проводе.
const Layout = "2006-01-02T15:04:05"

// layouts — форматы, которые пробуются до jinzhu/now.
var layouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Epoch возвращает нижнюю границу диапазона по умолчанию.
func Epoch() time.Time {
	return time.Date(1970, time.January, 1, 0, 0, 0, 0, time.Local)
}

// Parse разбирает дату в локальной зоне.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	t, err := now.ParseInLocation(time.Local, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	// Сервис ждёт локальное время без зоны: явное смещение пересчитывается
	return t.In(time.Local), nil
}

// Format форматирует время с точностью до секунды.
func Format(t time.Time) string {
	return t.Truncate(time.Second).Format(Layout)
}

// Range — интервал клинических событий.
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange строит интервал, подставляя значения по умолчанию:
// from — начало эпохи, to — current. Обе границы обрезаются до секунд.
func NewRange(from, to *time.Time, current time.Time) Range {
	r := Range{From: Epoch(), To: current}
	if from != nil {
		r.From = *from
	}
	if to != nil {
		r.To = *to
	}

	r.From = r.From.Truncate(time.Second)
	r.To = r.To.Truncate(time.Second)
	return r
}

// Timestamp сериализуется в JSON в формате Layout.
type Timestamp time.Time

// MarshalJSON реализует json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + Format(time.Time(ts)) + `"`), nil
}
