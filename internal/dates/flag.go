package dates

import (
	"time"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*Flag)(nil)

// Flag — значение флага с датой (pflag.Value).
// Пустой Flag означает, что флаг не задан.
type Flag struct {
	t *time.Time
}

// String реализует pflag.Value.
func (f *Flag) String() string {
	if f.t == nil {
		return ""
	}
	return Format(*f.t)
}

// Set реализует pflag.Value.
func (f *Flag) Set(s string) error {
	t, err := Parse(s)
	if err != nil {
		return err
	}
	f.t = &t
	return nil
}

// Type реализует pflag.Value.
func (f *Flag) Type() string {
	return "datetime"
}

// Time возвращает заданное время или nil.
func (f *Flag) Time() *time.Time {
	return f.t
}
