package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaiso/dcclient/internal/connector"
	"github.com/shaiso/dcclient/internal/telemetry"
)

// Значения по умолчанию для глобальных флагов.
const (
	defaultUser     = "amis"
	defaultPassword = "amis"
)

// Config — конфигурация сессии, собранная из флагов.
type Config struct {
	BaseURL  string
	User     string
	Password string
	Pretty   bool

	Timeout     time.Duration
	AcceptCodes []int
	Pushgateway string
	Verbose     bool
}

// Session — всё, что нужно подкоманде: клиент, вывод и часы.
// Создаётся один раз после парсинга флагов и дальше не меняется.
type Session struct {
	Client *connector.Client
	Output *Output
	Now    func() time.Time
}

// Env — окружение процесса, в котором запускается CLI.
type Env struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Now     func() time.Time
	Version string
}

func (e Env) withDefaults() Env {
	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}
	if e.Stderr == nil {
		e.Stderr = os.Stderr
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.Version == "" {
		e.Version = "dev"
	}
	return e
}

// Run разбирает args, выполняет команду и возвращает код выхода.
func Run(ctx context.Context, args []string, env Env) int {
	env = env.withDefaults()

	level := new(slog.LevelVar)
	level.Set(telemetry.LogLevel(slog.LevelWarn))
	logger := telemetry.NewLogger(env.Stderr, level)

	a := &app{
		env:     env,
		level:   level,
		metrics: telemetry.NewMetrics(),
	}

	// cobra подставляет os.Args при nil
	if args == nil {
		args = []string{}
	}

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)

	err := root.ExecuteContext(telemetry.WithLogger(ctx, logger))

	// Пустой registry затёр бы метрики job в Pushgateway
	if a.flags.Pushgateway != "" && a.metrics.Observed() {
		if pushErr := a.metrics.Push(ctx, a.flags.Pushgateway); pushErr != nil {
			logger.Warn("failed to push metrics", "error", pushErr)
		}
	}

	if err != nil {
		reportError(env.Stderr, err)
		return 1
	}
	return 0
}

// app связывает флаги корневой команды с сессией.
type app struct {
	env     Env
	flags   Config
	level   *slog.LevelVar
	metrics *telemetry.Metrics
	session *Session
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dcclient",
		Short: "STAPRO Data Connector Client - tools for calling services through the REST API",
		Long: "STAPRO Data Connector Client - tools for calling services through the REST API.\n\n" +
			"This tool is intended for testing purposes only.",
		Version:       a.env.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.session = a.newSession(cmd)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.flags.BaseURL, "base", "b", envOr("DC_BASE_URL", connector.DefaultBaseURL), "Data Connector Service Base URL")
	flags.StringVarP(&a.flags.User, "user", "u", envOr("DC_USER", defaultUser), "User login")
	flags.StringVarP(&a.flags.Password, "password", "p", defaultPassword, "User password (or DC_PASSWORD)")
	flags.BoolVar(&a.flags.Pretty, "pretty", false, "Print pretty formatted output")
	flags.DurationVar(&a.flags.Timeout, "timeout", 0, "Request timeout (0 waits indefinitely)")
	flags.StringVar(&a.flags.Pushgateway, "pushgateway", envOr("DC_PUSHGATEWAY", ""), "Prometheus Pushgateway URL for request metrics")
	flags.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "Log request details to stderr")
	flags.IntSliceVar(&a.flags.AcceptCodes, "accept-status", nil, "Non-2xx status codes treated as an empty result")
	flags.MarkHidden("accept-status")

	sessionFn := func() *Session { return a.session }

	root.AddCommand(
		newVersionCmd(sessionFn),
		newStatusCmd(sessionFn),
		newPatsumCmd(sessionFn),
	)

	return root
}

// newSession фиксирует конфигурацию после парсинга флагов.
func (a *app) newSession(cmd *cobra.Command) *Session {
	cfg := a.flags
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	// Пароль из окружения не подставляется в default флага, иначе он попадёт в --help
	if !cmd.Flags().Changed("password") {
		cfg.Password = envOr("DC_PASSWORD", defaultPassword)
	}

	if cfg.Verbose {
		a.level.Set(slog.LevelDebug)
	}

	logger := telemetry.FromContext(cmd.Context())
	logger.Debug("session configured", "base_url", cfg.BaseURL, "user", cfg.User, "pretty", cfg.Pretty)

	return &Session{
		Client: connector.NewClient(connector.Config{
			BaseURL:     cfg.BaseURL,
			User:        cfg.User,
			Password:    cfg.Password,
			Timeout:     cfg.Timeout,
			AcceptCodes: cfg.AcceptCodes,
			UserAgent:   "dcclient/" + a.env.Version,
			Logger:      logger,
			Metrics:     a.metrics,
		}),
		Output: NewOutput(cfg.Pretty, a.env.Stdout),
		Now:    a.env.Now,
	}
}

// envOr возвращает значение переменной окружения или fallback.
func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
