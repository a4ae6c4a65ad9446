// Package logger wraps zerolog with process defaults and request scoped fields
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"housepricing/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level       string
	Format      string // console or json
	Service     string
	Writer      io.Writer
	WithCaller  bool
	SampleEvery int
}

// FromEnv overlays LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_CALLER and
// LOG_SAMPLE_EVERY on defaults. Empty default fields fall back to debug,
// console and stdout
func FromEnv(defaults ...Options) Options {
	var d Options
	if len(defaults) > 0 {
		d = defaults[0]
	}
	if d.Level == "" {
		d.Level = "debug"
	}
	if d.Format == "" {
		d.Format = "console"
	}
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(rc.Get("LEVEL", d.Level)),
		Format:      strings.ToLower(rc.Get("FORMAT", d.Format)),
		Service:     rc.Get("SERVICE", d.Service),
		Writer:      d.Writer,
		WithCaller:  rc.GetBool("CALLER", d.WithCaller),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", d.SampleEvery),
	}
}

var (
	once   sync.Once
	root   atomic.Pointer[zerolog.Logger]
	inited atomic.Bool
)

// Get returns the root logger, initializing it from the environment on first use
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init builds the root logger. Only the first call has any effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := build(opt)
		root.Store(&l)
		inited.Store(true)
	})
}

func build(opt Options) Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	zc := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok {
		zc = zc.Str("go_version", bi.GoVersion)
	}
	if opt.Service != "" {
		zc = zc.Str("service", opt.Service)
	}
	if opt.WithCaller {
		zc = zc.Caller()
	}
	l := zc.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

// parseLevel maps a level name to zerolog, accepting "warning". Unknown names mean debug
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keyClientIP
)

// WithRequest annotates ctx with fields C adds to every line
func WithRequest(ctx context.Context, reqID, clientIP string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, keyRequestID, reqID)
	}
	if clientIP != "" {
		ctx = context.WithValue(ctx, keyClientIP, clientIP)
	}
	return ctx
}

// Into attaches l to ctx. C prefers an attached logger over the root
func Into(ctx context.Context, l Logger) context.Context { return l.WithContext(ctx) }

// C returns a logger for ctx carrying request_id and client_ip when present
func C(ctx context.Context) *Logger {
	base := Get()
	if l := zerolog.Ctx(ctx); l != nil && l != zerolog.DefaultContextLogger && l.GetLevel() != zerolog.Disabled {
		base = l
	}
	b := base.With()
	if s, _ := ctx.Value(keyRequestID).(string); s != "" {
		b = b.Str("request_id", s)
	}
	if s, _ := ctx.Value(keyClientIP).(string); s != "" {
		b = b.Str("client_ip", s)
	}
	l := b.Logger()
	return &l
}

// Named returns a child of the root logger tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
