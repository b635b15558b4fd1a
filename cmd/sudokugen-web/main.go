package main

import (
	"flag"
	"html/template"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	httpadapter "svw.info/sudokugen/internal/adapters/http"
	"svw.info/sudokugen/internal/config"
	"svw.info/sudokugen/internal/constraint"
	"svw.info/sudokugen/internal/hint"
	"svw.info/sudokugen/internal/infrastructure/storage"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
	"svw.info/sudokugen/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

func main() {
	_ = godotenv.Load()

	// config file path comes from the environment so flags can default from
	// the loaded file
	cfgPath := os.Getenv("SUDOKUGEN_CONFIG")
	if cfgPath == "" {
		cfgPath = "sudokugen.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}

	addr := flag.String("addr", cfg.Addr, "listen address")
	persist := flag.String("persist-path", cfg.PersistPath, "save directory")
	levelStr := flag.String("log-level", cfg.LogLevel, "debug|info|warn|error")
	solverKind := flag.String("solver", cfg.Solver, "solver to use: dlx|backtrack")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(strings.ToLower(*levelStr)); err == nil {
		log.SetLevel(lvl)
	}
	_ = os.MkdirAll(*persist, 0o755)

	// Choose the full-strength oracle: DLX by default, plain backtracking via
	// flag. DLX only understands the default rule set, which is what the
	// service wires.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktracking()
	default:
		s = solver.NewDLX()
	}

	rules := constraint.NewDefault()
	v := validator.New()
	st := storage.NewFS(*persist)
	hin := hint.NewSingles(rules)
	uc := usecase.NewService(rules, s, v, hin, st, log)
	h := httpadapter.New(uc)

	tmpl, err := web.Templates()
	if err != nil {
		log.WithError(err).Fatal("parse templates")
	}
	static, err := web.StaticFS()
	if err != nil {
		log.WithError(err).Fatal("static assets")
	}

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(static)))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(log, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithFields(logrus.Fields{
		"addr":    *addr,
		"persist": *persist,
		"solver":  *solverKind,
	}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server error")
	}
}
