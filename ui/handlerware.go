package ui

import(
	"context"
	"fmt"
	"net/http"
	"time"

	ldb "github.com/skypies/launchdb"
	"github.com/skypies/launchdb/logger"
)

// To prevent other libs colliding with us in the context.Value keyspace, use these private keys
type contextKey int
const(
	uiOptionsKey contextKey = iota
)

// Rather than stash/retrieve the launch table from the context, we'll just pass it directly to
// a new handler type, that we'll use throughout ui/.
type LaunchHandler func(context.Context, ldb.LaunchSet, http.ResponseWriter, *http.Request)

// Some convenience combos
func (d *Dashboard)WithLaunchesOpt(lh LaunchHandler) http.HandlerFunc {
	return d.WithLaunches(d.WithOpt(lh))
}

func (d *Dashboard)WithLaunches(lh LaunchHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lh(r.Context(), d.Launches, w, r)
	}
}

// WithOpt parses the UI options, using the table's payload bounds as the default range. Bad
// options are the caller's fault, so they're a 400.
func (d *Dashboard)WithOpt(lh LaunchHandler) LaunchHandler {
	return func(ctx context.Context, ls ldb.LaunchSet, w http.ResponseWriter, r *http.Request) {
		opt,err := FormValueUIOptions(r, d.Layout.Slider.Value)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if r.FormValue("debugoptions") != "" {
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte(fmt.Sprintf("OK\n%#v\n", opt)))
			return
		}

		// Call the underlying handler, with our shiny context
		ctx = context.WithValue(ctx, uiOptionsKey, opt)
		lh(ctx, ls, w, r)
	}
}

// Underlying handlers should call this to get their options
func GetUIOptions(ctx context.Context) (UIOptions,bool) {
	opt, ok := ctx.Value(uiOptionsKey).(UIOptions)
	return opt, ok
}

// {{{ WithLogging

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder)WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder)Write(b []byte) (int, error) {
	if sr.status == 0 { sr.status = http.StatusOK }
	n,err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

// WithLogging logs one line per request.
func WithLogging(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tStart := time.Now()
		sr := &statusRecorder{ResponseWriter: w}
		h.ServeHTTP(sr, r)
		if sr.status == 0 { sr.status = http.StatusOK }

		ev := logger.Log().Info()
		if sr.status >= 500 {
			ev = logger.Log().Error()
		} else if sr.status >= 400 {
			ev = logger.Log().Warn()
		}
		ev.Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", sr.status).
			Int("bytes", sr.bytes).
			Dur("dur", time.Since(tStart)).
			Msg("request")
	})
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
