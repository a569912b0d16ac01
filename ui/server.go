package ui

import(
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	"github.com/skypies/launchdb/config"
	"github.com/skypies/launchdb/launchdata"
	"github.com/skypies/launchdb/logger"
)

// LoadDashboard reads every configured source, once, and builds the dashboard over the result.
func LoadDashboard(ctx context.Context, cfg config.Config) (*Dashboard, error) {
	loader := launchdata.Loader{ProjectID: cfg.GCP.Project}
	if cfg.GCP.CredentialsFile != "" {
		loader.ClientOptions = append(loader.ClientOptions, option.WithCredentialsFile(cfg.GCP.CredentialsFile))
	}

	tStart := time.Now()
	ls,err := loader.LoadAll(ctx, cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	logger.Log().Info().
		Strs("sources", cfg.Data).
		Int("records", len(ls)).
		Int("sites", len(ls.Sites())).
		Str("payload", ls.PayloadBounds().String()).
		Dur("dur", time.Since(tStart)).
		Msg("launch records loaded")

	return NewDashboard(ls, NewLayout(cfg.Title, ls, cfg.Slider))
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr: addr,
		Handler: h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g,gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log().Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log().Info().Msg("shutting down")
		shutdownCtx,cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
