package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siga-angola/envrisk-cli/internal/dashboard"
	"github.com/siga-angola/envrisk-cli/internal/georef"
	"github.com/siga-angola/envrisk-cli/internal/model"
)

var servePort int

// regionBBoxRadiusKM sizes the square query box returned with each
// region detail, matching the radius used for satellite data lookups.
const regionBBoxRadiusKM = 50

// regionDetail is the region endpoint response: the profile plus its
// bounding box as [min_lon, min_lat, max_lon, max_lat].
type regionDetail struct {
	*model.LocationProfile
	BBox [4]float64 `json:"bbox"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initApp(0, 0)
		if err != nil {
			return err
		}
		notifier := dashboard.NewNotifier(cfg.Alerts)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(env, notifier),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(),
				time.Duration(cfg.Server.ShutdownTimeoutS)*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter builds the dashboard API routes.
func newRouter(env *appEnv, notifier *dashboard.Notifier) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/status", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "operational",
			"provinces": len(env.catalog.Provinces()),
			"regions":   len(env.catalog.All()),
			"time":      time.Now().UTC(),
		})
	})

	r.Get("/api/regions", func(w http.ResponseWriter, req *http.Request) {
		if province := req.URL.Query().Get("province"); province != "" {
			munis, err := env.catalog.MunicipalitiesOf(province)
			if err != nil {
				writeError(w, http.StatusNotFound, err)
				return
			}
			writeJSON(w, http.StatusOK, munis)
			return
		}
		writeJSON(w, http.StatusOK, env.catalog.All())
	})

	r.Get("/api/regions/{id}", func(w http.ResponseWriter, req *http.Request) {
		loc, err := env.catalog.Lookup(chi.URLParam(req, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		b := georef.BoundingBox(loc, regionBBoxRadiusKM)
		writeJSON(w, http.StatusOK, regionDetail{
			LocationProfile: loc,
			BBox:            [4]float64{b.Min(0), b.Min(1), b.Max(0), b.Max(1)},
		})
	})

	r.Get("/api/regions/{id}/dashboard", func(w http.ResponseWriter, req *http.Request) {
		loc, err := env.catalog.Lookup(chi.URLParam(req, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}

		payload, err := env.builder.Build(req.Context(), loc)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		// Alert delivery must not block the response.
		if len(payload.Alerts) > 0 {
			alerts := payload.Alerts
			go notifier.Send(context.WithoutCancel(req.Context()), alerts)
		}

		writeJSON(w, http.StatusOK, payload)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
