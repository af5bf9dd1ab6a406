package controllers

import (
	"net/http"

	"storefront-gateway/api/responses"
	"storefront-gateway/pkg/config"
	pkgerrors "storefront-gateway/pkg/errors"
	"storefront-gateway/pkg/logger"
	"storefront-gateway/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, "", map[string]any{"status": "live"})
	}
}

// HealthReady reports dependency health. The upstream API is deliberately
// not probed here: readiness gates deployments, and a platform blip should
// not take the gateway out of rotation.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisClient redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		deps := map[string]string{}
		status := http.StatusOK

		if cfg.Redis.Enabled() {
			if redisClient == nil {
				deps["redis"] = "unavailable"
				status = http.StatusServiceUnavailable
			} else if err := redisClient.Ping(r.Context()); err != nil {
				if logg != nil {
					logg.Error(r.Context(), "health.redis", err)
				}
				deps["redis"] = "unavailable"
				status = http.StatusServiceUnavailable
			} else {
				deps["redis"] = "ok"
			}
		}

		if status != http.StatusOK {
			responses.WriteError(r.Context(), nil, w,
				pkgerrors.New(pkgerrors.CodeDependency, "not ready").WithDetails(deps))
			return
		}
		responses.WriteSuccess(w, "", map[string]any{"status": "ready", "dependencies": deps})
	}
}
