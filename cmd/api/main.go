package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"

	"transfer-simulator/application"
	"transfer-simulator/presenters"
	"transfer-simulator/utils/configs"
	"transfer-simulator/utils/gen_ids"
	"transfer-simulator/utils/gpooling"
	logger2 "transfer-simulator/utils/logger"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}
	lg, _ := logger2.NewLogger("production")

	pool_go_routine, _ := gpooling.NewPooling(config.MaxPoolSize)

	gen_ids.InitGenIDservice()

	app := application.NewSimulatorApplication(config, lg, pool_go_routine)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	presenters.NewSimulatorHTTP(app).Register(router)

	srv := &http.Server{
		Addr:    ":" + config.Port,
		Handler: router,
	}

	sig := make(chan os.Signal, 1)

	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	pool_go_routine.Submit(func() {
		select {
		case <-sig:
			lg.Warn("shutting down HTTP server...")
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			defer cancel()
			srv.Shutdown(ctx)
			pool_go_routine.Release()
		}
	})

	lg.With(zapcore.Field{
		Key:    "port",
		Type:   zapcore.StringType,
		String: config.Port,
	}).Info("starting HTTP server...")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}
