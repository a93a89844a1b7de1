package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v2"

	"healthbot/handlers"
	"healthbot/initialization"
	"healthbot/utils"
)

func main() {
	pflag.Parse()
	globalConfig := initialization.GetConfig()

	// Print the effective config, proxy credentials redacted
	log.Println(configPreview(globalConfig))

	// Set up logging
	utils.SetLogLevel(globalConfig.LogLevel, globalConfig.Debug)
	var logger *lumberjack.Logger
	if globalConfig.EnableLog {
		logger = enableLog()
		defer utils.CloseLogger(logger)
	}

	// Initialize services
	if err := initialization.InitializeServices(); err != nil {
		log.Fatalf("failed to initialize services: %v", err)
	}

	// Initialize handlers
	if err := handlers.InitHandlers(*globalConfig); err != nil {
		log.Fatalf("failed to initialize handlers: %v", err)
	}

	// Set up routes
	r, err := initialization.InitGin()
	if err != nil {
		log.Fatalf("failed to initialize gin: %v", err)
	}
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/api/stats", handlers.StatsHandler)
	r.GET("/api/reminders", handlers.RemindersHandler)
	r.POST("/api/food/analyze", handlers.AnalyzeFoodHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", globalConfig.HttpPort),
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := initialization.ShutdownServices(); err != nil {
			log.Printf("Error shutting down services: %v", err)
		}

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}

		log.Println("Server exiting")
	}()

	// Start the server
	if globalConfig.UseHttps {
		srv.Addr = fmt.Sprintf(":%d", globalConfig.HttpsPort)
		err = srv.ListenAndServeTLS(globalConfig.GetCertFile(), globalConfig.GetKeyFile())
	} else {
		err = srv.ListenAndServe()
	}

	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// configPreview renders the loaded config as YAML with secrets masked.
func configPreview(cfg *initialization.Config) string {
	preview := *cfg
	if preview.OpenaiApiKey != "" {
		preview.OpenaiApiKey = "***"
	}
	if preview.BotToken != "" {
		preview.BotToken = "***"
	}
	if proxy, err := preview.ResolveProxy(); err == nil && proxy != nil {
		preview.OpenaiProxy = proxy.Redacted()
	}

	out, err := yaml.Marshal(preview)
	if err != nil {
		return fmt.Sprintf("config: %+v", preview)
	}
	return "loaded config:\n" + string(out)
}

func enableLog() *lumberjack.Logger {
	logger := &lumberjack.Logger{
		Filename: "logs/app.log",
		MaxSize:  100,      // megabytes
		MaxAge:   365 * 10, // days
	}

	log.SetOutput(io.MultiWriter(logger, os.Stdout))
	log.SetFlags(log.Ldate | log.Ltime)
	log.Println("Starting application...")

	return logger
}
