package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pokeblog/indexer"
	"pokeblog/mq"
	"pokeblog/ratelim"
	"pokeblog/routes"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

func healthcheck(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Write([]byte("200"))
}

func setupRouter(rl *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", healthcheck)

	reindexAPI := indexer.NewReindexAPI()

	routes.AddAuthRoutes(router, rl)
	routes.AddBlogRoutes(router, rl)
	routes.AddCategoryRoutes(router)
	routes.AddAuthorRoutes(router)
	routes.AddSearchRoutes(router, rl)
	routes.AddIndexRoutes(router, reindexAPI)
	routes.AddPokemonRoutes(router, rl)
	routes.AddStaticRoutes(router)

	return router
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the background indexing worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		port := os.Getenv("PORT")
		if port == "" {
			port = ":8080"
		} else if port[0] != ':' {
			port = ":" + port
		}

		rateLimiter := ratelim.NewRateLimiter()
		router := setupRouter(rateLimiter)

		workerCtx, stopWorker := context.WithCancel(context.Background())
		go mq.StartIndexingWorker(workerCtx)

		// CORS → security headers → logging → router
		corsHandler := cors.New(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}).Handler(router)

		server := &http.Server{
			Addr:              port,
			Handler:           loggingMiddleware(securityHeaders(corsHandler)),
			ReadTimeout:       7 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       120 * time.Second,
			ReadHeaderTimeout: 2 * time.Second,
		}

		go func() {
			log.Printf("[Server] Listening on %s", port)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("[Server] ListenAndServe error: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		log.Println("[Server] Shutdown signal received; shutting down gracefully...")
		stopWorker()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("[Server] Graceful shutdown failed: %v", err)
		}

		log.Println("[Server] Stopped cleanly")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
