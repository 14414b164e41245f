package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrgsms-backend/internal/auth"
	intconfig "hrgsms-backend/internal/config"
	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/domain"
	"hrgsms-backend/internal/events"
	router "hrgsms-backend/internal/http"
	"hrgsms-backend/internal/http/handlers"

	"github.com/gin-gonic/gin"
)

func main() {
	mint := flag.Bool("mint-token", false, "print a signed development token and exit")
	role := flag.String("role", string(domain.RoleAdmin), "role claim for -mint-token")
	sub := flag.String("sub", "dev", "subject claim for -mint-token")
	flag.Parse()

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	verifier, err := auth.NewVerifier(env.JWTSecret, env.JWTAlgorithm)
	if err != nil {
		log.Fatalf("[CONFIG] jwt: %v", err)
	}
	log.Printf("[CONFIG] env=%s jwt_algorithm=%s", env.AppEnv, verifier.Algorithm())
	if env.JWTSecret == "change-me" && env.AppEnv != "development" {
		log.Printf("[CONFIG] warning: JWT_SECRET is the default value in %s", env.AppEnv)
	}

	if *mint {
		r, ok := domain.ParseRole(*role)
		if !ok {
			log.Fatalf("unknown role %q", *role)
		}
		tok, err := verifier.Issue(*sub, r, env.JWTExpiry())
		if err != nil {
			log.Fatalf("mint token: %v", err)
		}
		fmt.Println(tok)
		return
	}

	db, err := intconfig.OpenDB(env)
	if err != nil {
		log.Fatalf("[CONFIG] database %s:%d/%s: %v", env.DBHost, env.DBPort, env.DBName, err)
	}
	defer db.Close()
	log.Printf("[CONFIG] database connected %s:%d/%s", env.DBHost, env.DBPort, env.DBName)

	rdb := intconfig.NewRedisClient(env)
	if rdb != nil {
		defer rdb.Close()
		log.Printf("[CONFIG] rate limiting on redis %s capacity=%d refill=%d/%s",
			env.RedisAddr, env.RateLimit.Capacity, env.RateLimit.RefillTokens, env.RateLimit.RefillInterval)
	}

	var publisher events.Publisher = events.Nop{}
	if env.RabbitURL != "" {
		amqpPub := events.NewAMQPPublisher(env.RabbitURL, env.EventsExchange)
		defer amqpPub.Close()
		publisher = amqpPub
		log.Printf("[CONFIG] publishing events to exchange %s", env.EventsExchange)
	}

	r := router.NewRouter(router.Deps{
		Env:      env,
		Verifier: verifier,
		Redis:    rdb,
		Handler: &handlers.Handler{
			Procs:  intdb.NewGateway(db),
			Events: publisher,
			DB:     db,
		},
	})

	srv := &http.Server{
		Addr:              env.AppAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      40 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://%s (%s)", env.AppAddr(), env.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
		return
	}

	log.Println("Server stopped.")
}
