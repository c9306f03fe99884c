package main

import (
	auth "Weldline/internal/auth"
	ductseam "Weldline/internal/calc/ductseam"
	goredelbow "Weldline/internal/calc/goredelbow"
	importer "Weldline/internal/calc/importer"
	pipeweld "Weldline/internal/calc/pipeweld"
	recommend "Weldline/internal/calc/recommend"
	report "Weldline/internal/calc/report"
	total "Weldline/internal/calc/total"
	profile "Weldline/internal/profile"
	repo "Weldline/internal/repo"
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")

	ductseamH := &ductseam.Handler{}
	goredelbowH := &goredelbow.Handler{}
	pipeweldH := &pipeweld.Handler{}
	totalH := &total.Handler{}
	reportH := &report.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}

	secureApi.HandleFunc("/tools/ductseam/calc", ductseamH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/goredelbow/calc", goredelbowH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/pipeweld/calc", pipeweldH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/pipeweld/sizes", pipeweldH.Sizes).Methods("GET")
	secureApi.HandleFunc("/tools/total/calc", totalH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/import/pipeweld", importerH.PipeWeld).Methods("POST")
	secureApi.HandleFunc("/tools/recommend/fillet", recommendH.Fillet).Methods("POST")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mux := mux.NewRouter()
	log.Println("Starting server on :" + port)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
