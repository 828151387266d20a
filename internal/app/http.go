package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/orgball2608/media-share-bot/internal/feed"
	"github.com/orgball2608/media-share-bot/internal/session"
	"github.com/orgball2608/media-share-bot/pkg/config"
	"github.com/orgball2608/media-share-bot/pkg/logger"
)

// sessionStatus is served unauthenticated, so it carries no user identity.
type sessionStatus struct {
	LoggedIn      bool      `json:"logged_in"`
	Generation    uint64    `json:"generation"`
	HomeItems     int       `json:"home_items"`
	HomeUpdatedAt time.Time `json:"home_updated_at,omitempty"`
	MineItems     int       `json:"mine_items"`
	MineUpdatedAt time.Time `json:"mine_updated_at,omitempty"`
}

func newRouter(log logger.Logger, sess *session.Session, feeds *feed.Feeds) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	}).Methods(http.MethodGet)
	r.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		sessionHandler(w, r, log, sess, feeds)
	}).Methods(http.MethodGet)
	return r
}

func newHTTPServer(cfg *config.Config, log logger.Logger, sess *session.Session, feeds *feed.Feeds) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           newRouter(log, sess, feeds),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func startHttpServer(server *http.Server, log logger.Logger) {
	log.Info(fmt.Sprintf("Starting server on %s", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server failed to start", "Error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Debug("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func sessionHandler(w http.ResponseWriter, _ *http.Request, logger logger.Logger, sess *session.Session, feeds *feed.Feeds) {
	status := sessionStatus{
		LoggedIn:   sess.IsLoggedIn(),
		Generation: sess.Generation(),
	}
	home, _ := feeds.Home.Items()
	mine, _ := feeds.Mine.Items()
	status.HomeItems = len(home)
	status.HomeUpdatedAt = feeds.Home.UpdatedAt()
	status.MineItems = len(mine)
	status.MineUpdatedAt = feeds.Mine.UpdatedAt()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		logger.Error("Failed to write response", "Error", err)
	}
}
