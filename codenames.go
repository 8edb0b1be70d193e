/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Seednode/codenames/games/codenames/realtime"
	"github.com/Seednode/codenames/games/codenames/session"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const (
	playerCookieName = "codenames.player-id"
	gameIDParam      = "game-id"
	maxRequestBody   = 4096
)

type newGameRequest struct {
	PlayerName string `json:"player_name"`
}

type newGameResponse struct {
	GameID string `json:"game_id"`
}

type joinGameRequest struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"player_name"`
}

type playerJoinedResponse struct {
	AlreadyJoined bool `json:"already_joined"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// getOrSetPlayerID returns the caller's player id, issuing a new one in a
// cookie if the request carries none.
func getOrSetPlayerID(cfg *Config, w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := strings.ReplaceAll(uuid.NewString(), "-", "")

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     cfg.prefix + "/",
		HttpOnly: true,
		Secure:   !cfg.insecure,
		SameSite: http.SameSiteStrictMode,
	})

	return id
}

func writeJSON(cfg *Config, w http.ResponseWriter, errs chan<- error, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errs <- err
		http.Error(w, "internal server error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	securityHeaders(cfg, w)

	if _, err := w.Write(data); err != nil {
		errs <- err
	}
}

func writeError(cfg *Config, w http.ResponseWriter, r *http.Request, errs chan<- error, err error) {
	status := statusFor(err)

	securityHeaders(cfg, w)

	if status == http.StatusInternalServerError {
		errs <- err
		http.Error(w, "internal server error", status)

		return
	}

	logf(cfg, "SERVE: Rejected %s %s from %s: %v", r.Method, r.URL.Path, realIP(r), err)
	http.Error(w, err.Error(), status)
}

func decodeBody(r *http.Request, w http.ResponseWriter, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}

func requireGameID(cfg *Config, w http.ResponseWriter, r *http.Request) (string, bool) {
	gameID := r.URL.Query().Get(gameIDParam)
	if gameID == "" {
		securityHeaders(cfg, w)
		http.Error(w, "Missing "+gameIDParam+" query parameter", http.StatusBadRequest)

		return "", false
	}

	return gameID, true
}

func serveNewGame(cfg *Config, coord *session.Coordinator, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		playerID := getOrSetPlayerID(cfg, w, r)

		var req newGameRequest
		if err := decodeBody(r, w, &req); err != nil {
			securityHeaders(cfg, w)
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		name := strings.TrimSpace(req.PlayerName)
		if name == "" {
			securityHeaders(cfg, w)
			http.Error(w, "player_name is required", http.StatusBadRequest)

			return
		}

		gameID, err := coord.NewGame(r.Context(), playerID, name)
		if err != nil {
			writeError(cfg, w, r, errs, err)

			return
		}

		writeJSON(cfg, w, errs, newGameResponse{GameID: gameID})

		logf(cfg, "GAMES: Created game %s for %s in %s",
			gameID,
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func serveJoinGame(cfg *Config, hub *realtime.Hub, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		playerID := getOrSetPlayerID(cfg, w, r)

		var req joinGameRequest
		if err := decodeBody(r, w, &req); err != nil {
			securityHeaders(cfg, w)
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		name := strings.TrimSpace(req.PlayerName)
		if req.GameID == "" || name == "" {
			securityHeaders(cfg, w)
			http.Error(w, "game_id and player_name are required", http.StatusBadRequest)

			return
		}

		if err := hub.Join(r.Context(), req.GameID, playerID, name); err != nil {
			writeError(cfg, w, r, errs, err)

			return
		}

		securityHeaders(cfg, w)
		w.WriteHeader(http.StatusOK)

		logf(cfg, "GAMES: %s joined game %s", realIP(r), req.GameID)
	}
}

func servePlayerJoined(cfg *Config, coord *session.Coordinator, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		playerID := getOrSetPlayerID(cfg, w, r)

		gameID, ok := requireGameID(cfg, w, r)
		if !ok {
			return
		}

		joined, err := coord.PlayerExists(r.Context(), gameID, playerID)
		if err != nil {
			writeError(cfg, w, r, errs, err)

			return
		}

		writeJSON(cfg, w, errs, playerJoinedResponse{AlreadyJoined: joined})
	}
}

func serveEvents(cfg *Config, coord *session.Coordinator, hub *realtime.Hub, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		playerID := getOrSetPlayerID(cfg, w, r)

		gameID, ok := requireGameID(cfg, w, r)
		if !ok {
			return
		}

		if _, err := coord.PlayerExists(r.Context(), gameID, playerID); err != nil {
			writeError(cfg, w, r, errs, err)

			return
		}

		// Upgrade writes its own response, so a freshly issued cookie has
		// to be handed over explicitly.
		var header http.Header
		if cookies := w.Header().Values("Set-Cookie"); len(cookies) > 0 {
			header = http.Header{"Set-Cookie": cookies}
		}

		ws, err := upgrader.Upgrade(w, r, header)
		if err != nil {
			logf(cfg, "SERVE: Websocket upgrade for %s failed: %v", realIP(r), err)

			return
		}

		if err := hub.Serve(r.Context(), ws, gameID, playerID); err != nil {
			logf(cfg, "SERVE: Closed websocket for %s on game %s: %v", realIP(r), gameID, err)
		}
	}
}

// serveQR renders a PNG QR code linking to the game.
func serveQR(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID, ok := requireGameID(cfg, w, r)
		if !ok {
			return
		}

		scheme := cfg.scheme()
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		link := scheme + "://" + r.Host + cfg.prefix + "/?" + gameIDParam + "=" + url.QueryEscape(gameID)

		const qrSize = 320
		png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
		if err != nil {
			errs <- err
			http.Error(w, "qr generation failed", http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "image/png")
		securityHeaders(cfg, w)

		if _, err := w.Write(png); err != nil {
			errs <- err
		}
	}
}

// registerCodenames sets up routes so that:
//   - $path/new-game       → creates a game hosted by the caller
//   - $path/join-game      → seats the caller with the spectators
//   - $path/player-joined  → reports whether the caller is in a game
//   - $path/events         → websocket carrying the caller's game view
//   - $path/qr             → PNG QR code linking to a game
func registerCodenames(cfg *Config, path string, mux *httprouter.Router, coord *session.Coordinator, hub *realtime.Hub, errs chan<- error) {
	mux.POST(cfg.prefix+path+"/new-game", serveNewGame(cfg, coord, errs))
	mux.POST(cfg.prefix+path+"/join-game", serveJoinGame(cfg, hub, errs))
	mux.GET(cfg.prefix+path+"/player-joined", servePlayerJoined(cfg, coord, errs))
	mux.GET(cfg.prefix+path+"/events", serveEvents(cfg, coord, hub, errs))
	mux.GET(cfg.prefix+path+"/qr", serveQR(cfg, errs))
}
