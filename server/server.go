package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/mobile-next/wingest/utils"
	"github.com/mobile-next/wingest/winapi"
)

const (
	// Parse error: Invalid JSON was received by the server
	ErrCodeParseError = -32700

	// Invalid Request: The JSON sent is not a valid Request object
	ErrCodeInvalidRequest = -32600

	// Method not found: The method does not exist / is not available
	ErrCodeMethodNotFound = -32601

	// Server error: Internal JSON-RPC error
	ErrCodeServerError = -32000

	// Invalid params: Invalid method parameters
	ErrCodeInvalidParams = -32602

	// Internal error: Internal JSON-RPC error
	ErrCodeInternalError = -32603
)

// Server timeouts
const (
	ReadTimeout = 10 * time.Second
	IdleTimeout = 120 * time.Second
	// long drags and hovers hold the request open for their whole duration
	WriteTimeout    = 2 * time.Minute
	ShutdownTimeout = 5 * time.Second
)

var okResponse = map[string]interface{}{"status": "ok"}

type JSONRPCRequest struct {
	// these fields are all omitempty, so we can report back to client if they are missing
	JSONRPC string          `json:"jsonrpc,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      interface{}     `json:"id,omitempty"`
}

// JSONRPCResponse represents a JSON-RPC response
type JSONRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	ID      interface{} `json:"id"`
}

var (
	shutdownMu   sync.Mutex
	shutdownHook func()
)

func setShutdownHook(hook func()) {
	shutdownMu.Lock()
	defer shutdownMu.Unlock()
	shutdownHook = hook
}

func requestShutdown() bool {
	shutdownMu.Lock()
	hook := shutdownHook
	shutdownMu.Unlock()

	if hook == nil {
		return false
	}
	hook()
	return true
}

// corsMiddleware handles CORS preflight requests and adds CORS headers to responses.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authMiddleware rejects requests that do not carry the API token. Browsers
// cannot set headers on WebSocket upgrades, so a token query parameter is
// accepted as well.
func authMiddleware(token string, next http.Handler) http.Handler {
	expected := []byte("Bearer " + token)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// preflight and banner stay open for health checks
		if r.Method == http.MethodOptions || r.URL.Path == "/" {
			next.ServeHTTP(w, r)
			return
		}

		provided := r.Header.Get("Authorization")
		if provided == "" && r.URL.Query().Get("token") != "" {
			provided = "Bearer " + r.URL.Query().Get("token")
		}

		if subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewHandler builds the HTTP handler serving /rpc, /ws and the banner.
// When token is not empty every RPC call must present it.
func NewHandler(enableCORS bool, token string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", sendBanner)
	mux.HandleFunc("/rpc", handleJSONRPC)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, enableCORS)
	})

	var handler http.Handler = mux
	if token != "" {
		handler = authMiddleware(token, handler)
	}
	if enableCORS {
		handler = corsMiddleware(handler)
	}
	return handler
}

func StartServer(addr string, enableCORS bool, token string) error {
	addr, host, port, err := utils.ParseListenAddress(addr)
	if err != nil {
		return err
	}
	if port != 0 && !utils.IsPortAvailable(host, port) {
		return fmt.Errorf("port %d is already in use on %s", port, addr)
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      NewHandler(enableCORS, token),
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	setShutdownHook(func() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				utils.Logger().Errorf("Server shutdown failed: %v", err)
			}
		}()
	})
	defer setShutdownHook(nil)

	if token != "" {
		utils.Info("API token required for RPC calls")
	}
	utils.Info("Starting server on http://%s...", server.Addr)

	err = server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		utils.Info("Server stopped")
		return nil
	}
	return err
}

// errorCode maps an error to its JSON-RPC code and message.
func errorCode(err error) (int, string) {
	if winapi.IsInvalidArgument(err) {
		return ErrCodeInvalidParams, "Invalid params"
	}
	return ErrCodeServerError, "Server error"
}

// maxRequestBytes bounds the size of a single /rpc request body
const maxRequestBytes = 1 << 20

func handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		utils.Logger().WithError(err).Warn("Failed to read request body")
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(callMethod("http", payload))
}

func sendBanner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(okResponse)
}
