package server

import (
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/mobile-next/wingest/utils"
)

func allowAnyOrigin(*http.Request) bool {
	return true
}

// isSameOrigin accepts requests without an Origin header (non-browser
// clients) and browser requests coming from the server's own host.
func isSameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return originURL.Host == r.Host
}

// handleWebSocket serves JSON-RPC over a single connection. Requests are
// answered one at a time, in the order they arrive, so gestures sent over
// the same socket never overlap.
func handleWebSocket(w http.ResponseWriter, r *http.Request, enableCORS bool) {
	upgrader := websocket.Upgrader{CheckOrigin: isSameOrigin}
	if enableCORS {
		upgrader.CheckOrigin = allowAnyOrigin
	}

	log := utils.Logger().WithField("remote", r.RemoteAddr)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()
	log.Debug("WebSocket connected")

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("WebSocket closed unexpectedly")
			} else {
				log.Debug("WebSocket closed")
			}
			return
		}

		response := errorResponse(nil, invalidRequest("only text messages accepted for requests"))
		if messageType == websocket.TextMessage {
			response = callMethod("ws", message)
		}

		if err := conn.WriteJSON(response); err != nil {
			log.WithError(err).Warn("WebSocket write failed")
			return
		}
	}
}
