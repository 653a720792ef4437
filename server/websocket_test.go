package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWSServer(t *testing.T, enableCORS bool, token string) string {
	t.Helper()
	server := httptest.NewServer(NewHandler(enableCORS, token))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
}

func connectWebSocket(t *testing.T, url string, header http.Header) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err, "should connect to WebSocket")
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, req interface{}) JSONRPCResponse {
	t.Helper()
	require.NoError(t, conn.WriteJSON(req))

	var resp JSONRPCResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "2.0", resp.JSONRPC)
	return resp
}

func TestWebSocket_Click(t *testing.T) {
	port := useFakePort(t)
	conn := connectWebSocket(t, setupWSServer(t, false, ""), nil)

	resp := roundTrip(t, conn, JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  "io_click",
		Params:  json.RawMessage(`{"x":5,"y":5,"repeatCount":2,"interRepeatDelayMs":0}`),
		ID:      1,
	})

	assert.Nil(t, resp.Error)
	assert.Equal(t, 1, int(resp.ID.(float64)))
	assert.Equal(t, map[string]interface{}{"status": "ok"}, resp.Result)
	assert.Len(t, port.Batches(), 3)
}

func TestWebSocket_Errors(t *testing.T) {
	useFakePort(t)
	conn := connectWebSocket(t, setupWSServer(t, false, ""), nil)

	tests := []struct {
		name string
		req  JSONRPCRequest
		code int
	}{
		{"wrong version", JSONRPCRequest{JSONRPC: "1.0", Method: "screen_info", ID: 1}, ErrCodeInvalidRequest},
		{"missing id", JSONRPCRequest{JSONRPC: "2.0", Method: "screen_info"}, ErrCodeInvalidRequest},
		{"missing method", JSONRPCRequest{JSONRPC: "2.0", ID: 1}, ErrCodeInvalidRequest},
		{"unknown method", JSONRPCRequest{JSONRPC: "2.0", Method: "io_tap", ID: 1}, ErrCodeMethodNotFound},
		{"invalid params", JSONRPCRequest{JSONRPC: "2.0", Method: "io_hover", Params: json.RawMessage(`{"startX":1}`), ID: 1}, ErrCodeInvalidParams},
	}

	// one connection serves every request in order
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := errorOf(t, roundTrip(t, conn, tt.req))
			assert.Equal(t, float64(tt.code), code)
		})
	}
}

func TestWebSocket_ParseErrorAndBinary(t *testing.T) {
	conn := connectWebSocket(t, setupWSServer(t, false, ""), nil)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{not json`)))
	var resp JSONRPCResponse
	require.NoError(t, conn.ReadJSON(&resp))
	code, _, _ := errorOf(t, resp)
	assert.Equal(t, float64(ErrCodeParseError), code)

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{0x01}))
	resp = JSONRPCResponse{}
	require.NoError(t, conn.ReadJSON(&resp))
	code, _, data := errorOf(t, resp)
	assert.Equal(t, float64(ErrCodeInvalidRequest), code)
	assert.Equal(t, "only text messages accepted for requests", data)
}

func TestWebSocket_Origin(t *testing.T) {
	url := setupWSServer(t, false, "")

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"http://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	corsURL := setupWSServer(t, true, "")
	connectWebSocket(t, corsURL, http.Header{"Origin": {"http://evil.example"}})
}

func TestWebSocket_Token(t *testing.T) {
	useFakePort(t)
	url := setupWSServer(t, false, "abc")

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	conn := connectWebSocket(t, url+"?token=abc", nil)
	result := roundTrip(t, conn, JSONRPCRequest{JSONRPC: "2.0", Method: "screen_info", ID: "x"})
	assert.Nil(t, result.Error)
	assert.Equal(t, "x", result.ID)
}

func TestIsSameOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://localhost:12000/ws", nil)
	assert.True(t, isSameOrigin(req))

	req.Header.Set("Origin", "http://localhost:12000")
	assert.True(t, isSameOrigin(req))

	req.Header.Set("Origin", "http://other:12000")
	assert.False(t, isSameOrigin(req))

	req.Header.Set("Origin", "://bad")
	assert.False(t, isSameOrigin(req))
}
