package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mobile-next/wingest/utils"
	"github.com/sirupsen/logrus"
)

// RPCError is the error member of a JSON-RPC response.
type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func invalidRequest(data string) *RPCError {
	return &RPCError{Code: ErrCodeInvalidRequest, Message: "Invalid Request", Data: data}
}

func errorResponse(id interface{}, rpcErr *RPCError) JSONRPCResponse {
	return JSONRPCResponse{JSONRPC: "2.0", Error: rpcErr, ID: id}
}

// validateRequest checks the envelope fields every call must carry.
func validateRequest(req JSONRPCRequest) *RPCError {
	switch {
	case req.JSONRPC != "2.0":
		return invalidRequest("'jsonrpc' must be '2.0'")
	case req.ID == nil:
		return invalidRequest("'id' field is required")
	case req.Method == "":
		return invalidRequest("'method' is required")
	}
	return nil
}

// callMethod decodes a single request, runs the registered handler and
// builds the response. Both /rpc and /ws go through here.
func callMethod(transport string, payload []byte) JSONRPCResponse {
	var req JSONRPCRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorResponse(nil, &RPCError{Code: ErrCodeParseError, Message: "Parse error", Data: "expecting jsonrpc payload"})
	}

	if rpcErr := validateRequest(req); rpcErr != nil {
		return errorResponse(req.ID, rpcErr)
	}

	log := utils.Logger().WithFields(logrus.Fields{
		"transport": transport,
		"method":    req.Method,
		"rpc_id":    req.ID,
	})
	log.Infof("Params: %s", string(req.Params))

	handler, ok := lookupMethod(req.Method)
	if !ok {
		log.Warn("Unknown method")
		return errorResponse(req.ID, &RPCError{
			Code:    ErrCodeMethodNotFound,
			Message: "Method not found",
			Data:    fmt.Sprintf("Method '%s' not found", req.Method),
		})
	}

	started := time.Now()
	result, err := handler(req.Params)
	log = log.WithField("elapsed", time.Since(started).String())
	if err != nil {
		code, message := errorCode(err)
		log.WithError(err).Error("Method failed")
		return errorResponse(req.ID, &RPCError{Code: code, Message: message, Data: err.Error()})
	}

	log.Debug("Method succeeded")
	return JSONRPCResponse{JSONRPC: "2.0", Result: result, ID: req.ID}
}
