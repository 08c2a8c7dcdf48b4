// Package custom provides a bridge between the Go core and Lua-based catalog scripts.
//
// registerTLSClient injects the "http_tls" global module into the Lua state.
// When a catalog script calls http_tls.get(), the underlying Go engine
// executes the request over the spoofed-fingerprint client from the network
// package. Some resource hosts sit behind CDN fronts that reject standard Go
// HTTP clients; the Chrome Client Hello emulation keeps those reachable.
//
// Lua API:
//
//	http_tls.get(url)              → returns body string
//	http_tls.get(url, headers_tbl) → returns body string with custom headers
//	http_tls.request(options_tbl)  → returns {status, body}
package custom

import (
	"io"
	"net/http"
	"strings"

	"github.com/filmschoolyt/filmschoolyt/constant"
	"github.com/filmschoolyt/filmschoolyt/network"
	lua "github.com/yuin/gopher-lua"
)

// registerTLSClient injects the "http_tls" global module into the Lua state.
// This is called during catalog loading in loader.go.
func registerTLSClient(L *lua.LState) {
	mod := L.NewTable()

	// http_tls.get(url [, headers_table]) → body_string
	L.SetField(mod, "get", L.NewFunction(httpTLSGet))

	// http_tls.request({method, url, headers, body}) → {status, body}
	L.SetField(mod, "request", L.NewFunction(httpTLSRequest))

	L.SetGlobal("http_tls", mod)
}

// httpTLSGet implements http_tls.get(url [, headers]) → body string
func httpTLSGet(L *lua.LState) int {
	url := L.CheckString(1)
	headersTable := L.OptTable(2, nil)

	headers := make(map[string]string)
	if headersTable != nil {
		headersTable.ForEach(func(k, v lua.LValue) {
			headers[k.String()] = v.String()
		})
	}

	body, _, err := doTLSRequest("GET", url, headers, "")
	if err != nil {
		L.RaiseError("http_tls.get failed: %s", err.Error())
		return 0
	}

	L.Push(lua.LString(body))
	return 1
}

// httpTLSRequest implements http_tls.request(options) → {status, body}
func httpTLSRequest(L *lua.LState) int {
	opts := L.CheckTable(1)

	method := getStringField(opts, "method", "GET")
	url := getStringField(opts, "url", "")
	reqBody := getStringField(opts, "body", "")

	if url == "" {
		L.RaiseError("http_tls.request: url is required")
		return 0
	}

	headers := make(map[string]string)
	headersTbl := opts.RawGetString("headers")
	if tbl, ok := headersTbl.(*lua.LTable); ok {
		tbl.ForEach(func(k, v lua.LValue) {
			headers[k.String()] = v.String()
		})
	}

	respBody, statusCode, err := doTLSRequest(method, url, headers, reqBody)
	if err != nil {
		L.RaiseError("http_tls.request failed: %s", err.Error())
		return 0
	}

	result := L.NewTable()
	L.SetField(result, "status", lua.LNumber(statusCode))
	L.SetField(result, "body", lua.LString(respBody))
	L.Push(result)
	return 1
}

// getStringField is a helper to get a string field from a Lua table with a default.
func getStringField(tbl *lua.LTable, key string, def string) string {
	val := tbl.RawGetString(key)
	if val == lua.LNil {
		return def
	}
	return val.String()
}

// doTLSRequest performs an HTTP request through the spoofed-fingerprint client.
// Returns (body, statusCode, error).
func doTLSRequest(method, rawURL string, headers map[string]string, body string) (string, int, error) {
	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, rawURL, reqBody)
	if err != nil {
		return "", 0, err
	}

	// Default headers to look like a real browser
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	// Apply custom headers (overrides defaults)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := network.SpoofedClient().Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}

	return string(respBody), resp.StatusCode, nil
}
