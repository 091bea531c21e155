package api

import (
	"net/http"

	"svg-vault/internal/auth"
	"svg-vault/internal/websocket"
)

// ServeWsHandler upgrades an authenticated caller to the push channel. Browsers
// cannot set headers on websocket requests, so the access token comes from
// the query string.
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	id := s.provider.Resolve(r.Context(), r.URL.Query().Get("token"))

	switch auth.Guard(id.State) {
	case auth.DecisionRedirect:
		writeJSON(w, http.StatusUnauthorized, RedirectResponse{Redirect: auth.SignInPath})
		return
	case auth.DecisionLoading:
		writeJSON(w, http.StatusServiceUnavailable, LoadingResponse{Status: "loading"})
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := websocket.NewClient(s.hub, conn, id.UserID)
	if !s.hub.Attach(client) {
		conn.Close()
		return
	}

	go client.ReadPump()
	go client.WritePump()
}
