package webtransporttrie

import (
	"log/slog"
	"net/http"

	"github.com/mengelbart/triemap/remote"
	"github.com/quic-go/webtransport-go"
)

// Handler upgrades requests to WebTransport sessions and serves srv on
// them until the session ends.
func Handler(wt *webtransport.Server, srv *remote.Server, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := wt.Upgrade(w, r)
		if err != nil {
			logger.Error("upgrading to webtransport failed", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		conn := New(session)
		if err := srv.Serve(conn.Context(), conn); err != nil {
			logger.Info("webtransport session done", "remote", r.RemoteAddr, "error", err)
		}
		conn.CloseWithError(remote.ErrorCodeNoError, "")
	})
}
