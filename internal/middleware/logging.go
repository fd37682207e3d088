package middleware

import (
	"net/http"

	"github.com/2beens/posecoach/pkg"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, err := pkg.ReadUserIP(r)
			if err != nil {
				ip = "unknown"
			}
			log.WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"ip":     ip,
			}).Tracef(" ====> request [UA: %s]", r.Header.Get("User-Agent"))
			next.ServeHTTP(w, r)
		})
	}
}
