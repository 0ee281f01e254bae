package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-kit/log"
	currency "go-currency-conversion"
	"go-currency-conversion/convert"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service convert.Service
	Logger  log.Logger
	router  http.ServeMux
}

// NewServer constructs the conversion engine's HTTP transport.
func NewServer(s convert.Service, logger log.Logger) *Server {
	server := &Server{
		Service: s,
		Logger:  logger,
		router:  http.ServeMux{},
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/_healthz", s.healthz())
	s.router.Handle("/supported", s.supported())
	s.router.Handle("/convert", s.convert())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// healthz produces the liveness handler
func (s *Server) healthz() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte("SERVING"))
	}
}

// supported produces the handler enumerating supported currency codes
func (s *Server) supported() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		codes, err := s.Service.Currencies(r.Context())
		if err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
			_, _ = rw.Write([]byte(`{"error": "failed listing currencies"}`))
			return
		}

		enc := json.NewEncoder(rw)
		if err := enc.Encode(codes); err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
			_, _ = rw.Write([]byte(`{"error": "failed json encoding"}`))
			return
		}
	}
}

// convert produces the HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		From currency.Money `json:"from"`
		To   currency.Code  `json:"to"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		bytes, err := io.ReadAll(r.Body)
		if err != nil {
			rw.WriteHeader(http.StatusBadRequest)
			_, _ = rw.Write([]byte(`{"error": "invalid request"}`))
			return
		}

		var request request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			rw.WriteHeader(http.StatusBadRequest)
			_, _ = rw.Write([]byte(`{"error": "invalid json"}`))
			return
		}

		result, err := s.Service.Convert(r.Context(), request.From, request.To)
		if err != nil {
			s.Logger.Log("msg", "conversion request failed", "err", err)
			if errors.Is(err, currency.ErrInvalidInput) {
				rw.WriteHeader(http.StatusBadRequest)
				_, _ = rw.Write([]byte(`{"error": "invalid conversion"}`))
				return
			}
			rw.WriteHeader(http.StatusBadGateway)
			_, _ = rw.Write([]byte(`{"error": "conversion unavailable"}`))
			return
		}

		enc := json.NewEncoder(rw)
		if err := enc.Encode(&result); err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
			_, _ = rw.Write([]byte(`{"error": "failed json encoding"}`))
			return
		}
	}
}
