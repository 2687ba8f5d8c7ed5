package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"log"
	"log/slog"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/armon/go-metrics"
	"github.com/hashicorp/go-multierror"
	"github.com/mengelbart/triemap"
	"github.com/mengelbart/triemap/internal/config"
	"github.com/mengelbart/triemap/quictrie"
	"github.com/mengelbart/triemap/remote"
	"github.com/mengelbart/triemap/webtransporttrie"
	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/http3"
	"github.com/quic-go/webtransport-go"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "triemapd",
		Usage: "serve a prefix map over QUIC and WebTransport",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML or TOML config file",
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address, overrides the config file",
			},
			&cli.StringFlag{
				Name:  "cert",
				Usage: "TLS certificate file",
			},
			&cli.StringFlag{
				Name:  "key",
				Usage: "TLS key file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "one of debug, info, warn, error",
			},
		},
		Action: run,
	}
}

func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg := config.Default()
	if path := cmd.String("config"); len(path) > 0 {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}
	if cmd.IsSet("addr") {
		cfg.Addr = cmd.String("addr")
	}
	if cmd.IsSet("cert") {
		cfg.CertFile = cmd.String("cert")
	}
	if cmd.IsSet("key") {
		cfg.KeyFile = cmd.String("key")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})
	remote.SetLogHandler(handler)
	logger := slog.New(handler)

	if cfg.MetricsInterval > 0 {
		sink := metrics.NewInmemSink(cfg.MetricsInterval, 6*cfg.MetricsInterval)
		sig := metrics.DefaultInmemSignal(sink)
		defer sig.Stop()
		if _, err = metrics.NewGlobal(metrics.DefaultConfig("triemapd"), sink); err != nil {
			return err
		}
	}

	tlsConfig, err := generateTLSConfigWithCertAndKey(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		logger.Warn("failed to load TLS certificate, generating in memory certs", "error", err)
		tlsConfig, err = generateTLSConfig()
		if err != nil {
			return err
		}
	}

	m := triemap.NewSyncMap[string, []byte]()
	m.Update(func(t *triemap.TrieMap[string, []byte]) {
		for _, kv := range cfg.SeedEntries() {
			t.Insert(kv.Key, kv.Value)
		}
	})
	srv := &remote.Server{
		Map:    m,
		Logger: logger,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return listen(ctx, cfg, tlsConfig, srv, logger)
}

func listen(ctx context.Context, cfg config.Config, tlsConfig *tls.Config, srv *remote.Server, logger *slog.Logger) error {
	listener, err := quic.ListenAddr(cfg.Addr, tlsConfig, &quic.Config{})
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	wt := &webtransport.Server{
		H3: http3.Server{
			Addr:      cfg.Addr,
			TLSConfig: tlsConfig,
			Handler:   mux,
		},
		CheckOrigin: func(*http.Request) bool { return true },
	}
	mux.Handle(cfg.WebTransportPath, webtransporttrie.Handler(wt, srv, logger))
	logger.Info("listening", "addr", listener.Addr(), "keys", srv.Map.Len())

	var wg sync.WaitGroup
	var acceptErr error
	for {
		conn, err := listener.Accept(ctx)
		if err != nil {
			acceptErr = err
			break
		}
		switch conn.ConnectionState().TLS.NegotiatedProtocol {
		case "h3":
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := wt.ServeQUICConn(conn); err != nil {
					logger.Info("webtransport connection done", "error", err)
				}
			}()
		case quictrie.NextProto:
			wg.Add(1)
			go func() {
				defer wg.Done()
				serveQUIC(ctx, srv, conn, logger)
			}()
		default:
			conn.CloseWithError(quic.ApplicationErrorCode(remote.ErrorCodeProtocolViolation), "unsupported protocol")
		}
	}

	var result *multierror.Error
	if ctx.Err() == nil {
		result = multierror.Append(result, acceptErr)
	}
	if err := wt.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := listener.Close(); err != nil && !errors.Is(err, quic.ErrServerClosed) {
		result = multierror.Append(result, err)
	}
	wg.Wait()
	return result.ErrorOrNil()
}

func serveQUIC(ctx context.Context, srv *remote.Server, conn quic.Connection, logger *slog.Logger) {
	c := quictrie.New(conn)
	err := srv.Serve(ctx, c)
	logger.Info("quic connection done", "remote", conn.RemoteAddr(), "error", err)
	if err := c.CloseWithError(remote.ErrorCodeNoError, ""); err != nil {
		logger.Warn("failed to close connection", "error", err)
	}
}

func generateTLSConfigWithCertAndKey(certFile, keyFile string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		NextProtos:   []string{quictrie.NextProto, "h3"},
	}, nil
}

// Setup a bare-bones TLS config for the server
func generateTLSConfig() (*tls.Config, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}
	template := x509.Certificate{SerialNumber: big.NewInt(1)}
	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return nil, err
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})

	tlsCert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{tlsCert},
		NextProtos:   []string{quictrie.NextProto, "h3"},
	}, nil
}
