package integrationtests

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"sync"
	"testing"

	"github.com/mengelbart/triemap"
	"github.com/mengelbart/triemap/quictrie"
	"github.com/mengelbart/triemap/remote"
	"github.com/quic-go/quic-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serve starts a server for m on a random localhost port and returns a
// client connected to it. cancel shuts both sides down and waits for the
// server to finish.
func serve(t *testing.T, m *remote.Map) (client *remote.Client, cancel func()) {
	tlsConfig, err := generateTLSConfig()
	require.NoError(t, err)
	listener, err := quic.ListenAddr("localhost:0", tlsConfig, &quic.Config{})
	require.NoError(t, err)
	addr := fmt.Sprintf("localhost:%v", listener.Addr().(*net.UDPAddr).Port)

	ctx, cancelCtx := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		conn, err := listener.Accept(ctx)
		if err != nil {
			return
		}
		c := quictrie.New(conn)
		srv := &remote.Server{Map: m}
		_ = srv.Serve(ctx, c)
		assert.NoError(t, c.CloseWithError(remote.ErrorCodeNoError, ""))
	}()

	clientConn, err := quic.DialAddr(context.Background(), addr, &tls.Config{
		InsecureSkipVerify: true,
		NextProtos:         []string{quictrie.NextProto},
	}, &quic.Config{})
	require.NoError(t, err)

	return remote.NewClient(quictrie.New(clientConn)), func() {
		cancelCtx()
		wg.Wait()
		clientConn.CloseWithError(0, "")
		assert.NoError(t, listener.Close())
	}
}

func newMap() *remote.Map {
	return triemap.NewSyncMap[string, []byte]()
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
		NextProtos:   []string{quictrie.NextProto},
	}, nil
}
