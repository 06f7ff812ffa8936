// Package certs loads the portal's TLS key pair and reports on its validity.
package certs

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	// ErrNoCertificate is returned when the PEM file holds no certificate block.
	ErrNoCertificate = errors.New("failed to parse certificate PEM")
	// ErrExpired is returned when the leaf certificate is past NotAfter.
	ErrExpired = errors.New("certificate expired")
)

// CertManager manages the TLS certificate and key files of the server.
type CertManager struct {
	certFile string
	keyFile  string
	now      func() time.Time
}

// NewCertManager creates a new CertManager for the given files.
func NewCertManager(certFile, keyFile string) *CertManager {
	return &CertManager{certFile: certFile, keyFile: keyFile, now: time.Now}
}

// Load reads the key pair and parses the leaf certificate. An expired leaf is
// an error; serving it would only break every client.
func (cm *CertManager) Load() (tls.Certificate, *x509.Certificate, error) {
	pair, err := tls.LoadX509KeyPair(cm.certFile, cm.keyFile)
	if err != nil {
		return tls.Certificate{}, nil, fmt.Errorf("load key pair: %w", err)
	}
	leaf, err := cm.loadCertificate(cm.certFile)
	if err != nil {
		return tls.Certificate{}, nil, err
	}
	if cm.IsExpired(leaf) {
		return tls.Certificate{}, leaf, fmt.Errorf("%w: %s (not after %s)", ErrExpired, cm.certFile, leaf.NotAfter.Format(time.RFC3339))
	}
	pair.Leaf = leaf
	return pair, leaf, nil
}

// loadCertificate loads the first certificate from a PEM file.
func (cm *CertManager) loadCertificate(path string) (*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			return nil, ErrNoCertificate
		}
		if block.Type == "CERTIFICATE" {
			return x509.ParseCertificate(block.Bytes)
		}
	}
}

// IsExpired checks if a certificate is expired.
func (cm *CertManager) IsExpired(cert *x509.Certificate) bool {
	return cert.NotAfter.Before(cm.now())
}

// ExpiresWithin reports whether cert expires within d.
func (cm *CertManager) ExpiresWithin(cert *x509.Certificate, d time.Duration) bool {
	return cert.NotAfter.Before(cm.now().Add(d))
}

// TLSConfig returns a server TLS config serving the loaded pair.
func (cm *CertManager) TLSConfig() (*tls.Config, *x509.Certificate, error) {
	pair, leaf, err := cm.Load()
	if err != nil {
		return nil, leaf, err
	}
	return &tls.Config{
		MinVersion:   tls.VersionTLS12,
		Certificates: []tls.Certificate{pair},
	}, leaf, nil
}
