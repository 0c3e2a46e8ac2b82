package main

import (
	"encoding/hex"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// newMinerAddress derives an address from a fresh Ed25519 key pair. The
// secret is dropped: rewards are never spent by this program.
func newMinerAddress() (string, error) {
	secret := suite.Scalar().Pick(suite.RandomStream())
	public := suite.Point().Mul(secret, nil)
	b, err := public.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
